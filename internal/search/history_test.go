package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_AddMovesDuplicateToFront(t *testing.T) {
	h := NewHistory(10)
	h.Add("matrix")
	h.Add("inception")
	h.Add("Matrix ")

	assert.Equal(t, []string{"Matrix", "inception"}, h.Entries())
}

func TestHistory_IgnoresBlank(t *testing.T) {
	h := NewHistory(10)
	h.Add("   ")
	assert.Empty(t, h.Entries())
}

func TestHistory_Bounded(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Add(fmt.Sprintf("query %d", i))
	}
	assert.Equal(t, []string{"query 4", "query 3", "query 2"}, h.Entries())
}

func TestHistory_SuggestRanksByDistance(t *testing.T) {
	h := NewHistory(10)
	h.Add("mad max")
	h.Add("inception")
	h.Add("matrix")

	assert.Equal(t, []string{"matrix", "mad max"}, h.Suggest("ma"))
}

func TestHistory_SuggestSkipsExactMatch(t *testing.T) {
	h := NewHistory(10)
	h.Add("matrix")
	assert.Empty(t, h.Suggest("MATRIX"))
}

func TestHistory_SuggestEmptyPrefixReturnsRecentFirst(t *testing.T) {
	h := NewHistory(10)
	h.Add("a movie")
	h.Add("b movie")
	assert.Equal(t, []string{"b movie", "a movie"}, h.Suggest(""))
}
