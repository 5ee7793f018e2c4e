package search

import (
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []domain.MovieSummary {
	return []domain.MovieSummary{
		{ID: "tt1", Title: "Matrix Reloaded", YearLabel: "2003"},
		{ID: "tt2", Title: "Inception", YearLabel: "2010"},
		{ID: "tt3", Title: "The Matrix", YearLabel: "1999"},
	}
}

func TestFilterMovies_EmptyQueryIsNoFilter(t *testing.T) {
	assert.Nil(t, FilterMovies(filterFixture(), "  "))
}

func TestFilterMovies_KeepsListOrder(t *testing.T) {
	results := FilterMovies(filterFixture(), "MATRIX")
	require.Len(t, results, 2)
	assert.Equal(t, 0, results[0].Index)
	assert.Equal(t, 2, results[1].Index)
}

func TestFilterMovies_ListOrderOverridesRank(t *testing.T) {
	movies := []domain.MovieSummary{
		{ID: "tt1", Title: "A Story About The Matrix Trilogy"},
		{ID: "tt2", Title: "Matrix"},
	}
	results := FilterMovies(movies, "matrix")
	require.Len(t, results, 2)
	assert.Equal(t, []int{0, 1}, []int{results[0].Index, results[1].Index})
}

func TestFilterMovies_MatchedIndexes(t *testing.T) {
	results := FilterMovies(filterFixture(), "incep")
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Index)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, results[0].MatchedIndexes)
}

func TestFilterMovies_MatchesYear(t *testing.T) {
	results := FilterMovies(filterFixture(), "1999")
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Index)
}

func TestFilterMovies_NoMatch(t *testing.T) {
	assert.Empty(t, FilterMovies(filterFixture(), "zzz"))
}
