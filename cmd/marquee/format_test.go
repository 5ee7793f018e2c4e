package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/marquee/internal/domain"
)

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, []domain.MovieSummary{
		{ID: "tt0175142", Title: "Scary Movie", YearLabel: "2000", Type: "movie"},
		{ID: "tt1234567", Title: "Untitled"},
	})

	out := buf.String()
	assert.Contains(t, out, "Found 2 results")
	assert.Contains(t, out, "tt0175142")
	assert.Contains(t, out, "Scary Movie")
	assert.Contains(t, out, "-  ", "missing year is shown as a dash")
}

func TestPrintDetail_SkipsUnknownFields(t *testing.T) {
	var buf bytes.Buffer
	printDetail(&buf, domain.MovieDetail{
		Title:      "Inception",
		YearLabel:  "2010",
		Runtime:    "148 min",
		Director:   "Christopher Nolan",
		Actors:     "N/A",
		IMDbRating: "8.8",
		Ratings:    []domain.Rating{{Source: "Rotten Tomatoes", Value: "87%"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Inception (2010)")
	assert.Contains(t, out, "148 min")
	assert.Contains(t, out, "★ 8.8")
	assert.Contains(t, out, "Rotten Tomatoes: 87%")
	assert.Contains(t, out, "Christopher Nolan")
	assert.NotContains(t, out, "Starring")
}

func TestJoinArgs(t *testing.T) {
	assert.Equal(t, "the matrix", joinArgs([]string{" the", "matrix "}))
}
