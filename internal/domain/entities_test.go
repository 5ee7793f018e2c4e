package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"2010", 2010},
		{"2010–2015", 2010},
		{"2019–", 2019},
		{" 1999 ", 1999},
		{"N/A", 0},
		{"", 0},
		{"99", 0},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseYear(tt.label))
		})
	}
}

func TestMovieSummary_DisplayTitle(t *testing.T) {
	assert.Equal(t, "Inception (2010)", MovieSummary{Title: "Inception", YearLabel: "2010"}.DisplayTitle())
	assert.Equal(t, "Untitled", MovieSummary{Title: "Untitled"}.DisplayTitle())
}

func TestMovieDetail_MetaLineSkipsUnknown(t *testing.T) {
	d := MovieDetail{Released: "16 Jul 2010", Runtime: "N/A", Rated: "PG-13"}
	assert.Equal(t, "16 Jul 2010 · PG-13", d.MetaLine())
}

func TestMovieDetail_Summary(t *testing.T) {
	d := MovieDetail{ID: "tt1375666", Title: "Inception", YearLabel: "2010", Type: "movie"}
	s := d.Summary()
	assert.Equal(t, "tt1375666", s.ID)
	assert.Equal(t, 2010, s.Year)
}
