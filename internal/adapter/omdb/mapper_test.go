package omdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSearchItems_DropsMissingAndDuplicateIDs(t *testing.T) {
	items := []SearchItem{
		{Title: "A", Year: "2001", IMDbID: "tt1"},
		{Title: "No ID", Year: "2002"},
		{Title: "A again", Year: "2001", IMDbID: "tt1"},
		{Title: "B", Year: "1999", IMDbID: "tt2"},
	}

	movies := MapSearchItems(items)
	assert.Len(t, movies, 2)
	assert.Equal(t, "A", movies[0].Title)
	assert.Equal(t, "B", movies[1].Title)
}

func TestMapSearchItems_EmptyIsNonNil(t *testing.T) {
	movies := MapSearchItems(nil)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestMapDetail_PosterNA(t *testing.T) {
	d := MapDetail(DetailResponse{IMDbID: "tt1", Title: "X", Poster: "N/A"})
	assert.Equal(t, "", d.PosterURL)
	assert.Empty(t, d.Ratings)
}
