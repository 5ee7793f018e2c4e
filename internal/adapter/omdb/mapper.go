package omdb

import (
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
)

// MapSearchItems converts search hits to domain summaries, preserving server order.
// Hits without an identifier are dropped; duplicate identifiers keep the first occurrence.
func MapSearchItems(items []SearchItem) []domain.MovieSummary {
	movies := make([]domain.MovieSummary, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.IMDbID == "" || seen[item.IMDbID] {
			continue
		}
		seen[item.IMDbID] = true
		movies = append(movies, domain.MovieSummary{
			ID:        item.IMDbID,
			Title:     item.Title,
			Year:      domain.ParseYear(item.Year),
			YearLabel: strings.TrimSpace(item.Year),
			Type:      item.Type,
			PosterURL: posterURL(item.Poster),
		})
	}
	return movies
}

// MapDetail converts a lookup response to a domain detail record
func MapDetail(resp DetailResponse) *domain.MovieDetail {
	ratings := make([]domain.Rating, 0, len(resp.Ratings))
	for _, r := range resp.Ratings {
		ratings = append(ratings, domain.Rating{Source: r.Source, Value: r.Value})
	}
	return &domain.MovieDetail{
		ID:         resp.IMDbID,
		Title:      resp.Title,
		YearLabel:  strings.TrimSpace(resp.Year),
		Rated:      resp.Rated,
		Released:   resp.Released,
		Runtime:    resp.Runtime,
		Genre:      resp.Genre,
		Director:   resp.Director,
		Writer:     resp.Writer,
		Actors:     resp.Actors,
		Plot:       resp.Plot,
		Language:   resp.Language,
		Country:    resp.Country,
		Awards:     resp.Awards,
		PosterURL:  posterURL(resp.Poster),
		Type:       resp.Type,
		IMDbRating: resp.IMDbRating,
		IMDbVotes:  resp.IMDbVotes,
		Ratings:    ratings,
	}
}

func posterURL(raw string) string {
	if !domain.Known(raw) {
		return ""
	}
	return strings.TrimSpace(raw)
}
