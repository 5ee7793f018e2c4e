package domain

import (
	"fmt"
	"strings"
)

// MovieSummary is one entry of a search result list
type MovieSummary struct {
	ID        string // imdbID, unique within a result set
	Title     string // Display title
	Year      int    // Numeric release year (0 if unknown)
	YearLabel string // Year as reported by the server, e.g. "2010–2015"
	Type      string // "movie", "series", "episode"
	PosterURL string // Poster image URL (empty if none)
}

// DisplayTitle returns "Title (Year)" when a year is known
func (m MovieSummary) DisplayTitle() string {
	if m.YearLabel == "" {
		return m.Title
	}
	return fmt.Sprintf("%s (%s)", m.Title, m.YearLabel)
}

// Rating is a single third-party rating of a movie
type Rating struct {
	Source string // e.g. "Rotten Tomatoes"
	Value  string // e.g. "87%"
}

// MovieDetail is the full record for a single title
type MovieDetail struct {
	ID        string
	Title     string
	YearLabel string
	Rated     string // Content rating, e.g. "PG-13"
	Released  string // Release date as reported, e.g. "16 Jul 2010"
	Runtime   string // e.g. "148 min"
	Genre     string
	Director  string
	Writer    string
	Actors    string
	Plot      string
	Language  string
	Country   string
	Awards    string
	PosterURL string
	Type      string

	IMDbRating string // e.g. "8.8", "N/A" when unrated
	IMDbVotes  string

	Ratings []Rating
}

// Summary returns the list-level view of the detail record
func (d MovieDetail) Summary() MovieSummary {
	return MovieSummary{
		ID:        d.ID,
		Title:     d.Title,
		Year:      ParseYear(d.YearLabel),
		YearLabel: d.YearLabel,
		Type:      d.Type,
		PosterURL: d.PosterURL,
	}
}

// MetaLine returns "Released · Runtime · Rated", skipping unknown parts
func (d MovieDetail) MetaLine() string {
	var parts []string
	for _, p := range []string{d.Released, d.Runtime, d.Rated} {
		if Known(p) {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " · ")
}

// Known reports whether a server-provided field carries a value.
// The movie database uses "N/A" for missing fields.
func Known(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != "N/A"
}

// ParseYear extracts the leading four-digit year from a year label.
// Ranges such as "2010–2015" or open ranges such as "2019–" yield the first year.
func ParseYear(label string) int {
	label = strings.TrimSpace(label)
	year := 0
	digits := 0
	for _, r := range label {
		if r < '0' || r > '9' {
			break
		}
		year = year*10 + int(r-'0')
		digits++
		if digits == 4 {
			break
		}
	}
	if digits < 4 {
		return 0
	}
	return year
}
