package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// printResults writes one line per title: id, year, type and title
func printResults(w io.Writer, movies []domain.MovieSummary) {
	if len(movies) == 1 {
		fmt.Fprintln(w, styles.AccentStyle.Render("Found 1 result"))
	} else {
		fmt.Fprintln(w, styles.AccentStyle.Render(fmt.Sprintf("Found %d results", len(movies))))
	}
	for _, m := range movies {
		year := m.YearLabel
		if year == "" {
			year = "-"
		}
		fmt.Fprintf(w, "%-10s  %-9s  %-7s  %s\n",
			m.ID, year, m.Type, styles.TitleStyle.Render(m.Title))
	}
}

// printDetail writes the full record in the same layout as the detail pane
func printDetail(w io.Writer, d domain.MovieDetail) {
	title := d.Title
	if domain.Known(d.YearLabel) {
		title = fmt.Sprintf("%s (%s)", d.Title, d.YearLabel)
	}
	fmt.Fprintln(w, styles.TitleStyle.Render(title))
	if meta := d.MetaLine(); meta != "" {
		fmt.Fprintln(w, styles.DimStyle.Render(meta))
	}
	if domain.Known(d.Genre) {
		fmt.Fprintln(w, d.Genre)
	}
	if domain.Known(d.IMDbRating) {
		fmt.Fprintf(w, "★ %s\n", d.IMDbRating)
	}
	for _, r := range d.Ratings {
		fmt.Fprintf(w, "%s: %s\n", r.Source, r.Value)
	}
	if domain.Known(d.Plot) {
		fmt.Fprintf(w, "\n%s\n", d.Plot)
	}

	fields := []struct{ label, value string }{
		{"Starring", d.Actors},
		{"Directed by", d.Director},
		{"Written by", d.Writer},
		{"Awards", d.Awards},
		{"Poster", d.PosterURL},
	}
	printed := false
	for _, f := range fields {
		if !domain.Known(f.value) {
			continue
		}
		if !printed {
			fmt.Fprintln(w)
			printed = true
		}
		fmt.Fprintf(w, "%s: %s\n", styles.LabelStyle.Render(f.label), f.value)
	}
}
