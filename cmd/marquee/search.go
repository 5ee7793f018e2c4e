package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/mmcdole/marquee/internal/browser"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search titles and print the results",
	Long: `Search queries the movie database and prints matching titles in the order
the server returns them, or sorted by year with --sort.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.IsConfigured() {
			return errNotConfigured
		}

		sortFlag, _ := cmd.Flags().GetString("sort")
		key, err := browser.ParseSortKey(sortFlag)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		query := joinArgs(args)
		if err := checkQueryLength(query, cfg.Search.MinQueryLength); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), cfg.OMDb.Timeout*3)
		defer cancel()

		movies, err := newMovieService(nil).Search(ctx, query)
		if err != nil {
			return errors.New(browser.SearchErrorMessage(query, err))
		}
		movies = browser.SortMovies(movies, key)

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(movies)
		}
		printResults(os.Stdout, movies)
		return nil
	},
}

// checkQueryLength applies the same minimum length as the interactive browser
func checkQueryLength(query string, minLength int) error {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < minLength {
		return fmt.Errorf("query %q is too short; type at least %d characters", query, minLength)
	}
	return nil
}

func init() {
	searchCmd.Flags().String("sort", "none", "result order: none, year-desc, year-asc")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
