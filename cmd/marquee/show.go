package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmcdole/marquee/internal/browser"
)

var showCmd = &cobra.Command{
	Use:   "show <imdbID>",
	Short: "Print the details of one title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.IsConfigured() {
			return errNotConfigured
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.OMDb.Timeout*3)
		defer cancel()

		detail, err := newMovieService(nil).Detail(ctx, args[0])
		if err != nil {
			return errors.New(browser.DetailErrorMessage(err))
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(detail)
		}
		printDetail(os.Stdout, *detail)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "output details as JSON")

	rootCmd.AddCommand(showCmd)
}
