package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/marquee/internal/service"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored OMDb API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := service.NewSessionService().Logout(cfg); err != nil {
			return err
		}
		fmt.Println("API key removed from", cfg.FilePath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
