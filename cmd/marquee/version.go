package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of marquee",
	// Skip config and log setup
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("marquee %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
