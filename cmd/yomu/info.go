package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [gist-id]",
	Short: "Show a manifest's metadata",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		gistID := args[0]
		reader, _ := mustWire(false)

		m, err := reader.Manifest(gistID)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("load gist %q: %w", gistID, err))
		}

		fmt.Printf("Title:       %s\n", m.Title)
		if m.Author != "" {
			fmt.Printf("Author:      %s\n", m.Author)
		}
		if m.Artist != "" {
			fmt.Printf("Artist:      %s\n", m.Artist)
		}
		if m.Cover != "" {
			fmt.Printf("Cover:       %s\n", m.Cover)
		}
		if m.Description != "" {
			fmt.Printf("Description: %s\n", truncateString(m.Description, 200))
		}
		fmt.Printf("Chapters:    %d\n", len(m.Chapters))
	},
}
