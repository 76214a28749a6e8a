package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters [gist-id]",
	Short: "List a manifest's chapters",
	Long:  "Fetch a gist-hosted manifest and list its chapters in reading order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		gistID := args[0]
		reader, _ := mustWire(false)

		m, err := reader.Manifest(gistID)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("load gist %q: %w", gistID, err))
		}

		keys := reader.ChapterKeys(m)
		if len(keys) == 0 {
			fmt.Println("No chapters in manifest.")
			return
		}

		var (
			blue = lipgloss.Color("75")

			headerStyle = lipgloss.NewStyle().Foreground(blue).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(blue)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("Key", "Volume", "Title", "Groups")

		for _, key := range keys {
			ch := m.Chapters[key]
			t.Row(key, ch.Volume, truncateString(ch.Title, 48), fmt.Sprintf("%d", len(ch.Groups)))
		}

		fmt.Printf("%s (%d chapters)\n", m.Title, len(keys))
		fmt.Println(t)
	},
}
