package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Show saved reading progress",
	Long:  "List every saved progress record, most recently read first",
	Run: func(cmd *cobra.Command, args []string) {
		_, repo := mustWire(true)
		if repo == nil {
			fmt.Println("No progress database available.")
			return
		}

		records, err := repo.ListProgress()
		if err != nil {
			cobra.CheckErr(err)
		}
		if len(records) == 0 {
			fmt.Println("Nothing in progress. Open something with 'yomu <gist-id>'.")
			return
		}

		columns := []table.Column{
			{Title: "Source", Width: 8},
			{Title: "ID", Width: 26},
			{Title: "Chapter", Width: 10},
			{Title: "Page", Width: 10},
			{Title: "Last read", Width: 18},
		}

		rows := []table.Row{}
		for _, p := range records {
			rows = append(rows, table.Row{
				p.Source,
				truncateString(p.SourceID, 24),
				p.Chapter,
				fmt.Sprintf("%d / %d", p.Page, p.TotalPages),
				p.LastRead.Local().Format("2006-01-02 15:04"),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\nReading progress (%d records)\n\n", len(records))
		fmt.Println(t.View())
	},
}
