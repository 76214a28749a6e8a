package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yomu-reader/yomu/pkg/app/styles"
)

type ChapterItem struct {
	Key    string
	Title  string
	Volume string
	// Progress is the "5 / 10" style resume hint, empty when unread.
	Progress string
}

type ChapterList struct {
	Items         []ChapterItem
	SelectedIndex int
	Width         int
	Height        int
}

func NewChapterList() *ChapterList {
	return &ChapterList{
		Items:  []ChapterItem{},
		Width:  80,
		Height: 20,
	}
}

func (c *ChapterList) SetItems(items []ChapterItem) {
	c.Items = items
	if c.SelectedIndex >= len(items) {
		c.SelectedIndex = 0
	}
}

func (c *ChapterList) Next() {
	if len(c.Items) == 0 {
		return
	}
	c.SelectedIndex++
	if c.SelectedIndex >= len(c.Items) {
		c.SelectedIndex = 0
	}
}

func (c *ChapterList) Prev() {
	if len(c.Items) == 0 {
		return
	}
	c.SelectedIndex--
	if c.SelectedIndex < 0 {
		c.SelectedIndex = len(c.Items) - 1
	}
}

func (c *ChapterList) Selected() *ChapterItem {
	if len(c.Items) == 0 || c.SelectedIndex >= len(c.Items) {
		return nil
	}
	return &c.Items[c.SelectedIndex]
}

func (c *ChapterList) View() string {
	if len(c.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No chapters")
		return lipgloss.Place(c.Width, c.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	// Window the list around the selection so long manifests stay readable.
	start := 0
	end := len(c.Items)
	if end > 10 {
		start = c.SelectedIndex - 5
		if start < 0 {
			start = 0
		}
		end = start + 10
		if end > len(c.Items) {
			end = len(c.Items)
			start = end - 10
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		item := c.Items[i]

		line := fmt.Sprintf("Ch. %s", item.Key)
		if item.Volume != "" {
			line = fmt.Sprintf("Vol. %s, %s", item.Volume, line)
		}
		if item.Title != "" {
			line = fmt.Sprintf("%s: %s", line, item.Title)
		}
		if item.Progress != "" {
			line = fmt.Sprintf("%s  (%s)", line, item.Progress)
		}

		if i == c.SelectedIndex {
			line = styles.SelectedStyle.Render(line)
		} else {
			line = styles.TextStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(c.Items) > 10 {
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d chapters", start+1, end, len(c.Items)),
		))
	}

	return b.String()
}
