package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yomu-reader/yomu/pkg/app/styles"
)

// Pager renders the visible page slots of a reading session side by side,
// with the page-counter label underneath. An empty slot string renders as a
// blank placeholder rather than being dropped, so the layout stays stable at
// the end of a chapter in double view.
type Pager struct {
	Width int
}

func NewPager(width int) *Pager {
	return &Pager{Width: width}
}

func (p *Pager) View(slots []string, label string) string {
	if len(slots) == 0 {
		return styles.MutedStyle.Render("No pages in this chapter")
	}

	slotWidth := p.Width/len(slots) - 6
	if slotWidth < 12 {
		slotWidth = 12
	}

	rendered := make([]string, len(slots))
	for i, url := range slots {
		if url == "" {
			rendered[i] = styles.EmptySlotStyle.Width(slotWidth).Render(
				styles.MutedStyle.Render("·"),
			)
			continue
		}
		rendered[i] = styles.PageSlotStyle.Width(slotWidth).Render(
			styles.TextStyle.Render(truncate(url, slotWidth*3)),
		)
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n")
	b.WriteString(styles.CounterStyle.Render(label))
	return b.String()
}

func truncate(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
