package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yomu-reader/yomu/pkg/app/components"
	"github.com/yomu-reader/yomu/pkg/app/styles"
	"github.com/yomu-reader/yomu/pkg/data"
	"github.com/yomu-reader/yomu/pkg/manifest"
	"github.com/yomu-reader/yomu/pkg/services"
	"github.com/yomu-reader/yomu/pkg/sources"
)

type ChaptersScreen struct {
	reader *services.Reader
	repo   *data.Repository
	gistID string

	m       *manifest.Manifest
	list    *components.ChapterList
	loading bool
	width   int
	height  int
	err     error
}

func NewChaptersScreen(reader *services.Reader, repo *data.Repository, gistID string) *ChaptersScreen {
	return &ChaptersScreen{
		reader:  reader,
		repo:    repo,
		gistID:  gistID,
		list:    components.NewChapterList(),
		loading: true,
	}
}

func (s *ChaptersScreen) Init() tea.Cmd {
	return s.loadManifest
}

func (s *ChaptersScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "r":
			s.loading = true
			s.err = nil
			return s, s.loadManifest
		case "enter":
			selected := s.list.Selected()
			if selected != nil {
				key := selected.Key
				return s, func() tea.Msg {
					return SwitchScreenMsg{
						Screen: "reader",
						Data:   ReadTarget{GistID: s.gistID, ChapterKey: key},
					}
				}
			}
		case "esc", "backspace":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "open"}
			}
		}

	case manifestLoadedMsg:
		s.loading = false
		s.m = msg.m
		s.err = msg.err
		if msg.m != nil {
			s.list.SetItems(s.chapterItems(msg.m))
		}
	}

	return s, nil
}

func (s *ChaptersScreen) View() string {
	if s.loading {
		return styles.StatusLoading.Render("Loading manifest...")
	}

	if s.err != nil {
		errView := styles.StatusError.Render(fmt.Sprintf("Error loading gist %q: %s", s.gistID, s.err))
		help := styles.HelpStyle.Render("r: retry • esc: back • q: quit")
		return fmt.Sprintf("%s\n%s", errView, help)
	}

	header := styles.TitleStyle.Render(s.m.Title)
	var meta string
	if s.m.Author != "" {
		meta = styles.MutedStyle.Render("by "+s.m.Author) + "\n"
	}

	listView := s.list.View()

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: read • r: refresh • esc: back • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, meta, listView, help)
}

// chapterItems builds the list rows in reading order, attaching a resume hint
// where a progress record exists.
func (s *ChaptersScreen) chapterItems(m *manifest.Manifest) []components.ChapterItem {
	keys := s.reader.ChapterKeys(m)

	items := make([]components.ChapterItem, len(keys))
	for i, key := range keys {
		ch := m.Chapters[key]
		item := components.ChapterItem{Key: key, Title: ch.Title, Volume: ch.Volume}

		if s.repo != nil {
			if saved, err := s.repo.GetProgress(sources.KindGist, s.gistID, key); err == nil && saved != nil {
				item.Progress = fmt.Sprintf("%d / %d", saved.Page, saved.TotalPages)
			}
		}
		items[i] = item
	}
	return items
}

// Messages
type manifestLoadedMsg struct {
	m   *manifest.Manifest
	err error
}

// Commands
func (s *ChaptersScreen) loadManifest() tea.Msg {
	m, err := s.reader.Manifest(s.gistID)
	return manifestLoadedMsg{m: m, err: err}
}
