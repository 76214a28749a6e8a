package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yomu-reader/yomu/pkg/app/components"
	"github.com/yomu-reader/yomu/pkg/app/styles"
	"github.com/yomu-reader/yomu/pkg/data"
	"github.com/yomu-reader/yomu/pkg/services"
	"github.com/yomu-reader/yomu/pkg/session"
)

// ReaderScreen drives one reading session: Loading until the page list
// arrives, then Ready with keyboard navigation. A zero-page chapter renders
// as a normal "no pages" state; a failed load gets a retry affordance.
type ReaderScreen struct {
	reader *services.Reader
	repo   *data.Repository
	target ReadTarget

	loaded  *services.LoadedChapter
	sess    *session.Session
	pager   *components.Pager
	loading bool
	width   int
	height  int
	err     error
}

func NewReaderScreen(reader *services.Reader, repo *data.Repository, target ReadTarget) *ReaderScreen {
	return &ReaderScreen{
		reader:  reader,
		repo:    repo,
		target:  target,
		pager:   components.NewPager(80),
		loading: true,
	}
}

func (s *ReaderScreen) Init() tea.Cmd {
	return s.loadPages
}

func (s *ReaderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.pager = components.NewPager(msg.Width - 4)

	case tea.KeyMsg:
		if s.loading {
			return s, nil
		}

		switch msg.String() {
		case "right", "l", " ":
			if s.sess != nil {
				s.sess.Advance()
			}
		case "left", "h":
			if s.sess != nil {
				s.sess.Retreat()
			}
		case "d":
			if s.sess != nil {
				s.sess.ToggleMode()
			}
		case "r":
			if s.err != nil {
				s.loading = true
				s.err = nil
				return s, s.loadPages
			}
		case "esc", "backspace":
			if s.target.GistID != "" {
				gistID := s.target.GistID
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "chapters", Data: gistID}
				}
			}
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "open"}
			}
		}

	case pagesLoadedMsg:
		s.loading = false
		s.err = msg.err
		s.loaded = msg.loaded
		if msg.err == nil {
			s.sess = session.Mount(
				s.progressStore(),
				msg.loaded.Source,
				msg.loaded.SourceID,
				msg.loaded.ChapterKey,
				msg.loaded.Pages,
			)
		}
	}

	return s, nil
}

func (s *ReaderScreen) View() string {
	if s.loading {
		return styles.StatusLoading.Render("Loading pages...")
	}

	if s.err != nil {
		errView := styles.StatusError.Render(fmt.Sprintf("Error loading %s: %s", s.targetLabel(), s.err))
		help := styles.HelpStyle.Render("r: retry • esc: back • q: quit")
		return fmt.Sprintf("%s\n%s", errView, help)
	}

	header := styles.TitleStyle.Render(s.chapterTitle())

	var pagerView string
	if s.sess.Empty() {
		pagerView = styles.MutedStyle.Render("No pages in this chapter")
	} else {
		pagerView = s.pager.View(s.sess.Visible(), s.sess.Label())
	}

	mode := styles.MutedStyle.Render(fmt.Sprintf("view: %s", s.sess.Mode()))

	help := styles.HelpStyle.Render(
		"←/h: prev • →/l/space: next • d: single/double • esc: back • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n%s\n%s", header, pagerView, mode, help)
}

func (s *ReaderScreen) chapterTitle() string {
	title := s.loaded.Title
	if s.loaded.ChapterKey != "" {
		title = fmt.Sprintf("Ch. %s: %s", s.loaded.ChapterKey, title)
	}
	if s.loaded.Volume != "" {
		title = fmt.Sprintf("Vol. %s, %s", s.loaded.Volume, title)
	}
	return title
}

func (s *ReaderScreen) targetLabel() string {
	if s.target.AlbumID != "" {
		return fmt.Sprintf("album %q", s.target.AlbumID)
	}
	return fmt.Sprintf("gist %q chapter %q", s.target.GistID, s.target.ChapterKey)
}

// progressStore narrows the repo to the session's store interface; a nil repo
// (no database) just disables persistence.
func (s *ReaderScreen) progressStore() session.ProgressStore {
	if s.repo == nil {
		return nil
	}
	return s.repo
}

// Messages
type pagesLoadedMsg struct {
	loaded *services.LoadedChapter
	err    error
}

// Commands
func (s *ReaderScreen) loadPages() tea.Msg {
	if s.target.AlbumID != "" {
		loaded, err := s.reader.LoadAlbum(s.target.AlbumID)
		return pagesLoadedMsg{loaded: loaded, err: err}
	}
	loaded, err := s.reader.LoadChapter(s.target.GistID, s.target.ChapterKey)
	return pagesLoadedMsg{loaded: loaded, err: err}
}
