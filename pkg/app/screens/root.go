package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yomu-reader/yomu/pkg/data"
	"github.com/yomu-reader/yomu/pkg/services"
)

type screenType int

const (
	openView screenType = iota
	chaptersView
	readerView
)

// SwitchScreenMsg asks the root screen to change the active screen.
type SwitchScreenMsg struct {
	Screen string
	Data   any
}

// ReadTarget identifies what the reader screen should load: a chapter of a
// gist manifest, or a bare imgur album.
type ReadTarget struct {
	GistID     string
	ChapterKey string
	AlbumID    string
}

type RootScreen struct {
	reader *services.Reader
	repo   *data.Repository

	currentView screenType
	open        *OpenScreen
	chapters    *ChaptersScreen
	reading     *ReaderScreen

	width  int
	height int
}

// NewRootScreen starts on the open screen, or jumps straight to the given
// target when one came from the command line.
func NewRootScreen(reader *services.Reader, repo *data.Repository, target *ReadTarget) *RootScreen {
	r := &RootScreen{
		reader:      reader,
		repo:        repo,
		currentView: openView,
		open:        NewOpenScreen(),
	}

	if target != nil {
		switch {
		case target.AlbumID != "":
			r.reading = NewReaderScreen(reader, repo, *target)
			r.currentView = readerView
		case target.GistID != "":
			r.chapters = NewChaptersScreen(reader, repo, target.GistID)
			r.currentView = chaptersView
		}
	}

	return r
}

func (r *RootScreen) Init() tea.Cmd {
	switch r.currentView {
	case chaptersView:
		return r.chapters.Init()
	case readerView:
		return r.reading.Init()
	default:
		return r.open.Init()
	}
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "open":
			r.currentView = openView
			cmd = r.open.Init()
		case "chapters":
			if gistID, ok := msg.Data.(string); ok {
				r.chapters = NewChaptersScreen(r.reader, r.repo, gistID)
				r.currentView = chaptersView
				cmd = r.chapters.Init()
			}
		case "reader":
			if target, ok := msg.Data.(ReadTarget); ok {
				r.reading = NewReaderScreen(r.reader, r.repo, target)
				r.currentView = readerView
				cmd = r.reading.Init()
			}
		}
		return r, cmd
	}

	// Forward message to active screen
	switch r.currentView {
	case openView:
		newModel, newCmd := r.open.Update(msg)
		r.open = newModel.(*OpenScreen)
		return r, newCmd
	case chaptersView:
		newModel, newCmd := r.chapters.Update(msg)
		r.chapters = newModel.(*ChaptersScreen)
		return r, newCmd
	case readerView:
		if r.reading != nil {
			newModel, newCmd := r.reading.Update(msg)
			r.reading = newModel.(*ReaderScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	switch r.currentView {
	case chaptersView:
		return r.chapters.View()
	case readerView:
		if r.reading != nil {
			return r.reading.View()
		}
		return ""
	default:
		return r.open.View()
	}
}
