package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yomu-reader/yomu/pkg/app/screens"
	"github.com/yomu-reader/yomu/pkg/data"
	"github.com/yomu-reader/yomu/pkg/services"
)

type App struct {
	reader *services.Reader
	repo   *data.Repository
}

func NewApp(reader *services.Reader, repo *data.Repository) *App {
	return &App{reader: reader, repo: repo}
}

// Run starts the TUI. A non-nil target skips the landing input and opens the
// gist's chapter list or the album's reader directly.
func (a *App) Run(target *screens.ReadTarget) error {
	model := screens.NewRootScreen(a.reader, a.repo, target)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
