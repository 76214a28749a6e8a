package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yomu-reader/yomu/pkg/app/styles"
	"github.com/yomu-reader/yomu/pkg/sources"
)

// OpenScreen is the landing input: the user pastes a gist id or an album
// descriptor and gets routed to the matching screen.
type OpenScreen struct {
	input  textinput.Model
	width  int
	height int
}

func NewOpenScreen() *OpenScreen {
	ti := textinput.New()
	ti.Placeholder = "Gist id or /album/chapter/{id}/ ..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50

	return &OpenScreen{input: ti}
}

func (s *OpenScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *OpenScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "enter" {
			value := s.input.Value()
			if value == "" {
				break
			}
			if albumID, ok := sources.AlbumID(value); ok {
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "reader", Data: ReadTarget{AlbumID: albumID}}
				}
			}
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "chapters", Data: value}
			}
		}
	}

	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *OpenScreen) View() string {
	header := styles.TitleStyle.Render("yomu")
	subtitle := styles.SubtitleStyle.Render("Read a gist-hosted manifest or an imgur album")

	inputView := styles.FocusedInputStyle.Render(s.input.View())

	help := styles.HelpStyle.Render("enter: open • q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, subtitle, inputView, help)
}
