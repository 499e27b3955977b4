// Package bubbletea provides a terminal preview of highlighted source using
// the Bubble Tea framework.
package bubbletea

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/tmtheme"
)

// Compile-time interface verification.
var _ tmtheme.Viewer = (*Viewer)(nil)

// Model is the Bubble Tea model for viewing rendered content.
type Model struct {
	viewport viewport.Model
	keymap   KeyMap
	content  string
	ready    bool
}

// NewModel creates a new Model with the given pre-rendered content.
func NewModel(content string) Model {
	return Model{
		content: content,
		keymap:  DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.GotoTop):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View()
}

// Viewer implements tmtheme.Viewer using a Bubble Tea TUI.
type Viewer struct{}

// NewViewer creates a new Viewer.
func NewViewer() *Viewer {
	return &Viewer{}
}

// View displays the content and blocks until the user exits.
func (v *Viewer) View(_ context.Context, content string) error {
	m := NewModel(content)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
