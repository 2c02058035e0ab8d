package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Yashshokeen-11/ALP/internal/screen"
	"github.com/Yashshokeen-11/ALP/internal/screens/pathmap"
	"github.com/Yashshokeen-11/ALP/internal/store"
	"github.com/Yashshokeen-11/ALP/internal/ui/layout"
)

// Options configures a TUI session.
type Options struct {
	Curriculum store.CurriculumRepo
	Mastery    store.MasteryRepo
	Review     store.ReviewRepo
	LearnerID  string
	Threshold  float64
}

// model is the root Bubble Tea model. It owns the screen stack and
// forwards everything it does not handle to the top screen.
type model struct {
	stack  []screen.Screen
	width  int
	height int
}

func newModel(opts Options) model {
	root := pathmap.New(pathmap.Deps{
		Curriculum: opts.Curriculum,
		Mastery:    opts.Mastery,
		Review:     opts.Review,
		LearnerID:  opts.LearnerID,
		Threshold:  opts.Threshold,
	})
	return model{stack: []screen.Screen{root}}
}

func (m model) Init() tea.Cmd {
	return m.stack[0].Init()
}

func (m model) active() screen.Screen {
	return m.stack[len(m.stack)-1]
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.PushMsg:
		m.stack = append(m.stack, msg.Screen)
		return m, msg.Screen.Init()

	case screen.PopMsg:
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if len(m.stack) > 1 {
				m.stack = m.stack[:len(m.stack)-1]
				return m, nil
			}
			// At the root, esc goes to the screen so it can close
			// input modes.
		}
	}

	updated, cmd := m.active().Update(msg)
	m.stack[len(m.stack)-1] = updated
	return m, cmd
}

// hints picks the footer row: the screen's own hints when it provides
// them, otherwise stock navigation hints for its stack position.
func (m model) hints() []layout.KeyHint {
	if hp, ok := m.active().(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	if len(m.stack) > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.active().Title(), m.width)
	footer := layout.RenderFooter(m.hints(), m.width)

	body := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if body < 0 {
		body = 0
	}
	content := m.active().View(m.width, body)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(newModel(opts)).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
