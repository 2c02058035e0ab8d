package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Yashshokeen-11/ALP/internal/ui/theme"
)

// IDInput wraps bubbles/textinput for entering identifiers such as
// learner IDs. Keystrokes outside the identifier charset are dropped
// before they reach the underlying model.
type IDInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewIDInput returns a focused input with the given placeholder.
func NewIDInput(placeholder string, charLimit int) IDInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return IDInput{Model: ti}
}

func (t IDInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t IDInput) Update(msg tea.Msg) (IDInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		// Single-rune keys are character input; longer strings are
		// named keys like "enter" and pass through untouched.
		if key := kmsg.String(); len(key) == 1 && !isIDByte(key[0]) {
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input, with a pass or fail mark once submitted.
func (t IDInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	if t.valid {
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view + " " + mark
}

// Value returns the input with surrounding space removed.
func (t IDInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Submit records the validation verdict for the current value.
func (t *IDInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

func isIDByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '-' || b == '_' || b == '.' || b == '@':
		return true
	}
	return false
}
