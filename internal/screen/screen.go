package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Yashshokeen-11/ALP/internal/ui/layout"
)

// Screen is one full-frame view. The app keeps a stack of screens and
// forwards messages to the top one.
type Screen interface {
	// Init produces the command to run when the screen first appears.
	Init() tea.Cmd

	// Update reacts to a message. It returns the screen to keep on the
	// stack, which may be the receiver or a replacement.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body only. The app wraps it in header and footer.
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// PushMsg asks the app to push a screen onto the stack.
type PushMsg struct {
	Screen Screen
}

// PopMsg asks the app to pop the active screen off the stack.
type PopMsg struct{}
