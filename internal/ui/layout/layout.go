// Package layout renders the chrome shared by every screen: the header
// bar, the footer key hints, and the frame that stacks them around the
// screen content.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Yashshokeen-11/ALP/internal/ui/theme"
)

// Smallest terminal the path map stays readable in.
const (
	MinWidth  = 80
	MinHeight = 24
)

const brand = "  ALP"

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the window with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf(
		"Terminal too small\n\nALP needs at least %d x %d\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height,
	)
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Align(lipgloss.Center).
		Width(width).
		Height(height).
		Render(msg)
}

// bar wraps header or footer content in the shared bordered box.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader draws the top bar: app name on the left, the active
// screen title centered over the full width.
func RenderHeader(title string, width int) string {
	name := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(brand)

	screen := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	// The border eats two columns on each side.
	inner := width - 4
	if inner < 0 {
		inner = 0
	}

	// Center the title relative to the whole bar, not to what is left
	// after the name.
	pre := (inner-lipgloss.Width(screen))/2 - lipgloss.Width(name)
	if pre < 1 {
		pre = 1
	}
	post := inner - lipgloss.Width(name) - pre - lipgloss.Width(screen)
	if post < 1 {
		post = 1
	}

	return bar(name+strings.Repeat(" ", pre)+screen+strings.Repeat(" ", post), width)
}

// RenderFooter draws the bottom bar listing the given key hints.
func RenderFooter(hints []KeyHint, width int) string {
	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key))
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return bar(b.String(), width)
}

// RenderFrame stacks header, content, and footer into one view, giving
// the content whatever height the bars leave over.
func RenderFrame(header, content, footer string, width, height int) string {
	body := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if body < 0 {
		body = 0
	}
	middle := lipgloss.NewStyle().
		Width(width).
		Height(body).
		Render(content)
	return header + "\n" + middle + "\n" + footer
}
