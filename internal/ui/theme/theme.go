// Package theme holds the shared palette for the terminal UI. Screens
// compose their own lipgloss styles from these colors so the whole app
// reads consistently without a central style registry.
package theme

import (
	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#6366F1") // indigo, headings and the active concept
	Secondary = lipgloss.Color("#0EA5E9") // sky, section labels and in-progress mastery
	Accent    = lipgloss.Color("#F59E0B") // amber, due-review markers
	Success   = lipgloss.Color("#10B981") // emerald, mastered concepts
	Error     = lipgloss.Color("#EF4444") // red
	Text      = lipgloss.Color("#E2E8F0")
	TextDim   = lipgloss.Color("#64748B")
	BgCard    = lipgloss.Color("#0F172A") // header and footer fill
	Border    = lipgloss.Color("#1E293B")
)

// Mastery bar segments. The bar renders filled cells up to the current
// score, a green run once the threshold is reached, and empty cells after.
var (
	BarFilled  = lipgloss.NewStyle().Background(Secondary)
	BarReached = lipgloss.NewStyle().Background(Success)
	BarEmpty   = lipgloss.NewStyle().Background(Border)
)
