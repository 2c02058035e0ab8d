package pathmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
	"github.com/Yashshokeen-11/ALP/internal/review"
	"github.com/Yashshokeen-11/ALP/internal/screen"
	"github.com/Yashshokeen-11/ALP/internal/ui/components"
	"github.com/Yashshokeen-11/ALP/internal/ui/layout"
	"github.com/Yashshokeen-11/ALP/internal/ui/theme"
)

type prereqEntry struct {
	concept   curriculum.Concept
	score     float64
	satisfied bool
}

// ConceptDetailScreen shows one concept with its prerequisites and the
// learner's standing on each.
type ConceptDetailScreen struct {
	concept   curriculum.Concept
	subject   string
	state     eligibility
	score     float64
	threshold float64
	prereqs   []prereqEntry
	unlocks   []curriculum.Concept
	review    *review.State
}

var _ screen.Screen = (*ConceptDetailScreen)(nil)
var _ screen.KeyHintProvider = (*ConceptDetailScreen)(nil)

// newDetail assembles the detail screen for a concept from the map's
// loaded graphs and scores.
func (s *MapScreen) newDetail(subject string, c curriculum.Concept) *ConceptDetailScreen {
	d := &ConceptDetailScreen{
		concept:   c,
		subject:   subject,
		state:     s.eligibilityOf(subject, c.ID),
		score:     s.scores[c.ID],
		threshold: s.deps.Threshold,
	}

	g := s.graphs[subject]
	if g != nil {
		for _, id := range g.Prerequisites(c.ID) {
			pc, ok := g.Concept(id)
			if !ok {
				continue
			}
			d.prereqs = append(d.prereqs, prereqEntry{
				concept:   pc,
				score:     s.scores[id],
				satisfied: s.scores[id] >= s.deps.Threshold,
			})
		}
		for _, id := range g.Dependents(c.ID) {
			if dc, ok := g.Concept(id); ok {
				d.unlocks = append(d.unlocks, dc)
			}
		}
	}

	if st, ok := s.reviews[c.ID]; ok {
		d.review = &st
	}

	return d
}

func (d *ConceptDetailScreen) Init() tea.Cmd { return nil }
func (d *ConceptDetailScreen) Title() string { return d.concept.Title }

func (d *ConceptDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *ConceptDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *ConceptDetailScreen) View(width, height int) string {
	c := d.concept
	contentWidth := width - 8
	if contentWidth > 70 {
		contentWidth = 70
	}

	var b strings.Builder

	// Concept title + state.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", d.state.Icon(), c.Title)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s", d.state.Label())))
	b.WriteString("\n\n")

	// Mastery bar.
	bar := components.NewMasteryBar(d.score, d.threshold, contentWidth-2)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	// Metadata.
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	b.WriteString(dimStyle.Render("  Subject:     ") + valStyle.Render(d.subject) + "\n")
	b.WriteString(dimStyle.Render("  Difficulty:  ") + valStyle.Render(fmt.Sprintf("%.1f", c.Difficulty)) + "\n")
	b.WriteString(dimStyle.Render("  Est. time:   ") + valStyle.Render(fmt.Sprintf("%d min", c.EstimatedMins)) + "\n")
	if d.review != nil {
		b.WriteString(dimStyle.Render("  Review:      ") + valStyle.Render(d.reviewLine()) + "\n")
	}
	b.WriteString("\n")

	// Prerequisites.
	if len(d.prereqs) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Prerequisites"))
		b.WriteString("\n")
		for _, p := range d.prereqs {
			icon := "○"
			style := dimStyle
			if p.satisfied {
				icon = "●"
				style = lipgloss.NewStyle().Foreground(theme.Success)
			}
			b.WriteString(style.Render(fmt.Sprintf("  %s %s  %3.0f%%", icon, p.concept.Title, p.score*100)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Dependents (what this concept unlocks).
	if len(d.unlocks) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Unlocks"))
		b.WriteString("\n")
		for _, u := range d.unlocks {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  → %s", u.Title)))
			b.WriteString("\n")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}

// reviewLine summarizes the review schedule for the metadata block.
func (d *ConceptDetailScreen) reviewLine() string {
	now := nowFn()
	switch d.review.Status(now) {
	case review.StatusGraduated:
		return "graduated"
	case review.StatusOverdue:
		return fmt.Sprintf("overdue by %.0f day(s), stage %d", d.review.OverdueDays(now), d.review.Stage)
	case review.StatusDue:
		return fmt.Sprintf("due now, stage %d", d.review.Stage)
	default:
		return fmt.Sprintf("due in %d day(s), stage %d", d.review.DaysUntil(now), d.review.Stage)
	}
}
