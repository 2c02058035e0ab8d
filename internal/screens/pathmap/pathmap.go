package pathmap

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
	"github.com/Yashshokeen-11/ALP/internal/review"
	"github.com/Yashshokeen-11/ALP/internal/screen"
	"github.com/Yashshokeen-11/ALP/internal/store"
	"github.com/Yashshokeen-11/ALP/internal/ui/components"
	"github.com/Yashshokeen-11/ALP/internal/ui/layout"
	"github.com/Yashshokeen-11/ALP/internal/ui/theme"
)

// nowFn is swapped out in tests.
var nowFn = time.Now

type rowKind int

const (
	rowSubjectHeader rowKind = iota
	rowConcept
)

type row struct {
	kind    rowKind
	subject string
	concept *curriculum.Concept
}

// eligibility is a concept's standing for the active learner: already
// proficient, open to study, or blocked behind an unmet prerequisite.
type eligibility int

const (
	eligibilityBlocked eligibility = iota
	eligibilityReady
	eligibilityMastered
)

// Icon returns the display icon for an eligibility.
func (e eligibility) Icon() string {
	switch e {
	case eligibilityBlocked:
		return "🔒"
	case eligibilityReady:
		return "🔓"
	case eligibilityMastered:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for an eligibility.
func (e eligibility) Label() string {
	switch e {
	case eligibilityBlocked:
		return "Blocked"
	case eligibilityReady:
		return "Ready"
	case eligibilityMastered:
		return "Mastered"
	default:
		return "Unknown"
	}
}

// Deps wires the map screen to the catalog and the learner record.
type Deps struct {
	Curriculum store.CurriculumRepo
	Mastery    store.MasteryRepo
	Review     store.ReviewRepo
	LearnerID  string
	Threshold  float64
}

// MapScreen displays the concept catalog organized by subject, scored
// against the active learner's mastery record.
type MapScreen struct {
	deps Deps

	rows         []row
	graphs       map[string]*curriculum.Graph
	scores       map[string]float64
	reviews      map[string]review.State
	cursor       int
	scrollOffset int

	switching bool
	input     components.IDInput

	loadErr error
}

var _ screen.Screen = (*MapScreen)(nil)

// New creates a new MapScreen and loads the catalog.
func New(d Deps) *MapScreen {
	s := &MapScreen{deps: d}
	s.load()
	return s
}

func (s *MapScreen) Init() tea.Cmd {
	return nil
}

// load rebuilds the rows from the catalog and reloads the learner.
func (s *MapScreen) load() {
	ctx := context.Background()
	s.rows = nil
	s.graphs = make(map[string]*curriculum.Graph)
	s.loadErr = nil

	subjects, err := s.deps.Curriculum.Subjects(ctx)
	if err != nil {
		s.loadErr = err
		return
	}

	for _, subj := range subjects {
		concepts, err := s.deps.Curriculum.Concepts(ctx, subj)
		if err != nil {
			s.loadErr = err
			return
		}
		edges, err := s.deps.Curriculum.Edges(ctx, subj)
		if err != nil {
			s.loadErr = err
			return
		}

		g := curriculum.NewGraph(concepts, edges)
		s.graphs[subj] = g

		// Prerequisite order when the subject is acyclic, catalog
		// order when a cycle defeats the sort.
		ordered, ok := g.TopologicalOrder()
		if !ok {
			ordered = g.Concepts()
		}

		s.rows = append(s.rows, row{kind: rowSubjectHeader, subject: subj})
		for i := range ordered {
			s.rows = append(s.rows, row{kind: rowConcept, subject: subj, concept: &ordered[i]})
		}
	}

	s.loadLearner()

	s.cursor = 0
	s.scrollOffset = 0
	for i, r := range s.rows {
		if r.kind == rowConcept {
			s.cursor = i
			break
		}
	}
}

// loadLearner reloads mastery and review state for the active learner.
func (s *MapScreen) loadLearner() {
	ctx := context.Background()

	scores, err := s.deps.Mastery.ForLearner(ctx, s.deps.LearnerID, nil)
	if err != nil {
		s.loadErr = err
		return
	}
	s.scores = scores

	states, err := s.deps.Review.ForLearner(ctx, s.deps.LearnerID)
	if err != nil {
		s.loadErr = err
		return
	}
	s.reviews = make(map[string]review.State, len(states))
	for _, st := range states {
		s.reviews[st.ConceptID] = st
	}
}

func (s *MapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.switching {
		return s.updateSwitching(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextSubject()
		case "shift+tab":
			s.prevSubject()
		case "enter":
			return s, s.selectConcept()
		case "l":
			s.switching = true
			s.input = components.NewIDInput(s.deps.LearnerID, 64)
			return s, s.input.Init()
		case "r":
			s.load()
		case "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

// updateSwitching handles keys while the learner input is open.
func (s *MapScreen) updateSwitching(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.switching = false
			return s, nil
		case "enter":
			id := s.input.Value()
			if id == "" {
				s.input.Submit(false)
				return s, nil
			}
			s.deps.LearnerID = id
			s.loadLearner()
			s.switching = false
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *MapScreen) View(width, height int) string {
	if s.loadErr != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).
				Render(fmt.Sprintf("Failed to load catalog: %v", s.loadErr)))
	}
	if len(s.rows) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("No subjects in the catalog. Run `alp import` first."))
	}
	if s.switching {
		return s.viewSwitching(width, height)
	}

	statusLines := 2
	listHeight := height - statusLines
	s.adjustScroll(listHeight)

	var lines []string
	lines = append(lines, s.renderStatus(width), "")

	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= listHeight {
			break
		}

		switch r.kind {
		case rowSubjectHeader:
			lines = append(lines, s.renderSubjectHeader(r.subject, width))
		case rowConcept:
			lines = append(lines, s.renderConceptRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

// viewSwitching renders the learner switch prompt.
func (s *MapScreen) viewSwitching(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Switch learner"))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Enter to switch · Esc to cancel"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *MapScreen) Title() string {
	return "Path Map"
}

// KeyHints returns the key binding hints for the footer.
func (s *MapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Subject"},
		{Key: "Enter", Description: "Details"},
		{Key: "l", Description: "Learner"},
		{Key: "q", Description: "Quit"},
	}
}

// renderStatus renders the learner line above the list.
func (s *MapScreen) renderStatus(width int) string {
	proficient := 0
	total := 0
	for _, r := range s.rows {
		if r.kind != rowConcept {
			continue
		}
		total++
		if s.scores[r.concept.ID] >= s.deps.Threshold {
			proficient++
		}
	}

	status := fmt.Sprintf("  Learner %s · threshold %.2f · %d/%d proficient",
		s.deps.LearnerID, s.deps.Threshold, proficient, total)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Render(status)
}

// moveCursor moves the cursor by delta, skipping subject headers.
func (s *MapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowConcept {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextSubject jumps the cursor to the first concept in the next subject.
func (s *MapScreen) nextSubject() {
	current := s.rows[s.cursor].subject
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowConcept && s.rows[i].subject != current {
			s.cursor = i
			return
		}
	}
}

// prevSubject jumps the cursor to the first concept in the previous subject.
func (s *MapScreen) prevSubject() {
	current := s.rows[s.cursor].subject

	prevStart := -1
	var prev string
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowConcept && s.rows[i].subject != current {
			prev = s.rows[i].subject
			prevStart = i
			break
		}
	}
	if prevStart < 0 {
		return
	}

	for i := prevStart; i >= 0; i-- {
		if s.rows[i].kind != rowConcept || s.rows[i].subject != prev {
			s.cursor = i + 1
			return
		}
	}
	s.cursor = 0
	if s.rows[0].kind != rowConcept {
		s.moveCursor(1)
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *MapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the subject header above the cursor if possible
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowSubjectHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectConcept handles enter on the current concept.
func (s *MapScreen) selectConcept() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowConcept || r.concept == nil {
		return nil
	}

	detail := s.newDetail(r.subject, *r.concept)
	return func() tea.Msg {
		return screen.PushMsg{Screen: detail}
	}
}

// eligibilityOf computes the display eligibility for a concept.
func (s *MapScreen) eligibilityOf(subject, conceptID string) eligibility {
	if s.scores[conceptID] >= s.deps.Threshold {
		return eligibilityMastered
	}
	g := s.graphs[subject]
	if g == nil {
		return eligibilityReady
	}
	for id := range g.Closure(conceptID) {
		if s.scores[id] < s.deps.Threshold {
			return eligibilityBlocked
		}
	}
	return eligibilityReady
}

// renderSubjectHeader renders a subject section header.
func (s *MapScreen) renderSubjectHeader(subject string, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(subject))
}

// renderConceptRow renders a single concept row.
func (s *MapScreen) renderConceptRow(r row, selected bool, width int) string {
	if r.concept == nil {
		return ""
	}

	elig := s.eligibilityOf(r.subject, r.concept.ID)
	icon := elig.Icon()
	label := elig.Label()
	score := s.scores[r.concept.ID]
	pct := fmt.Sprintf("%4.0f%%", score*100)

	due := "      "
	if st, ok := s.reviews[r.concept.ID]; ok {
		switch st.Status(nowFn()) {
		case review.StatusDue, review.StatusOverdue:
			due = lipgloss.NewStyle().Foreground(theme.Accent).Render("  due!")
		}
	}

	// Calculate column widths
	padding := 4 // left indent
	iconWidth := 3
	pctWidth := 7
	labelWidth := 10
	dueWidth := 6
	spacing := 4
	titleWidth := width - padding - iconWidth - pctWidth - labelWidth - dueWidth - spacing
	if titleWidth < 10 {
		titleWidth = 10
	}

	title := r.concept.Title
	if len(title) > titleWidth {
		title = title[:titleWidth-1] + "…"
	}

	var titleStyle, pctStyle, labelStyle lipgloss.Style
	if selected {
		titleStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		pctStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		switch elig {
		case eligibilityMastered:
			titleStyle = lipgloss.NewStyle().Foreground(theme.Success)
			pctStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
		case eligibilityReady:
			titleStyle = lipgloss.NewStyle().Foreground(theme.Text)
			pctStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			titleStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			pctStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	titlePadded := fmt.Sprintf("%-*s", titleWidth, title)
	return fmt.Sprintf("  %s%s %s  %s  %s%s",
		cursor,
		icon,
		titleStyle.Render(titlePadded),
		pctStyle.Render(pct),
		labelStyle.Render(fmt.Sprintf("%9s", label)),
		due,
	)
}
