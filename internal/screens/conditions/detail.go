package conditions

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/progress"
	"github.com/nkapoor/emcmd/internal/router"
	"github.com/nkapoor/emcmd/internal/screen"
	"github.com/nkapoor/emcmd/internal/ui/layout"
	"github.com/nkapoor/emcmd/internal/ui/theme"
)

// detailScreen renders one condition's full reference entry with a
// scrollable body. Opening the screen marks the condition studied.
type detailScreen struct {
	cond   content.Condition
	store  *progress.Store
	userID string
	offset int
}

var _ screen.Screen = (*detailScreen)(nil)
var _ screen.KeyHintProvider = (*detailScreen)(nil)

func newDetail(cond content.Condition, store *progress.Store, userID string) *detailScreen {
	return &detailScreen{cond: cond, store: store, userID: userID}
}

func (s *detailScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.store != nil {
			_, _ = s.store.RecordConditionStudied(context.Background(), s.userID, s.cond.ID)
		}
		return nil
	}
}

func (s *detailScreen) Title() string {
	return s.cond.Name
}

func (s *detailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *detailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		}
	}
	return s, nil
}

func (s *detailScreen) View(width, height int) string {
	lines := s.renderLines(width)

	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}

	end := s.offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.offset:end], "\n")
}

func (s *detailScreen) renderLines(width int) []string {
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	critical := lipgloss.NewStyle().Foreground(theme.Critical).Bold(true)

	var lines []string
	add := func(s string) { lines = append(lines, "  "+s) }

	add("")
	add(body.Render(s.cond.Description))
	add("")

	add(heading.Render("INITIAL STABILIZATION"))
	for i, step := range s.cond.Stabilization {
		add(body.Render(fmt.Sprintf("%d. %s", i+1, step.Step)) +
			dim.Render(fmt.Sprintf("  [%s, %s]", step.Priority, step.Timing)))
		if step.Detail != "" {
			add(dim.Render("   " + step.Detail))
		}
	}
	add("")

	add(heading.Render("INITIAL WORKUP"))
	for _, t := range s.cond.InitialTests {
		add(body.Render("• "+t.Test) + dim.Render("  ("+t.Priority+")"))
		add(dim.Render("  " + t.Reasoning))
	}
	add("")

	add(heading.Render("CRITICAL INTERVENTIONS"))
	for _, iv := range s.cond.CriticalInterventions {
		name := body.Render("• " + iv.Intervention)
		if iv.Critical {
			name = critical.Render("• " + iv.Intervention)
		}
		add(name + dim.Render("  ["+iv.Timing+"]"))
		add(dim.Render("  Indication: " + iv.Indication))
		if len(iv.Contraindications) > 0 {
			add(dim.Render("  Contraindicated: " + strings.Join(iv.Contraindications, "; ")))
		}
	}
	add("")

	add(heading.Render("RED FLAGS"))
	for _, rf := range s.cond.RedFlags {
		add(critical.Render("⚑ "+rf.Flag) + dim.Render("  ("+rf.Severity+")"))
		add(dim.Render("  " + rf.Significance))
		add(dim.Render("  → " + rf.Action))
	}
	add("")

	add(heading.Render("ESCALATION"))
	for _, e := range s.cond.Escalation {
		add(body.Render("• "+e.Trigger) + dim.Render(fmt.Sprintf("  → %s (%s)", e.Destination, e.Urgency)))
	}
	add("")

	add(heading.Render("PITFALLS"))
	for _, p := range s.cond.Pitfalls {
		add(body.Render("✗ " + p))
	}
	add("")

	_ = width
	return lines
}
