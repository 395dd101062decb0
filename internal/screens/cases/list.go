package cases

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/debrief"
	"github.com/nkapoor/emcmd/internal/progress"
	"github.com/nkapoor/emcmd/internal/router"
	"github.com/nkapoor/emcmd/internal/screen"
	"github.com/nkapoor/emcmd/internal/ui/layout"
	"github.com/nkapoor/emcmd/internal/ui/theme"
)

// ListScreen shows available case simulations.
type ListScreen struct {
	repo       *content.Repository
	store      *progress.Store
	debriefSvc *debrief.Service
	userID     string
	scenarios  []content.CaseScenario
	completed  map[string]bool
	selected   int
	errMsg     string
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates the case list screen.
func New(repo *content.Repository, store *progress.Store, debriefSvc *debrief.Service, userID string) *ListScreen {
	s := &ListScreen{
		repo:       repo,
		store:      store,
		debriefSvc: debriefSvc,
		userID:     userID,
		scenarios:  repo.ListCaseScenarios(),
		completed:  make(map[string]bool),
	}
	s.refreshCompleted()
	return s
}

// refreshCompleted rebuilds the completed set from the progress record.
// The record is cached in memory, so this is cheap enough to run
// whenever the list regains focus.
func (s *ListScreen) refreshCompleted() {
	if s.store == nil {
		return
	}
	p, err := s.store.Get(context.Background(), s.userID)
	if err != nil {
		return
	}
	s.completed = make(map[string]bool, len(p.CompletedCases))
	for _, id := range p.CompletedCases {
		s.completed[id] = true
	}
}

func (s *ListScreen) Init() tea.Cmd {
	return nil
}

func (s *ListScreen) Title() string {
	return "Case Simulations"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.scenarios)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(s.scenarios) {
			sim, err := newSimulator(s.scenarios[s.selected], s.store, s.debriefSvc, s.userID)
			if err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: sim}
			}
		}
	}
	return s, nil
}

func (s *ListScreen) View(width, height int) string {
	s.refreshCompleted()

	if len(s.scenarios) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No case scenarios in the content pack.")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).
			Render("  "+s.errMsg) + "\n\n")
	}

	for i, c := range s.scenarios {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		mark := " "
		if s.completed[c.ID] {
			mark = "✓"
		}

		line := fmt.Sprintf("%s%s %-34s %s", prefix, mark, c.Title, c.Difficulty)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i == s.selected {
			desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Presentation)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
			b.WriteString("\n")
		}
	}

	return b.String()
}
