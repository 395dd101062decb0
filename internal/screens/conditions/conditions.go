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

// ListScreen shows all reference conditions.
type ListScreen struct {
	repo       *content.Repository
	store      *progress.Store
	userID     string
	conditions []content.Condition
	studied    map[string]bool
	selected   int
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates the condition list screen.
func New(repo *content.Repository, store *progress.Store, userID string) *ListScreen {
	s := &ListScreen{
		repo:       repo,
		store:      store,
		userID:     userID,
		conditions: repo.ListConditions(),
		studied:    make(map[string]bool),
	}
	s.refreshStudied()
	return s
}

// refreshStudied rebuilds the studied set from the progress record. The
// record is cached in memory, so this is cheap enough to run whenever
// the list regains focus.
func (s *ListScreen) refreshStudied() {
	if s.store == nil {
		return
	}
	p, err := s.store.Get(context.Background(), s.userID)
	if err != nil {
		return
	}
	s.studied = make(map[string]bool, len(p.ConditionsStudied))
	for _, id := range p.ConditionsStudied {
		s.studied[id] = true
	}
}

func (s *ListScreen) Init() tea.Cmd {
	return nil
}

func (s *ListScreen) Title() string {
	return "Conditions"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
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
		if s.selected < len(s.conditions)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(s.conditions) {
			cond := s.conditions[s.selected]
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: newDetail(cond, s.store, s.userID)}
			}
		}
	}
	return s, nil
}

func (s *ListScreen) View(width, height int) string {
	s.refreshStudied()

	if len(s.conditions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No conditions in the content pack.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, c := range s.conditions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		mark := " "
		if s.studied[c.ID] {
			mark = "✓"
		}

		line := fmt.Sprintf("%s%s %-28s %s", prefix, mark, c.Name, c.Category)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
