package assessments

import (
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

// ListScreen shows all assessments and starts attempts.
type ListScreen struct {
	store       *progress.Store
	userID      string
	assessments []content.Assessment
	selected    int
	errMsg      string
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates the assessment list screen.
func New(repo *content.Repository, store *progress.Store, userID string) *ListScreen {
	return &ListScreen{
		store:       store,
		userID:      userID,
		assessments: repo.ListAssessments(),
	}
}

func (s *ListScreen) Init() tea.Cmd {
	return nil
}

func (s *ListScreen) Title() string {
	return "Assessments"
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
		if s.selected < len(s.assessments)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(s.assessments) {
			attempt, err := newAttempt(s.assessments[s.selected], s.store, s.userID)
			if err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: attempt}
			}
		}
	}
	return s, nil
}

func (s *ListScreen) View(width, height int) string {
	if len(s.assessments) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No assessments in the content pack.")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).
			Render("  "+s.errMsg) + "\n\n")
	}

	for i, a := range s.assessments {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		limit := "untimed"
		if a.TimeLimitSec > 0 {
			limit = fmt.Sprintf("%d min", a.TimeLimitSec/60)
		}
		line := fmt.Sprintf("%s%-34s %2d questions  pass %d  %s",
			prefix, a.Title, len(a.Questions), a.PassingScore, limit)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i == s.selected {
			desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(a.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
			b.WriteString("\n")
		}
	}

	return b.String()
}
