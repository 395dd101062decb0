package home

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
	"github.com/nkapoor/emcmd/internal/screens/assessments"
	"github.com/nkapoor/emcmd/internal/screens/cases"
	"github.com/nkapoor/emcmd/internal/screens/conditions"
	"github.com/nkapoor/emcmd/internal/screens/glossary"
	"github.com/nkapoor/emcmd/internal/screens/redflags"
	"github.com/nkapoor/emcmd/internal/ui/components"
	"github.com/nkapoor/emcmd/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu  components.Menu
	stats progress.Stats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The debrief service may be nil when no
// LLM provider is configured; case results then skip the debrief step.
func New(repo *content.Repository, store *progress.Store, debriefSvc *debrief.Service, userID string) *HomeScreen {
	var stats progress.Stats
	if store != nil {
		if p, err := store.Get(context.Background(), userID); err == nil {
			stats = p.Stats
		}
	}

	items := []components.MenuItem{
		{
			Label:       "CASE SIMULATIONS",
			Description: "Manage a simulated patient from door to disposition",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: cases.New(repo, store, debriefSvc, userID)}
				}
			},
		},
		{
			Label:       "ASSESSMENTS",
			Description: "Timed knowledge checks with pass thresholds",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: assessments.New(repo, store, userID)}
				}
			},
		},
		{
			Label:       "CONDITION REFERENCE",
			Description: "Stabilization, workup, and escalation by condition",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: conditions.New(repo, store, userID)}
				}
			},
		},
		{
			Label:       "RED FLAGS",
			Description: "Can't-miss presentations, one symptom at a time",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: redflags.New(repo, store, userID)}
				}
			},
		},
		{
			Label:       "GLOSSARY",
			Description: "Look up terms and abbreviations",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: glossary.New(repo)}
				}
			},
		},
		{
			Label:  "EXIT",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		stats: stats,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("EMERGENCY COMMAND")
	subtitle := theme.Subtitle.Width(width).Render("Emergency medicine, decision by decision")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, renderStatsBar(h.stats, width))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderStatsBar(stats progress.Stats, width int) string {
	parts := []string{
		fmt.Sprintf("Cases: %d", stats.TotalCasesCompleted),
		fmt.Sprintf("Avg score: %d", stats.AverageAssessmentScore),
		fmt.Sprintf("Red flags: %d", stats.RedFlagsLearned),
		fmt.Sprintf("Streak: %d day", stats.StudyStreak),
	}
	bar := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(strings.Join(parts, "   │   "))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}
