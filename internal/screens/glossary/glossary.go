package glossary

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/router"
	"github.com/nkapoor/emcmd/internal/screen"
	"github.com/nkapoor/emcmd/internal/ui/components"
	"github.com/nkapoor/emcmd/internal/ui/layout"
	"github.com/nkapoor/emcmd/internal/ui/theme"
)

// Screen is a searchable glossary of terms.
type Screen struct {
	entries  []content.GlossaryEntry
	search   components.SearchInput
	filtered []content.GlossaryEntry
	selected int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the glossary screen.
func New(repo *content.Repository) *Screen {
	entries := repo.ListGlossary()
	return &Screen{
		entries:  entries,
		search:   components.NewSearchInput("Search terms...", 40),
		filtered: entries,
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.search.Init()
}

func (s *Screen) Title() string {
	return "Glossary"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Type", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.filtered)-1 {
				s.selected++
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.applyFilter()
	return s, cmd
}

func (s *Screen) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(s.search.Value()))
	if query == "" {
		s.filtered = s.entries
	} else {
		filtered := make([]content.GlossaryEntry, 0, len(s.entries))
		for _, e := range s.entries {
			if strings.Contains(strings.ToLower(e.Term), query) ||
				strings.Contains(strings.ToLower(e.Definition), query) {
				filtered = append(filtered, e)
			}
		}
		s.filtered = filtered
	}
	if s.selected >= len(s.filtered) {
		s.selected = len(s.filtered) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n  " + s.search.View() + "\n\n")

	if len(s.filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  No matching terms."))
		return b.String()
	}

	term := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	selectedTerm := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	def := lipgloss.NewStyle().Foreground(theme.TextDim)

	for i, e := range s.filtered {
		prefix := "  "
		style := term
		if i == s.selected {
			prefix = "> "
			style = selectedTerm
		}
		b.WriteString(prefix + style.Render(e.Term) + "\n")
		if i == s.selected {
			b.WriteString(def.Render("    "+e.Definition) + "\n")
		}
	}

	return b.String()
}
