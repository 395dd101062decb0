package redflags

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

// Screen browses red-flag flashcards one symptom at a time. The front
// of a card shows the symptom; flipping reveals the red flags and what
// to do about them. Flipping a card counts it as learned.
type Screen struct {
	store   *progress.Store
	userID  string
	cards   []content.RedFlagCard
	current int
	flipped bool
	learned map[string]bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the red-flag flashcard screen.
func New(repo *content.Repository, store *progress.Store, userID string) *Screen {
	return &Screen{
		store:   store,
		userID:  userID,
		cards:   repo.ListRedFlags(),
		learned: make(map[string]bool),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Red Flags"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Card"},
		{Key: "Space", Description: "Flip"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h":
		if s.current > 0 {
			s.current--
			s.flipped = false
		}
	case "right", "l":
		if s.current < len(s.cards)-1 {
			s.current++
			s.flipped = false
		}
	case "space", "enter":
		if len(s.cards) == 0 {
			return s, nil
		}
		s.flipped = !s.flipped
		card := s.cards[s.current]
		if s.flipped && !s.learned[card.ID] {
			s.learned[card.ID] = true
			n := len(s.learned)
			return s, func() tea.Msg {
				if s.store != nil {
					_, _ = s.store.RecordRedFlagsLearned(context.Background(), s.userID, n)
				}
				return nil
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if len(s.cards) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No red-flag cards in the content pack.")
	}

	card := s.cards[s.current]

	var body string
	if s.flipped {
		body = s.renderBack(card)
	} else {
		body = s.renderFront(card)
	}

	counter := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Card %d of %d  ·  %d learned", s.current+1, len(s.cards), len(s.learned)))

	boxWidth := width - 20
	if boxWidth > 70 {
		boxWidth = 70
	}
	if boxWidth < 40 {
		boxWidth = 40
	}

	box := theme.Card.Width(boxWidth).Render(body)
	content := counter + "\n\n" + box

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *Screen) renderFront(card content.RedFlagCard) string {
	symptom := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(card.Symptom)
	desc := lipgloss.NewStyle().Foreground(theme.Text).Render(card.Description)
	hint := theme.Hint.Render("Space to reveal the red flags")
	return symptom + "\n\n" + desc + "\n\n" + hint
}

func (s *Screen) renderBack(card content.RedFlagCard) string {
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	critical := lipgloss.NewStyle().Foreground(theme.Critical).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(card.Symptom))
	b.WriteString("\n\n")

	b.WriteString(heading.Render("RED FLAGS") + "\n")
	for _, f := range card.RedFlags {
		b.WriteString(critical.Render("⚑ "+f) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(heading.Render("THINK OF") + "\n")
	b.WriteString(body.Render(strings.Join(card.Differentials, ", ")) + "\n\n")

	b.WriteString(heading.Render("IMMEDIATE ACTIONS") + "\n")
	for _, a := range card.ImmediateActions {
		b.WriteString(body.Render("• "+a) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(heading.Render("ESCALATE") + "\n")
	b.WriteString(dim.Render(card.Escalation))

	return b.String()
}
