package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkapoor/emcmd/internal/ui/theme"
)

// ChoiceOption is a single selectable entry in a ChoiceList.
type ChoiceOption struct {
	ID    string
	Label string
}

// ChoiceList renders a list of options with a movable cursor. Selection
// state is owned by the caller: the list only tracks the cursor and
// renders markers from the Chosen set. Multi switches the markers from
// radio buttons to checkboxes.
type ChoiceList struct {
	Options []ChoiceOption
	Multi   bool
	Cursor  int

	Chosen map[string]bool

	// After submission the list renders each option against CorrectIDs
	// instead of the selection highlight.
	Revealed   bool
	CorrectIDs map[string]bool
}

// NewChoiceList creates a choice list over the given options.
func NewChoiceList(options []ChoiceOption, multi bool) ChoiceList {
	return ChoiceList{
		Options: options,
		Multi:   multi,
		Chosen:  map[string]bool{},
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. Toggling is left to the caller so
// selection rules stay in one place.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}

	return c, nil
}

// Highlighted returns the option under the cursor.
func (c ChoiceList) Highlighted() (ChoiceOption, bool) {
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return ChoiceOption{}, false
	}
	return c.Options[c.Cursor], true
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		marker := c.marker(opt.ID)
		prefix := "  "
		if i == c.Cursor && !c.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, marker, opt.Label)

		switch {
		case c.Revealed && c.CorrectIDs[opt.ID]:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case c.Revealed && c.Chosen[opt.ID]:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case c.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

func (c ChoiceList) marker(id string) string {
	if c.Multi {
		if c.Chosen[id] {
			return "[x]"
		}
		return "[ ]"
	}
	if c.Chosen[id] {
		return "(•)"
	}
	return "( )"
}
