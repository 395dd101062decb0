package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/nkapoor/emcmd/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput for filtering lists.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates a focused search input.
func NewSearchInput(placeholder string, charLimit int) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return SearchInput{Model: ti}
}

// Init returns the initial command.
func (s SearchInput) Init() tea.Cmd {
	return s.Model.Focus()
}

// Update handles messages.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the input with a search prompt.
func (s SearchInput) View() string {
	return theme.Body.Render("⌕ ") + s.Model.View()
}

// Value returns the current input value.
func (s SearchInput) Value() string {
	return s.Model.Value()
}
