package cases

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nkapoor/emcmd/internal/casesim"
	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/debrief"
	"github.com/nkapoor/emcmd/internal/progress"
	"github.com/nkapoor/emcmd/internal/router"
	"github.com/nkapoor/emcmd/internal/screen"
	"github.com/nkapoor/emcmd/internal/ui/components"
	"github.com/nkapoor/emcmd/internal/ui/layout"
)

type simPhase int

const (
	phaseBriefing simPhase = iota
	phaseActions
	phaseResults
)

type progressSaveFailedMsg struct {
	err error
}

type debriefPollMsg time.Time

func debriefPollCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return debriefPollMsg(t)
	})
}

// simulator runs one case attempt through briefing, action selection,
// and results. The debrief is generated in the background once the
// case is submitted and folded into the results view when ready.
type simulator struct {
	session    *casesim.Session
	store      *progress.Store
	debriefSvc *debrief.Service
	userID     string

	phase  simPhase
	choice components.ChoiceList
	result *casesim.Result

	debriefWaiting bool
	debriefResult  *debrief.Debrief
	debriefErr     error

	recorded bool
	offset   int
	errMsg   string
}

var _ screen.Screen = (*simulator)(nil)
var _ screen.KeyHintProvider = (*simulator)(nil)

func newSimulator(scenario content.CaseScenario, store *progress.Store, debriefSvc *debrief.Service, userID string) (*simulator, error) {
	session, err := casesim.New(scenario)
	if err != nil {
		return nil, err
	}
	s := &simulator{
		session:    session,
		store:      store,
		debriefSvc: debriefSvc,
		userID:     userID,
	}
	s.syncChoice()
	return s, nil
}

func (s *simulator) Init() tea.Cmd {
	return nil
}

func (s *simulator) Title() string {
	return s.session.Scenario().Title
}

func (s *simulator) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseBriefing:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseActions:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Action"},
			{Key: "Enter", Description: "Toggle"},
			{Key: "B", Description: "Briefing"},
			{Key: "S", Description: "Submit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Done"},
		}
	}
}

// syncChoice rebuilds the action list from the session's selection state.
func (s *simulator) syncChoice() {
	actions := s.session.Actions()
	options := make([]components.ChoiceOption, 0, len(actions))
	for _, a := range actions {
		options = append(options, components.ChoiceOption{ID: a.ID, Label: a.Action})
	}
	cl := components.NewChoiceList(options, true)
	cl.Cursor = s.choice.Cursor
	if cl.Cursor >= len(options) {
		cl.Cursor = 0
	}
	for _, a := range actions {
		if s.session.IsSelected(a.ID) {
			cl.Chosen[a.ID] = true
		}
	}
	s.choice = cl
}

func (s *simulator) submit() tea.Cmd {
	res, err := s.session.Submit()
	if err != nil {
		return nil
	}
	s.result = &res
	s.phase = phaseResults
	s.offset = 0

	var cmds []tea.Cmd

	if !s.recorded {
		s.recorded = true
		cmds = append(cmds, func() tea.Msg {
			if s.store != nil {
				if _, err := s.store.RecordCaseCompletion(context.Background(), s.userID, res.CaseID); err != nil {
					return progressSaveFailedMsg{err: err}
				}
			}
			return nil
		})
	}

	if s.debriefSvc != nil {
		s.debriefWaiting = true
		s.debriefResult = nil
		s.debriefErr = nil
		s.debriefSvc.Request(context.Background(), debrief.Input{
			Scenario: s.session.Scenario(),
			Result:   res,
		})
		cmds = append(cmds, debriefPollCmd())
	}

	return tea.Batch(cmds...)
}

func (s *simulator) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case debriefPollMsg:
		if !s.debriefWaiting {
			return s, nil
		}
		if err := s.debriefSvc.Err(); err != nil {
			s.debriefErr = err
			s.debriefWaiting = false
			return s, nil
		}
		if d, ok := s.debriefSvc.Consume(); ok {
			s.debriefResult = d
			s.debriefWaiting = false
			return s, nil
		}
		return s, debriefPollCmd()

	case progressSaveFailedMsg:
		s.errMsg = fmt.Sprintf("progress not saved: %v", msg.err)
		return s, nil

	case tea.KeyMsg:
		switch s.phase {
		case phaseBriefing:
			return s.updateBriefing(msg)
		case phaseActions:
			return s.updateActions(msg)
		default:
			return s.updateResults(msg)
		}
	}
	return s, nil
}

func (s *simulator) updateBriefing(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter", "space":
		s.phase = phaseActions
		s.offset = 0
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	}
	return s, nil
}

func (s *simulator) updateActions(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "b":
		s.phase = phaseBriefing
		s.offset = 0
		return s, nil
	case "enter", "space":
		if opt, ok := s.choice.Highlighted(); ok {
			if err := s.session.ToggleAction(opt.ID); err == nil {
				s.syncChoice()
			}
		}
		return s, nil
	case "s":
		return s, s.submit()
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

func (s *simulator) updateResults(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "r":
		s.session.Reset()
		s.result = nil
		s.debriefWaiting = false
		s.debriefResult = nil
		s.debriefErr = nil
		s.recorded = false
		s.phase = phaseActions
		s.offset = 0
		s.syncChoice()
		return s, nil
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	}
	return s, nil
}
