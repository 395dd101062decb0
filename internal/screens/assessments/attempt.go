package assessments

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/progress"
	"github.com/nkapoor/emcmd/internal/quiz"
	"github.com/nkapoor/emcmd/internal/router"
	"github.com/nkapoor/emcmd/internal/scoring"
	"github.com/nkapoor/emcmd/internal/screen"
	"github.com/nkapoor/emcmd/internal/ui/components"
	"github.com/nkapoor/emcmd/internal/ui/layout"
	"github.com/nkapoor/emcmd/internal/ui/theme"
)

type timerTickMsg time.Time

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// attemptScreen drives one quiz attempt. The countdown runs inside the
// session; the screen polls it once a second so a timer expiry is
// picked up even without keyboard input.
type attemptScreen struct {
	session *quiz.Session
	store   *progress.Store
	userID  string

	choice   components.ChoiceList
	result   *quiz.Result
	recorded bool
	offset   int
	errMsg   string
}

var _ screen.Screen = (*attemptScreen)(nil)
var _ screen.KeyHintProvider = (*attemptScreen)(nil)

func newAttempt(assessment content.Assessment, store *progress.Store, userID string) (*attemptScreen, error) {
	session, err := quiz.New(assessment)
	if err != nil {
		return nil, err
	}
	s := &attemptScreen{
		session: session,
		store:   store,
		userID:  userID,
	}
	s.syncChoice()
	return s, nil
}

func (s *attemptScreen) Init() tea.Cmd {
	if s.session.Assessment().TimeLimitSec > 0 {
		return tickCmd()
	}
	return nil
}

func (s *attemptScreen) Title() string {
	return s.session.Assessment().Title
}

func (s *attemptScreen) KeyHints() []layout.KeyHint {
	if s.result != nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Select"},
		{Key: "S", Description: "Submit"},
	}
}

// syncChoice rebuilds the option list for the current question from the
// session's selection state.
func (s *attemptScreen) syncChoice() {
	q := s.session.CurrentQuestion()
	options := make([]components.ChoiceOption, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, components.ChoiceOption{ID: o.ID, Label: o.Text})
	}
	cl := components.NewChoiceList(options, q.IsMultiSelect())
	for _, id := range s.session.Selected(s.session.CurrentIndex()) {
		cl.Chosen[id] = true
	}
	s.choice = cl
}

func (s *attemptScreen) finish(res quiz.Result) tea.Cmd {
	s.result = &res
	if s.recorded {
		return nil
	}
	s.recorded = true
	if s.store == nil {
		return nil
	}
	return func() tea.Msg {
		_, err := s.store.RecordAssessmentScore(context.Background(), s.userID, progress.Attempt{
			AssessmentID: res.AssessmentID,
			Score:        res.Score,
			TimeTaken:    res.TimeTaken,
		})
		if err != nil {
			return progressSaveFailedMsg{err: err}
		}
		return nil
	}
}

type progressSaveFailedMsg struct {
	err error
}

func (s *attemptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.result != nil {
			return s, nil
		}
		// The session submits itself on expiry; pick up the result.
		if s.session.Completed() {
			if res := s.session.Result(); res != nil {
				return s, s.finish(*res)
			}
		}
		return s, tickCmd()

	case progressSaveFailedMsg:
		s.errMsg = fmt.Sprintf("progress not saved: %v", msg.err)
		return s, nil

	case tea.KeyMsg:
		if s.result != nil {
			return s.updateResults(msg)
		}
		return s.updateAnswering(msg)
	}
	return s, nil
}

func (s *attemptScreen) updateAnswering(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.session.Close()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h":
		if s.session.Prev() {
			s.syncChoice()
		}
		return s, nil
	case "right", "l":
		if s.session.Next() {
			s.syncChoice()
		}
		return s, nil
	case "enter", "space":
		if opt, ok := s.choice.Highlighted(); ok {
			if err := s.session.SelectAnswer(opt.ID); err == nil {
				s.syncChoice()
			}
		}
		return s, nil
	case "s":
		res, err := s.session.Submit()
		if err != nil {
			return s, nil
		}
		return s, s.finish(res)
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

func (s *attemptScreen) updateResults(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	}
	return s, nil
}

func (s *attemptScreen) View(width, height int) string {
	if s.result != nil {
		return s.viewResults(width, height)
	}
	return s.viewAnswering(width, height)
}

func (s *attemptScreen) viewAnswering(width, height int) string {
	assessment := s.session.Assessment()
	q := s.session.CurrentQuestion()
	idx := s.session.CurrentIndex()

	var b strings.Builder
	b.WriteString("\n")

	status := fmt.Sprintf("  Question %d of %d  ·  %d answered",
		idx+1, len(assessment.Questions), s.session.AnsweredCount())
	if assessment.TimeLimitSec > 0 {
		remaining := s.session.Remaining()
		clock := fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if remaining <= 60 {
			style = lipgloss.NewStyle().Foreground(theme.Critical).Bold(true)
		}
		status += "  ·  " + style.Render("⏱ "+clock)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(status) + "\n\n")

	if q.Context != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  "+q.Context) + "\n\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("  "+q.Text) + "\n")
	if q.IsMultiSelect() {
		b.WriteString(theme.Hint.Render("  Select all that apply") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(s.choice.View())

	_ = height
	return b.String()
}

func (s *attemptScreen) viewResults(width, height int) string {
	res := *s.result
	lines := s.resultLines(res)

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

	_ = width
	return strings.Join(lines[s.offset:end], "\n")
}

func (s *attemptScreen) resultLines(res quiz.Result) []string {
	assessment := s.session.Assessment()

	var lines []string
	add := func(line string) { lines = append(lines, "  "+line) }

	verdict := theme.Correct.Render("PASSED")
	if !res.Passed {
		verdict = theme.Incorrect.Render("NOT PASSED")
	}

	gradeColor := theme.Stable
	switch res.Grade.Tier() {
	case scoring.TierBorderline:
		gradeColor = theme.Warning
	case scoring.TierWeak:
		gradeColor = theme.Critical
	}
	grade := lipgloss.NewStyle().Foreground(gradeColor).Render(string(res.Grade))

	add("")
	add(fmt.Sprintf("%s  Score %d/100 (%s)  ·  %d of %d correct",
		verdict, res.Score, grade, res.CorrectCount, res.TotalCount))
	if res.TimedOut {
		add(lipgloss.NewStyle().Foreground(theme.Warning).Render("Time expired before submission."))
	}
	if s.errMsg != "" {
		add(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	add("")

	byID := make(map[string]quiz.QuestionResult, len(res.Questions))
	for _, qr := range res.Questions {
		byID[qr.QuestionID] = qr
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	for i, q := range assessment.Questions {
		qr := byID[q.ID]
		mark := theme.Correct.Render("✓")
		if !qr.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		add(fmt.Sprintf("%s Q%d. %s", mark, i+1, q.Text))
		if !qr.Correct {
			add(dim.Render("   Your answer:    " + optionText(q, qr.Selected)))
			add(dim.Render("   Correct answer: " + optionText(q, q.CorrectAnswers)))
		}
		add(dim.Render("   " + q.Explanation))
		add("")
	}

	add(theme.Hint.Render("Esc to return"))
	return lines
}

// optionText resolves option ids to their display text.
func optionText(q content.Question, ids []string) string {
	if len(ids) == 0 {
		return "(none)"
	}
	byID := make(map[string]string, len(q.Options))
	for _, o := range q.Options {
		byID[o.ID] = o.Text
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, byID[id])
	}
	return strings.Join(parts, "; ")
}
