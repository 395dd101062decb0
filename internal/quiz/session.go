// Package quiz runs a single assessment attempt: answer collection,
// question navigation, the countdown timer, and final scoring.
package quiz

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/scoring"
)

// ErrCompleted is returned by mutating calls after the attempt has been
// submitted, whether by the learner or by timer expiry.
var ErrCompleted = errors.New("quiz already completed")

// QuestionResult records how one question was answered.
type QuestionResult struct {
	QuestionID string
	Selected   []string
	Correct    bool
}

// Result is the outcome of a completed attempt.
type Result struct {
	SessionID    string
	AssessmentID string
	Score        int
	Grade        scoring.Grade
	Passed       bool
	CorrectCount int
	TotalCount   int
	TimeTaken    time.Duration
	TimedOut     bool
	Questions    []QuestionResult
}

// Session is a single in-flight quiz attempt. All methods are safe for
// concurrent use; the countdown timer runs on its own goroutine and
// submits the attempt when it expires.
type Session struct {
	id         string
	assessment content.Assessment

	mu        sync.Mutex
	answers   []map[string]bool
	current   int
	startedAt time.Time
	remaining int
	completed bool
	timedOut  bool
	result    *Result

	onComplete   func(Result)
	stopTimer    chan struct{}
	tickInterval time.Duration
}

// Option configures a Session at construction.
type Option func(*Session)

// WithOnComplete registers a callback invoked exactly once when the
// attempt completes, whether submitted by the learner or by the timer.
func WithOnComplete(fn func(Result)) Option {
	return func(s *Session) { s.onComplete = fn }
}

// withTickInterval overrides the timer tick for tests.
func withTickInterval(d time.Duration) Option {
	return func(s *Session) { s.tickInterval = d }
}

// New starts an attempt over the given assessment. If the assessment
// carries a time limit the countdown starts immediately.
func New(assessment content.Assessment, opts ...Option) (*Session, error) {
	if len(assessment.Questions) == 0 {
		return nil, fmt.Errorf("%w: assessment %q has no questions", scoring.ErrInvalidInput, assessment.ID)
	}

	s := &Session{
		id:           uuid.NewString(),
		assessment:   assessment,
		answers:      make([]map[string]bool, len(assessment.Questions)),
		startedAt:    time.Now(),
		remaining:    assessment.TimeLimitSec,
		stopTimer:    make(chan struct{}),
		tickInterval: time.Second,
	}
	for i := range s.answers {
		s.answers[i] = make(map[string]bool)
	}
	for _, opt := range opts {
		opt(s)
	}

	if assessment.TimeLimitSec > 0 {
		go s.runTimer()
	}
	return s, nil
}

func (s *Session) runTimer() {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopTimer:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.completed {
				s.mu.Unlock()
				return
			}
			s.remaining--
			if s.remaining > 0 {
				s.mu.Unlock()
				continue
			}
			s.remaining = 0
			s.timedOut = true
			res := s.finishLocked()
			s.mu.Unlock()
			s.notify(res)
			return
		}
	}
}

// ID returns the unique attempt id.
func (s *Session) ID() string { return s.id }

// Assessment returns the assessment under attempt.
func (s *Session) Assessment() content.Assessment { return s.assessment }

// CurrentIndex returns the index of the question being shown.
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentQuestion returns the question being shown.
func (s *Session) CurrentQuestion() content.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assessment.Questions[s.current]
}

// Next advances to the following question, clamping at the last one.
// It reports whether the index moved.
func (s *Session) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed || s.current >= len(s.assessment.Questions)-1 {
		return false
	}
	s.current++
	return true
}

// Prev moves back one question, clamping at the first one. It reports
// whether the index moved.
func (s *Session) Prev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed || s.current <= 0 {
		return false
	}
	s.current--
	return true
}

// SelectAnswer records an option for the current question. Single-choice
// questions replace any prior selection; multi-select questions toggle
// the option in and out of the selected set.
func (s *Session) SelectAnswer(optionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrCompleted
	}

	q := s.assessment.Questions[s.current]
	valid := false
	for _, o := range q.Options {
		if o.ID == optionID {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: option %q is not part of question %q", scoring.ErrInvalidInput, optionID, q.ID)
	}

	sel := s.answers[s.current]
	if q.IsMultiSelect() {
		if sel[optionID] {
			delete(sel, optionID)
		} else {
			sel[optionID] = true
		}
		return nil
	}
	for id := range sel {
		delete(sel, id)
	}
	sel[optionID] = true
	return nil
}

// Selected returns the selected option ids for the question at index i.
func (s *Session) Selected(i int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.answers) {
		return nil
	}
	out := make([]string, 0, len(s.answers[i]))
	for id := range s.answers[i] {
		out = append(out, id)
	}
	return out
}

// AnsweredCount returns how many questions have at least one selection.
func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sel := range s.answers {
		if len(sel) > 0 {
			n++
		}
	}
	return n
}

// Remaining returns the seconds left on the countdown, or zero when the
// assessment has no time limit.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Completed reports whether the attempt has been submitted.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Result returns the outcome of a completed attempt, or nil while the
// attempt is still in flight.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Submit scores the attempt. Submitting twice, or after timer expiry,
// returns ErrCompleted alongside the original result.
func (s *Session) Submit() (Result, error) {
	s.mu.Lock()
	if s.completed {
		res := *s.result
		s.mu.Unlock()
		return res, ErrCompleted
	}
	res := s.finishLocked()
	s.mu.Unlock()
	s.notify(res)
	return res, nil
}

// Close releases the timer goroutine for an abandoned attempt. It is
// safe to call on a completed session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// finishLocked scores the attempt and marks it completed. Callers hold
// s.mu and invoke notify after unlocking.
func (s *Session) finishLocked() Result {
	s.completed = true
	s.stopLocked()

	questions := make([]QuestionResult, len(s.assessment.Questions))
	correct := 0
	for i, q := range s.assessment.Questions {
		sel := make([]string, 0, len(s.answers[i]))
		for id := range s.answers[i] {
			sel = append(sel, id)
		}
		ok := answerMatches(q, s.answers[i])
		if ok {
			correct++
		}
		questions[i] = QuestionResult{QuestionID: q.ID, Selected: sel, Correct: ok}
	}

	score, err := scoring.ScoreQuiz(correct, len(s.assessment.Questions))
	if err != nil {
		// Question count is validated in New; this cannot happen.
		score = 0
	}

	res := Result{
		SessionID:    s.id,
		AssessmentID: s.assessment.ID,
		Score:        score,
		Grade:        scoring.GradeFor(score),
		Passed:       scoring.Passed(score, s.assessment.PassingScore),
		CorrectCount: correct,
		TotalCount:   len(s.assessment.Questions),
		TimeTaken:    time.Since(s.startedAt),
		TimedOut:     s.timedOut,
		Questions:    questions,
	}
	s.result = &res
	return res
}

func (s *Session) stopLocked() {
	select {
	case <-s.stopTimer:
	default:
		close(s.stopTimer)
	}
}

func (s *Session) notify(res Result) {
	if s.onComplete != nil {
		s.onComplete(res)
	}
}

// answerMatches requires the selected set to equal the correct set
// exactly. Partial credit is not awarded on multi-select questions.
func answerMatches(q content.Question, selected map[string]bool) bool {
	correct := q.CorrectSet()
	if len(selected) != len(correct) {
		return false
	}
	for id := range selected {
		if !correct[id] {
			return false
		}
	}
	return true
}
