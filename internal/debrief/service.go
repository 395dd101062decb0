package debrief

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nkapoor/emcmd/internal/llm"
)

// Service generates debriefs asynchronously. Only one debrief is
// in-flight at a time; a new request replaces any pending result.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Debrief
	err     error
	ready   bool
}

// NewService creates a debrief generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async debrief generation for a completed attempt.
func (s *Service) Request(ctx context.Context, in Input) {
	go func() {
		d, err := s.Generate(ctx, in)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = d
		s.err = err
		s.ready = true
	}()
}

// Consume returns the pending debrief if one is ready. Returns
// (nil, false) while generation is still running. After consumption
// the pending slot is cleared.
func (s *Service) Consume() (*Debrief, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	d := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return d, d != nil
}

// Err returns the error from the most recent completed generation, if
// the result is still unconsumed.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil
	}
	return s.err
}

type debriefOutput struct {
	Summary          string   `json:"summary"`
	Strengths        []string `json:"strengths"`
	Improvements     []string `json:"improvements"`
	KeyTeachingPoint string   `json:"key_teaching_point"`
}

// Generate produces a debrief synchronously. The TUI goes through
// Request/Consume instead; this is for direct callers.
func (s *Service) Generate(ctx context.Context, in Input) (*Debrief, error) {
	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserPrompt(in),
		Schema:      DebriefSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("debrief generation: %w", err)
	}

	var out debriefOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse debrief response: %w", err)
	}

	return &Debrief{
		CaseID:           in.Scenario.ID,
		Summary:          out.Summary,
		Strengths:        out.Strengths,
		Improvements:     out.Improvements,
		KeyTeachingPoint: out.KeyTeachingPoint,
	}, nil
}
