package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Yashshokeen-11/ALP/internal/llm"
	"github.com/Yashshokeen-11/ALP/internal/pathgen"
)

// Service narrates generated learning paths and explains concepts.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a narration service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type narrationOutput struct {
	Headline string           `json:"headline"`
	Steps    []stepNoteOutput `json:"steps"`
}

type stepNoteOutput struct {
	ConceptID     string `json:"concept_id"`
	Encouragement string `json:"encouragement"`
}

// NarratePlan turns a generated path into a short study-plan summary.
// Scheduling never depends on this; callers treat failures as cosmetic.
func (s *Service) NarratePlan(ctx context.Context, path *pathgen.Path) (*Narration, error) {
	if path == nil || len(path.Steps) == 0 {
		return nil, fmt.Errorf("nothing to narrate: path is empty")
	}

	ctx = llm.WithPurpose(ctx, "narrate-path")

	req := llm.Request{
		System: narrationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNarrationUserMessage(path)},
		},
		Schema:      NarrationSchema,
		MaxTokens:   s.cfg.NarrateMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plan narration: %w", err)
	}

	var out narrationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse narration response: %w", err)
	}

	n := &Narration{Headline: out.Headline}

	// Index notes by concept so a reordered or partial response still
	// lines up with the path.
	byConcept := make(map[string]string, len(out.Steps))
	for _, note := range out.Steps {
		byConcept[note.ConceptID] = note.Encouragement
	}
	for _, step := range path.Steps {
		n.Steps = append(n.Steps, StepNote{
			ConceptID:     step.Concept.ID,
			Encouragement: byConcept[step.Concept.ID],
		})
	}

	return n, nil
}

type explanationOutput struct {
	Overview   string   `json:"overview"`
	WhyNow     string   `json:"why_now"`
	FirstSteps []string `json:"first_steps"`
}

// ExplainConcept introduces one concept in terms of the learner's
// standing on it. Scheduling never depends on this either.
func (s *Service) ExplainConcept(ctx context.Context, in ExplainInput) (*Explanation, error) {
	if in.Concept.ID == "" {
		return nil, fmt.Errorf("nothing to explain: no concept given")
	}

	ctx = llm.WithPurpose(ctx, "explain-concept")

	req := llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainUserMessage(in)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.ExplainMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("concept explanation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		Overview:   out.Overview,
		WhyNow:     out.WhyNow,
		FirstSteps: out.FirstSteps,
	}, nil
}
