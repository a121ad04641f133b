package core

import (
	"context"
	"fmt"
	"strings"

	"healthai/internal/llm"
)

// Defaults for the model-backed generator.  MaxLength counts prompt and
// generated tokens together.
const (
	DefaultMaxInputTokens = 512
	DefaultTemperature    = 0.7
)

// DefaultMaxLength returns a fresh copy of the per-mode token budget.
func DefaultMaxLength() map[Mode]int {
	return map[Mode]int{
		ModeChat:            1000,
		ModeSymptomAnalysis: 1200,
		ModeTreatmentPlan:   1200,
	}
}

// ModelGenerator sends the prompt to a language model.  Each call is a single
// blocking request: no timeout beyond ctx, no retry, no streaming.
type ModelGenerator struct {
	LLM            llm.Client
	MaxInputTokens int
	MaxLength      map[Mode]int
	Temperature    float32
}

// NewModelGenerator returns a generator with the default limits.
func NewModelGenerator(client llm.Client) *ModelGenerator {
	return &ModelGenerator{
		LLM:            client,
		MaxInputTokens: DefaultMaxInputTokens,
		MaxLength:      DefaultMaxLength(),
		Temperature:    DefaultTemperature,
	}
}

// Generate truncates the prompt, requests a sampled completion within the
// mode's length budget and removes any echo of the prompt from the output.
func (g *ModelGenerator) Generate(ctx context.Context, mode Mode, prompt string) (string, error) {
	maxLength, ok := g.MaxLength[mode]
	if !ok {
		return "", ErrUnknownMode
	}
	sent, n, err := llm.Truncate(prompt, g.MaxInputTokens)
	if err != nil {
		return "", err
	}
	budget := maxLength - n
	if budget < 1 {
		budget = 1
	}
	out, err := g.LLM.Generate(ctx, sent, llm.Params{
		MaxNewTokens: budget,
		Temperature:  g.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return StripPrompt(out, sent), nil
}

// StripPrompt deletes every verbatim occurrence of prompt from out and trims
// the surrounding whitespace.
func StripPrompt(out, prompt string) string {
	if prompt == "" {
		return strings.TrimSpace(out)
	}
	for strings.Contains(out, prompt) {
		out = strings.ReplaceAll(out, prompt, "")
	}
	return strings.TrimSpace(out)
}
