package core

import (
	"context"
	"fmt"
)

// Generator produces the free-text body for a prompt.  ModelGenerator and
// SimulatedGenerator are the two implementations; main picks one at startup.
type Generator interface {
	Generate(ctx context.Context, mode Mode, prompt string) (string, error)
}

// Responder turns a form request into the string shown to the user.  It keeps
// no state between calls.
type Responder struct {
	Gen Generator
}

// NewResponder constructs a Responder around the given generator.
func NewResponder(gen Generator) *Responder {
	return &Responder{Gen: gen}
}

// Respond builds the prompt for req, asks the generator for a body and frames
// it with the mode's banner and disclaimer.  A blank primary field returns the
// mode's prompt-for-input message without touching the generator.  Generator
// errors are returned as-is to the caller; there is no fallback text.
func (s *Responder) Respond(ctx context.Context, req Request) (string, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return "", err
	}
	if req.Empty() {
		return EmptyMessage(req.Mode), nil
	}
	body, err := s.Gen.Generate(ctx, req.Mode, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", req.Mode, err)
	}
	return Frame(req, body), nil
}
