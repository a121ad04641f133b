package core

import (
	"context"
	"math/rand/v2"
	"time"
)

// DefaultSimulatedDelay mimics the latency of a real model call.
const DefaultSimulatedDelay = 2 * time.Second

// SimulatedGenerator answers with one of the canned paragraphs of the mode
// after a fixed pause.  It never calls a model.
type SimulatedGenerator struct {
	Delay time.Duration
	// Pick returns an index in [0, n).  It must be safe for concurrent use.
	Pick func(n int) int
}

// NewSimulatedGenerator returns a generator that waits delay and picks
// uniformly at random.
func NewSimulatedGenerator(delay time.Duration) *SimulatedGenerator {
	return &SimulatedGenerator{Delay: delay, Pick: rand.IntN}
}

// Generate ignores the prompt text.  The pause ends early if ctx is done.
func (g *SimulatedGenerator) Generate(ctx context.Context, mode Mode, _ string) (string, error) {
	candidates, ok := CannedResponses[mode]
	if !ok {
		return "", ErrUnknownMode
	}
	if g.Delay > 0 {
		t := time.NewTimer(g.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-t.C:
		}
	}
	pick := g.Pick
	if pick == nil {
		pick = rand.IntN
	}
	return candidates[pick(len(candidates))], nil
}
