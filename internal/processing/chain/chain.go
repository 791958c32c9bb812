package chain

import (
	"context"
	"fmt"
	"time"

	"webcam-tuner/internal/models"
	"webcam-tuner/internal/processing/filters"
)

type ProcessingStep = filters.Stage

// StepStats accumulates timing for one step.
type StepStats struct {
	Runs     int
	Failures int
	Total    time.Duration
	Last     time.Duration
}

// Average returns the mean duration of successful runs.
func (s StepStats) Average() time.Duration {
	if s.Runs == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Runs)
}

// ProcessingChain runs its steps in order over a frame. It is not safe for
// concurrent use; one capture loop owns it.
type ProcessingChain struct {
	steps []ProcessingStep
	stats map[string]*StepStats
	now   func() time.Time
}

func NewProcessingChain(steps []ProcessingStep) *ProcessingChain {
	pc := &ProcessingChain{
		stats: make(map[string]*StepStats),
		now:   time.Now,
	}
	for _, step := range steps {
		pc.AddStep(step)
	}
	return pc
}

// Execute stops at the first failing step. Outputs of earlier steps remain valid.
func (pc *ProcessingChain) Execute(ctx context.Context, frame *filters.Frame, params *models.Parameters) error {
	for _, step := range pc.steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		stats := pc.stats[step.Name()]
		start := pc.now()
		err := step.Apply(ctx, frame, params)
		elapsed := pc.now().Sub(start)

		if err != nil {
			stats.Failures++
			return fmt.Errorf("step %s failed: %w", step.Name(), err)
		}

		stats.Runs++
		stats.Total += elapsed
		stats.Last = elapsed
	}

	return nil
}

func (pc *ProcessingChain) AddStep(step ProcessingStep) {
	pc.steps = append(pc.steps, step)
	if _, ok := pc.stats[step.Name()]; !ok {
		pc.stats[step.Name()] = &StepStats{}
	}
}

func (pc *ProcessingChain) GetStepNames() []string {
	names := make([]string, len(pc.steps))
	for i, step := range pc.steps {
		names[i] = step.Name()
	}
	return names
}

// Stats returns a copy of the per-step timings keyed by step name.
func (pc *ProcessingChain) Stats() map[string]StepStats {
	out := make(map[string]StepStats, len(pc.stats))
	for name, s := range pc.stats {
		out[name] = *s
	}
	return out
}

// Shutdown releases steps that hold native resources.
func (pc *ProcessingChain) Shutdown() {
	for _, step := range pc.steps {
		if c, ok := step.(interface{ Close() }); ok {
			c.Close()
		}
	}
}
