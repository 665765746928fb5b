package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/mamdani/pkg/domain"
)

// Pipeline is an immutable, validated sequence of stages.
type Pipeline struct {
	name        string
	inputs      []string
	stages      []Stage
	levels      [][]int
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	concurrency int
}

// Option defines a functional option for configuring the Pipeline.
type Option func(*Pipeline)

// WithName labels the pipeline in logs and records.
func WithName(name string) Option {
	return func(p *Pipeline) {
		p.name = name
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Pipeline) {
		p.hooks = hooks
	}
}

// WithConcurrency bounds the number of stages (or sweep runs) evaluated at once.
// Zero or negative means unbounded.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) {
		p.concurrency = n
	}
}

// New validates the stage graph and groups stages into dependency levels.
// Stage inputs must reference a declared input or a stage declared earlier.
func New(inputs []string, stages []Stage, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		inputs: append([]string(nil), inputs...),
		stages: append([]Stage(nil), stages...),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if len(p.stages) == 0 {
		return nil, &domain.ConfigurationError{Reason: "pipeline needs at least one stage"}
	}

	// level 0 is the declared inputs; stage levels start at 1.
	level := make(map[string]int, len(p.inputs)+len(p.stages))
	for _, in := range p.inputs {
		if in == "" {
			return nil, &domain.ConfigurationError{Reason: "pipeline input with empty name"}
		}
		if _, dup := level[in]; dup {
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("duplicate input %q", in)}
		}
		level[in] = 0
	}

	for i, s := range p.stages {
		switch {
		case s.Name == "":
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("stage %d has no name", i)}
		case s.Controller == nil:
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("stage %q has no controller", s.Name)}
		case s.Output == nil:
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("stage %q has no output variable", s.Name)}
		case s.Interval < 0 || math.IsNaN(s.Interval):
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("stage %q has invalid interval %g", s.Name, s.Interval)}
		}
		if _, dup := level[s.Name]; dup {
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("stage %q collides with an input or earlier stage", s.Name)}
		}

		depth := 0
		for _, ref := range []string{s.InputA, s.InputB} {
			l, ok := level[ref]
			if !ok {
				return nil, &domain.ConfigurationError{
					Reason: fmt.Sprintf("stage %q references unknown value %q", s.Name, ref),
				}
			}
			depth = max(depth, l)
		}
		level[s.Name] = depth + 1

		for len(p.levels) <= depth {
			p.levels = append(p.levels, nil)
		}
		p.levels[depth] = append(p.levels[depth], i)
	}

	return p, nil
}

// Name returns the pipeline label.
func (p *Pipeline) Name() string { return p.name }

// Inputs returns the declared input names.
func (p *Pipeline) Inputs() []string { return append([]string(nil), p.inputs...) }

// Stages returns the stages in declaration order.
func (p *Pipeline) Stages() []Stage { return append([]Stage(nil), p.stages...) }

// Output is the name of the last declared stage, whose value Result.Crisp reports.
func (p *Pipeline) Output() string { return p.stages[len(p.stages)-1].Name }

// Levels returns stage names grouped by dependency depth. Stages within a level are independent.
func (p *Pipeline) Levels() [][]string {
	out := make([][]string, len(p.levels))
	for i, idxs := range p.levels {
		for _, idx := range idxs {
			out[i] = append(out[i], p.stages[idx].Name)
		}
	}
	return out
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Values holds every crisp value: the inputs and each stage output.
	Values map[string]float64 `json:"values"`
	Stages []StageResult      `json:"stages"`
	Output string             `json:"output"`
}

// Crisp returns the crisp value of the final stage.
func (r *Result) Crisp() float64 {
	return r.Values[r.Output]
}

// Stage returns the result for the named stage.
func (r *Result) Stage(name string) (StageResult, bool) {
	for _, s := range r.Stages {
		if s.Stage == name {
			return s, true
		}
	}
	return StageResult{}, false
}

// Record converts the result into a persistable evaluation record.
func (r *Result) Record(pipeline string, inputs map[string]float64) *domain.Record {
	rec := domain.NewRecord(pipeline, inputs)
	rec.Output = r.Output
	rec.Crisp = r.Crisp()
	rec.Stages = make([]domain.StageOutcome, len(r.Stages))
	for i, s := range r.Stages {
		rec.Stages[i] = domain.StageOutcome{
			Stage:      s.Stage,
			InputA:     s.InputA,
			InputB:     s.InputB,
			Membership: s.Membership.Clone(),
			Crisp:      s.Crisp,
		}
	}
	return rec
}

// Run evaluates every stage. Stages of the same level run concurrently.
func (p *Pipeline) Run(ctx context.Context, inputs map[string]float64) (*Result, error) {
	values := make(map[string]float64, len(inputs)+len(p.stages))
	for _, in := range p.inputs {
		v, ok := inputs[in]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingInput, in)
		}
		values[in] = v
	}

	results := make([]StageResult, len(p.stages))
	for depth, idxs := range p.levels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		g, gctx := errgroup.WithContext(ctx)
		if p.concurrency > 0 {
			g.SetLimit(p.concurrency)
		}
		for _, idx := range idxs {
			s := p.stages[idx]
			a, b := values[s.InputA], values[s.InputB]
			g.Go(func() error {
				res, err := p.runStage(gctx, s, a, b)
				if err != nil {
					return err
				}
				results[idx] = res
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			p.logger.Debug("pipeline aborted", "pipeline", p.name, "level", depth, "err", err)
			return nil, err
		}

		for _, idx := range idxs {
			values[p.stages[idx].Name] = results[idx].Crisp
		}
	}

	return &Result{Values: values, Stages: results, Output: p.Output()}, nil
}

func (p *Pipeline) runStage(ctx context.Context, s Stage, a, b float64) (StageResult, error) {
	start := time.Now()
	if p.hooks.OnStageEnter != nil {
		p.hooks.OnStageEnter(ctx, &domain.StageEvent{
			EventBase: domain.EventBase{Timestamp: start, Type: domain.EventStageEnter},
			Stage:     s.Name,
		})
	}

	res, err := p.evaluate(ctx, s, a, b)
	if err != nil {
		err = &StageError{Stage: s.Name, Err: err}
	}

	if p.hooks.OnStageLeave != nil {
		p.hooks.OnStageLeave(ctx, &domain.StageEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStageLeave},
			Stage:     s.Name,
			Crisp:     res.Crisp,
			Duration:  time.Since(start),
			Err:       err,
		})
	}

	p.logger.Debug("stage evaluated",
		"pipeline", p.name,
		"stage", s.Name,
		"input_a", a,
		"input_b", b,
		"crisp", res.Crisp,
	)
	return res, err
}

func (p *Pipeline) evaluate(ctx context.Context, s Stage, a, b float64) (StageResult, error) {
	res := StageResult{Stage: s.Name, InputA: a, InputB: b}

	m, err := s.Controller.FuzzifyPair(a, b)
	if p.hooks.OnInfer != nil {
		p.hooks.OnInfer(ctx, &domain.InferEvent{
			EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventInfer},
			Controller: s.Controller.Name(),
			InputA:     a,
			InputB:     b,
			Result:     m,
			Err:        err,
		})
	}
	if err != nil {
		return res, err
	}
	res.Membership = m

	crisp, err := s.Output.DefuzzifyStep(m, s.interval())
	if err != nil {
		return res, err
	}
	res.Crisp = crisp
	return res, nil
}
