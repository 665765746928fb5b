package pipeline

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// SweepPoint is one run of a sweep.
type SweepPoint struct {
	Value  float64 `json:"value"`
	Crisp  float64 `json:"crisp"`
	Result *Result `json:"result"`
}

// Sweep evaluates the pipeline once per value of the named input, all other inputs taken from
// base. Runs are independent and evaluated concurrently; points keep the order of values.
func (p *Pipeline) Sweep(ctx context.Context, base map[string]float64, input string, values []float64) ([]SweepPoint, error) {
	if !slices.Contains(p.inputs, input) {
		return nil, fmt.Errorf("%w: %q is not a pipeline input", ErrMissingInput, input)
	}

	points := make([]SweepPoint, len(values))
	g, gctx := errgroup.WithContext(ctx)
	if p.concurrency > 0 {
		g.SetLimit(p.concurrency)
	}

	for i, v := range values {
		inputs := make(map[string]float64, len(base)+1)
		for k, bv := range base {
			inputs[k] = bv
		}
		inputs[input] = v

		g.Go(func() error {
			res, err := p.Run(gctx, inputs)
			if err != nil {
				return fmt.Errorf("%s=%g: %w", input, v, err)
			}
			points[i] = SweepPoint{Value: v, Crisp: res.Crisp(), Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
