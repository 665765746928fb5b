package variable

import (
	"fmt"
	"math"

	"github.com/aretw0/mamdani/pkg/domain"
)

// Defuzzify returns the centroid of degrees sampled with DefaultInterval.
func (v *Variable) Defuzzify(degrees domain.Membership) (float64, error) {
	return v.DefuzzifyStep(degrees, DefaultInterval)
}

// DefuzzifyStep computes a discretized weighted centroid of the aggregate set.
//
// At every sample point the membership of each category is clipped by its degree in the input,
// the height of the aggregate is the maximum clipped value, and the result is the
// height-weighted average of the sample points. It returns 0 when no input category overlaps
// any sample.
func (v *Variable) DefuzzifyStep(degrees domain.Membership, interval float64) (float64, error) {
	lo, step, steps, err := v.grid(interval)
	if err != nil {
		return 0, err
	}

	percSum, weightedSum := 0.0, 0.0
	for k := 0; k <= steps; k++ {
		p := v.sample(lo, step, steps, k)
		fv, err := v.Fuzzify(p)
		if err != nil {
			return 0, fmt.Errorf("sample %g: %w", p, err)
		}

		height := 0.0
		for name, perc := range fv {
			height = math.Max(height, math.Min(perc, degrees.Degree(name)))
		}

		percSum += height
		weightedSum += height * p
	}

	if percSum == 0 {
		return 0, nil
	}
	return weightedSum / percSum, nil
}

// Samples returns ceil((Max-Min)/interval)+1 evenly spaced points covering the domain,
// both ends included. When interval divides the span the points are exactly Min + k*interval.
func (v *Variable) Samples(interval float64) ([]float64, error) {
	lo, step, steps, err := v.grid(interval)
	if err != nil {
		return nil, err
	}
	points := make([]float64, steps+1)
	for k := range points {
		points[k] = v.sample(lo, step, steps, k)
	}
	return points, nil
}

// grid validates interval and returns the sampling origin, step and number of steps.
// The grid never has more than domain.MaxSamples points.
func (v *Variable) grid(interval float64) (lo, step float64, steps int, err error) {
	if math.IsNaN(interval) || interval <= 0 || math.IsInf(interval, 0) {
		return 0, 0, 0, &domain.ConfigurationError{
			Variable: v.name,
			Reason:   fmt.Sprintf("sampling interval must be positive, got %g", interval),
		}
	}

	lo = v.Min()
	span := v.Max() - lo
	if span == 0 {
		return lo, 0, 0, nil
	}

	n := domain.SampleCount(span, interval)
	if math.IsInf(n, 0) || n > domain.MaxSamples {
		return 0, 0, 0, &domain.ConfigurationError{
			Variable: v.name,
			Reason:   fmt.Sprintf("sampling interval %g needs more than %d samples over [%g, %g]", interval, domain.MaxSamples, lo, v.Max()),
		}
	}
	steps = int(n) - 1
	return lo, span / float64(steps), steps, nil
}

func (v *Variable) sample(lo, step float64, steps, k int) float64 {
	if k == steps {
		return v.Max()
	}
	return lo + float64(k)*step
}
