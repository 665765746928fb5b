package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aretw0/mamdani/pkg/domain"
)

// ParseInputs parses name=value pairs.
func ParseInputs(pairs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		for _, item := range strings.Split(pair, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			name, raw, ok := strings.Cut(item, "=")
			name = strings.TrimSpace(name)
			if !ok || name == "" {
				return nil, fmt.Errorf("invalid input %q: expected name=value", item)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %w", name, err)
			}
			if _, dup := out[name]; dup {
				return nil, fmt.Errorf("input %s given twice", name)
			}
			out[name] = v
		}
	}
	return out, nil
}

// ParseMembership parses category=degree pairs.
func ParseMembership(pairs []string) (domain.Membership, error) {
	values, err := ParseInputs(pairs)
	if err != nil {
		return nil, err
	}
	for name, d := range values {
		if d < 0 || d > 1 {
			return nil, fmt.Errorf("degree of %s must be within [0, 1], got %g", name, d)
		}
	}
	return domain.Membership(values), nil
}

// maxRangeValues bounds the number of points a start:end:step range may expand to.
const maxRangeValues = 100_000

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ParseValues parses a comma separated list of numbers, or a range written start:end:step.
func ParseValues(spec string) ([]float64, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("no values given")
	}

	if parts := strings.Split(spec, ":"); len(parts) == 3 {
		nums := make([]float64, 3)
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid range %q: %w", spec, err)
			}
			nums[i] = v
		}
		start, end, step := nums[0], nums[1], nums[2]
		if !finite(start) || !finite(end) || !finite(step) {
			return nil, fmt.Errorf("invalid range %q: bounds and step must be finite", spec)
		}
		if step <= 0 || end < start {
			return nil, fmt.Errorf("invalid range %q: need start <= end and step > 0", spec)
		}
		if n := math.Floor((end-start)/step) + 1; n > maxRangeValues {
			return nil, fmt.Errorf("invalid range %q: %g values exceed the limit of %d", spec, n, maxRangeValues)
		}
		var out []float64
		for i := 0; ; i++ {
			v := start + float64(i)*step
			if v > end+step*1e-9 {
				break
			}
			out = append(out, v)
		}
		return out, nil
	}

	var out []float64
	for _, item := range strings.Split(spec, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(item), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", item, err)
		}
		if !finite(v) {
			return nil, fmt.Errorf("invalid value %q: must be finite", item)
		}
		out = append(out, v)
	}
	return out, nil
}
