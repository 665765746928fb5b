package variable

import (
	"fmt"
	"math"

	"github.com/aretw0/mamdani/pkg/domain"
)

// validate checks a category list already sorted by Max.
//
// Consecutive categories may touch or overlap; the earlier one wins on the shared values.
// Min must be non-decreasing so that no category reaches back into the gap between two
// earlier neighbours, which guarantees that every value of [Min(), Max()] is covered.
func validate(name string, sets []domain.Category) error {
	fail := func(format string, args ...any) error {
		return &domain.ConfigurationError{Variable: name, Reason: fmt.Sprintf(format, args...)}
	}

	if len(sets) == 0 {
		return fail("at least one category is required")
	}

	seen := make(map[string]bool, len(sets))
	for i, c := range sets {
		if c.Name == "" {
			return fail("category %d has an empty name", i)
		}
		if seen[c.Name] {
			return fail("duplicate category %q", c.Name)
		}
		seen[c.Name] = true

		if !finite(c.Min) || !finite(c.Max) {
			return fail("category %q has non-finite bounds", c.Name)
		}
		if c.Min > c.Max {
			return fail("category %q has min %g greater than max %g", c.Name, c.Min, c.Max)
		}
		if i == 0 {
			continue
		}

		prev := sets[i-1]
		if prev.Max == c.Max {
			return fail("categories %q and %q share the same max %g", prev.Name, c.Name, c.Max)
		}
		if c.Min < prev.Min {
			return fail("category %q starts at %g before %q (%g)", c.Name, c.Min, prev.Name, prev.Min)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
