package domain

import (
	"fmt"
	"math"
)

// MaxSamples bounds the number of points a defuzzification grid may have.
const MaxSamples = 1_000_000

// SampleCount returns how many grid points sampling a span with the given interval needs.
// It returns +Inf when the count does not fit in a float64.
func SampleCount(span, interval float64) float64 {
	if span == 0 {
		return 1
	}
	return math.Ceil(span/interval) + 1
}

// Bounds is the [Min, Max] core of a category, used when declaring a variable.
type Bounds struct {
	Min float64 `json:"min" yaml:"min" mapstructure:"min"`
	Max float64 `json:"max" yaml:"max" mapstructure:"max"`
}

// Category is a named interval of full membership for a variable.
// Min == Max describes a singleton peak.
type Category struct {
	Name string  `json:"name" yaml:"name" mapstructure:"name"`
	Min  float64 `json:"min" yaml:"min" mapstructure:"min"`
	Max  float64 `json:"max" yaml:"max" mapstructure:"max"`
}

// Contains reports whether v lies in [Min, Max], both ends inclusive.
func (c Category) Contains(v float64) bool {
	return c.Min <= v && v <= c.Max
}

// Bounds returns the category core as a Bounds value.
func (c Category) Bounds() Bounds {
	return Bounds{Min: c.Min, Max: c.Max}
}

func (c Category) String() string {
	return fmt.Sprintf("%s[%g, %g]", c.Name, c.Min, c.Max)
}
