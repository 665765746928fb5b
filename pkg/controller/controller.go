// Package controller combines two fuzzy variables through a sparse rule table
// using max-min (Mamdani) inference.
package controller

import (
	"math"
	"sort"

	"github.com/aretw0/mamdani/pkg/domain"
)

// Fuzzifier is the part of a variable the controller depends on.
type Fuzzifier interface {
	Name() string
	Fuzzify(value float64) (domain.Membership, error)
}

// Controller holds two antecedent variables and the rules combining their categories.
// It is immutable and safe for concurrent use.
type Controller struct {
	name  string
	a, b  Fuzzifier
	rules domain.RuleTable
}

// Activation describes a rule that fired during inference.
type Activation struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Output   string  `json:"output"`
	DegreeA  float64 `json:"degree_a"`
	DegreeB  float64 `json:"degree_b"`
	Strength float64 `json:"strength"`
}

// New creates a controller. The rule table is copied; it is not checked for completeness.
func New(name string, a, b Fuzzifier, rules domain.RuleTable) *Controller {
	return &Controller{
		name:  name,
		a:     a,
		b:     b,
		rules: rules.Clone(),
	}
}

// Name returns the controller name.
func (c *Controller) Name() string { return c.name }

// Inputs returns the names of the two antecedent variables.
func (c *Controller) Inputs() (string, string) { return c.a.Name(), c.b.Name() }

// Rules returns a copy of the rule table.
func (c *Controller) Rules() domain.RuleTable { return c.rules.Clone() }

// FuzzifyPair fuzzifies both inputs and applies every matching rule.
//
// A rule's strength is the minimum of its two antecedent degrees; when several rules share an
// output category the strongest wins. Categories no rule fires for are omitted, so the result
// may be empty.
func (c *Controller) FuzzifyPair(valueA, valueB float64) (domain.Membership, error) {
	activations, err := c.fire(valueA, valueB)
	if err != nil {
		return nil, err
	}

	res := make(domain.Membership, len(activations))
	for _, act := range activations {
		res[act.Output] = math.Max(res[act.Output], act.Strength)
	}
	return res, nil
}

// Explain returns every rule that fired for the two inputs, ordered by output then antecedents.
func (c *Controller) Explain(valueA, valueB float64) ([]Activation, error) {
	activations, err := c.fire(valueA, valueB)
	if err != nil {
		return nil, err
	}

	sort.Slice(activations, func(i, j int) bool {
		x, y := activations[i], activations[j]
		if x.Output != y.Output {
			return x.Output < y.Output
		}
		if x.A != y.A {
			return x.A < y.A
		}
		return x.B < y.B
	})
	return activations, nil
}

func (c *Controller) fire(valueA, valueB float64) ([]Activation, error) {
	fa, err := c.a.Fuzzify(valueA)
	if err != nil {
		return nil, err
	}
	fb, err := c.b.Fuzzify(valueB)
	if err != nil {
		return nil, err
	}

	var activations []Activation
	for aName, aDeg := range fa {
		for bName, bDeg := range fb {
			out, ok := c.rules.Lookup(aName, bName)
			if !ok {
				continue
			}
			activations = append(activations, Activation{
				A:        aName,
				B:        bName,
				Output:   out,
				DegreeA:  aDeg,
				DegreeB:  bDeg,
				Strength: math.Min(aDeg, bDeg),
			})
		}
	}
	return activations, nil
}
