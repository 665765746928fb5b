package schema

import (
	"fmt"
	"math"
	"slices"

	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/variable"
)

// Validate checks the document structure and returns every failure found.
// It does not check rule tables for completeness, nor category layout beyond min <= max.
func Validate(doc *Document) error {
	if doc == nil {
		return &AggregateError{Errors: []error{&ValidationError{Key: "document", Reason: "required"}}}
	}

	var errs []error
	add := func(key, reason string, value any) {
		errs = append(errs, &ValidationError{Key: key, Reason: reason, Value: value})
	}

	variables := make(map[string]bool, len(doc.Variables))
	categories := make(map[string]map[string]bool, len(doc.Variables))
	if len(doc.Variables) == 0 {
		add("variables", "at least one variable is required", nil)
	}
	for i, v := range doc.Variables {
		key := fmt.Sprintf("variables[%d]", i)
		switch {
		case v.Name == "":
			add(key+".name", "required", nil)
		case variables[v.Name]:
			add(key+".name", "duplicate variable", v.Name)
		}
		variables[v.Name] = true

		if len(v.Categories) == 0 {
			add(key+".categories", "at least one category is required", nil)
		}
		seen := make(map[string]bool, len(v.Categories))
		if _, ok := categories[v.Name]; !ok {
			categories[v.Name] = seen
		}
		for j, c := range v.Categories {
			ckey := fmt.Sprintf("%s.categories[%d]", key, j)
			switch {
			case c.Name == "":
				add(ckey+".name", "required", nil)
			case seen[c.Name]:
				add(ckey+".name", "duplicate category", c.Name)
			}
			seen[c.Name] = true

			if math.IsNaN(c.Min) || math.IsNaN(c.Max) || c.Min > c.Max {
				add(ckey, "min must not exceed max", fmt.Sprintf("[%g, %g]", c.Min, c.Max))
			}
		}
	}

	controllers := make(map[string]bool, len(doc.Controllers))
	for i, c := range doc.Controllers {
		key := fmt.Sprintf("controllers[%d]", i)
		switch {
		case c.Name == "":
			add(key+".name", "required", nil)
		case controllers[c.Name]:
			add(key+".name", "duplicate controller", c.Name)
		}
		controllers[c.Name] = true

		for _, side := range []struct{ field, ref string }{{"a", c.A}, {"b", c.B}} {
			if !variables[side.ref] {
				add(key+"."+side.field, "unknown variable", side.ref)
			}
		}

		pairs := make(map[[2]string]bool, len(c.Rules))
		for j, r := range c.Rules {
			rkey := fmt.Sprintf("%s.rules[%d]", key, j)
			if r.A == "" || r.B == "" || r.Then == "" {
				add(rkey, "a, b and then are required", nil)
				continue
			}
			if cats, ok := categories[c.A]; ok && !cats[r.A] {
				add(rkey+".a", "unknown category of "+c.A, r.A)
			}
			if cats, ok := categories[c.B]; ok && !cats[r.B] {
				add(rkey+".b", "unknown category of "+c.B, r.B)
			}
			pair := [2]string{r.A, r.B}
			if pairs[pair] {
				add(rkey, "duplicate rule", r.A+" x "+r.B)
			}
			pairs[pair] = true
		}
	}

	values := make(map[string]bool, len(doc.Inputs)+len(doc.Stages))
	for i, in := range doc.Inputs {
		key := fmt.Sprintf("inputs[%d]", i)
		switch {
		case in == "":
			add(key, "required", nil)
		case values[in]:
			add(key, "duplicate input", in)
		}
		values[in] = true
	}

	for i, s := range doc.Stages {
		key := fmt.Sprintf("stages[%d]", i)
		switch {
		case s.Name == "":
			add(key+".name", "required", nil)
		case values[s.Name]:
			add(key+".name", "collides with an input or earlier stage", s.Name)
		}
		if !controllers[s.Controller] {
			add(key+".controller", "unknown controller", s.Controller)
		}
		if !variables[s.Output] {
			add(key+".output", "unknown variable", s.Output)
		} else if c, ok := doc.Controller(s.Controller); ok {
			var missing []string
			for _, r := range c.Rules {
				if r.Then != "" && !categories[s.Output][r.Then] && !slices.Contains(missing, r.Then) {
					missing = append(missing, r.Then)
				}
			}
			if len(missing) > 0 {
				add(key+".output", "rule outputs are not categories of "+s.Output, missing)
			}
		}
		if len(s.From) != 2 {
			add(key+".from", "exactly two values are required", s.From)
		}
		for j, ref := range s.From {
			if !values[ref] {
				add(fmt.Sprintf("%s.from[%d]", key, j), "not an input or earlier stage", ref)
			}
		}
		switch {
		case s.Interval < 0 || math.IsNaN(s.Interval) || math.IsInf(s.Interval, 0):
			add(key+".interval", "must be positive", s.Interval)
		case variables[s.Output]:
			if out, ok := doc.Variable(s.Output); ok && tooManySamples(out, s.Interval) {
				add(key+".interval", fmt.Sprintf("too fine for %s, exceeds %d samples", s.Output, domain.MaxSamples), s.Interval)
			}
		}
		values[s.Name] = true
	}

	if len(doc.Stages) > 0 && len(doc.Inputs) == 0 {
		add("inputs", "stages require declared inputs", nil)
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// tooManySamples reports whether defuzzifying v with interval would exceed domain.MaxSamples.
// A zero interval stands for variable.DefaultInterval.
func tooManySamples(v VariableSpec, interval float64) bool {
	if len(v.Categories) == 0 {
		return false
	}
	if interval == 0 {
		interval = variable.DefaultInterval
	}
	lo, hi := v.Categories[0].Min, v.Categories[0].Max
	for _, c := range v.Categories[1:] {
		lo = math.Min(lo, c.Min)
		hi = math.Max(hi, c.Max)
	}
	n := domain.SampleCount(hi-lo, interval)
	return math.IsInf(n, 0) || math.IsNaN(n) || n > domain.MaxSamples
}
