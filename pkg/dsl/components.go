package dsl

import "github.com/aretw0/mamdani/pkg/schema"

// VariableBuilder provides a fluent API for declaring categories.
type VariableBuilder struct {
	spec schema.VariableSpec
}

// Unit sets a display unit for the variable.
func (v *VariableBuilder) Unit(unit string) *VariableBuilder {
	v.spec.Unit = unit
	return v
}

// Category adds a category with full membership on [lo, hi].
func (v *VariableBuilder) Category(name string, lo, hi float64) *VariableBuilder {
	v.spec.Categories = append(v.spec.Categories, schema.CategorySpec{Name: name, Min: lo, Max: hi})
	return v
}

// Peak adds a singleton category at value.
func (v *VariableBuilder) Peak(name string, value float64) *VariableBuilder {
	return v.Category(name, value, value)
}

// ControllerBuilder provides a fluent API for declaring rules.
type ControllerBuilder struct {
	spec schema.ControllerSpec
}

// Rule adds "if A is a and B is b then output".
func (c *ControllerBuilder) Rule(a, b, then string) *ControllerBuilder {
	c.spec.Rules = append(c.spec.Rules, schema.RuleSpec{A: a, B: b, Then: then})
	return c
}

// Table adds one rule per column for the row category a: columns[i] -> outputs[i].
// Empty outputs are skipped, leaving the pair without a rule.
func (c *ControllerBuilder) Table(a string, columns []string, outputs ...string) *ControllerBuilder {
	for i, col := range columns {
		if i >= len(outputs) || outputs[i] == "" {
			continue
		}
		c.Rule(a, col, outputs[i])
	}
	return c
}

// StageBuilder provides a fluent API for declaring a pipeline stage.
type StageBuilder struct {
	spec schema.StageSpec
}

// Use selects the controller evaluated by the stage.
func (s *StageBuilder) Use(controller string) *StageBuilder {
	s.spec.Controller = controller
	return s
}

// From sets the two values (inputs or earlier stages) fed to the controller.
func (s *StageBuilder) From(a, b string) *StageBuilder {
	s.spec.From = []string{a, b}
	return s
}

// Into selects the variable used to defuzzify the stage output.
func (s *StageBuilder) Into(output string) *StageBuilder {
	s.spec.Output = output
	return s
}

// Every sets the defuzzification sampling interval.
func (s *StageBuilder) Every(interval float64) *StageBuilder {
	s.spec.Interval = interval
	return s
}
