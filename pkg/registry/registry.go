// Package registry compiles a schema document into ready-to-use variables, controllers and
// the stage pipeline, and resolves them by name.
package registry

import (
	"fmt"
	"sort"

	"github.com/aretw0/mamdani/pkg/controller"
	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/pipeline"
	"github.com/aretw0/mamdani/pkg/schema"
	"github.com/aretw0/mamdani/pkg/variable"
)

// Registry holds the compiled components of a document. It is immutable.
type Registry struct {
	doc         *schema.Document
	variables   map[string]*variable.Variable
	controllers map[string]*controller.Controller
	pipeline    *pipeline.Pipeline
}

// Compile validates doc and builds every component.
// Pipeline options (logger, hooks, concurrency) are forwarded to the stage pipeline.
func Compile(doc *schema.Document, opts ...pipeline.Option) (*Registry, error) {
	if err := schema.Validate(doc); err != nil {
		return nil, err
	}

	r := &Registry{
		doc:         doc,
		variables:   make(map[string]*variable.Variable, len(doc.Variables)),
		controllers: make(map[string]*controller.Controller, len(doc.Controllers)),
	}

	for _, spec := range doc.Variables {
		v, err := variable.NewFromCategories(spec.Name, spec.DomainCategories()...)
		if err != nil {
			return nil, err
		}
		r.variables[spec.Name] = v
	}

	for _, spec := range doc.Controllers {
		r.controllers[spec.Name] = controller.New(spec.Name, r.variables[spec.A], r.variables[spec.B], spec.RuleTable())
	}

	if len(doc.Stages) == 0 {
		return r, nil
	}

	stages := make([]pipeline.Stage, len(doc.Stages))
	for i, spec := range doc.Stages {
		stages[i] = pipeline.Stage{
			Name:       spec.Name,
			Controller: r.controllers[spec.Controller],
			Output:     r.variables[spec.Output],
			InputA:     spec.From[0],
			InputB:     spec.From[1],
			Interval:   spec.Interval,
		}
	}

	opts = append([]pipeline.Option{pipeline.WithName(doc.Name)}, opts...)
	p, err := pipeline.New(doc.Inputs, stages, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline: %w", err)
	}
	r.pipeline = p

	return r, nil
}

// Document returns the source document.
func (r *Registry) Document() *schema.Document { return r.doc }

// Variable looks up a compiled variable by name.
func (r *Registry) Variable(name string) (*variable.Variable, error) {
	v, ok := r.variables[name]
	if !ok {
		return nil, fmt.Errorf("variable %q: %w", name, domain.ErrNotFound)
	}
	return v, nil
}

// Controller looks up a compiled controller by name.
func (r *Registry) Controller(name string) (*controller.Controller, error) {
	c, ok := r.controllers[name]
	if !ok {
		return nil, fmt.Errorf("controller %q: %w", name, domain.ErrNotFound)
	}
	return c, nil
}

// Pipeline returns the stage pipeline, or an error if the document declares no stages.
func (r *Registry) Pipeline() (*pipeline.Pipeline, error) {
	if r.pipeline == nil {
		return nil, fmt.Errorf("pipeline %q: %w", r.doc.Name, domain.ErrNotFound)
	}
	return r.pipeline, nil
}

// VariableNames returns the variable names in lexical order.
func (r *Registry) VariableNames() []string {
	return sortedKeys(r.variables)
}

// ControllerNames returns the controller names in lexical order.
func (r *Registry) ControllerNames() []string {
	return sortedKeys(r.controllers)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
