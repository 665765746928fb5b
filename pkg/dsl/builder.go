package dsl

import (
	"github.com/aretw0/mamdani/pkg/pipeline"
	"github.com/aretw0/mamdani/pkg/registry"
	"github.com/aretw0/mamdani/pkg/schema"
)

// Builder manages the document construction.
type Builder struct {
	doc         schema.Document
	variables   map[string]*VariableBuilder
	controllers map[string]*ControllerBuilder
	stages      map[string]*StageBuilder
	order       struct{ variables, controllers, stages []string }
}

// New creates a new document builder.
func New(name string) *Builder {
	return &Builder{
		doc:         schema.Document{Name: name},
		variables:   make(map[string]*VariableBuilder),
		controllers: make(map[string]*ControllerBuilder),
		stages:      make(map[string]*StageBuilder),
	}
}

// Describe sets the document description.
func (b *Builder) Describe(text string) *Builder {
	b.doc.Description = text
	return b
}

// Inputs declares the crisp inputs of the pipeline.
func (b *Builder) Inputs(names ...string) *Builder {
	b.doc.Inputs = append(b.doc.Inputs, names...)
	return b
}

// Variable creates a variable, or returns the existing builder with that name.
func (b *Builder) Variable(name string) *VariableBuilder {
	if vb, ok := b.variables[name]; ok {
		return vb
	}
	vb := &VariableBuilder{spec: schema.VariableSpec{Name: name}}
	b.variables[name] = vb
	b.order.variables = append(b.order.variables, name)
	return vb
}

// Controller creates a controller over variables a and b, or returns the existing builder.
func (b *Builder) Controller(name, a, bVar string) *ControllerBuilder {
	if cb, ok := b.controllers[name]; ok {
		return cb
	}
	cb := &ControllerBuilder{spec: schema.ControllerSpec{Name: name, A: a, B: bVar}}
	b.controllers[name] = cb
	b.order.controllers = append(b.order.controllers, name)
	return cb
}

// Stage creates a pipeline stage, or returns the existing builder. Stages keep declaration order.
// The controller and output default to the stage name.
func (b *Builder) Stage(name string) *StageBuilder {
	if sb, ok := b.stages[name]; ok {
		return sb
	}
	sb := &StageBuilder{spec: schema.StageSpec{Name: name, Controller: name, Output: name}}
	b.stages[name] = sb
	b.order.stages = append(b.order.stages, name)
	return sb
}

// Document assembles the declared components into a schema document.
func (b *Builder) Document() *schema.Document {
	doc := b.doc
	doc.Inputs = append([]string(nil), b.doc.Inputs...)
	doc.Variables = nil
	doc.Controllers = nil
	doc.Stages = nil

	for _, name := range b.order.variables {
		spec := b.variables[name].spec
		spec.Categories = append([]schema.CategorySpec(nil), spec.Categories...)
		doc.Variables = append(doc.Variables, spec)
	}
	for _, name := range b.order.controllers {
		spec := b.controllers[name].spec
		spec.Rules = append([]schema.RuleSpec(nil), spec.Rules...)
		doc.Controllers = append(doc.Controllers, spec)
	}
	for _, name := range b.order.stages {
		spec := b.stages[name].spec
		spec.From = append([]string(nil), spec.From...)
		doc.Stages = append(doc.Stages, spec)
	}
	return &doc
}

// Build validates and compiles the document.
func (b *Builder) Build(opts ...pipeline.Option) (*registry.Registry, error) {
	return registry.Compile(b.Document(), opts...)
}
