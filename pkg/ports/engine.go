package ports

import (
	"context"

	"github.com/aretw0/mamdani/pkg/controller"
	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/schema"
)

// InferenceEngine defines the operations that driving adapters (HTTP, MCP, CLI) call.
// Implementations resolve components by name in the active document.
type InferenceEngine interface {
	// Fuzzify converts a crisp value into membership degrees of the named variable.
	Fuzzify(ctx context.Context, variable string, value float64) (domain.Membership, error)

	// Defuzzify converts membership degrees of the named variable back into a crisp value.
	Defuzzify(ctx context.Context, variable string, degrees domain.Membership, interval float64) (float64, error)

	// Infer applies the named controller to a pair of crisp inputs.
	Infer(ctx context.Context, controller string, valueA, valueB float64) (domain.Membership, error)

	// Explain lists the rules that fire for a pair of inputs.
	Explain(ctx context.Context, controller string, valueA, valueB float64) ([]controller.Activation, error)

	// Evaluate runs the stage pipeline.
	Evaluate(ctx context.Context, inputs map[string]float64) (*domain.Record, error)

	// Document returns a copy of the active document for introspection.
	Document() *schema.Document
}
