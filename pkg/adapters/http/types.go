package http

import (
	"github.com/aretw0/mamdani/pkg/controller"
	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/schema"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FuzzifyRequest is the body of POST /fuzzify.
type FuzzifyRequest struct {
	Variable string   `json:"variable" validate:"required"`
	Value    *float64 `json:"value" validate:"required"`
}

// FuzzifyResponse is returned by POST /fuzzify.
type FuzzifyResponse struct {
	Variable   string            `json:"variable"`
	Value      float64           `json:"value"`
	Membership domain.Membership `json:"membership"`
}

// DefuzzifyRequest is the body of POST /defuzzify.
type DefuzzifyRequest struct {
	Variable   string             `json:"variable" validate:"required"`
	Membership map[string]float64 `json:"membership" validate:"required,dive,keys,required,endkeys,gte=0,lte=1"`
	Interval   float64            `json:"interval,omitempty" validate:"gte=0"`
}

// DefuzzifyResponse is returned by POST /defuzzify.
type DefuzzifyResponse struct {
	Variable string  `json:"variable"`
	Crisp    float64 `json:"crisp"`
}

// InferRequest is the body of POST /infer.
type InferRequest struct {
	Controller string   `json:"controller" validate:"required"`
	A          *float64 `json:"a" validate:"required"`
	B          *float64 `json:"b" validate:"required"`
	Explain    bool     `json:"explain,omitempty"`
}

// InferResponse is returned by POST /infer.
type InferResponse struct {
	Controller  string                  `json:"controller"`
	Membership  domain.Membership       `json:"membership"`
	Activations []controller.Activation `json:"activations,omitempty"`
}

// EvaluateRequest is the body of POST /evaluate.
type EvaluateRequest struct {
	Inputs map[string]float64 `json:"inputs" validate:"required,min=1"`
}

// VariableResponse describes one variable.
type VariableResponse struct {
	Name       string                `json:"name"`
	Unit       string                `json:"unit,omitempty"`
	Min        float64               `json:"min"`
	Max        float64               `json:"max"`
	Categories []schema.CategorySpec `json:"categories"`
}

// ValidateResponse is returned by POST /validate.
type ValidateResponse struct {
	Valid       bool     `json:"valid"`
	Name        string   `json:"name,omitempty"`
	Variables   int      `json:"variables,omitempty"`
	Controllers int      `json:"controllers,omitempty"`
	Stages      int      `json:"stages,omitempty"`
	Errors      []string `json:"errors,omitempty"`
}

// RecordList is returned by GET /records.
type RecordList struct {
	Records []string `json:"records"`
}

func variableResponse(spec schema.VariableSpec) VariableResponse {
	resp := VariableResponse{Name: spec.Name, Unit: spec.Unit, Categories: spec.Categories}
	for i, c := range spec.Categories {
		if i == 0 || c.Min < resp.Min {
			resp.Min = c.Min
		}
		if i == 0 || c.Max > resp.Max {
			resp.Max = c.Max
		}
	}
	return resp
}
