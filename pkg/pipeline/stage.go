package pipeline

import (
	"errors"
	"fmt"

	"github.com/aretw0/mamdani/pkg/domain"
)

// ErrMissingInput is returned when Run is called without a declared input value.
var ErrMissingInput = errors.New("missing pipeline input")

// Inferrer combines two crisp values into output membership degrees.
type Inferrer interface {
	Name() string
	FuzzifyPair(valueA, valueB float64) (domain.Membership, error)
}

// Defuzzifier turns membership degrees back into a crisp value.
type Defuzzifier interface {
	Name() string
	DefuzzifyStep(degrees domain.Membership, interval float64) (float64, error)
}

// Stage is one (controller, output variable) step of a pipeline.
type Stage struct {
	Name       string
	Controller Inferrer
	Output     Defuzzifier
	// InputA and InputB name a pipeline input or an earlier stage.
	InputA string
	InputB string
	// Interval is the defuzzification sampling step; zero means 1.
	Interval float64
}

func (s Stage) interval() float64 {
	if s.Interval == 0 {
		return 1
	}
	return s.Interval
}

// StageResult is the outcome of a single stage.
type StageResult struct {
	Stage      string            `json:"stage"`
	InputA     float64           `json:"input_a"`
	InputB     float64           `json:"input_b"`
	Membership domain.Membership `json:"membership"`
	Crisp      float64           `json:"crisp"`
}

// StageError attributes a failure to the stage that produced it.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %q: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
