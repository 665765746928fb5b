package domain

import (
	"time"

	"github.com/google/uuid"
)

// StageOutcome is the persisted result of one pipeline stage.
type StageOutcome struct {
	Stage      string     `json:"stage"`
	InputA     float64    `json:"input_a"`
	InputB     float64    `json:"input_b"`
	Membership Membership `json:"membership"`
	Crisp      float64    `json:"crisp"`
}

// Record captures one pipeline evaluation for auditing.
type Record struct {
	ID        string             `json:"id"`
	Pipeline  string             `json:"pipeline"`
	CreatedAt time.Time          `json:"created_at"`
	Inputs    map[string]float64 `json:"inputs"`
	Stages    []StageOutcome     `json:"stages"`
	Output    string             `json:"output"`
	Crisp     float64            `json:"crisp"`
}

// NewRecord creates a record with a fresh random ID.
func NewRecord(pipeline string, inputs map[string]float64) *Record {
	copied := make(map[string]float64, len(inputs))
	for k, v := range inputs {
		copied[k] = v
	}
	return &Record{
		ID:        uuid.NewString(),
		Pipeline:  pipeline,
		CreatedAt: time.Now().UTC(),
		Inputs:    copied,
	}
}

// Clone returns a deep copy so stores can isolate callers from their internal state.
func (r *Record) Clone() *Record {
	out := *r
	out.Inputs = make(map[string]float64, len(r.Inputs))
	for k, v := range r.Inputs {
		out.Inputs[k] = v
	}
	out.Stages = make([]StageOutcome, len(r.Stages))
	for i, s := range r.Stages {
		s.Membership = s.Membership.Clone()
		out.Stages[i] = s
	}
	return &out
}
