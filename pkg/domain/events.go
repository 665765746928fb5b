package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventFuzzify    EventType = "fuzzify"
	EventInfer      EventType = "infer"
	EventStageEnter EventType = "stage_enter"
	EventStageLeave EventType = "stage_leave"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// InferEvent is emitted after a controller combined two crisp inputs.
type InferEvent struct {
	EventBase
	Controller string     `json:"controller"`
	InputA     float64    `json:"input_a"`
	InputB     float64    `json:"input_b"`
	Result     Membership `json:"result,omitempty"`
	Err        error      `json:"-"`
}

// FuzzifyEvent is emitted after a single variable fuzzified a crisp value.
type FuzzifyEvent struct {
	EventBase
	Variable string     `json:"variable"`
	Value    float64    `json:"value"`
	Result   Membership `json:"result,omitempty"`
	Err      error      `json:"-"`
}

// StageEvent represents entry or exit from a pipeline stage.
type StageEvent struct {
	EventBase
	Stage    string        `json:"stage"`
	Crisp    float64       `json:"crisp,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks may be called from several goroutines when stages run in parallel.
type LifecycleHooks struct {
	OnFuzzify    func(context.Context, *FuzzifyEvent)
	OnInfer      func(context.Context, *InferEvent)
	OnStageEnter func(context.Context, *StageEvent)
	OnStageLeave func(context.Context, *StageEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnFuzzify:    chain(h.OnFuzzify, other.OnFuzzify),
		OnInfer:      chain(h.OnInfer, other.OnInfer),
		OnStageEnter: chain(h.OnStageEnter, other.OnStageEnter),
		OnStageLeave: chain(h.OnStageLeave, other.OnStageLeave),
	}
}

func chain[E any](first, second func(context.Context, E)) func(context.Context, E) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(ctx context.Context, e E) {
		first(ctx, e)
		second(ctx, e)
	}
}
