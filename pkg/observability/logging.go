package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/mamdani/pkg/domain"
)

// LogHooks returns lifecycle hooks that write every event to logger.
// Successful events are logged at debug level, failures at warn level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnFuzzify: func(ctx context.Context, e *domain.FuzzifyEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "fuzzify failed", "variable", e.Variable, "value", e.Value, "err", e.Err)
				return
			}
			logger.DebugContext(ctx, "fuzzify", "variable", e.Variable, "value", e.Value, "result", e.Result)
		},
		OnInfer: func(ctx context.Context, e *domain.InferEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "inference failed", "controller", e.Controller, "err", e.Err)
				return
			}
			logger.DebugContext(ctx, "inference",
				"controller", e.Controller,
				"input_a", e.InputA,
				"input_b", e.InputB,
				"result", e.Result,
			)
		},
		OnStageEnter: func(ctx context.Context, e *domain.StageEvent) {
			logger.DebugContext(ctx, "stage_enter", "stage", e.Stage)
		},
		OnStageLeave: func(ctx context.Context, e *domain.StageEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "stage failed", "stage", e.Stage, "duration", e.Duration, "err", e.Err)
				return
			}
			logger.DebugContext(ctx, "stage_leave", "stage", e.Stage, "crisp", e.Crisp, "duration", e.Duration)
		},
	}
}
