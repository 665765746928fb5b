package cli

import (
	"errors"

	"github.com/aretw0/mamdani/pkg/pipeline"
)

// FailedStage reports the stage a pipeline error is attributed to.
func FailedStage(err error) (string, bool) {
	var se *pipeline.StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
