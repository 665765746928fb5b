package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/pipeline"
)

func TestSweep_Sensibility(t *testing.T) {
	p := irrigation(t, pipeline.WithConcurrency(2))
	base := map[string]float64{"nappe": 1.75, "humidity": 65, "temperature": 33}

	points, err := p.Sweep(context.Background(), base, "sensibility", []float64{10, 20, 30, 50, 100})
	require.NoError(t, err)
	require.Len(t, points, 5)

	want := []float64{
		15.895573627159429,
		14.724184978986326,
		13.690745263402466,
		10.249604907676208,
		3.5685858110534427,
	}
	for i, pt := range points {
		assert.InDelta(t, want[i], pt.Crisp, 1e-9, "sensibility %g", pt.Value)
		assert.InDelta(t, 14.505128224116348, pt.Result.Values["real_spray"], 1e-9)
	}
	assert.NotContains(t, base, "sensibility", "base inputs must not be mutated")
}

func TestSweep_Errors(t *testing.T) {
	p := irrigation(t)
	base := map[string]float64{"nappe": 1.75, "humidity": 65, "temperature": 33}

	_, err := p.Sweep(context.Background(), base, "wind", []float64{1})
	assert.ErrorIs(t, err, pipeline.ErrMissingInput)

	_, err = p.Sweep(context.Background(), base, "sensibility", []float64{10, 500})
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	assert.Contains(t, err.Error(), "sensibility=500")
}
