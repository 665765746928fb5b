package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/mamdani/pkg/controller"
	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/pipeline"
)

func TestMembershipTable(t *testing.T) {
	got := MembershipTable("spray", domain.Membership{"Longue": 0.375, "Moyenne": 0.625})
	assert.Equal(t, "## spray\n\n| Category | Degree |\n|---|---:|\n| Moyenne | 0.6250 |\n| Longue | 0.3750 |\n", got)

	assert.Contains(t, MembershipTable("empty", nil), "No category matched")
}

func TestActivationTable(t *testing.T) {
	got := ActivationTable([]controller.Activation{
		{A: "Sec", B: "Froide", Output: "Courte", DegreeA: 0.5, DegreeB: 0.875, Strength: 0.5},
	})
	assert.Contains(t, got, "| Sec (0.500) | Froide (0.875) | Courte | 0.5000 |")
	assert.Contains(t, ActivationTable(nil), "No rule fired")
}

func TestRecordReport(t *testing.T) {
	rec := &domain.Record{
		ID:       "abc",
		Pipeline: "irrigation",
		Output:   "spray",
		Crisp:    17.113590263691684,
		Stages: []domain.StageOutcome{
			{Stage: "spray", InputA: 65, InputB: 33, Membership: domain.Membership{"Moyenne": 0.625, "Longue": 0.375}, Crisp: 17.113590263691684},
			{Stage: "empty", InputA: 100, InputB: 0, Membership: domain.Membership{}},
		},
	}

	got := RecordReport(rec)
	assert.Contains(t, got, "# irrigation")
	assert.Contains(t, got, "**spray = 17.1136**")
	assert.Contains(t, got, "| spray | 65 | 33 | Moyenne (0.625) | 17.1136 |")
	assert.Contains(t, got, "| empty | 100 | 0 | - | 0.0000 |")
	assert.Contains(t, got, "_Record abc_")
}

func TestSweepReport(t *testing.T) {
	points := []pipeline.SweepPoint{
		{Value: 10, Crisp: 15.895573627159429, Result: &pipeline.Result{Output: "att_spray"}},
		{Value: 100, Crisp: 3.5685858110534427, Result: &pipeline.Result{Output: "att_spray"}},
	}
	got := SweepReport("sensibility", points)
	assert.Contains(t, got, "| sensibility | att_spray |")
	assert.Contains(t, got, "| 10 | 15.8956 |")
	assert.Contains(t, got, "| 100 | 3.5686 |")
}

func TestNewRenderer_Plain(t *testing.T) {
	render := NewRenderer(true)
	out, err := render("# title")
	assert.NoError(t, err)
	assert.Equal(t, "# title", out)
}
