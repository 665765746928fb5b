package schema_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mamdani/internal/testutils"
	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/schema"
)

func TestValidate_Irrigation(t *testing.T) {
	doc := testutils.IrrigationDocument(t)

	assert.NoError(t, schema.Validate(doc))
	assert.Len(t, doc.Variables, 5)
	assert.Len(t, doc.Controllers, 3)
	assert.Len(t, doc.Stages, 3)

	v, ok := doc.Variable("temperature")
	require.True(t, ok)
	assert.Equal(t, "°C", v.Unit)
	assert.Equal(t, domain.Category{Name: "Douce", Min: 13, Max: 13}, v.DomainCategories()[1])

	c, ok := doc.Controller("spray")
	require.True(t, ok)
	out, ok := c.RuleTable().Lookup("Trempé", "Caniculaire")
	assert.True(t, ok)
	assert.Equal(t, "Courte", out)

	_, ok = doc.Controller("missing")
	assert.False(t, ok)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	doc := &schema.Document{
		Inputs: []string{"x", "x"},
		Variables: []schema.VariableSpec{
			{Name: "x", Categories: []schema.CategorySpec{{Name: "lo", Min: 5, Max: 1}, {Name: "lo", Min: 6, Max: 7}}},
			{Name: "x"},
		},
		Controllers: []schema.ControllerSpec{
			{Name: "c", A: "x", B: "y", Rules: []schema.RuleSpec{{A: "lo", B: "lo", Then: "z"}, {A: "lo", B: "lo", Then: "w"}, {A: "lo"}}},
		},
		Stages: []schema.StageSpec{
			{Name: "s", Controller: "nope", Output: "q", From: []string{"x", "later"}},
			{Name: "later", Controller: "c", Output: "x", From: []string{"x"}, Interval: -1},
		},
	}

	err := schema.Validate(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	var keys []string
	for _, e := range schema.ValidationErrors(err) {
		var ve *schema.ValidationError
		require.ErrorAs(t, e, &ve)
		keys = append(keys, ve.Key)
	}

	assert.ElementsMatch(t, []string{
		"variables[0].categories[0]",
		"variables[0].categories[1].name",
		"variables[1].name",
		"variables[1].categories",
		"controllers[0].b",
		"controllers[0].rules[1]",
		"controllers[0].rules[2]",
		"inputs[1]",
		"stages[0].controller",
		"stages[0].output",
		"stages[0].from[1]",
		"stages[1].from",
		"stages[1].output",
		"stages[1].interval",
	}, keys)
	assert.Contains(t, err.Error(), "14 validation errors")
}

func TestValidate_RuleCategories(t *testing.T) {
	doc := testutils.IrrigationDocument(t)
	doc.Controllers[0].Rules[0].A = "Humid"
	doc.Controllers[2].Rules[0].Then = "Forte"

	err := schema.Validate(doc)
	require.Error(t, err)

	var keys []string
	for _, e := range schema.ValidationErrors(err) {
		var ve *schema.ValidationError
		require.ErrorAs(t, e, &ve)
		keys = append(keys, ve.Key)
	}
	assert.ElementsMatch(t, []string{"controllers[0].rules[0].a", "stages[2].output"}, keys)
}

func TestValidate_StageInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval float64
		wantErr  bool
	}{
		{"default", 0, false},
		{"fine", 0.01, false},
		{"negative", -1, true},
		{"infinite", math.Inf(1), true},
		{"too many samples", 1e-300, true},
		{"just over the ceiling", 30.0 / domain.MaxSamples, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testutils.IrrigationDocument(t)
			doc.Stages[0].Interval = tt.interval

			err := schema.Validate(doc)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *schema.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "stages[0].interval", ve.Key)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	err := schema.Validate(nil)
	require.Error(t, err)
	assert.Len(t, schema.ValidationErrors(err), 1)
}

func TestValidate_StagesNeedInputs(t *testing.T) {
	doc := testutils.IrrigationDocument(t)
	doc.Inputs = nil

	err := schema.Validate(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stages require declared inputs")
}
