package variable_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/variable"
)

func humidity(t *testing.T) *variable.Variable {
	t.Helper()
	v, err := variable.New("humidity", map[string]domain.Bounds{
		"Sec":    {Min: 0, Max: 40},
		"Humide": {Min: 60, Max: 70},
		"Trempé": {Min: 80, Max: 100},
	})
	require.NoError(t, err)
	return v
}

func temperature(t *testing.T) *variable.Variable {
	t.Helper()
	v, err := variable.New("temperature", map[string]domain.Bounds{
		"Froide":      {Min: 0, Max: 5},
		"Douce":       {Min: 13, Max: 13},
		"Normale":     {Min: 18, Max: 22},
		"Chaude":      {Min: 26, Max: 30},
		"Caniculaire": {Min: 38, Max: 45},
	})
	require.NoError(t, err)
	return v
}

func spray(t *testing.T) *variable.Variable {
	t.Helper()
	v, err := variable.New("spray", map[string]domain.Bounds{
		"Nulle":   {Min: 0, Max: 0},
		"Courte":  {Min: 0, Max: 5},
		"Moyenne": {Min: 10, Max: 10},
		"Longue":  {Min: 30, Max: 30},
	})
	require.NoError(t, err)
	return v
}

func TestNew_SortsByMax(t *testing.T) {
	v := temperature(t)

	var names []string
	for _, c := range v.Categories() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Froide", "Douce", "Normale", "Chaude", "Caniculaire"}, names)
	assert.Equal(t, 0.0, v.Min())
	assert.Equal(t, 45.0, v.Max())
	assert.Equal(t, "temperature", v.Name())

	c, ok := v.Category("Douce")
	assert.True(t, ok)
	assert.Equal(t, domain.Category{Name: "Douce", Min: 13, Max: 13}, c)
}

func TestNew_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name       string
		categories []domain.Category
		reason     string
	}{
		{"empty", nil, "at least one category"},
		{"duplicate", []domain.Category{{Name: "a", Min: 0, Max: 1}, {Name: "a", Min: 2, Max: 3}}, "duplicate"},
		{"blank name", []domain.Category{{Name: "", Min: 0, Max: 1}}, "empty name"},
		{"inverted", []domain.Category{{Name: "a", Min: 5, Max: 1}}, "greater than max"},
		{"same max", []domain.Category{{Name: "a", Min: 0, Max: 5}, {Name: "b", Min: 2, Max: 5}}, "same max"},
		{"reaches into gap", []domain.Category{
			{Name: "a", Min: 0, Max: 10},
			{Name: "b", Min: 15, Max: 20},
			{Name: "c", Min: 12, Max: 30},
		}, "starts at 12"},
		{"nan", []domain.Category{{Name: "a", Min: math.NaN(), Max: 1}}, "non-finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := variable.NewFromCategories("x", tt.categories...)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestNew_AllowsTouchingNeighbours(t *testing.T) {
	v := spray(t)

	got, err := v.Fuzzify(0)
	require.NoError(t, err)
	assert.Equal(t, domain.Membership{"Nulle": 1}, got, "ascending-max order wins on shared values")

	got, err = v.Fuzzify(3)
	require.NoError(t, err)
	assert.Equal(t, domain.Membership{"Courte": 1}, got)
}

func TestFuzzify_InsideCore(t *testing.T) {
	v := humidity(t)

	for _, tc := range []struct {
		value float64
		want  string
	}{
		{0, "Sec"}, {20, "Sec"}, {40, "Sec"},
		{60, "Humide"}, {65, "Humide"}, {70, "Humide"},
		{80, "Trempé"}, {100, "Trempé"},
	} {
		got, err := v.Fuzzify(tc.value)
		require.NoError(t, err)
		if diff := cmp.Diff(domain.Membership{tc.want: 1}, got); diff != "" {
			t.Errorf("Fuzzify(%g) mismatch (-want +got):\n%s", tc.value, diff)
		}
	}
}

func TestFuzzify_Gap(t *testing.T) {
	v := temperature(t)

	got, err := v.Fuzzify(33)
	require.NoError(t, err)
	assert.Equal(t, domain.Membership{"Chaude": 0.625, "Caniculaire": 0.375}, got)

	got, err = v.Fuzzify(6)
	require.NoError(t, err)
	assert.Equal(t, domain.Membership{"Froide": 0.875, "Douce": 0.125}, got)
}

func TestFuzzify_GapIsMonotonicAndSumsToOne(t *testing.T) {
	v := humidity(t)

	prevSec, prevHumide := 1.0, 0.0
	for x := 40.5; x < 60; x += 0.5 {
		got, err := v.Fuzzify(x)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.InDelta(t, 1.0, got.Sum(), 1e-12, "degrees at %g", x)
		assert.Less(t, got["Sec"], prevSec)
		assert.Greater(t, got["Humide"], prevHumide)
		prevSec, prevHumide = got["Sec"], got["Humide"]
	}
}

func TestFuzzify_OutOfRange(t *testing.T) {
	v := humidity(t)

	for _, x := range []float64{-0.001, 100.5, math.NaN(), math.Inf(1)} {
		_, err := v.Fuzzify(x)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrOutOfRange)

		var oor *domain.OutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, "humidity", oor.Variable)
		assert.Equal(t, 100.0, oor.Max)
	}
	assert.False(t, v.Contains(101))
	assert.True(t, v.Contains(55))
}

func TestFuzzify_SingleCategory(t *testing.T) {
	v, err := variable.NewFromCategories("flag", domain.Category{Name: "on", Min: 1, Max: 1})
	require.NoError(t, err)

	got, err := v.Fuzzify(1)
	require.NoError(t, err)
	assert.Equal(t, domain.Membership{"on": 1}, got)

	_, err = v.Fuzzify(1.5)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
}
