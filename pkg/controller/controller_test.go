package controller_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mamdani/pkg/controller"
	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/variable"
)

func sprayController(t *testing.T) *controller.Controller {
	t.Helper()
	humidity := variable.MustNew("humidity", map[string]domain.Bounds{
		"Sec":    {Min: 0, Max: 40},
		"Humide": {Min: 60, Max: 70},
		"Trempé": {Min: 80, Max: 100},
	})
	temperature := variable.MustNew("temperature", map[string]domain.Bounds{
		"Froide":      {Min: 0, Max: 5},
		"Douce":       {Min: 13, Max: 13},
		"Normale":     {Min: 18, Max: 22},
		"Chaude":      {Min: 26, Max: 30},
		"Caniculaire": {Min: 38, Max: 45},
	})

	rules := domain.RuleTable{
		{A: "Sec", B: "Froide"}:         "Courte",
		{A: "Sec", B: "Douce"}:          "Moyenne",
		{A: "Sec", B: "Normale"}:        "Moyenne",
		{A: "Sec", B: "Chaude"}:         "Longue",
		{A: "Sec", B: "Caniculaire"}:    "Longue",
		{A: "Humide", B: "Douce"}:       "Courte",
		{A: "Humide", B: "Normale"}:     "Moyenne",
		{A: "Humide", B: "Chaude"}:      "Moyenne",
		{A: "Humide", B: "Caniculaire"}: "Longue",
		{A: "Trempé", B: "Caniculaire"}: "Courte",
	}
	return controller.New("spray", humidity, temperature, rules)
}

func TestFuzzifyPair(t *testing.T) {
	c := sprayController(t)

	tests := []struct {
		a, b float64
		want domain.Membership
	}{
		{65, 33, domain.Membership{"Moyenne": 0.625, "Longue": 0.375}},
		{50, 6, domain.Membership{"Courte": 0.5, "Moyenne": 0.125}},
		{20, 20, domain.Membership{"Moyenne": 1}},
	}

	for _, tt := range tests {
		got, err := c.FuzzifyPair(tt.a, tt.b)
		require.NoError(t, err)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("FuzzifyPair(%g, %g) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
		}
	}
}

func TestFuzzifyPair_NoRuleFires(t *testing.T) {
	c := sprayController(t)

	got, err := c.FuzzifyPair(100, 0)
	require.NoError(t, err)
	assert.Empty(t, got, "Trempé x Froide has no rule")
	assert.NotNil(t, got)
}

func TestFuzzifyPair_MaxOfMins(t *testing.T) {
	c := sprayController(t)

	// humidity 50 -> Sec 0.5 / Humide 0.5; temperature 6 -> Froide 0.875 / Douce 0.125.
	// Courte fires twice: min(0.5, 0.875) and min(0.5, 0.125); the larger one wins.
	acts, err := c.Explain(50, 6)
	require.NoError(t, err)
	require.Len(t, acts, 3)

	assert.Equal(t, controller.Activation{A: "Humide", B: "Douce", Output: "Courte", DegreeA: 0.5, DegreeB: 0.125, Strength: 0.125}, acts[0])
	assert.Equal(t, controller.Activation{A: "Sec", B: "Froide", Output: "Courte", DegreeA: 0.5, DegreeB: 0.875, Strength: 0.5}, acts[1])
	assert.Equal(t, "Moyenne", acts[2].Output)
}

func TestExplain_OrderedByOutputThenAntecedents(t *testing.T) {
	c := sprayController(t)

	acts, err := c.Explain(50, 6)
	require.NoError(t, err)

	for i := 1; i < len(acts); i++ {
		prev, cur := acts[i-1], acts[i]
		key := func(a controller.Activation) string { return a.Output + "\x00" + a.A + "\x00" + a.B }
		assert.Less(t, key(prev), key(cur), "activation %d out of order", i)
	}
	// Names decide the order, not strength.
	assert.Less(t, acts[0].Strength, acts[1].Strength)
}

func TestFuzzifyPair_PropagatesRangeErrors(t *testing.T) {
	c := sprayController(t)

	_, err := c.FuzzifyPair(101, 20)
	var oor *domain.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "humidity", oor.Variable)

	_, err = c.FuzzifyPair(50, -3)
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "temperature", oor.Variable)
}

func TestController_RulesAreCopied(t *testing.T) {
	a := variable.MustNew("a", map[string]domain.Bounds{"lo": {Min: 0, Max: 1}, "hi": {Min: 2, Max: 3}})
	rules := domain.RuleTable{{A: "lo", B: "lo"}: "low"}
	c := controller.New("copy", a, a, rules)

	rules[domain.RuleKey{A: "lo", B: "lo"}] = "changed"

	got, err := c.FuzzifyPair(0, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.Membership{"low": 1}, got)

	x, y := c.Inputs()
	assert.Equal(t, "a", x)
	assert.Equal(t, "a", y)
	assert.Len(t, c.Rules(), 1)
}

func TestController_ConcurrentReads(t *testing.T) {
	c := sprayController(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := c.FuzzifyPair(65, 33)
				assert.NoError(t, err)
				assert.Equal(t, 0.625, got["Moyenne"])
			}
		}()
	}
	wg.Wait()
}
