package pipeline_test

import (
	"testing"

	"github.com/aretw0/mamdani/pkg/controller"
	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/pipeline"
	"github.com/aretw0/mamdani/pkg/variable"
)

var (
	humidity = variable.MustNew("humidity", map[string]domain.Bounds{
		"Sec":    {Min: 0, Max: 40},
		"Humide": {Min: 60, Max: 70},
		"Trempé": {Min: 80, Max: 100},
	})
	temperature = variable.MustNew("temperature", map[string]domain.Bounds{
		"Froide":      {Min: 0, Max: 5},
		"Douce":       {Min: 13, Max: 13},
		"Normale":     {Min: 18, Max: 22},
		"Chaude":      {Min: 26, Max: 30},
		"Caniculaire": {Min: 38, Max: 45},
	})
	spray = variable.MustNew("spray", map[string]domain.Bounds{
		"Nulle":   {Min: 0, Max: 0},
		"Courte":  {Min: 0, Max: 5},
		"Moyenne": {Min: 10, Max: 10},
		"Longue":  {Min: 30, Max: 30},
	})
	nappe = variable.MustNew("nappe", map[string]domain.Bounds{
		"Insuffisant": {Min: 0, Max: 1},
		"Faible":      {Min: 1.5, Max: 1.5},
		"Suffisant":   {Min: 2, Max: 10},
	})
	sensibility = variable.MustNew("sensibility", map[string]domain.Bounds{
		"Marine":     {Min: 0, Max: 10},
		"Urbaine":    {Min: 50, Max: 50},
		"Désertique": {Min: 90, Max: 100},
	})
)

var (
	sprayCtl = controller.New("spray", humidity, temperature, domain.RuleTable{
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
	})
	realSprayCtl = controller.New("real_spray", spray, nappe, domain.RuleTable{
		{A: "Courte", B: "Suffisant"}:  "Courte",
		{A: "Moyenne", B: "Faible"}:    "Courte",
		{A: "Moyenne", B: "Suffisant"}: "Moyenne",
		{A: "Longue", B: "Faible"}:     "Moyenne",
		{A: "Longue", B: "Suffisant"}:  "Longue",
	})
	attSprayCtl = controller.New("att_spray", sensibility, spray, domain.RuleTable{
		{A: "Marine", B: "Nulle"}:       "Nulle",
		{A: "Marine", B: "Courte"}:      "Courte",
		{A: "Marine", B: "Moyenne"}:     "Moyenne",
		{A: "Marine", B: "Longue"}:      "Longue",
		{A: "Urbaine", B: "Nulle"}:      "Nulle",
		{A: "Urbaine", B: "Courte"}:     "Nulle",
		{A: "Urbaine", B: "Moyenne"}:    "Courte",
		{A: "Urbaine", B: "Longue"}:     "Moyenne",
		{A: "Désertique", B: "Nulle"}:   "Nulle",
		{A: "Désertique", B: "Courte"}:  "Nulle",
		{A: "Désertique", B: "Moyenne"}: "Nulle",
		{A: "Désertique", B: "Longue"}:  "Courte",
	})
)

func irrigationStages() []pipeline.Stage {
	return []pipeline.Stage{
		{Name: "spray", Controller: sprayCtl, Output: spray, InputA: "humidity", InputB: "temperature"},
		{Name: "real_spray", Controller: realSprayCtl, Output: spray, InputA: "spray", InputB: "nappe"},
		{Name: "att_spray", Controller: attSprayCtl, Output: spray, InputA: "sensibility", InputB: "real_spray"},
	}
}

func irrigation(t *testing.T, opts ...pipeline.Option) *pipeline.Pipeline {
	t.Helper()
	p, err := pipeline.New([]string{"humidity", "temperature", "nappe", "sensibility"}, irrigationStages(), opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return p
}
