package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/mamdani/pkg/controller"
	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/pipeline"
)

// MembershipTable renders degrees as a markdown table, strongest first.
func MembershipTable(title string, m domain.Membership) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", title)
	if len(m) == 0 {
		sb.WriteString("_No category matched._\n")
		return sb.String()
	}

	names := m.Names()
	slices.SortStableFunc(names, func(a, b string) int { return cmp.Compare(m[b], m[a]) })

	sb.WriteString("| Category | Degree |\n|---|---:|\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "| %s | %.4f |\n", name, m[name])
	}
	return sb.String()
}

// ActivationTable renders the rules that fired.
func ActivationTable(acts []controller.Activation) string {
	var sb strings.Builder
	sb.WriteString("## Fired rules\n\n")
	if len(acts) == 0 {
		sb.WriteString("_No rule fired._\n")
		return sb.String()
	}
	sb.WriteString("| A | B | Then | Strength |\n|---|---|---|---:|\n")
	for _, a := range acts {
		fmt.Fprintf(&sb, "| %s (%.3f) | %s (%.3f) | %s | %.4f |\n", a.A, a.DegreeA, a.B, a.DegreeB, a.Output, a.Strength)
	}
	return sb.String()
}

// RecordReport renders a pipeline evaluation.
func RecordReport(rec *domain.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", rec.Pipeline)
	fmt.Fprintf(&sb, "**%s = %.4f**\n\n", rec.Output, rec.Crisp)
	sb.WriteString("| Stage | A | B | Strongest | Crisp |\n|---|---:|---:|---|---:|\n")
	for _, s := range rec.Stages {
		strongest := "-"
		if name, deg, ok := s.Membership.Strongest(); ok {
			strongest = fmt.Sprintf("%s (%.3f)", name, deg)
		}
		fmt.Fprintf(&sb, "| %s | %g | %g | %s | %.4f |\n", s.Stage, s.InputA, s.InputB, strongest, s.Crisp)
	}
	fmt.Fprintf(&sb, "\n_Record %s_\n", rec.ID)
	return sb.String()
}

// SweepReport renders a sweep over one input.
func SweepReport(input string, points []pipeline.SweepPoint) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Sweep over %s\n\n", input)
	if len(points) == 0 {
		sb.WriteString("_No values._\n")
		return sb.String()
	}
	fmt.Fprintf(&sb, "| %s | %s |\n|---:|---:|\n", input, points[0].Result.Output)
	for _, p := range points {
		fmt.Fprintf(&sb, "| %g | %.4f |\n", p.Value, p.Crisp)
	}
	return sb.String()
}
