package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/mamdani/pkg/schema"
)

// Overlay contains evaluation data to visualize on the graph.
type Overlay struct {
	// Values maps inputs and stage names to crisp values.
	Values map[string]float64
	// Failed names a stage that did not complete.
	Failed string
}

// GenerateMermaid produces a Mermaid flowchart of the stage pipeline.
// It applies semantic styling:
// - Input: ((Circle))
// - Stage: [[Subroutine]] labelled with controller and output variable
// Edges are labelled with the antecedent slot (a or b) they feed.
func GenerateMermaid(doc *schema.Document, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, in := range doc.Inputs {
		fmt.Fprintf(&sb, "    %s((\"%s%s\"))\n", sanitizeMermaidID(in), in, value(overlay, in))
	}

	for _, st := range doc.Stages {
		safeID := sanitizeMermaidID(st.Name)
		fmt.Fprintf(&sb, "    %s[[\"%s <br/> %s → %s%s\"]]\n", safeID, st.Name, st.Controller, st.Output, value(overlay, st.Name))

		for i, from := range st.From {
			slot := "a"
			if i == 1 {
				slot = "b"
			}
			fmt.Fprintf(&sb, "    %s -- %s --> %s\n", sanitizeMermaidID(from), slot, safeID)
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast regardless of theme (Light/Dark)
		sb.WriteString("    classDef evaluated fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#ffcdd2,stroke:#b71c1c,stroke-width:4px,color:#000;\n")

		names := make([]string, 0, len(overlay.Values))
		for name := range overlay.Values {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(&sb, "    class %s evaluated;\n", sanitizeMermaidID(name))
		}
		if overlay.Failed != "" {
			fmt.Fprintf(&sb, "    class %s failed;\n", sanitizeMermaidID(overlay.Failed))
		}
	}

	return sb.String()
}

func value(overlay *Overlay, name string) string {
	if overlay == nil {
		return ""
	}
	v, ok := overlay.Values[name]
	if !ok {
		return ""
	}
	return fmt.Sprintf(" <br/> %.2f", v)
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
