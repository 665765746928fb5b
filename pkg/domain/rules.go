package domain

import "sort"

// RuleKey identifies a rule by the category names of its two antecedents.
type RuleKey struct {
	A string `json:"a" yaml:"a" mapstructure:"a"`
	B string `json:"b" yaml:"b" mapstructure:"b"`
}

// RuleTable is a sparse mapping (category A, category B) -> output category.
// Pairs absent from the table contribute nothing to inference.
type RuleTable map[RuleKey]string

// Lookup returns the output category for the pair, if a rule exists.
func (t RuleTable) Lookup(a, b string) (string, bool) {
	out, ok := t[RuleKey{A: a, B: b}]
	return out, ok
}

// Clone returns an independent copy of the table.
func (t RuleTable) Clone() RuleTable {
	out := make(RuleTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Outputs returns the distinct output categories referenced by the table, sorted.
func (t RuleTable) Outputs() []string {
	seen := make(map[string]bool, len(t))
	var outs []string
	for _, out := range t {
		if !seen[out] {
			seen[out] = true
			outs = append(outs, out)
		}
	}
	sort.Strings(outs)
	return outs
}
