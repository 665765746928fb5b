package schema

import "github.com/aretw0/mamdani/pkg/domain"

// Document is the root of a pipeline definition.
type Document struct {
	Name        string           `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty" mapstructure:"description"`
	Inputs      []string         `json:"inputs,omitempty" yaml:"inputs,omitempty" toml:"inputs,omitempty" mapstructure:"inputs"`
	Variables   []VariableSpec   `json:"variables" yaml:"variables" toml:"variables" mapstructure:"variables"`
	Controllers []ControllerSpec `json:"controllers,omitempty" yaml:"controllers,omitempty" toml:"controllers,omitempty" mapstructure:"controllers"`
	Stages      []StageSpec      `json:"stages,omitempty" yaml:"stages,omitempty" toml:"stages,omitempty" mapstructure:"stages"`
}

// VariableSpec declares a linguistic variable and its categories.
type VariableSpec struct {
	Name       string         `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	Unit       string         `json:"unit,omitempty" yaml:"unit,omitempty" toml:"unit,omitempty" mapstructure:"unit"`
	Categories []CategorySpec `json:"categories" yaml:"categories" toml:"categories" mapstructure:"categories"`
}

// CategorySpec is the serialized form of domain.Category.
type CategorySpec struct {
	Name string  `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	Min  float64 `json:"min" yaml:"min" toml:"min" mapstructure:"min"`
	Max  float64 `json:"max" yaml:"max" toml:"max" mapstructure:"max"`
}

// ControllerSpec declares a rule controller over two variables.
type ControllerSpec struct {
	Name  string     `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	A     string     `json:"a" yaml:"a" toml:"a" mapstructure:"a"`
	B     string     `json:"b" yaml:"b" toml:"b" mapstructure:"b"`
	Rules []RuleSpec `json:"rules" yaml:"rules" toml:"rules" mapstructure:"rules"`
}

// RuleSpec maps a pair of antecedent categories to an output category.
type RuleSpec struct {
	A    string `json:"a" yaml:"a" toml:"a" mapstructure:"a"`
	B    string `json:"b" yaml:"b" toml:"b" mapstructure:"b"`
	Then string `json:"then" yaml:"then" toml:"then" mapstructure:"then"`
}

// StageSpec declares one pipeline stage.
type StageSpec struct {
	Name       string   `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	Controller string   `json:"controller" yaml:"controller" toml:"controller" mapstructure:"controller"`
	Output     string   `json:"output" yaml:"output" toml:"output" mapstructure:"output"`
	From       []string `json:"from" yaml:"from" toml:"from" mapstructure:"from"`
	Interval   float64  `json:"interval,omitempty" yaml:"interval,omitempty" toml:"interval,omitempty" mapstructure:"interval"`
}

// DomainCategories converts the spec to domain categories.
func (v VariableSpec) DomainCategories() []domain.Category {
	out := make([]domain.Category, len(v.Categories))
	for i, c := range v.Categories {
		out[i] = domain.Category{Name: c.Name, Min: c.Min, Max: c.Max}
	}
	return out
}

// RuleTable converts the rule list to a lookup table. Later duplicates override earlier ones.
func (c ControllerSpec) RuleTable() domain.RuleTable {
	table := make(domain.RuleTable, len(c.Rules))
	for _, r := range c.Rules {
		table[domain.RuleKey{A: r.A, B: r.B}] = r.Then
	}
	return table
}

// Variable returns the variable spec with the given name.
func (d *Document) Variable(name string) (VariableSpec, bool) {
	for _, v := range d.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return VariableSpec{}, false
}

// Controller returns the controller spec with the given name.
func (d *Document) Controller(name string) (ControllerSpec, bool) {
	for _, c := range d.Controllers {
		if c.Name == name {
			return c, true
		}
	}
	return ControllerSpec{}, false
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := *d
	out.Inputs = append([]string(nil), d.Inputs...)
	out.Variables = make([]VariableSpec, len(d.Variables))
	for i, v := range d.Variables {
		v.Categories = append([]CategorySpec(nil), v.Categories...)
		out.Variables[i] = v
	}
	out.Controllers = make([]ControllerSpec, len(d.Controllers))
	for i, c := range d.Controllers {
		c.Rules = append([]RuleSpec(nil), c.Rules...)
		out.Controllers[i] = c
	}
	out.Stages = make([]StageSpec, len(d.Stages))
	for i, s := range d.Stages {
		s.From = append([]string(nil), s.From...)
		out.Stages[i] = s
	}
	return &out
}
