package variable

import (
	"fmt"
	"math"
	"sort"

	"github.com/aretw0/mamdani/pkg/domain"
)

// DefaultInterval is the sampling step used by Defuzzify.
const DefaultInterval = 1.0

// Variable converts crisp values to and from membership degrees.
type Variable struct {
	name string
	sets []domain.Category
}

// New builds a variable from a mapping of category name to core bounds.
func New(name string, categories map[string]domain.Bounds) (*Variable, error) {
	sets := make([]domain.Category, 0, len(categories))
	for catName, b := range categories {
		sets = append(sets, domain.Category{Name: catName, Min: b.Min, Max: b.Max})
	}
	return NewFromCategories(name, sets...)
}

// NewFromCategories builds a variable from an explicit category list.
// Unlike New, the list may contain duplicate names, which are rejected.
func NewFromCategories(name string, categories ...domain.Category) (*Variable, error) {
	sets := make([]domain.Category, len(categories))
	copy(sets, categories)
	sort.SliceStable(sets, func(i, j int) bool { return sets[i].Max < sets[j].Max })

	if err := validate(name, sets); err != nil {
		return nil, err
	}
	return &Variable{name: name, sets: sets}, nil
}

// MustNew is like New but panics on configuration errors.
// Intended for package-level fixtures and examples.
func MustNew(name string, categories map[string]domain.Bounds) *Variable {
	v, err := New(name, categories)
	if err != nil {
		panic(err)
	}
	return v
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// Min is the lower bound of the domain (first category's Min).
func (v *Variable) Min() float64 { return v.sets[0].Min }

// Max is the upper bound of the domain (last category's Max).
func (v *Variable) Max() float64 { return v.sets[len(v.sets)-1].Max }

// Contains reports whether value lies inside the domain.
func (v *Variable) Contains(value float64) bool {
	return value >= v.Min() && value <= v.Max()
}

// Categories returns a copy of the categories in ascending Max order.
func (v *Variable) Categories() []domain.Category {
	out := make([]domain.Category, len(v.sets))
	copy(out, v.sets)
	return out
}

// Category returns the category with the given name.
func (v *Variable) Category(name string) (domain.Category, bool) {
	for _, c := range v.sets {
		if c.Name == name {
			return c, true
		}
	}
	return domain.Category{}, false
}

// Fuzzify maps a crisp value to its membership degrees.
//
// The first category (in ascending Max order) whose core contains the value wins with degree 1.
// A value strictly between two consecutive cores is shared linearly between them.
func (v *Variable) Fuzzify(value float64) (domain.Membership, error) {
	if math.IsNaN(value) || value < v.Min() || value > v.Max() {
		return nil, &domain.OutOfRangeError{Variable: v.name, Value: value, Min: v.Min(), Max: v.Max()}
	}

	for i, cur := range v.sets {
		if cur.Contains(value) {
			return domain.Membership{cur.Name: 1.0}, nil
		}
		if i+1 == len(v.sets) {
			break
		}
		next := v.sets[i+1]
		if cur.Max < value && value < next.Min {
			degNext := (value - cur.Max) / (next.Min - cur.Max)
			return domain.Membership{
				next.Name: degNext,
				cur.Name:  1.0 - degNext,
			}, nil
		}
	}

	return nil, &domain.InconsistencyError{Variable: v.name, Value: value}
}

func (v *Variable) String() string {
	return fmt.Sprintf("%s%v", v.name, v.sets)
}
