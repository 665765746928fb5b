/*
Package variable implements fuzzification and defuzzification for a single linguistic variable.

A Variable owns an ordered set of categories (sorted ascending by their upper bound). A crisp
value inside a category core has full membership in it; a value in the gap between two
consecutive cores is split linearly between them. Defuzzification samples the variable's domain
on a regular grid and returns the centroid of the clipped aggregate.

	humidity, err := variable.New("humidity", map[string]domain.Bounds{
		"Sec":    {Min: 0, Max: 40},
		"Humide": {Min: 60, Max: 70},
		"Trempé": {Min: 80, Max: 100},
	})
	m, _ := humidity.Fuzzify(50) // {Sec: 0.5, Humide: 0.5}
	crisp, _ := humidity.Defuzzify(m)

Variables are immutable after construction and safe for concurrent use.
*/
package variable
