/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically declaring fuzzy
variables, rule controllers and pipeline stages.

It produces the same schema.Document as the YAML/JSON/TOML loaders, so a pipeline can be
declared in code for tests, examples or generated configurations, and still be validated and
compiled by the registry.

Example usage:

	b := dsl.New("irrigation").Inputs("humidity", "temperature")

	b.Variable("humidity").
		Category("Sec", 0, 40).
		Category("Humide", 60, 70).
		Category("Trempé", 80, 100)

	b.Variable("temperature").
		Category("Froide", 0, 5).
		Peak("Douce", 13)

	b.Variable("spray").
		Peak("Courte", 5).
		Peak("Longue", 30)

	b.Controller("spray", "humidity", "temperature").
		Rule("Sec", "Froide", "Courte").
		Rule("Humide", "Douce", "Longue")

	b.Stage("spray").Use("spray").From("humidity", "temperature").Into("spray")

	reg, err := b.Build()
*/
package dsl
