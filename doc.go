/*
Package mamdani is a fuzzy inference engine for chains of two-input Mamdani controllers.

It turns crisp measurements into linguistic categories, combines them through rule tables with max-min inference, and turns the result back into a crisp value by sampled-centroid defuzzification. Controllers can be chained into pipelines where one stage's output feeds the next.

# Concept

A linguistic variable covers a numeric range with named categories. Each category is a core interval [min, max] where membership is 1; between two neighbouring cores membership falls off linearly, so a value in a gap belongs partially to both categories and the degrees always sum to 1.

A controller owns two input variables and a rule table mapping every pair of antecedent categories to an output category. The firing strength of a rule is the minimum of its antecedent degrees, and the degree of an output category is the maximum over the rules producing it.

A pipeline is a list of stages declared in a document (YAML, JSON or TOML). Each stage runs one controller, reading either external inputs or the crisp output of an earlier stage. Independent stages run concurrently.

# Key Features

  - Deterministic Inference: the same document and inputs always produce the same degrees and crisp values.
  - Hexagonal Architecture: the engine is decoupled from document loaders, record stores and transports (HTTP, MCP).
  - Hot Reload: file documents can be watched and swapped atomically without dropping requests.
  - Audit Records: every pipeline evaluation can be persisted to memory, disk or redis.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/mamdani"
	)

	func main() {
		eng, err := mamdani.New("irrigation.yaml")
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()

		// Single controller: degrees of the output variable.
		m, err := eng.Infer(ctx, "spray", 65, 33)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(m) // map[Longue:0.375 Moyenne:0.625]

		// Whole pipeline: crisp output of the last stage.
		rec, err := eng.Evaluate(ctx, map[string]float64{
			"humidity": 65, "temperature": 33, "nappe": 1.75, "sensibility": 10,
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s = %.2f\n", rec.Output, rec.Crisp)
	}
*/
package mamdani
