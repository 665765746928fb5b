// Package schema defines the declarative document describing variables, controllers and
// pipeline stages, and validates it before compilation.
//
// Documents can be written in YAML, JSON or TOML:
//
//	name: irrigation
//	inputs: [humidity, temperature]
//	variables:
//	  - name: humidity
//	    categories:
//	      - {name: Sec, min: 0, max: 40}
//	      - {name: Humide, min: 60, max: 70}
//	controllers:
//	  - name: spray
//	    a: humidity
//	    b: temperature
//	    rules:
//	      - {a: Sec, b: Froide, then: Courte}
//	stages:
//	  - {name: spray, controller: spray, output: spray, from: [humidity, temperature]}
//
// Validate reports every structural problem at once through an *AggregateError.
// Semantic checks on category layout (ordering, gaps) happen when variables are built.
package schema
