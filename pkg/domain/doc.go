/*
Package domain contains the core value types of the mamdani inference engine.

It defines the vocabulary shared by every other package: categories (named ranges of full
membership), membership maps, sparse rule tables, evaluation records and the error taxonomy.
This package is kept pure and free of external dependencies like I/O or persistence,
following Hexagonal Architecture principles.

# Key Entities

  - Category: A named interval [Min, Max] where a variable fully belongs to a linguistic term.
  - Membership: Degrees in [0, 1] per category name, produced by fuzzification and inference.
  - RuleTable: A partial function (category A, category B) -> output category.
  - Record: A persisted snapshot of one pipeline evaluation.
*/
package domain
