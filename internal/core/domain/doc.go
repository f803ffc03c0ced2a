// Package domain defines the core entities of the unit generator.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines:
//
//   - UnitTable: the static constant table of one unit package
//   - UnitSpec: a single unit entry in that table
//   - MeasureName: the measure a table belongs to
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
