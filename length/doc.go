// Package length provides units of length and the Length, Area and
// Volume quantities built from them.
//
// Each unit is defined relative to meters with a conversion factor:
//
//	a := length.Of[length.Cm](25.5)    // 25.5 cm
//	b := length.Of[length.M](1.2)      // 1.2 m
//	c := b.By(length.M{})              // 1.2 m²
//	d := c.Times(length.Of[length.M](2)) // 2.4 m³
//	// b.Times(length.Of[length.Mi](1)) does not compile: units must match
//
// Quantities of one kind combine only when their unit types are
// identical. Use To, AreaTo or VolumeTo to change units first.
package length

//go:generate go run github.com/custodia-labs/mag/cmd/unitgen generate --table units.toml --out units_gen.go
