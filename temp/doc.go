// Package temp provides units of thermodynamic temperature and the
// Temperature quantity.
//
// Each unit is defined relative to kelvin with a conversion factor and
// the value of absolute zero on its own scale, so conversion is affine:
//
//	a := temp.Of[temp.DegF](98.6) // 98.6 °F
//	b := temp.To[temp.DegC](a)    // 37 °C (within rounding)
package temp

//go:generate go run github.com/custodia-labs/mag/cmd/unitgen generate --table units.toml --out units_gen.go
