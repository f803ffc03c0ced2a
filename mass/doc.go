// Package mass provides units of physical mass and the Mass quantity.
//
// Each unit is defined relative to grams with a conversion factor:
//
//	a := mass.Of[mass.Kg](1.2) // 1.2 kg
//	b := mass.Of[mass.G](5)    // 5 g
//	c := mass.To[mass.Lb](a)   // 2.6455471462185307 lb
package mass

//go:generate go run github.com/custodia-labs/mag/cmd/unitgen generate --table units.toml --out units_gen.go
