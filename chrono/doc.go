// Package chrono provides units of time and the Period and Frequency
// quantities built from them.
//
// Each unit is defined relative to seconds with a conversion factor. Unit
// names are spelled out, as in the standard time package:
//
//	a := chrono.Of[chrono.Second](22.8)          // 22.8 s
//	b := chrono.Of[chrono.Millisecond](50.6)     // 50.6 ms
//	c := chrono.FrequencyOf[chrono.Second](60)   // 60 Hz
//	d := chrono.FrequencyOf[chrono.Nanosecond](3) // 3 GHz
//
// A Frequency in unit U is the reciprocal of a Period in U and displays
// with the unit's inverse label.
package chrono

//go:generate go run github.com/custodia-labs/mag/cmd/unitgen generate --table units.toml --out units_gen.go
