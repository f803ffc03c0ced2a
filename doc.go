// Package mag provides compile-time unit-safe physical quantities.
//
// Every unit of measure is a zero-size marker type, and every quantity is
// a generic struct holding a single float64 magnitude. The unit lives only
// in the type parameter, so mixing units is rejected by the compiler:
//
//	a := length.Of[length.Km](2.5)
//	b := length.Of[length.M](40)
//	a.Add(b)                      // does not compile
//	a.Add(length.To[length.Km](b)) // 2.54 km
//
// # Packages
//
//   - length: Length, Area and Volume with units such as Km, M, Mi and In
//   - mass: Mass with units such as Kg, G and Lb
//   - chrono: Period and Frequency with units such as Hour and Second
//   - temp: Temperature with units DegC, DegK, DegF, DegR and DegRe
//   - speed: Speed, pairing a length unit with a time unit
//
// This package holds what they share: the Unit contract, the measure
// tags, the conversion engine and display formatting.
//
// # Custom Units
//
// A unit is any type that embeds one measure tag and provides a label and
// a factor to the measure's base unit (meter, gram, second or kelvin):
//
//	type SolarMass struct{ mag.Mass }
//
//	func (SolarMass) Label() string   { return "M☉" }
//	func (SolarMass) Factor() float64 { return 1.988_47e33 }
//
// Affine units (temperature scales) also override Zero with the value of
// absolute zero on their own scale. Time units provide Inverse, the label
// used when the unit appears as a frequency.
//
// # Conversion
//
// Conversion between two units U and T of one measure is
//
//	(v - U.Zero()) * (U.Factor() / T.Factor()) + T.Zero()
//
// Both zeros are 0 for proportional units, so this reduces to a plain
// ratio. Factors are used as stored, without rounding.
package mag
