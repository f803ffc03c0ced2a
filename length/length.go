package length

import (
	"cmp"
	"fmt"

	"github.com/custodia-labs/mag"
)

// Length is a measurement of physical length, distance or range in unit U.
//
// Operations:
//
//   - Length.Add(Length) => Length
//   - Length.Sub(Length) => Length
//   - Length.Mul(float64) => Length
//   - Length.Div(float64) => Length
//   - Length.Times(Length) => Area
//   - Length.By(unit) => Area
type Length[U mag.LengthUnit] struct {
	// Value is the magnitude in units of U.
	Value float64
}

// Of creates a length of n units of U.
func Of[U mag.LengthUnit, N mag.Number](n N) Length[U] {
	return Length[U]{Value: float64(n)}
}

// To converts l to unit T.
func To[T, U mag.LengthUnit](l Length[U]) Length[T] {
	return Length[T]{Value: mag.ConvertOf[U, T](l.Value)}
}

// Add returns l + o.
func (l Length[U]) Add(o Length[U]) Length[U] {
	return Length[U]{Value: l.Value + o.Value}
}

// Sub returns l - o.
func (l Length[U]) Sub(o Length[U]) Length[U] {
	return Length[U]{Value: l.Value - o.Value}
}

// Mul scales l by s.
func (l Length[U]) Mul(s float64) Length[U] {
	return Length[U]{Value: l.Value * s}
}

// Div scales l by 1/s.
func (l Length[U]) Div(s float64) Length[U] {
	return Length[U]{Value: l.Value / s}
}

// Times returns the area of the rectangle with sides l and o.
func (l Length[U]) Times(o Length[U]) Area[U] {
	return Area[U]{Value: l.Value * o.Value}
}

// By re-tags l as an area of the same magnitude: 3 m by m is 3 m².
func (l Length[U]) By(U) Area[U] {
	return Area[U]{Value: l.Value}
}

// Compare returns -1, 0 or +1 as l is less than, equal to or greater
// than o.
func (l Length[U]) Compare(o Length[U]) int {
	return cmp.Compare(l.Value, o.Value)
}

// Less reports whether l < o.
func (l Length[U]) Less(o Length[U]) bool {
	return l.Value < o.Value
}

// String returns e.g. "2.5 km".
func (l Length[U]) String() string {
	return mag.Sprint(l.Value, mag.LabelOf[U]())
}

// Format implements fmt.Formatter.
func (l Length[U]) Format(f fmt.State, verb rune) {
	mag.Format(f, verb, l.Value, mag.LabelOf[U]())
}
