package length

import (
	"cmp"
	"fmt"

	"github.com/custodia-labs/mag"
)

// Area is a measurement of physical area in unit U squared.
//
// Operations:
//
//   - Area.Add(Area) => Area
//   - Area.Sub(Area) => Area
//   - Area.Mul(float64) => Area
//   - Area.Div(float64) => Area
//   - Area.Times(Length) => Volume
//   - Area.By(unit) => Volume
//   - Area.Per(Length) => Length
type Area[U mag.LengthUnit] struct {
	// Value is the magnitude in units of U².
	Value float64
}

// AreaOf creates an area of n square units of U.
func AreaOf[U mag.LengthUnit, N mag.Number](n N) Area[U] {
	return Area[U]{Value: float64(n)}
}

// AreaTo converts a to unit T squared.
func AreaTo[T, U mag.LengthUnit](a Area[U]) Area[T] {
	r := mag.RatioOf[U, T]()
	return Area[T]{Value: a.Value * (r * r)}
}

// Add returns a + o.
func (a Area[U]) Add(o Area[U]) Area[U] {
	return Area[U]{Value: a.Value + o.Value}
}

// Sub returns a - o.
func (a Area[U]) Sub(o Area[U]) Area[U] {
	return Area[U]{Value: a.Value - o.Value}
}

// Mul scales a by s.
func (a Area[U]) Mul(s float64) Area[U] {
	return Area[U]{Value: a.Value * s}
}

// Div scales a by 1/s.
func (a Area[U]) Div(s float64) Area[U] {
	return Area[U]{Value: a.Value / s}
}

// Times returns the volume of the prism with base a and height l.
func (a Area[U]) Times(l Length[U]) Volume[U] {
	return Volume[U]{Value: a.Value * l.Value}
}

// By re-tags a as a volume of the same magnitude.
func (a Area[U]) By(U) Volume[U] {
	return Volume[U]{Value: a.Value}
}

// Per returns the side that, multiplied by l, gives a.
func (a Area[U]) Per(l Length[U]) Length[U] {
	return Length[U]{Value: a.Value / l.Value}
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater
// than o.
func (a Area[U]) Compare(o Area[U]) int {
	return cmp.Compare(a.Value, o.Value)
}

// Less reports whether a < o.
func (a Area[U]) Less(o Area[U]) bool {
	return a.Value < o.Value
}

// String returns e.g. "1 m²".
func (a Area[U]) String() string {
	return mag.Sprint(a.Value, mag.LabelOf[U]()+mag.Squared)
}

// Format implements fmt.Formatter.
func (a Area[U]) Format(f fmt.State, verb rune) {
	mag.Format(f, verb, a.Value, mag.LabelOf[U]()+mag.Squared)
}
