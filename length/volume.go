package length

import (
	"cmp"
	"fmt"

	"github.com/custodia-labs/mag"
)

// Volume is a measurement of physical volume in unit U cubed.
//
// Operations:
//
//   - Volume.Add(Volume) => Volume
//   - Volume.Sub(Volume) => Volume
//   - Volume.Mul(float64) => Volume
//   - Volume.Div(float64) => Volume
//   - Volume.Per(Length) => Area
//   - Volume.PerArea(Area) => Length
type Volume[U mag.LengthUnit] struct {
	// Value is the magnitude in units of U³.
	Value float64
}

// VolumeOf creates a volume of n cubic units of U.
func VolumeOf[U mag.LengthUnit, N mag.Number](n N) Volume[U] {
	return Volume[U]{Value: float64(n)}
}

// VolumeTo converts v to unit T cubed.
func VolumeTo[T, U mag.LengthUnit](v Volume[U]) Volume[T] {
	r := mag.RatioOf[U, T]()
	return Volume[T]{Value: v.Value * (r * r * r)}
}

// Add returns v + o.
func (v Volume[U]) Add(o Volume[U]) Volume[U] {
	return Volume[U]{Value: v.Value + o.Value}
}

// Sub returns v - o.
func (v Volume[U]) Sub(o Volume[U]) Volume[U] {
	return Volume[U]{Value: v.Value - o.Value}
}

// Mul scales v by s.
func (v Volume[U]) Mul(s float64) Volume[U] {
	return Volume[U]{Value: v.Value * s}
}

// Div scales v by 1/s.
func (v Volume[U]) Div(s float64) Volume[U] {
	return Volume[U]{Value: v.Value / s}
}

// Per returns the base area of a prism of volume v and height l.
func (v Volume[U]) Per(l Length[U]) Area[U] {
	return Area[U]{Value: v.Value / l.Value}
}

// PerArea returns the height of a prism of volume v and base a.
func (v Volume[U]) PerArea(a Area[U]) Length[U] {
	return Length[U]{Value: v.Value / a.Value}
}

// Compare returns -1, 0 or +1 as v is less than, equal to or greater
// than o.
func (v Volume[U]) Compare(o Volume[U]) int {
	return cmp.Compare(v.Value, o.Value)
}

// Less reports whether v < o.
func (v Volume[U]) Less(o Volume[U]) bool {
	return v.Value < o.Value
}

// String returns e.g. "123 μm³".
func (v Volume[U]) String() string {
	return mag.Sprint(v.Value, mag.LabelOf[U]()+mag.Cubed)
}

// Format implements fmt.Formatter.
func (v Volume[U]) Format(f fmt.State, verb rune) {
	mag.Format(f, verb, v.Value, mag.LabelOf[U]()+mag.Cubed)
}
