package temp

import (
	"cmp"
	"fmt"

	"github.com/custodia-labs/mag"
)

// Temperature is a thermodynamic temperature in unit U.
//
// Units must be the same for operations with two Temperature operands.
// Differences keep the unit of their operands; To applies the affine
// conversion and is meant for absolute readings, not differences.
type Temperature[U mag.TemperatureUnit] struct {
	// Value is the reading on the scale of U.
	Value float64
}

// Of creates a temperature reading of n on the scale of U.
func Of[U mag.TemperatureUnit, N mag.Number](n N) Temperature[U] {
	return Temperature[U]{Value: float64(n)}
}

// To converts t to the scale of T.
func To[T, U mag.TemperatureUnit](t Temperature[U]) Temperature[T] {
	return Temperature[T]{Value: mag.ConvertOf[U, T](t.Value)}
}

// Add returns t + o.
func (t Temperature[U]) Add(o Temperature[U]) Temperature[U] {
	return Temperature[U]{Value: t.Value + o.Value}
}

// Sub returns t - o. The result may be negative.
func (t Temperature[U]) Sub(o Temperature[U]) Temperature[U] {
	return Temperature[U]{Value: t.Value - o.Value}
}

// Mul scales t by s.
func (t Temperature[U]) Mul(s float64) Temperature[U] {
	return Temperature[U]{Value: t.Value * s}
}

// Div scales t by 1/s.
func (t Temperature[U]) Div(s float64) Temperature[U] {
	return Temperature[U]{Value: t.Value / s}
}

// Compare returns -1, 0 or +1 as t is colder than, equal to or warmer
// than o.
func (t Temperature[U]) Compare(o Temperature[U]) int {
	return cmp.Compare(t.Value, o.Value)
}

// Less reports whether t < o.
func (t Temperature[U]) Less(o Temperature[U]) bool {
	return t.Value < o.Value
}

// String returns e.g. "22.8 °C".
func (t Temperature[U]) String() string {
	return mag.Sprint(t.Value, mag.LabelOf[U]())
}

// Format implements fmt.Formatter.
func (t Temperature[U]) Format(f fmt.State, verb rune) {
	mag.Format(f, verb, t.Value, mag.LabelOf[U]())
}
