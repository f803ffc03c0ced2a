package mass

import (
	"cmp"
	"fmt"

	"github.com/custodia-labs/mag"
)

// Mass is a measurement of physical mass in unit U.
//
// Units must be the same for operations with two Mass operands; To
// converts between units.
type Mass[U mag.MassUnit] struct {
	// Value is the magnitude in units of U.
	Value float64
}

// Of creates a mass of n units of U.
func Of[U mag.MassUnit, N mag.Number](n N) Mass[U] {
	return Mass[U]{Value: float64(n)}
}

// To converts m to unit T.
func To[T, U mag.MassUnit](m Mass[U]) Mass[T] {
	return Mass[T]{Value: mag.ConvertOf[U, T](m.Value)}
}

// Add returns m + o.
func (m Mass[U]) Add(o Mass[U]) Mass[U] {
	return Mass[U]{Value: m.Value + o.Value}
}

// Sub returns m - o.
func (m Mass[U]) Sub(o Mass[U]) Mass[U] {
	return Mass[U]{Value: m.Value - o.Value}
}

// Mul scales m by s.
func (m Mass[U]) Mul(s float64) Mass[U] {
	return Mass[U]{Value: m.Value * s}
}

// Div scales m by 1/s.
func (m Mass[U]) Div(s float64) Mass[U] {
	return Mass[U]{Value: m.Value / s}
}

// Compare returns -1, 0 or +1 as m is less than, equal to or greater
// than o.
func (m Mass[U]) Compare(o Mass[U]) int {
	return cmp.Compare(m.Value, o.Value)
}

// Less reports whether m < o.
func (m Mass[U]) Less(o Mass[U]) bool {
	return m.Value < o.Value
}

func (m Mass[U]) String() string {
	return mag.Sprint(m.Value, mag.LabelOf[U]())
}

// Format implements fmt.Formatter.
func (m Mass[U]) Format(f fmt.State, verb rune) {
	mag.Format(f, verb, m.Value, mag.LabelOf[U]())
}
