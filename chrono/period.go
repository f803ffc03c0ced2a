package chrono

import (
	"cmp"
	"fmt"

	"github.com/custodia-labs/mag"
)

// Period is a period, duration or interval of time in unit U.
//
// Operations:
//
//   - Period.Add(Period) => Period
//   - Period.Sub(Period) => Period
//   - Period.Mul(float64) => Period
//   - Period.Div(float64) => Period
//   - Period.Inverse() => Frequency
type Period[U mag.TimeUnit] struct {
	// Value is the magnitude in units of U.
	Value float64
}

// Of creates a period of n units of U.
func Of[U mag.TimeUnit, N mag.Number](n N) Period[U] {
	return Period[U]{Value: float64(n)}
}

// Span returns n / f: the time n events take at frequency f.
// 60 events at 2 /min span 30 min.
func Span[U mag.TimeUnit, N mag.Number](n N, f Frequency[U]) Period[U] {
	return Period[U]{Value: float64(n) / f.Value}
}

// To converts p to unit T.
func To[T, U mag.TimeUnit](p Period[U]) Period[T] {
	return Period[T]{Value: mag.ConvertOf[U, T](p.Value)}
}

// Add returns p + o.
func (p Period[U]) Add(o Period[U]) Period[U] {
	return Period[U]{Value: p.Value + o.Value}
}

// Sub returns p - o.
func (p Period[U]) Sub(o Period[U]) Period[U] {
	return Period[U]{Value: p.Value - o.Value}
}

// Mul scales p by s.
func (p Period[U]) Mul(s float64) Period[U] {
	return Period[U]{Value: p.Value * s}
}

// Div scales p by 1/s.
func (p Period[U]) Div(s float64) Period[U] {
	return Period[U]{Value: p.Value / s}
}

// Inverse returns 1/p: a period of 2 s is a frequency of 0.5 Hz.
func (p Period[U]) Inverse() Frequency[U] {
	return Frequency[U]{Value: 1 / p.Value}
}

// Compare returns -1, 0 or +1 as p is less than, equal to or greater
// than o.
func (p Period[U]) Compare(o Period[U]) int {
	return cmp.Compare(p.Value, o.Value)
}

// Less reports whether p < o.
func (p Period[U]) Less(o Period[U]) bool {
	return p.Value < o.Value
}

// String returns e.g. "3.25 h".
func (p Period[U]) String() string {
	return mag.Sprint(p.Value, mag.LabelOf[U]())
}

// Format implements fmt.Formatter.
func (p Period[U]) Format(f fmt.State, verb rune) {
	mag.Format(f, verb, p.Value, mag.LabelOf[U]())
}
