package chrono

import (
	"cmp"
	"fmt"

	"github.com/custodia-labs/mag"
)

// Frequency is a temporal frequency of repeating events, counted per
// unit U.
//
// Operations:
//
//   - Frequency.Add(Frequency) => Frequency
//   - Frequency.Sub(Frequency) => Frequency
//   - Frequency.Mul(float64) => Frequency
//   - Frequency.Div(float64) => Frequency
//   - Frequency.Inverse() => Period
//   - Rate(n, Period) => Frequency
//   - Span(n, Frequency) => Period
type Frequency[U mag.TimeUnit] struct {
	// Value is the number of events per U.
	Value float64
}

// FrequencyOf creates a frequency of n per unit of U, i.e. n / U.
func FrequencyOf[U mag.TimeUnit, N mag.Number](n N) Frequency[U] {
	return Frequency[U]{Value: float64(n)}
}

// Rate returns n / p: n events occurring every p.
// 60 events per 2 h is a rate of 30 /h.
func Rate[U mag.TimeUnit, N mag.Number](n N, p Period[U]) Frequency[U] {
	return Frequency[U]{Value: float64(n) / p.Value}
}

// FrequencyTo converts f to events per T.
func FrequencyTo[T, U mag.TimeUnit](f Frequency[U]) Frequency[T] {
	return Frequency[T]{Value: f.Value / mag.RatioOf[U, T]()}
}

// Add returns f + o.
func (f Frequency[U]) Add(o Frequency[U]) Frequency[U] {
	return Frequency[U]{Value: f.Value + o.Value}
}

// Sub returns f - o.
func (f Frequency[U]) Sub(o Frequency[U]) Frequency[U] {
	return Frequency[U]{Value: f.Value - o.Value}
}

// Mul scales f by s.
func (f Frequency[U]) Mul(s float64) Frequency[U] {
	return Frequency[U]{Value: f.Value * s}
}

// Div scales f by 1/s.
func (f Frequency[U]) Div(s float64) Frequency[U] {
	return Frequency[U]{Value: f.Value / s}
}

// Inverse returns 1/f.
func (f Frequency[U]) Inverse() Period[U] {
	return Period[U]{Value: 1 / f.Value}
}

// Compare returns -1, 0 or +1 as f is less than, equal to or greater
// than o.
func (f Frequency[U]) Compare(o Frequency[U]) int {
	return cmp.Compare(f.Value, o.Value)
}

// Less reports whether f < o.
func (f Frequency[U]) Less(o Frequency[U]) bool {
	return f.Value < o.Value
}

// String returns e.g. "60 Hz".
func (f Frequency[U]) String() string {
	return mag.Sprint(f.Value, inverseOf[U]())
}

// Format implements fmt.Formatter.
func (f Frequency[U]) Format(s fmt.State, verb rune) {
	mag.Format(s, verb, f.Value, inverseOf[U]())
}

func inverseOf[U mag.TimeUnit]() string {
	var u U
	return u.Inverse()
}
