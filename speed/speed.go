package speed

import (
	"cmp"
	"fmt"

	"github.com/custodia-labs/mag"
	"github.com/custodia-labs/mag/chrono"
	"github.com/custodia-labs/mag/length"
)

// Speed is a measurement of speed in length unit L per time unit P.
//
// Operations:
//
//   - Speed.Add(Speed) => Speed
//   - Speed.Sub(Speed) => Speed
//   - Speed.Mul(float64) => Speed
//   - Speed.Div(float64) => Speed
//   - Per[P](Length) => Speed
//   - Over(Length, Period) => Speed
//   - Travel(Length, Frequency) => Speed
type Speed[L mag.LengthUnit, P mag.TimeUnit] struct {
	// Value is the magnitude in units of L per P.
	Value float64
}

// Of creates a speed of n units of L per P.
func Of[L mag.LengthUnit, P mag.TimeUnit, N mag.Number](n N) Speed[L, P] {
	return Speed[L, P]{Value: float64(n)}
}

// Per divides l by one unit of P: 10 mi per h is 10 mi/h.
func Per[P mag.TimeUnit, L mag.LengthUnit](l length.Length[L]) Speed[L, P] {
	return Speed[L, P]{Value: l.Value}
}

// Over returns the speed covering l in p.
func Over[L mag.LengthUnit, P mag.TimeUnit](l length.Length[L], p chrono.Period[P]) Speed[L, P] {
	return Speed[L, P]{Value: l.Value / p.Value}
}

// Travel returns the speed of something advancing l at frequency f.
// Length times frequency and frequency times length are the same product.
func Travel[L mag.LengthUnit, P mag.TimeUnit](l length.Length[L], f chrono.Frequency[P]) Speed[L, P] {
	return Speed[L, P]{Value: l.Value * f.Value}
}

// To converts s to units of L2 per P2.
func To[L2 mag.LengthUnit, P2 mag.TimeUnit, L mag.LengthUnit, P mag.TimeUnit](s Speed[L, P]) Speed[L2, P2] {
	factor := mag.RatioOf[L, L2]() / mag.RatioOf[P, P2]()
	return Speed[L2, P2]{Value: s.Value * factor}
}

// Add returns s + o.
func (s Speed[L, P]) Add(o Speed[L, P]) Speed[L, P] {
	return Speed[L, P]{Value: s.Value + o.Value}
}

// Sub returns s - o.
func (s Speed[L, P]) Sub(o Speed[L, P]) Speed[L, P] {
	return Speed[L, P]{Value: s.Value - o.Value}
}

// Mul scales s by x.
func (s Speed[L, P]) Mul(x float64) Speed[L, P] {
	return Speed[L, P]{Value: s.Value * x}
}

// Div scales s by 1/x.
func (s Speed[L, P]) Div(x float64) Speed[L, P] {
	return Speed[L, P]{Value: s.Value / x}
}

// Compare returns -1, 0 or +1 as s is slower than, equal to or faster
// than o.
func (s Speed[L, P]) Compare(o Speed[L, P]) int {
	return cmp.Compare(s.Value, o.Value)
}

// Less reports whether s < o.
func (s Speed[L, P]) Less(o Speed[L, P]) bool {
	return s.Value < o.Value
}

// String returns e.g. "55 mi/h".
func (s Speed[L, P]) String() string {
	return mag.Sprint(s.Value, label[L, P]())
}

// Format implements fmt.Formatter.
func (s Speed[L, P]) Format(f fmt.State, verb rune) {
	mag.Format(f, verb, s.Value, label[L, P]())
}

func label[L mag.LengthUnit, P mag.TimeUnit]() string {
	return mag.LabelOf[L]() + "/" + mag.LabelOf[P]()
}
