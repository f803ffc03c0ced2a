package mag

// Ratio returns the proportional factor taking a magnitude in from to a
// magnitude in to.
func Ratio(from, to Unit) float64 {
	return from.Factor() / to.Factor()
}

// Convert re-expresses v, a magnitude in from, as a magnitude in to.
// Both units must belong to one measure; the typed To functions of each
// quantity package enforce that at compile time.
func Convert(v float64, from, to Unit) float64 {
	return (v-from.Zero())*Ratio(from, to) + to.Zero()
}

// RatioOf is Ratio for unit types given as type parameters.
func RatioOf[U, T Unit]() float64 {
	var u U
	var t T
	return Ratio(u, t)
}

// ConvertOf is Convert for unit types given as type parameters.
func ConvertOf[U, T Unit](v float64) float64 {
	var u U
	var t T
	return Convert(v, u, t)
}

// LabelOf returns the label of unit type U.
func LabelOf[U Unit]() string {
	var u U
	return u.Label()
}
