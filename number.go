package mag

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point type accepted when constructing
// a quantity. Magnitudes are always stored as float64.
type Number interface {
	constraints.Integer | constraints.Float
}
