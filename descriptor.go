package mag

// Descriptor is a run-time snapshot of a unit marker. Each unit package
// exports a read-only Units slice of descriptors, built at package
// initialisation from its unit table. Descriptors support enumeration
// (listings, table-driven tests); they do not register new units.
type Descriptor struct {
	// Name is the Go type name of the marker, e.g. "Km".
	Name string

	// Label is the display abbreviation.
	Label string

	// Inverse is the reciprocal label. Only time units have one.
	Inverse string

	// Factor converts to the measure's base unit.
	Factor float64

	// Zero is absolute zero on the unit's own scale.
	Zero float64

	// Measure is the unit's measure.
	Measure Measure

	unit Unit
}

// Describe builds the descriptor of u.
func Describe(name string, u Unit) Descriptor {
	d := Descriptor{
		Name:    name,
		Label:   u.Label(),
		Factor:  u.Factor(),
		Zero:    u.Zero(),
		Measure: u.Measure(),
		unit:    u,
	}
	if inv, ok := u.(interface{ Inverse() string }); ok {
		d.Inverse = inv.Inverse()
	}
	return d
}

// Unit returns the marker value the descriptor was built from.
func (d Descriptor) Unit() Unit {
	return d.unit
}

// Compatible returns true if d and o belong to the same measure.
func (d Descriptor) Compatible(o Descriptor) bool {
	return d.Measure == o.Measure
}
