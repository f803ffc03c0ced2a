package mag

// Measure names a dimensional category. Units of one measure are mutually
// convertible; units of different measures never are.
type Measure string

// Supported measures.
const (
	// MeasureLength has the meter as base unit.
	MeasureLength Measure = "length"

	// MeasureMass has the gram as base unit.
	MeasureMass Measure = "mass"

	// MeasureTime has the second as base unit.
	MeasureTime Measure = "time"

	// MeasureTemperature has the kelvin as base unit.
	MeasureTemperature Measure = "temperature"
)

// String returns the string representation.
func (m Measure) String() string {
	return string(m)
}

// IsValid returns true if the measure is recognised.
func (m Measure) IsValid() bool {
	switch m {
	case MeasureLength, MeasureMass, MeasureTime, MeasureTemperature:
		return true
	default:
		return false
	}
}

// Unit is the contract shared by every unit marker.
type Unit interface {
	// Label is the display abbreviation, e.g. "km" or "°C".
	Label() string

	// Factor converts a magnitude in this unit to the measure's base unit.
	Factor() float64

	// Zero is the value of absolute zero on this unit's own scale.
	// It is 0 for every proportional unit.
	Zero() float64

	// Measure reports which measure the unit belongs to.
	Measure() Measure
}

// Length is the measure tag for units of length.
// Embed it in a unit type to make that type a LengthUnit.
type Length struct{}

func (Length) isLength() {}

// Zero returns 0; length is proportional.
func (Length) Zero() float64 { return 0 }

// Measure returns MeasureLength.
func (Length) Measure() Measure { return MeasureLength }

// Mass is the measure tag for units of mass.
type Mass struct{}

func (Mass) isMass() {}

// Zero returns 0; mass is proportional.
func (Mass) Zero() float64 { return 0 }

// Measure returns MeasureMass.
func (Mass) Measure() Measure { return MeasureMass }

// Time is the measure tag for units of time.
type Time struct{}

func (Time) isTime() {}

// Zero returns 0; time is proportional.
func (Time) Zero() float64 { return 0 }

// Measure returns MeasureTime.
func (Time) Measure() Measure { return MeasureTime }

// Temperature is the measure tag for thermodynamic temperature scales.
// Its Zero of 0 suits absolute scales (kelvin, rankine); relative scales
// override it.
type Temperature struct{}

func (Temperature) isTemperature() {}

// Zero returns 0, the default for absolute scales.
func (Temperature) Zero() float64 { return 0 }

// Measure returns MeasureTemperature.
func (Temperature) Measure() Measure { return MeasureTemperature }

// LengthUnit is satisfied by types embedding Length.
type LengthUnit interface {
	Unit
	isLength()
}

// MassUnit is satisfied by types embedding Mass.
type MassUnit interface {
	Unit
	isMass()
}

// TimeUnit is satisfied by types embedding Time.
type TimeUnit interface {
	Unit
	isTime()

	// Inverse is the label of the reciprocal unit, e.g. "Hz" for seconds.
	Inverse() string
}

// TemperatureUnit is satisfied by types embedding Temperature.
type TemperatureUnit interface {
	Unit
	isTemperature()
}
