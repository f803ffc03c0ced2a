package domain

import (
	"fmt"
	"go/token"
	"math"
	"strings"
)

// LibraryImportPath is the import path of the package declaring the
// measure tags that generated units embed.
const LibraryImportPath = "github.com/custodia-labs/mag"

// MeasureName is the measure a unit table declares. It names both the
// embedded measure tag (mag.Length) and its constraint (mag.LengthUnit).
type MeasureName string

// Measures understood by the generator.
const (
	MeasureLength      MeasureName = "Length"
	MeasureMass        MeasureName = "Mass"
	MeasureTime        MeasureName = "Time"
	MeasureTemperature MeasureName = "Temperature"
)

// AllMeasures returns every supported measure.
func AllMeasures() []MeasureName {
	return []MeasureName{
		MeasureLength,
		MeasureMass,
		MeasureTime,
		MeasureTemperature,
	}
}

// String returns the string representation.
func (m MeasureName) String() string {
	return string(m)
}

// Lower returns the measure in lower case, as used in prose.
func (m MeasureName) Lower() string {
	return strings.ToLower(string(m))
}

// IsValid returns true if the measure is supported.
func (m MeasureName) IsValid() bool {
	for _, known := range AllMeasures() {
		if m == known {
			return true
		}
	}
	return false
}

// UnitSpec is one [[unit]] entry of a unit table.
type UnitSpec struct {
	// Name is the exported Go type name of the marker.
	Name string `toml:"name"`

	// Label is the display abbreviation.
	Label string `toml:"label"`

	// Factor is the number of base units in one of this unit.
	Factor float64 `toml:"factor"`

	// Doc is appended to the type's doc comment. Optional.
	Doc string `toml:"doc,omitempty"`

	// Zero is absolute zero on this unit's scale. Temperature only.
	Zero float64 `toml:"zero,omitempty"`

	// Inverse is the reciprocal label. Required for time units.
	Inverse string `toml:"inverse,omitempty"`
}

// UnitTable is the contents of a units.toml file: the static constant
// table of one unit package.
type UnitTable struct {
	// Package is the Go package the generated file belongs to.
	Package string `toml:"package"`

	// Measure is the measure every unit in the table embeds.
	Measure MeasureName `toml:"measure"`

	// Base is the singular name of the base unit, e.g. "meter".
	Base string `toml:"base"`

	// Units lists the table entries in declaration order.
	Units []UnitSpec `toml:"unit"`

	// Source is the base name of the file the table was read from.
	// It is set by the loader, not by the file itself.
	Source string `toml:"-"`
}

// Validate checks the table is complete and internally consistent.
// Errors wrap ErrInvalidTable, ErrUnknownMeasure, ErrDuplicateUnit or
// ErrInvalidUnit.
func (t *UnitTable) Validate() error {
	if !token.IsIdentifier(t.Package) {
		return fmt.Errorf("%w: package %q is not a valid identifier", ErrInvalidTable, t.Package)
	}
	if !t.Measure.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownMeasure, t.Measure)
	}
	if t.Base == "" {
		return fmt.Errorf("%w: base unit name is required", ErrInvalidTable)
	}
	if len(t.Units) == 0 {
		return fmt.Errorf("%w: no units declared", ErrInvalidTable)
	}

	names := make(map[string]bool, len(t.Units))
	labels := make(map[string]string, len(t.Units))
	for i := range t.Units {
		u := &t.Units[i]
		if err := u.validate(t.Measure); err != nil {
			return err
		}
		if names[u.Name] {
			return fmt.Errorf("%w: name %q", ErrDuplicateUnit, u.Name)
		}
		names[u.Name] = true
		if other, ok := labels[u.Label]; ok {
			return fmt.Errorf("%w: label %q used by %s and %s", ErrDuplicateUnit, u.Label, other, u.Name)
		}
		labels[u.Label] = u.Name
	}
	return nil
}

func (u *UnitSpec) validate(m MeasureName) error {
	if !token.IsIdentifier(u.Name) || !token.IsExported(u.Name) {
		return fmt.Errorf("%w: name %q is not an exported identifier", ErrInvalidUnit, u.Name)
	}
	if u.Label == "" {
		return fmt.Errorf("%w: %s has no label", ErrInvalidUnit, u.Name)
	}
	if u.Factor == 0 || math.IsNaN(u.Factor) || math.IsInf(u.Factor, 0) {
		return fmt.Errorf("%w: %s has factor %v", ErrInvalidUnit, u.Name, u.Factor)
	}
	if math.IsNaN(u.Zero) || math.IsInf(u.Zero, 0) {
		return fmt.Errorf("%w: %s has zero %v", ErrInvalidUnit, u.Name, u.Zero)
	}
	if u.Zero != 0 && m != MeasureTemperature {
		return fmt.Errorf("%w: %s: only temperature units may set zero", ErrInvalidUnit, u.Name)
	}
	switch {
	case m == MeasureTime && u.Inverse == "":
		return fmt.Errorf("%w: time unit %s needs an inverse label", ErrInvalidUnit, u.Name)
	case m != MeasureTime && u.Inverse != "":
		return fmt.Errorf("%w: %s: only time units may set inverse", ErrInvalidUnit, u.Name)
	}
	return nil
}
