package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lengthTable() *UnitTable {
	return &UnitTable{
		Package: "length",
		Measure: MeasureLength,
		Base:    "meter",
		Units: []UnitSpec{
			{Name: "Km", Label: "km", Factor: 1000},
			{Name: "M", Label: "m", Factor: 1},
		},
	}
}

func TestMeasureName_IsValid(t *testing.T) {
	for _, m := range AllMeasures() {
		assert.True(t, m.IsValid(), m.String())
	}
	assert.False(t, MeasureName("length").IsValid())
	assert.False(t, MeasureName("Luminosity").IsValid())
	assert.False(t, MeasureName("").IsValid())
}

func TestMeasureName_Lower(t *testing.T) {
	assert.Equal(t, "temperature", MeasureTemperature.Lower())
	assert.Equal(t, "Temperature", MeasureTemperature.String())
}

func TestUnitTable_Validate(t *testing.T) {
	require.NoError(t, lengthTable().Validate())

	tests := []struct {
		name    string
		mutate  func(*UnitTable)
		wantErr error
	}{
		{
			name:    "missing package",
			mutate:  func(tb *UnitTable) { tb.Package = "" },
			wantErr: ErrInvalidTable,
		},
		{
			name:    "package is not an identifier",
			mutate:  func(tb *UnitTable) { tb.Package = "my-units" },
			wantErr: ErrInvalidTable,
		},
		{
			name:    "unknown measure",
			mutate:  func(tb *UnitTable) { tb.Measure = "Charge" },
			wantErr: ErrUnknownMeasure,
		},
		{
			name:    "missing base",
			mutate:  func(tb *UnitTable) { tb.Base = "" },
			wantErr: ErrInvalidTable,
		},
		{
			name:    "no units",
			mutate:  func(tb *UnitTable) { tb.Units = nil },
			wantErr: ErrInvalidTable,
		},
		{
			name:    "unexported name",
			mutate:  func(tb *UnitTable) { tb.Units[0].Name = "km" },
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "empty label",
			mutate:  func(tb *UnitTable) { tb.Units[0].Label = "" },
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "zero factor",
			mutate:  func(tb *UnitTable) { tb.Units[1].Factor = 0 },
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "infinite factor",
			mutate:  func(tb *UnitTable) { tb.Units[1].Factor = math.Inf(1) },
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "zero offset on a length unit",
			mutate:  func(tb *UnitTable) { tb.Units[0].Zero = -3 },
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "inverse on a length unit",
			mutate:  func(tb *UnitTable) { tb.Units[0].Inverse = "/km" },
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "duplicate name",
			mutate:  func(tb *UnitTable) { tb.Units[1].Name = "Km" },
			wantErr: ErrDuplicateUnit,
		},
		{
			name:    "duplicate label",
			mutate:  func(tb *UnitTable) { tb.Units[1].Label = "km" },
			wantErr: ErrDuplicateUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := lengthTable()
			tt.mutate(tb)
			err := tb.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUnitTable_Validate_Time(t *testing.T) {
	tb := &UnitTable{
		Package: "chrono",
		Measure: MeasureTime,
		Base:    "second",
		Units:   []UnitSpec{{Name: "Second", Label: "s", Factor: 1, Inverse: "Hz"}},
	}
	require.NoError(t, tb.Validate())

	tb.Units[0].Inverse = ""
	assert.ErrorIs(t, tb.Validate(), ErrInvalidUnit)
}

func TestUnitTable_Validate_Temperature(t *testing.T) {
	tb := &UnitTable{
		Package: "temp",
		Measure: MeasureTemperature,
		Base:    "kelvin",
		Units: []UnitSpec{
			{Name: "DegC", Label: "°C", Factor: 1, Zero: -273.15},
			{Name: "DegK", Label: "°K", Factor: 1},
			{Name: "Delisle", Label: "°De", Factor: -2.0 / 3.0, Zero: 559.725},
		},
	}
	assert.NoError(t, tb.Validate())
}
