package mag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		measure  Measure
		expected bool
	}{
		{name: "length", measure: MeasureLength, expected: true},
		{name: "mass", measure: MeasureMass, expected: true},
		{name: "time", measure: MeasureTime, expected: true},
		{name: "temperature", measure: MeasureTemperature, expected: true},
		{name: "empty", measure: Measure(""), expected: false},
		{name: "unknown", measure: Measure("luminosity"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.measure.IsValid())
		})
	}
}

func TestMeasureTags(t *testing.T) {
	assert.Equal(t, MeasureLength, meter{}.Measure())
	assert.Equal(t, MeasureTime, second{}.Measure())
	assert.Equal(t, MeasureTemperature, celsius{}.Measure())
	assert.Equal(t, MeasureMass, Mass{}.Measure())

	// Proportional tags default Zero to 0, affine units override it.
	assert.Equal(t, 0.0, meter{}.Zero())
	assert.Equal(t, 0.0, kelvin{}.Zero())
	assert.Equal(t, -273.15, celsius{}.Zero())
}

func TestMeasureConstraints(t *testing.T) {
	lengthOnly := func(LengthUnit) {}
	timeOnly := func(TimeUnit) {}
	tempOnly := func(TemperatureUnit) {}

	// These only need to compile.
	lengthOnly(inch{})
	timeOnly(second{})
	tempOnly(fahrenheit{})
}

func TestDescribe(t *testing.T) {
	d := Describe("second", second{})

	assert.Equal(t, "second", d.Name)
	assert.Equal(t, "s", d.Label)
	assert.Equal(t, "Hz", d.Inverse)
	assert.Equal(t, 1.0, d.Factor)
	assert.Equal(t, MeasureTime, d.Measure)
	assert.Equal(t, second{}, d.Unit())

	c := Describe("celsius", celsius{})
	assert.Empty(t, c.Inverse)
	assert.Equal(t, -273.15, c.Zero)
	assert.False(t, d.Compatible(c))
	assert.True(t, c.Compatible(Describe("kelvin", kelvin{})))
}
