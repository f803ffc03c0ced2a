package mag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type meter struct{ Length }

func (meter) Label() string   { return "m" }
func (meter) Factor() float64 { return 1 }

type inch struct{ Length }

func (inch) Label() string   { return "in" }
func (inch) Factor() float64 { return 0.0254 }

type celsius struct{ Temperature }

func (celsius) Label() string   { return "°C" }
func (celsius) Factor() float64 { return 1 }
func (celsius) Zero() float64   { return -273.15 }

type kelvin struct{ Temperature }

func (kelvin) Label() string   { return "K" }
func (kelvin) Factor() float64 { return 1 }

type fahrenheit struct{ Temperature }

func (fahrenheit) Label() string   { return "°F" }
func (fahrenheit) Factor() float64 { return 5.0 / 9.0 }
func (fahrenheit) Zero() float64   { return -459.67 }

type second struct{ Time }

func (second) Label() string   { return "s" }
func (second) Factor() float64 { return 1 }
func (second) Inverse() string { return "Hz" }

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0254, Ratio(inch{}, meter{}))
	assert.Equal(t, 1.0, Ratio(meter{}, meter{}))
	assert.Equal(t, 0.0254, RatioOf[inch, meter]())
}

func TestConvert_Proportional(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from     Unit
		to       Unit
		expected float64
	}{
		{name: "inch to meter is exact", value: 1, from: inch{}, to: meter{}, expected: 0.0254},
		{name: "identity", value: 42.5, from: meter{}, to: meter{}, expected: 42.5},
		{name: "negative magnitudes", value: -2, from: inch{}, to: meter{}, expected: -0.0508},
		{name: "zero", value: 0, from: meter{}, to: inch{}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Convert(tt.value, tt.from, tt.to))
		})
	}
}

func TestConvert_Affine(t *testing.T) {
	assert.Equal(t, 273.15, Convert(0, celsius{}, kelvin{}))
	assert.Equal(t, 0.0, Convert(-273.15, celsius{}, kelvin{}))
	assert.Equal(t, -273.15, Convert(0, kelvin{}, celsius{}))
	assert.InDelta(t, 0.0, Convert(32, fahrenheit{}, celsius{}), 1e-9)
	assert.InDelta(t, 212.0, Convert(100, celsius{}, fahrenheit{}), 1e-9)
	assert.InDelta(t, 98.6, ConvertOf[celsius, fahrenheit](37), 1e-9)
}

func TestConvert_IEEE(t *testing.T) {
	assert.True(t, math.IsNaN(Convert(math.NaN(), inch{}, meter{})))
	assert.True(t, math.IsInf(Convert(math.Inf(1), inch{}, meter{}), 1))
}

func TestLabelOf(t *testing.T) {
	assert.Equal(t, "in", LabelOf[inch]())
	assert.Equal(t, "°C", LabelOf[celsius]())
}
