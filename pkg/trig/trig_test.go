package trig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-8

func TestSinCos(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
	}{
		{name: "zero", degrees: 0},
		{name: "eighteen", degrees: 18},
		{name: "thirty", degrees: 30},
		{name: "right angle", degrees: 90},
		{name: "obtuse", degrees: 135},
		{name: "negative", degrees: -45},
		{name: "straight", degrees: 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.degrees * math.Pi / 180
			assert.InDelta(t, math.Sin(r), Sin(tt.degrees, DefaultTerms), tolerance)
			assert.InDelta(t, math.Cos(r), Cos(tt.degrees, DefaultTerms), tolerance)
		})
	}
}

func TestZeroTerms(t *testing.T) {
	assert.Equal(t, 0.0, Sin(30, 0))
	assert.Equal(t, 0.0, Cos(30, 0))
}

func TestSingleTerm(t *testing.T) {
	assert.InDelta(t, math.Pi/6, Sin(30, 1), tolerance)
	assert.Equal(t, 1.0, Cos(30, 1))
}

func TestTan(t *testing.T) {
	assert.InDelta(t, 1.0, Tan(45, DefaultTerms), tolerance)
	assert.InDelta(t, math.Tan(math.Pi/9), Tan(20, DefaultTerms), tolerance)

	for _, d := range []float64{90, -90, 270, -270, 450} {
		assert.True(t, math.IsInf(Tan(d, DefaultTerms), 1), "tan(%v)", d)
	}
}

func TestCot(t *testing.T) {
	r := 32 * math.Pi / 180
	assert.InDelta(t, math.Cos(r)/math.Sin(r), Cot(32, DefaultTerms), tolerance)

	for _, d := range []float64{0, 180, -180, 360} {
		assert.True(t, math.IsInf(Cot(d, DefaultTerms), 1), "cot(%v)", d)
	}
}
