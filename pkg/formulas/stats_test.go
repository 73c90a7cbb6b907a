package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"empty slice", []float64{}, 0},
		{"single value", []float64{5}, 5},
		{"multiple values", []float64{1, 2, 3, 4}, 2.5},
		{"negative values", []float64{-2, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Mean(tt.data), 1e-9)
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.InDelta(t, 6.0, Sum([]float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, -1.5, Sum([]float64{1, -2.5}), 1e-9)
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, 0.0, Max(nil))
	assert.Equal(t, 0.0, Min(nil))
	assert.Equal(t, 7.0, Max([]float64{3, 7, -2}))
	assert.Equal(t, -2.0, Min([]float64{3, 7, -2}))
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.InDelta(t, 1.0, StdDev([]float64{1, 2, 3}), 1e-9)
}
