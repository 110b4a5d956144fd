package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihbirlik/geocoord-pro/internal/domain"
)

func TestPressureSteps(t *testing.T) {
	tests := []struct {
		name       string
		max        float64
		typ        domain.PressureType
		reversible bool
		want       []float64
	}{
		{"type b reversible", 6, domain.PressureTypeB, true, []float64{2, 4, 6, 4, 2}},
		{"type c one way", 10, domain.PressureTypeC, false, []float64{3, 6, 10}},
		{"type a one way", 7, domain.PressureTypeA, false, []float64{1, 2, 3, 4, 5, 6, 7}},
		{"type b odd max appended", 7, domain.PressureTypeB, false, []float64{2, 4, 6, 7}},
		{"type b below first step", 1, domain.PressureTypeB, false, []float64{1}},
		{"type c max off the table", 12, domain.PressureTypeC, true, []float64{3, 6, 10, 12, 10, 6, 3}},
		{"type c below first step", 2, domain.PressureTypeC, false, []float64{2}},
		{"type d thirds", 10, domain.PressureTypeD, false, []float64{3, 7, 10}},
		{"type d thirds reversible", 10, domain.PressureTypeD, true, []float64{3, 7, 10, 7, 3}},
		{"type d collapses duplicates", 1, domain.PressureTypeD, true, []float64{1}},
		{"type d half rounds up", 4.5, domain.PressureTypeD, false, []float64{2, 3, 4.5}},
		{"zero max treated as one", 0, domain.PressureTypeA, false, []float64{1}},
		{"negative max treated as one", -3, domain.PressureTypeB, true, []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PressureSteps(tt.max, tt.typ, tt.reversible))
		})
	}
}

func TestNormalizePressureType(t *testing.T) {
	assert.Equal(t, domain.PressureTypeA, NormalizePressureType("type_a"))
	assert.Equal(t, domain.PressureTypeB, NormalizePressureType("TIP_B"))
	assert.Equal(t, domain.PressureTypeC, NormalizePressureType(" TYPE_C "))
	assert.Equal(t, domain.PressureTypeD, NormalizePressureType("TIP_D"))
	assert.Equal(t, domain.PressureTypeD, NormalizePressureType("whatever"))
}

func TestGenerateMeasurementsResetsReadings(t *testing.T) {
	ids := NewCounterProvider("m")

	ms := GenerateMeasurements(ids, "6", domain.PressureTypeB, true)
	require.Len(t, ms, 5)

	for i, m := range ms {
		assert.Equal(t, i+1, m.StepNumber)
		assert.Equal(t, "0", m.TotalLoss)
		assert.Equal(t, "0", m.First5Min)
		assert.Equal(t, "0", m.Second5Min)
		assert.Equal(t, "0.00", m.CalculatedLugeon)
		assert.Equal(t, "0.00", m.EffectivePressure)
	}
	assert.Equal(t, "m-1", ms[0].ID)
	assert.Equal(t, 6.0, ms[2].AppliedPressure)
}

func TestGenerateMeasurementsGarbageMax(t *testing.T) {
	ms := GenerateMeasurements(NewCounterProvider("m"), "abc", domain.PressureTypeA, false)
	require.Len(t, ms, 1)
	assert.Equal(t, 1.0, ms[0].AppliedPressure)
}

func TestPressureStepsClampsHugeMaximum(t *testing.T) {
	for _, typ := range []domain.PressureType{domain.PressureTypeA, domain.PressureTypeB, domain.PressureTypeC, domain.PressureTypeD} {
		t.Run(string(typ), func(t *testing.T) {
			huge := PressureSteps(Number("1e17"), typ, true)
			assert.Equal(t, PressureSteps(MaxPressureLimit, typ, true), huge)
			assert.LessOrEqual(t, len(huge), 2*int(MaxPressureLimit)-1)
			for _, p := range huge {
				assert.LessOrEqual(t, p, MaxPressureLimit)
			}
		})
	}
}

func TestMaxPressureInRange(t *testing.T) {
	assert.True(t, MaxPressureInRange("6"))
	assert.True(t, MaxPressureInRange("100"))
	assert.True(t, MaxPressureInRange("garbage"))
	assert.False(t, MaxPressureInRange("100,5"))
	assert.False(t, MaxPressureInRange("1e17"))
}
