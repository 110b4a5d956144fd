package bst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseInput() LugeonInput {
	return LugeonInput{
		TotalLoss:        50,
		AppliedPressure:  2,
		StageLength:      5,
		GroundwaterDepth: 2,
		ManometerHeight:  1,
		CenterDepth:      12.5,
		Diameter:         76,
	}
}

func TestCalculateLugeon(t *testing.T) {
	res := CalculateLugeon(baseInput())

	assert.InDelta(t, 3.145833, res.EffectivePressure, 1e-6)
	assert.InDelta(t, 3.178808, res.Lugeon, 1e-6)
	assert.Equal(t, "3.15", Fixed2(res.EffectivePressure))
	assert.Equal(t, "3.18", Fixed2(res.Lugeon))
}

func TestCalculateLugeonZeroLoss(t *testing.T) {
	for _, mutate := range []func(*LugeonInput){
		func(in *LugeonInput) {},
		func(in *LugeonInput) { in.Diameter = 121 },
		func(in *LugeonInput) { in.GroundwaterDepth = 50 },
		func(in *LugeonInput) { in.AppliedPressure = -10 },
	} {
		in := baseInput()
		in.TotalLoss = 0
		mutate(&in)
		assert.Zero(t, CalculateLugeon(in).Lugeon)
	}
}

func TestCalculateLugeonStageLengthGuard(t *testing.T) {
	for _, length := range []float64{0, -2, math.NaN()} {
		in := baseInput()
		in.StageLength = length
		assert.Equal(t, LugeonResult{}, CalculateLugeon(in))
	}
}

func TestCalculateLugeonNonPositiveEffectivePressure(t *testing.T) {
	in := baseInput()
	in.AppliedPressure = -5

	assert.Equal(t, LugeonResult{}, CalculateLugeon(in))
}

func TestCalculateLugeonStaticHeadNeverNegative(t *testing.T) {
	in := baseInput()
	in.TotalLoss = 0
	in.GroundwaterDepth = 100

	assert.InDelta(t, in.AppliedPressure, CalculateLugeon(in).EffectivePressure, 1e-9)
}

func TestFrictionCoefficient(t *testing.T) {
	assert.Equal(t, 0.0001, FrictionCoefficient(96))
	assert.Equal(t, 0.0001, FrictionCoefficient(121))
	assert.Equal(t, 0.0004, FrictionCoefficient(76))
	assert.Equal(t, 0.0004, FrictionCoefficient(95.9))
	assert.Equal(t, 0.0012, FrictionCoefficient(75.9))
	assert.Equal(t, 0.0012, FrictionCoefficient(0))
}
