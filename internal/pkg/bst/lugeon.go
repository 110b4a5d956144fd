package bst

import "math"

const zeroFixed = "0.00"

// Well geometry defaults used when a field is left empty.
const (
	DefaultDiameter         = 76.0
	DefaultManometerHeight  = 1.0
	DefaultGroundwaterDepth = 0.0
)

// LugeonInput carries one measurement's reading together with the stage and
// well geometry it is evaluated against. Depths and heights are in meters,
// pressures in bar, the diameter in millimeters and the loss in liters per
// ten minutes.
type LugeonInput struct {
	TotalLoss        float64
	AppliedPressure  float64
	StageLength      float64
	GroundwaterDepth float64
	ManometerHeight  float64
	CenterDepth      float64
	Diameter         float64
}

type LugeonResult struct {
	Lugeon            float64
	EffectivePressure float64
}

// FrictionCoefficient returns the pipe friction factor for a well diameter.
func FrictionCoefficient(diameter float64) float64 {
	switch {
	case diameter >= 96:
		return 0.0001
	case diameter >= 76:
		return 0.0004
	default:
		return 0.0012
	}
}

// CalculateLugeon computes effective pressure and the Lugeon value. Invalid
// geometry or a non-positive effective pressure yields zero Lugeon.
func CalculateLugeon(in LugeonInput) LugeonResult {
	if !finite(in.StageLength) || in.StageLength <= 0 {
		return LugeonResult{}
	}

	totalLoss := in.TotalLoss
	if !finite(totalLoss) {
		totalLoss = 0
	}
	qMin := totalLoss / 10

	// 10 m of water column is taken as 1 bar.
	hStatic := math.Max(0, in.CenterDepth+in.ManometerHeight-in.GroundwaterDepth)
	pStatic := hStatic / 10

	pFriction := qMin * qMin * FrictionCoefficient(in.Diameter) * (in.CenterDepth / 30)
	pe := in.AppliedPressure + pStatic - pFriction

	// A non-positive effective pressure clamps to zero.
	if !finite(pe) || pe <= 0 {
		return LugeonResult{}
	}

	lu := (10 * qMin) / (pe * in.StageLength)
	if !finite(lu) {
		lu = 0
	}
	return LugeonResult{Lugeon: lu, EffectivePressure: pe}
}
