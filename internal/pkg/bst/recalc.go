package bst

import (
	"math"

	"github.com/ihbirlik/geocoord-pro/internal/domain"
)

// Geometry is the parsed, well-wide geometry every stage is evaluated with.
type Geometry struct {
	Diameter         float64
	ManometerHeight  float64
	GroundwaterDepth float64
}

func WellGeometry(w *domain.Well) Geometry {
	return Geometry{
		Diameter:         NumberOr(w.Diameter, DefaultDiameter),
		ManometerHeight:  NumberOr(w.ManometerHeight, DefaultManometerHeight),
		GroundwaterDepth: NumberOr(w.GroundwaterDepth, DefaultGroundwaterDepth),
	}
}

// StageInterval returns the stage length and the depth of its center.
func StageInterval(stage *domain.TestStage) (length, center float64) {
	start := Number(stage.StartDepth)
	end := Number(stage.EndDepth)
	length = math.Abs(end - start)
	return length, start + length/2
}

// RecomputeWell rebuilds every derived field of every stage from raw inputs.
// It is idempotent and must run after any edit that touches the well's
// geometry, stages or readings.
func RecomputeWell(w *domain.Well) *domain.Well {
	g := WellGeometry(w)
	for _, stage := range w.Stages {
		RecomputeStage(stage, g)
	}
	return w
}

func RecomputeStage(stage *domain.TestStage, g Geometry) {
	length, center := StageInterval(stage)

	for _, m := range stage.Measurements {
		res := CalculateLugeon(LugeonInput{
			TotalLoss:        Number(m.TotalLoss),
			AppliedPressure:  m.AppliedPressure,
			StageLength:      length,
			GroundwaterDepth: g.GroundwaterDepth,
			ManometerHeight:  g.ManometerHeight,
			CenterDepth:      center,
			Diameter:         g.Diameter,
		})
		m.CalculatedLugeon = Fixed2(res.Lugeon)
		m.EffectivePressure = Fixed2(res.EffectivePressure)
	}

	stage.RepresentativeLugeon = RepresentativeLugeon(stage.Measurements)
	if !stage.IsFlowTypeManual {
		stage.FlowType = ClassifyFlow(stage.Measurements)
	}
}

// RepresentativeLugeon is the Lugeon of the middle step, which for a
// reversible test is the peak pressure.
func RepresentativeLugeon(measurements []*domain.Measurement) string {
	if len(measurements) == 0 {
		return zeroFixed
	}
	lu := measurements[len(measurements)/2].CalculatedLugeon
	if lu == "" {
		return zeroFixed
	}
	return lu
}
