package bst

import "github.com/ihbirlik/geocoord-pro/internal/domain"

const (
	washoutRatio   = 1.5
	dilationRatio  = 1.2
	turbulentRatio = 0.8

	minFlowSamples = 3
)

// ClassifyFlow matches the shape of a stage's Lugeon curve against the known
// flow regimes. Only positive Lugeon values take part, in step order.
func ClassifyFlow(measurements []*domain.Measurement) domain.FlowType {
	if len(measurements) < minFlowSamples {
		return domain.FlowLaminar
	}

	lus := make([]float64, 0, len(measurements))
	for _, m := range measurements {
		if lu := Number(m.CalculatedLugeon); lu > 0 {
			lus = append(lus, lu)
		}
	}
	if len(lus) < minFlowSamples {
		return domain.FlowLaminar
	}

	first, last := lus[0], lus[len(lus)-1]
	peak := first
	for _, lu := range lus[1:] {
		if lu > peak {
			peak = lu
		}
	}

	switch {
	case last > first*washoutRatio:
		return domain.FlowWashout
	case peak > first*dilationRatio && last < peak:
		return domain.FlowDilation
	case lus[len(lus)/2] < first*turbulentRatio:
		return domain.FlowTurbulent
	default:
		return domain.FlowLaminar
	}
}
