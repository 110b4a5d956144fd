package bst

import (
	"math"
	"sort"
	"strings"

	"github.com/ihbirlik/geocoord-pro/internal/domain"
)

var typeCSequence = []float64{3, 6, 10, 15, 20, 25, 30, 35, 40, 45, 50}

// MaxPressureLimit is the highest maximum pressure (bar) a stage can be
// generated for. Larger values are clamped to it.
const MaxPressureLimit = 100.0

// MaxPressureInRange reports whether raw, once parsed, does not exceed
// MaxPressureLimit. Unparsable input is in range since it degrades to the
// minimum pattern.
func MaxPressureInRange(raw string) bool {
	return Number(raw) <= MaxPressureLimit
}

// NormalizePressureType maps user input (including the TIP_* aliases) onto a
// known pattern. Anything unrecognised falls into TYPE_D.
func NormalizePressureType(raw string) domain.PressureType {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "TYPE_A", "TIP_A", "A":
		return domain.PressureTypeA
	case "TYPE_B", "TIP_B", "B":
		return domain.PressureTypeB
	case "TYPE_C", "TIP_C", "C":
		return domain.PressureTypeC
	default:
		return domain.PressureTypeD
	}
}

// PressureSteps returns the applied pressures (bar) of a test stage in
// execution order. A reversible test climbs the base leg and then walks back
// down without repeating the peak.
func PressureSteps(maxPressure float64, pressureType domain.PressureType, reversible bool) []float64 {
	p := maxPressure
	if !finite(p) || p <= 0 {
		p = 1
	}
	p = math.Min(p, MaxPressureLimit)

	var base []float64
	switch pressureType {
	case domain.PressureTypeA:
		for i := 1.0; i <= p; i++ {
			base = append(base, i)
		}
	case domain.PressureTypeB:
		for i := 2.0; i <= p; i += 2 {
			base = append(base, i)
		}
		if len(base) == 0 || base[len(base)-1] != p {
			base = append(base, p)
		}
	case domain.PressureTypeC:
		for _, s := range typeCSequence {
			if s <= p {
				base = append(base, s)
			}
		}
		if len(base) == 0 || base[len(base)-1] != p {
			base = append(base, p)
		}
	default:
		base = []float64{
			math.Max(1, roundHalfUp(p/3)),
			math.Max(1, roundHalfUp(2*p/3)),
			p,
		}
	}

	base = dedupSorted(base)
	if !reversible {
		return base
	}

	steps := make([]float64, 0, 2*len(base)-1)
	steps = append(steps, base...)
	for i := len(base) - 2; i >= 0; i-- {
		steps = append(steps, base[i])
	}
	return steps
}

// GenerateMeasurements builds a fresh measurement list for the stage config.
// Prior readings are not carried over.
func GenerateMeasurements(ids IDProvider, maxPressure string, pressureType domain.PressureType, reversible bool) []*domain.Measurement {
	steps := PressureSteps(Number(maxPressure), pressureType, reversible)
	measurements := make([]*domain.Measurement, 0, len(steps))
	for i, p := range steps {
		measurements = append(measurements, &domain.Measurement{
			ID:                ids.NewID(),
			StepNumber:        i + 1,
			AppliedPressure:   p,
			First5Min:         "0",
			Second5Min:        "0",
			TotalLoss:         "0",
			EffectivePressure: zeroFixed,
			CalculatedLugeon:  zeroFixed,
		})
	}
	return measurements
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func dedupSorted(values []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	out := make([]float64, 0, len(sorted))
	for _, v := range sorted {
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}
