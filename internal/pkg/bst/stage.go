package bst

import "github.com/ihbirlik/geocoord-pro/internal/domain"

const fallbackInterval = 5.0

// StageDefaults configures stages created without an explicit setup.
type StageDefaults struct {
	Interval     float64
	PressureType domain.PressureType
	MaxPressure  float64
	Reversible   bool
}

func DefaultStageDefaults() StageDefaults {
	return StageDefaults{
		Interval:     fallbackInterval,
		PressureType: domain.PressureTypeB,
		MaxPressure:  6,
		Reversible:   true,
	}
}

// NewStage creates a stage directly below the deepest existing one, with its
// pressure steps already generated. interval overrides the default length
// when it parses to a positive number.
func NewStage(ids IDProvider, existing []*domain.TestStage, interval string, defaults StageDefaults) *domain.TestStage {
	length, ok := ParseNumber(interval)
	if !ok || length <= 0 {
		length = defaults.Interval
	}
	if !finite(length) || length <= 0 {
		length = fallbackInterval
	}

	deepest, seen := 0.0, false
	for _, s := range existing {
		end, ok := ParseNumber(s.EndDepth)
		if !ok {
			continue
		}
		if !seen || end > deepest {
			deepest, seen = end, true
		}
	}

	stage := &domain.TestStage{
		ID:                   ids.NewID(),
		StartDepth:           decimalString(deepest),
		EndDepth:             Fixed2(deepest + length),
		PressureType:         defaults.PressureType,
		MaxPressure:          decimalString(defaults.MaxPressure),
		IsReversible:         defaults.Reversible,
		RepresentativeLugeon: zeroFixed,
		FlowType:             domain.FlowLaminar,
	}
	stage.Measurements = GenerateMeasurements(ids, stage.MaxPressure, stage.PressureType, stage.IsReversible)
	return stage
}

// StageConfig holds the inputs that determine a stage's pressure sequence.
// Nil fields keep the current value.
type StageConfig struct {
	PressureType *string
	MaxPressure  *string
	Reversible   *bool
}

// Reconfigure applies cfg and, when any generating input changed, discards
// the stage's readings and regenerates its steps. It reports whether the
// steps were regenerated.
func Reconfigure(ids IDProvider, stage *domain.TestStage, cfg StageConfig) bool {
	if cfg.PressureType == nil && cfg.MaxPressure == nil && cfg.Reversible == nil {
		return false
	}
	if cfg.PressureType != nil {
		stage.PressureType = NormalizePressureType(*cfg.PressureType)
	}
	if cfg.MaxPressure != nil {
		stage.MaxPressure = *cfg.MaxPressure
	}
	if cfg.Reversible != nil {
		stage.IsReversible = *cfg.Reversible
	}
	stage.Measurements = GenerateMeasurements(ids, stage.MaxPressure, stage.PressureType, stage.IsReversible)
	return true
}
