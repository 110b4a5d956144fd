package bst

const (
	PermeabilityUnknown  = "-"
	PermeabilityVeryLow  = "Very low permeability / watertight"
	PermeabilityLow      = "Low permeability"
	PermeabilityMedium   = "Medium permeability"
	PermeabilityHigh     = "High permeability"
	PermeabilityVeryHigh = "Very high / cavitated"
)

// PermeabilityStatus maps a Lugeon value entered or computed as text onto its
// qualitative class.
func PermeabilityStatus(lugeon string) string {
	lu, ok := ParseNumber(lugeon)
	if !ok {
		return PermeabilityUnknown
	}
	return PermeabilityClass(lu)
}

func PermeabilityClass(lu float64) string {
	switch {
	case lu < 1:
		return PermeabilityVeryLow
	case lu < 5:
		return PermeabilityLow
	case lu < 25:
		return PermeabilityMedium
	case lu < 100:
		return PermeabilityHigh
	default:
		return PermeabilityVeryHigh
	}
}
