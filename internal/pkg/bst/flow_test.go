package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ihbirlik/geocoord-pro/internal/domain"
)

func measurementsWithLugeon(values ...string) []*domain.Measurement {
	ms := make([]*domain.Measurement, 0, len(values))
	for i, v := range values {
		ms = append(ms, &domain.Measurement{StepNumber: i + 1, CalculatedLugeon: v})
	}
	return ms
}

func TestClassifyFlow(t *testing.T) {
	tests := []struct {
		name string
		lus  []string
		want domain.FlowType
	}{
		{"washout", []string{"1.00", "2.00", "3.00", "4.00", "5.00"}, domain.FlowWashout},
		{"dilation", []string{"2.00", "3.00", "2.20"}, domain.FlowDilation},
		{"turbulent", []string{"2.00", "1.00", "1.50", "1.80", "1.90"}, domain.FlowTurbulent},
		{"steady is laminar", []string{"2.00", "2.00", "2.00", "2.00", "2.00"}, domain.FlowLaminar},
		{"washout wins over dilation", []string{"1.00", "4.00", "2.00"}, domain.FlowWashout},
		{"zeros are skipped", []string{"0.00", "2.00", "0.00", "2.10", "2.00"}, domain.FlowLaminar},
		{"too few positive values", []string{"0.00", "9.00", "0.00", "1.00", "0.00"}, domain.FlowLaminar},
		{"too few measurements", []string{"1.00", "9.00"}, domain.FlowLaminar},
		{"unparsable values are skipped", []string{"x", "1.00", "1.00"}, domain.FlowLaminar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFlow(measurementsWithLugeon(tt.lus...)))
		})
	}
}

func TestClassifyFlowThresholdsAreStrict(t *testing.T) {
	// last == 1.5*first is not a washout, peak == 1.2*first is not a dilation.
	assert.Equal(t, domain.FlowLaminar, ClassifyFlow(measurementsWithLugeon("2.00", "2.40", "2.40")))
	assert.Equal(t, domain.FlowLaminar, ClassifyFlow(measurementsWithLugeon("2.00", "1.60", "3.00")))
}
