package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihbirlik/geocoord-pro/internal/domain"
)

func TestNewStageFirstInWell(t *testing.T) {
	stage := NewStage(NewCounterProvider("id"), nil, "", DefaultStageDefaults())

	assert.Equal(t, "0", stage.StartDepth)
	assert.Equal(t, "5.00", stage.EndDepth)
	assert.Equal(t, domain.PressureTypeB, stage.PressureType)
	assert.Equal(t, "6", stage.MaxPressure)
	assert.True(t, stage.IsReversible)
	require.Len(t, stage.Measurements, 5)
	assert.Equal(t, 6.0, stage.Measurements[2].AppliedPressure)
}

func TestNewStageBelowDeepest(t *testing.T) {
	existing := []*domain.TestStage{
		{EndDepth: "10"},
		{EndDepth: "25.5"},
		{EndDepth: "broken"},
	}

	stage := NewStage(NewCounterProvider("id"), existing, "3", DefaultStageDefaults())

	assert.Equal(t, "25.5", stage.StartDepth)
	assert.Equal(t, "28.50", stage.EndDepth)
}

func TestNewStageIgnoresBadInterval(t *testing.T) {
	defaults := DefaultStageDefaults()
	defaults.Interval = 0

	stage := NewStage(NewCounterProvider("id"), nil, "-1", defaults)

	assert.Equal(t, "5.00", stage.EndDepth)
}

func TestReconfigure(t *testing.T) {
	ids := NewCounterProvider("id")
	stage := NewStage(ids, nil, "", DefaultStageDefaults())
	stage.Measurements[0].TotalLoss = "12"

	assert.False(t, Reconfigure(ids, stage, StageConfig{}))
	assert.Equal(t, "12", stage.Measurements[0].TotalLoss)

	maxP, typ, rev := "10", "TIP_C", false
	assert.True(t, Reconfigure(ids, stage, StageConfig{PressureType: &typ, MaxPressure: &maxP, Reversible: &rev}))

	assert.Equal(t, domain.PressureTypeC, stage.PressureType)
	require.Len(t, stage.Measurements, 3)
	assert.Equal(t, []float64{3, 6, 10}, []float64{
		stage.Measurements[0].AppliedPressure,
		stage.Measurements[1].AppliedPressure,
		stage.Measurements[2].AppliedPressure,
	})
	assert.Equal(t, "0", stage.Measurements[0].TotalLoss)
}
