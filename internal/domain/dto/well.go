package dto

import "github.com/ihbirlik/geocoord-pro/internal/domain"

type CreateWellRequest struct {
	WellNo           string          `json:"well_no" validate:"required,max=64"`
	WellType         domain.WellType `json:"well_type" validate:"omitempty,oneof=CORED NON_CORED"`
	Diameter         string          `json:"diameter" validate:"max=32"`
	ManometerHeight  string          `json:"manometer_height" validate:"max=32"`
	GroundwaterDepth string          `json:"groundwater_depth" validate:"max=32"`
	PlannedDepth     string          `json:"planned_depth" validate:"max=32"`
	ActualDepth      string          `json:"actual_depth" validate:"max=32"`
	CoordinateX      string          `json:"coordinate_x" validate:"max=32"`
	CoordinateY      string          `json:"coordinate_y" validate:"max=32"`
	CoordinateZ      string          `json:"coordinate_z" validate:"max=32"`
}

// UpdateGeometryRequest changes the well-wide inputs of the Lugeon formula.
// Nil fields are left untouched; an empty string falls back to the default.
type UpdateGeometryRequest struct {
	Diameter         *string `json:"diameter" validate:"omitempty,max=32"`
	ManometerHeight  *string `json:"manometer_height" validate:"omitempty,max=32"`
	GroundwaterDepth *string `json:"groundwater_depth" validate:"omitempty,max=32"`
}

type AddStageRequest struct {
	Interval string `json:"interval" validate:"max=32"`
}

type UpdateStageConfigRequest struct {
	PressureType *string `json:"pressure_type" validate:"omitempty,oneof=TYPE_A TYPE_B TYPE_C TYPE_D TIP_A TIP_B TIP_C TIP_D"`
	MaxPressure  *string `json:"max_pressure" validate:"omitempty,max=32,max_pressure"`
	Reversible   *bool   `json:"is_reversible"`
}

type UpdateStageDepthsRequest struct {
	StartDepth  *string `json:"start_depth" validate:"omitempty,max=32"`
	EndDepth    *string `json:"end_depth" validate:"omitempty,max=32"`
	PackerType  *string `json:"packer_type" validate:"omitempty,oneof=SINGLE DOUBLE"`
	PackerDepth *string `json:"packer_depth" validate:"omitempty,max=32"`
}

// SetFlowTypeRequest pins the stage's flow type when Manual is set and hands
// it back to the classifier otherwise.
type SetFlowTypeRequest struct {
	FlowType domain.FlowType `json:"flow_type"`
	Manual   bool            `json:"manual"`
}

type UpdateMeasurementRequest struct {
	First5Min  *string `json:"first_5_min" validate:"omitempty,max=32"`
	Second5Min *string `json:"second_5_min" validate:"omitempty,max=32"`
	TotalLoss  *string `json:"total_loss" validate:"omitempty,max=32"`
}

type LithologySegmentInput struct {
	StartDepth  string `json:"start_depth" validate:"max=32"`
	EndDepth    string `json:"end_depth" validate:"max=32"`
	Formation   string `json:"formation" validate:"max=256"`
	Description string `json:"description" validate:"max=4096"`
	RQD         string `json:"rqd" validate:"max=32"`
	Weathering  string `json:"weathering" validate:"max=32"`
	Lugeon      string `json:"lugeon" validate:"max=32"`
	UDMarker    bool   `json:"ud_marker"`
}

type ReplaceLithologyRequest struct {
	Segments []LithologySegmentInput `json:"segments" validate:"dive"`
}

type ImportLithologyRequest struct {
	HTML string `json:"html" validate:"required"`
}

type UpdateSegmentLugeonRequest struct {
	Lugeon string `json:"lugeon" validate:"max=32"`
}

type SyncLithologyResponse struct {
	Synced int          `json:"synced"`
	Well   *domain.Well `json:"well"`
}

type PressureStepsRequest struct {
	MaxPressure  string `json:"max_pressure" validate:"required,max=32,max_pressure"`
	PressureType string `json:"pressure_type" validate:"omitempty,oneof=TYPE_A TYPE_B TYPE_C TYPE_D TIP_A TIP_B TIP_C TIP_D"`
	Reversible   bool   `json:"is_reversible"`
}

type PressureStepsResponse struct {
	PressureType domain.PressureType `json:"pressure_type"`
	Steps        []float64           `json:"steps"`
}

// LugeonRequest carries raw field values; unparsable numbers count as 0 and
// empty geometry takes the well defaults.
type LugeonRequest struct {
	TotalLoss        string `json:"total_loss"`
	AppliedPressure  string `json:"applied_pressure"`
	StageLength      string `json:"stage_length"`
	CenterDepth      string `json:"center_depth"`
	GroundwaterDepth string `json:"groundwater_depth"`
	ManometerHeight  string `json:"manometer_height"`
	Diameter         string `json:"diameter"`
}

type LugeonResponse struct {
	Lugeon             string `json:"lugeon"`
	EffectivePressure  string `json:"effective_pressure"`
	PermeabilityStatus string `json:"permeability_status"`
}

type PermeabilityResponse struct {
	Lugeon string `json:"lugeon"`
	Status string `json:"status"`
}

type RecomputeResponse struct {
	Processed int `json:"processed"`
}
