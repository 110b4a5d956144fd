package domain

import "time"

type WellType string

const (
	WellTypeCored    WellType = "CORED"
	WellTypeNonCored WellType = "NON_CORED"
)

type PressureType string

const (
	PressureTypeA PressureType = "TYPE_A"
	PressureTypeB PressureType = "TYPE_B"
	PressureTypeC PressureType = "TYPE_C"
	PressureTypeD PressureType = "TYPE_D"
)

type PackerType string

const (
	PackerSingle PackerType = "SINGLE"
	PackerDouble PackerType = "DOUBLE"
)

type FlowType string

const (
	FlowLaminar     FlowType = "Laminar"
	FlowTurbulent   FlowType = "Turbulent"
	FlowDilation    FlowType = "Dilation"
	FlowWashout     FlowType = "Washout"
	FlowVoidFilling FlowType = "Void filling"
	FlowManual      FlowType = "Manual"
)

// Valid reports whether f is one of the known flow regimes.
func (f FlowType) Valid() bool {
	switch f {
	case FlowLaminar, FlowTurbulent, FlowDilation, FlowWashout, FlowVoidFilling, FlowManual:
		return true
	}
	return false
}

// Well is a borehole together with its packer test stages and lithology log.
// Geometry fields are kept as entered; the bst package parses them.
type Well struct {
	ID               string              `json:"id" db:"id"`
	WellNo           string              `json:"well_no" db:"well_no"`
	WellType         WellType            `json:"well_type" db:"well_type"`
	Diameter         string              `json:"diameter" db:"diameter"`
	ManometerHeight  string              `json:"manometer_height" db:"manometer_height"`
	GroundwaterDepth string              `json:"groundwater_depth" db:"groundwater_depth"`
	PlannedDepth     string              `json:"planned_depth" db:"planned_depth"`
	ActualDepth      string              `json:"actual_depth" db:"actual_depth"`
	CoordinateX      string              `json:"coordinate_x" db:"coordinate_x"`
	CoordinateY      string              `json:"coordinate_y" db:"coordinate_y"`
	CoordinateZ      string              `json:"coordinate_z" db:"coordinate_z"`
	Stages           []*TestStage        `json:"stages" db:"-"`
	Lithology        []*LithologySegment `json:"lithology" db:"-"`
	CreatedAt        time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at" db:"updated_at"`
}

type TestStage struct {
	ID                   string         `json:"id"`
	StartDepth           string         `json:"start_depth"`
	EndDepth             string         `json:"end_depth"`
	PressureType         PressureType   `json:"pressure_type"`
	MaxPressure          string         `json:"max_pressure"`
	IsReversible         bool           `json:"is_reversible"`
	PackerType           PackerType     `json:"packer_type,omitempty"`
	PackerDepth          string         `json:"packer_depth,omitempty"`
	Measurements         []*Measurement `json:"measurements"`
	RepresentativeLugeon string         `json:"representative_lugeon"`
	FlowType             FlowType       `json:"flow_type"`
	IsFlowTypeManual     bool           `json:"is_flow_type_manual"`
}

type Measurement struct {
	ID                string  `json:"id"`
	StepNumber        int     `json:"step_number"`
	AppliedPressure   float64 `json:"applied_pressure"`
	First5Min         string  `json:"first_5_min"`
	Second5Min        string  `json:"second_5_min"`
	TotalLoss         string  `json:"total_loss"`
	EffectivePressure string  `json:"effective_pressure"`
	CalculatedLugeon  string  `json:"calculated_lugeon"`
}

type LithologySegment struct {
	ID                 string `json:"id"`
	StartDepth         string `json:"start_depth"`
	EndDepth           string `json:"end_depth"`
	Formation          string `json:"formation"`
	Description        string `json:"description"`
	RQD                string `json:"rqd"`
	Weathering         string `json:"weathering"`
	Lugeon             string `json:"lugeon"`
	PermeabilityStatus string `json:"permeability_status"`
	UDMarker           bool   `json:"ud_marker"`
}

// Stage returns the stage with the given id, or nil.
func (w *Well) Stage(id string) *TestStage {
	for _, s := range w.Stages {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Segment returns the lithology segment with the given id, or nil.
func (w *Well) Segment(id string) *LithologySegment {
	for _, s := range w.Lithology {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Measurement returns the measurement with the given id, or nil.
func (s *TestStage) Measurement(id string) *Measurement {
	for _, m := range s.Measurements {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Clone returns a deep copy of the well.
func (w *Well) Clone() *Well {
	if w == nil {
		return nil
	}
	c := *w
	c.Stages = make([]*TestStage, 0, len(w.Stages))
	for _, s := range w.Stages {
		c.Stages = append(c.Stages, s.Clone())
	}
	c.Lithology = make([]*LithologySegment, 0, len(w.Lithology))
	for _, seg := range w.Lithology {
		segCopy := *seg
		c.Lithology = append(c.Lithology, &segCopy)
	}
	return &c
}

func (s *TestStage) Clone() *TestStage {
	c := *s
	c.Measurements = make([]*Measurement, 0, len(s.Measurements))
	for _, m := range s.Measurements {
		mCopy := *m
		c.Measurements = append(c.Measurements, &mCopy)
	}
	return &c
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
