package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/bytedance/sonic"

	"github.com/ihbirlik/geocoord-pro/internal/domain"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/store/xpgx"
)

const (
	wellsColumns = "id, well_no, well_type, diameter, manometer_height, groundwater_depth, planned_depth, actual_depth, " +
		"coordinate_x, coordinate_y, coordinate_z, created_at, updated_at"
	stagesColumns = "id, well_id, position, start_depth, end_depth, pressure_type, max_pressure, is_reversible, " +
		"packer_type, packer_depth, measurements, representative_lugeon, flow_type, is_flow_type_manual"
	segmentsColumns = "id, well_id, position, start_depth, end_depth, formation, description, rqd, weathering, " +
		"lugeon, permeability_status, ud_marker"
)

type stageRow struct {
	ID                   string `db:"id"`
	WellID               string `db:"well_id"`
	Position             int    `db:"position"`
	StartDepth           string `db:"start_depth"`
	EndDepth             string `db:"end_depth"`
	PressureType         string `db:"pressure_type"`
	MaxPressure          string `db:"max_pressure"`
	IsReversible         bool   `db:"is_reversible"`
	PackerType           string `db:"packer_type"`
	PackerDepth          string `db:"packer_depth"`
	Measurements         []byte `db:"measurements"`
	RepresentativeLugeon string `db:"representative_lugeon"`
	FlowType             string `db:"flow_type"`
	IsFlowTypeManual     bool   `db:"is_flow_type_manual"`
}

func (r *stageRow) toDomain() (*domain.TestStage, error) {
	stage := &domain.TestStage{
		ID:                   r.ID,
		StartDepth:           r.StartDepth,
		EndDepth:             r.EndDepth,
		PressureType:         domain.PressureType(r.PressureType),
		MaxPressure:          r.MaxPressure,
		IsReversible:         r.IsReversible,
		PackerType:           domain.PackerType(r.PackerType),
		PackerDepth:          r.PackerDepth,
		RepresentativeLugeon: r.RepresentativeLugeon,
		FlowType:             domain.FlowType(r.FlowType),
		IsFlowTypeManual:     r.IsFlowTypeManual,
		Measurements:         []*domain.Measurement{},
	}
	if len(r.Measurements) > 0 {
		if err := sonic.Unmarshal(r.Measurements, &stage.Measurements); err != nil {
			return nil, fmt.Errorf("decode measurements of stage %s: %w", r.ID, err)
		}
	}
	return stage, nil
}

type segmentRow struct {
	ID                 string `db:"id"`
	WellID             string `db:"well_id"`
	Position           int    `db:"position"`
	StartDepth         string `db:"start_depth"`
	EndDepth           string `db:"end_depth"`
	Formation          string `db:"formation"`
	Description        string `db:"description"`
	RQD                string `db:"rqd"`
	Weathering         string `db:"weathering"`
	Lugeon             string `db:"lugeon"`
	PermeabilityStatus string `db:"permeability_status"`
	UDMarker           bool   `db:"ud_marker"`
}

func (r *segmentRow) toDomain() *domain.LithologySegment {
	return &domain.LithologySegment{
		ID:                 r.ID,
		StartDepth:         r.StartDepth,
		EndDepth:           r.EndDepth,
		Formation:          r.Formation,
		Description:        r.Description,
		RQD:                r.RQD,
		Weathering:         r.Weathering,
		Lugeon:             r.Lugeon,
		PermeabilityStatus: r.PermeabilityStatus,
		UDMarker:           r.UDMarker,
	}
}

type idRow struct {
	ID string `db:"id"`
}

func (s *store) CreateWell(ctx context.Context, well *domain.Well) error {
	return s.pool.InTx(ctx, func(q xpgx.Querier) error {
		query := builder().Insert(tableWells).
			Columns(strings.Split(wellsColumns, ", ")...).
			Values(well.ID, well.WellNo, well.WellType, well.Diameter, well.ManometerHeight, well.GroundwaterDepth,
				well.PlannedDepth, well.ActualDepth, well.CoordinateX, well.CoordinateY, well.CoordinateZ,
				well.CreatedAt, well.UpdatedAt)

		if _, err := xpgx.Execx(ctx, q, query); err != nil {
			return fmt.Errorf("insert well: %w", err)
		}

		return insertChildren(ctx, q, well)
	})
}

func (s *store) GetWell(ctx context.Context, id string) (*domain.Well, error) {
	query := builder().Select(strings.Split(wellsColumns, ", ")...).
		From(tableWells).
		Where(squirrel.Eq{"id": id})

	well, err := xpgx.Get[domain.Well](ctx, s.pool, query)
	if err != nil {
		err = wrapErr(err)
		if err == constants.ErrDBNotFound {
			return nil, constants.ErrWellNotFound
		}
		return nil, err
	}

	wells := []*domain.Well{well}
	if err := s.loadChildren(ctx, wells); err != nil {
		return nil, err
	}

	return well, nil
}

func (s *store) ListWells(ctx context.Context) ([]*domain.Well, error) {
	query := builder().Select(strings.Split(wellsColumns, ", ")...).
		From(tableWells).
		OrderBy("created_at", "id")

	rows, err := xpgx.Select[domain.Well](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	wells := make([]*domain.Well, 0, len(rows))
	for i := range rows {
		wells = append(wells, &rows[i])
	}

	if err := s.loadChildren(ctx, wells); err != nil {
		return nil, err
	}

	return wells, nil
}

func (s *store) ListWellIDs(ctx context.Context) ([]string, error) {
	query := builder().Select("id").
		From(tableWells).
		OrderBy("created_at", "id")

	rows, err := xpgx.Select[idRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// SaveWell overwrites the well row and replaces its stages and segments.
func (s *store) SaveWell(ctx context.Context, well *domain.Well) error {
	return s.pool.InTx(ctx, func(q xpgx.Querier) error {
		query := builder().Update(tableWells).
			SetMap(map[string]any{
				"well_no":           well.WellNo,
				"well_type":         well.WellType,
				"diameter":          well.Diameter,
				"manometer_height":  well.ManometerHeight,
				"groundwater_depth": well.GroundwaterDepth,
				"planned_depth":     well.PlannedDepth,
				"actual_depth":      well.ActualDepth,
				"coordinate_x":      well.CoordinateX,
				"coordinate_y":      well.CoordinateY,
				"coordinate_z":      well.CoordinateZ,
				"updated_at":        well.UpdatedAt,
			}).
			Where(squirrel.Eq{"id": well.ID})

		tag, err := xpgx.Execx(ctx, q, query)
		if err != nil {
			return fmt.Errorf("update well: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return constants.ErrWellNotFound
		}

		for _, table := range []string{tableTestStages, tableLithologySegments} {
			del := builder().Delete(table).Where(squirrel.Eq{"well_id": well.ID})
			if _, err := xpgx.Execx(ctx, q, del); err != nil {
				return fmt.Errorf("delete %s: %w", table, err)
			}
		}

		return insertChildren(ctx, q, well)
	})
}

func (s *store) DeleteWell(ctx context.Context, id string) error {
	query := builder().Delete(tableWells).Where(squirrel.Eq{"id": id})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return fmt.Errorf("delete well: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrWellNotFound
	}
	return nil
}

func insertChildren(ctx context.Context, q xpgx.Querier, well *domain.Well) error {
	if query, err := insertStagesQuery(well); err != nil {
		return err
	} else if query != nil {
		if _, err := xpgx.Execx(ctx, q, query); err != nil {
			return fmt.Errorf("insert stages: %w", err)
		}
	}

	if query := insertSegmentsQuery(well); query != nil {
		if _, err := xpgx.Execx(ctx, q, query); err != nil {
			return fmt.Errorf("insert lithology: %w", err)
		}
	}
	return nil
}

// insertStagesQuery returns nil when the well has no stages.
func insertStagesQuery(well *domain.Well) (squirrel.Sqlizer, error) {
	if len(well.Stages) == 0 {
		return nil, nil
	}

	query := builder().Insert(tableTestStages).Columns(strings.Split(stagesColumns, ", ")...)
	for i, st := range well.Stages {
		measurements := st.Measurements
		if measurements == nil {
			measurements = []*domain.Measurement{}
		}
		raw, err := sonic.Marshal(measurements)
		if err != nil {
			return nil, fmt.Errorf("encode measurements of stage %s: %w", st.ID, err)
		}
		query = query.Values(st.ID, well.ID, i, st.StartDepth, st.EndDepth, st.PressureType, st.MaxPressure,
			st.IsReversible, st.PackerType, st.PackerDepth, string(raw), st.RepresentativeLugeon, st.FlowType,
			st.IsFlowTypeManual)
	}
	return query, nil
}

// insertSegmentsQuery returns nil when the well has no lithology.
func insertSegmentsQuery(well *domain.Well) squirrel.Sqlizer {
	if len(well.Lithology) == 0 {
		return nil
	}

	query := builder().Insert(tableLithologySegments).Columns(strings.Split(segmentsColumns, ", ")...)
	for i, seg := range well.Lithology {
		query = query.Values(seg.ID, well.ID, i, seg.StartDepth, seg.EndDepth, seg.Formation, seg.Description,
			seg.RQD, seg.Weathering, seg.Lugeon, seg.PermeabilityStatus, seg.UDMarker)
	}
	return query
}

func (s *store) loadChildren(ctx context.Context, wells []*domain.Well) error {
	if len(wells) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Well, len(wells))
	ids := make([]string, 0, len(wells))
	for _, w := range wells {
		w.Stages = []*domain.TestStage{}
		w.Lithology = []*domain.LithologySegment{}
		byID[w.ID] = w
		ids = append(ids, w.ID)
	}

	stagesQuery := builder().Select(strings.Split(stagesColumns, ", ")...).
		From(tableTestStages).
		Where(squirrel.Eq{"well_id": ids}).
		OrderBy("well_id", "position")

	stages, err := xpgx.Select[stageRow](ctx, s.pool, stagesQuery)
	if err != nil {
		return fmt.Errorf("select stages: %w", wrapErr(err))
	}
	for i := range stages {
		stage, err := stages[i].toDomain()
		if err != nil {
			return err
		}
		if w, ok := byID[stages[i].WellID]; ok {
			w.Stages = append(w.Stages, stage)
		}
	}

	segmentsQuery := builder().Select(strings.Split(segmentsColumns, ", ")...).
		From(tableLithologySegments).
		Where(squirrel.Eq{"well_id": ids}).
		OrderBy("well_id", "position")

	segments, err := xpgx.Select[segmentRow](ctx, s.pool, segmentsQuery)
	if err != nil {
		return fmt.Errorf("select lithology: %w", wrapErr(err))
	}
	for i := range segments {
		if w, ok := byID[segments[i].WellID]; ok {
			w.Lithology = append(w.Lithology, segments[i].toDomain())
		}
	}

	return nil
}
