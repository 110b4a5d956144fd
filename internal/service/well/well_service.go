package well

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ihbirlik/geocoord-pro/internal/domain"
	"github.com/ihbirlik/geocoord-pro/internal/domain/dto"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/bst"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/logger"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/logimport"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/store"
)

type Service struct {
	store       store.Store
	ids         bst.IDProvider
	defaults    bst.StageDefaults
	concurrency int
	now         func() time.Time

	locksMx sync.Mutex
	locks   map[string]*wellLock
}

// wellLock is shared by every caller holding or waiting for one well.
type wellLock struct {
	mu   sync.Mutex
	refs int
}

type Option func(*Service)

func WithIDProvider(ids bst.IDProvider) Option {
	return func(s *Service) { s.ids = ids }
}

func WithStageDefaults(defaults bst.StageDefaults) Option {
	return func(s *Service) { s.defaults = defaults }
}

func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewWellService(wellStore store.Store, opts ...Option) *Service {
	s := &Service{
		store:       wellStore,
		ids:         bst.UUIDProvider{},
		defaults:    bst.DefaultStageDefaults(),
		concurrency: 1,
		now:         func() time.Time { return time.Now().UTC() },
		locks:       make(map[string]*wellLock),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lock serialises edits of one well and returns the matching unlock. The
// entry is dropped once nobody holds or waits for it, so unknown and deleted
// well ids leave nothing behind.
func (s *Service) lock(wellID string) func() {
	s.locksMx.Lock()
	l, ok := s.locks[wellID]
	if !ok {
		l = &wellLock{}
		s.locks[wellID] = l
	}
	l.refs++
	s.locksMx.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.locksMx.Lock()
		defer s.locksMx.Unlock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, wellID)
		}
	}
}

// mutate loads the well, applies fn, recomputes every derived value and saves
// the result while holding the well's lock.
func (s *Service) mutate(ctx context.Context, wellID string, fn func(w *domain.Well) error) (*domain.Well, error) {
	unlock := s.lock(wellID)
	defer unlock()

	well, err := s.store.GetWell(ctx, wellID)
	if err != nil {
		return nil, fmt.Errorf("store.GetWell: %w", err)
	}

	if err = fn(well); err != nil {
		return nil, err
	}

	bst.RecomputeWell(well)
	well.UpdatedAt = s.now()

	if err = s.store.SaveWell(ctx, well); err != nil {
		return nil, fmt.Errorf("store.SaveWell: %w", err)
	}

	return well, nil
}

func (s *Service) CreateWell(ctx context.Context, req dto.CreateWellRequest) (*domain.Well, error) {
	wellType := req.WellType
	if wellType == "" {
		wellType = domain.WellTypeCored
	}

	now := s.now()
	well := &domain.Well{
		ID:               s.ids.NewID(),
		WellNo:           req.WellNo,
		WellType:         wellType,
		Diameter:         req.Diameter,
		ManometerHeight:  req.ManometerHeight,
		GroundwaterDepth: req.GroundwaterDepth,
		PlannedDepth:     req.PlannedDepth,
		ActualDepth:      req.ActualDepth,
		CoordinateX:      req.CoordinateX,
		CoordinateY:      req.CoordinateY,
		CoordinateZ:      req.CoordinateZ,
		Stages:           []*domain.TestStage{},
		Lithology:        []*domain.LithologySegment{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.store.CreateWell(ctx, well); err != nil {
		return nil, fmt.Errorf("store.CreateWell: %w", err)
	}

	logger.Infof(logger.WithFields(ctx, "well_id", well.ID), "created well %s", well.WellNo)
	return well, nil
}

func (s *Service) GetWell(ctx context.Context, wellID string) (*domain.Well, error) {
	well, err := s.store.GetWell(ctx, wellID)
	if err != nil {
		return nil, fmt.Errorf("store.GetWell: %w", err)
	}
	return well, nil
}

func (s *Service) ListWells(ctx context.Context) ([]*domain.Well, error) {
	wells, err := s.store.ListWells(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListWells: %w", err)
	}
	return wells, nil
}

func (s *Service) DeleteWell(ctx context.Context, wellID string) error {
	unlock := s.lock(wellID)
	defer unlock()

	if err := s.store.DeleteWell(ctx, wellID); err != nil {
		return fmt.Errorf("store.DeleteWell: %w", err)
	}

	logger.Infof(logger.WithFields(ctx, "well_id", wellID), "deleted well")
	return nil
}

func (s *Service) UpdateGeometry(ctx context.Context, wellID string, req dto.UpdateGeometryRequest) (*domain.Well, error) {
	return s.mutate(ctx, wellID, func(w *domain.Well) error {
		if req.Diameter != nil {
			w.Diameter = *req.Diameter
		}
		if req.ManometerHeight != nil {
			w.ManometerHeight = *req.ManometerHeight
		}
		if req.GroundwaterDepth != nil {
			w.GroundwaterDepth = *req.GroundwaterDepth
		}
		return nil
	})
}

// AddStage puts a new stage directly below the deepest one. The new stage
// goes to the front of the list.
func (s *Service) AddStage(ctx context.Context, wellID string, req dto.AddStageRequest) (*domain.Well, error) {
	return s.mutate(ctx, wellID, func(w *domain.Well) error {
		stage := bst.NewStage(s.ids, w.Stages, req.Interval, s.defaults)
		w.Stages = append([]*domain.TestStage{stage}, w.Stages...)
		return nil
	})
}

func (s *Service) UpdateStageConfig(
	ctx context.Context,
	wellID, stageID string,
	req dto.UpdateStageConfigRequest,
) (*domain.Well, error) {
	if req.MaxPressure != nil && !bst.MaxPressureInRange(*req.MaxPressure) {
		return nil, constants.ErrMaxPressureOutOfRange
	}

	return s.mutate(ctx, wellID, func(w *domain.Well) error {
		stage := w.Stage(stageID)
		if stage == nil {
			return constants.ErrStageNotFound
		}

		bst.Reconfigure(s.ids, stage, bst.StageConfig{
			PressureType: req.PressureType,
			MaxPressure:  req.MaxPressure,
			Reversible:   req.Reversible,
		})
		return nil
	})
}

func (s *Service) UpdateStageDepths(
	ctx context.Context,
	wellID, stageID string,
	req dto.UpdateStageDepthsRequest,
) (*domain.Well, error) {
	return s.mutate(ctx, wellID, func(w *domain.Well) error {
		stage := w.Stage(stageID)
		if stage == nil {
			return constants.ErrStageNotFound
		}

		if req.StartDepth != nil {
			stage.StartDepth = *req.StartDepth
		}
		if req.EndDepth != nil {
			stage.EndDepth = *req.EndDepth
		}
		if req.PackerType != nil {
			stage.PackerType = domain.PackerType(*req.PackerType)
		}
		if req.PackerDepth != nil {
			stage.PackerDepth = *req.PackerDepth
		}
		return nil
	})
}

func (s *Service) SetStageFlowType(
	ctx context.Context,
	wellID, stageID string,
	req dto.SetFlowTypeRequest,
) (*domain.Well, error) {
	if req.Manual && !req.FlowType.Valid() {
		return nil, constants.ErrInvalidFlowType
	}

	return s.mutate(ctx, wellID, func(w *domain.Well) error {
		stage := w.Stage(stageID)
		if stage == nil {
			return constants.ErrStageNotFound
		}

		stage.IsFlowTypeManual = req.Manual
		if req.Manual {
			stage.FlowType = req.FlowType
		}
		return nil
	})
}

func (s *Service) DeleteStage(ctx context.Context, wellID, stageID string) (*domain.Well, error) {
	return s.mutate(ctx, wellID, func(w *domain.Well) error {
		for i, stage := range w.Stages {
			if stage.ID == stageID {
				w.Stages = append(w.Stages[:i], w.Stages[i+1:]...)
				return nil
			}
		}
		return constants.ErrStageNotFound
	})
}

func (s *Service) UpdateMeasurement(
	ctx context.Context,
	wellID, stageID, measurementID string,
	req dto.UpdateMeasurementRequest,
) (*domain.Well, error) {
	return s.mutate(ctx, wellID, func(w *domain.Well) error {
		stage := w.Stage(stageID)
		if stage == nil {
			return constants.ErrStageNotFound
		}
		m := stage.Measurement(measurementID)
		if m == nil {
			return constants.ErrMeasurementNotFound
		}

		if req.First5Min != nil {
			m.First5Min = *req.First5Min
		}
		if req.Second5Min != nil {
			m.Second5Min = *req.Second5Min
		}
		if req.TotalLoss != nil {
			m.TotalLoss = *req.TotalLoss
		}
		return nil
	})
}

func (s *Service) ReplaceLithology(ctx context.Context, wellID string, req dto.ReplaceLithologyRequest) (*domain.Well, error) {
	segments := make([]*domain.LithologySegment, 0, len(req.Segments))
	for _, in := range req.Segments {
		seg := &domain.LithologySegment{
			ID:          s.ids.NewID(),
			StartDepth:  in.StartDepth,
			EndDepth:    in.EndDepth,
			Formation:   in.Formation,
			Description: in.Description,
			RQD:         in.RQD,
			Weathering:  in.Weathering,
			UDMarker:    in.UDMarker,
		}
		if in.Lugeon != "" {
			bst.SetSegmentLugeon(seg, in.Lugeon)
		}
		segments = append(segments, seg)
	}

	return s.mutate(ctx, wellID, func(w *domain.Well) error {
		w.Lithology = segments
		return nil
	})
}

// ImportLithologyHTML replaces the well's lithology with the rows of an HTML
// log export.
func (s *Service) ImportLithologyHTML(ctx context.Context, wellID string, r io.Reader) (*domain.Well, error) {
	segments, err := logimport.ParseHTML(r, s.ids)
	if err != nil {
		if errors.Is(err, logimport.ErrNoLogTable) {
			return nil, fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
		}
		return nil, fmt.Errorf("logimport.ParseHTML: %w", err)
	}

	well, err := s.mutate(ctx, wellID, func(w *domain.Well) error {
		w.Lithology = segments
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infof(logger.WithFields(ctx, "well_id", wellID), "imported %d lithology segments", len(segments))
	return well, nil
}

func (s *Service) UpdateSegmentLugeon(
	ctx context.Context,
	wellID, segmentID string,
	req dto.UpdateSegmentLugeonRequest,
) (*domain.Well, error) {
	return s.mutate(ctx, wellID, func(w *domain.Well) error {
		seg := w.Segment(segmentID)
		if seg == nil {
			return constants.ErrSegmentNotFound
		}
		bst.SetSegmentLugeon(seg, req.Lugeon)
		return nil
	})
}

// SyncLithology copies the stages' representative Lugeon values onto the
// overlapping lithology segments.
func (s *Service) SyncLithology(ctx context.Context, wellID string) (*dto.SyncLithologyResponse, error) {
	var synced int
	well, err := s.mutate(ctx, wellID, func(w *domain.Well) error {
		// stages must carry fresh values before they are copied
		bst.RecomputeWell(w)
		synced = bst.SyncLithology(w)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.SyncLithologyResponse{Synced: synced, Well: well}, nil
}

// RecomputeAll recomputes and saves every stored well, s.concurrency at a
// time, and returns how many wells were processed.
func (s *Service) RecomputeAll(ctx context.Context) (int, error) {
	ids, err := s.store.ListWellIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("store.ListWellIDs: %w", err)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)

	var (
		processed   int
		processedMx sync.Mutex
	)
	for _, id := range ids {
		id := id
		eg.Go(func() error {
			_, err := s.mutate(egCtx, id, func(*domain.Well) error { return nil })
			if errors.Is(err, constants.ErrWellNotFound) {
				// deleted while the batch was running
				return nil
			}
			if err != nil {
				return fmt.Errorf("recompute well %s: %w", id, err)
			}

			processedMx.Lock()
			defer processedMx.Unlock()
			processed++
			return nil
		})
	}

	if err = eg.Wait(); err != nil {
		logger.Errorf(ctx, "bulk recompute stopped after %d wells: %s", processed, err.Error())
		return processed, err
	}

	logger.Infof(ctx, "recomputed %d wells", processed)
	return processed, nil
}
