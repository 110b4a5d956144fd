package bst

import "github.com/ihbirlik/geocoord-pro/internal/domain"

// SyncLithology copies each overlapping stage's representative Lugeon onto the
// well's lithology segments and returns how many segments were updated. The
// first overlapping stage in list order wins. Segments without a match are
// left as they are.
func SyncLithology(w *domain.Well) int {
	synced := 0
	for _, seg := range w.Lithology {
		stage := overlappingStage(seg, w.Stages)
		if stage == nil {
			continue
		}
		lu := stage.RepresentativeLugeon
		if lu == "" {
			lu = zeroFixed
		}
		SetSegmentLugeon(seg, lu)
		synced++
	}
	return synced
}

// SetSegmentLugeon stores lu on the segment and re-derives its permeability class.
func SetSegmentLugeon(seg *domain.LithologySegment, lu string) {
	seg.Lugeon = lu
	seg.PermeabilityStatus = PermeabilityStatus(lu)
}

func overlappingStage(seg *domain.LithologySegment, stages []*domain.TestStage) *domain.TestStage {
	segStart, okStart := ParseNumber(seg.StartDepth)
	segEnd, okEnd := ParseNumber(seg.EndDepth)

	for _, stage := range stages {
		stageStart, ok1 := ParseNumber(stage.StartDepth)
		stageEnd, ok2 := ParseNumber(stage.EndDepth)
		if !ok1 || !ok2 {
			continue
		}
		if okStart && segStart >= stageStart && segStart < stageEnd {
			return stage
		}
		if okEnd && segEnd > stageStart && segEnd <= stageEnd {
			return stage
		}
	}
	return nil
}
