package store

import (
	"context"
	"sync"

	"github.com/ihbirlik/geocoord-pro/internal/domain"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
)

type memoryStore struct {
	mu    sync.RWMutex
	order []string
	wells map[string]*domain.Well
}

// NewMemoryStore returns a process-local Store. Wells are copied on the way
// in and out so callers never share state with the store.
func NewMemoryStore() Store {
	return &memoryStore{wells: make(map[string]*domain.Well)}
}

func (m *memoryStore) CreateWell(_ context.Context, well *domain.Well) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.wells[well.ID]; ok {
		return constants.ErrWellExists
	}
	m.wells[well.ID] = well.Clone()
	m.order = append(m.order, well.ID)
	return nil
}

func (m *memoryStore) GetWell(_ context.Context, id string) (*domain.Well, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	well, ok := m.wells[id]
	if !ok {
		return nil, constants.ErrWellNotFound
	}
	return well.Clone(), nil
}

func (m *memoryStore) ListWells(_ context.Context) ([]*domain.Well, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wells := make([]*domain.Well, 0, len(m.order))
	for _, id := range m.order {
		wells = append(wells, m.wells[id].Clone())
	}
	return wells, nil
}

func (m *memoryStore) ListWellIDs(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]string(nil), m.order...), nil
}

func (m *memoryStore) SaveWell(_ context.Context, well *domain.Well) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.wells[well.ID]; !ok {
		return constants.ErrWellNotFound
	}
	m.wells[well.ID] = well.Clone()
	return nil
}

func (m *memoryStore) DeleteWell(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.wells[id]; !ok {
		return constants.ErrWellNotFound
	}
	delete(m.wells, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
