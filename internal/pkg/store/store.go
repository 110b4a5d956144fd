package store

import (
	"context"

	"github.com/ihbirlik/geocoord-pro/internal/domain"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store persists well aggregates. A well is always read and written as a
// whole, together with its stages, measurements and lithology segments.
type Store interface {
	CreateWell(ctx context.Context, well *domain.Well) error
	GetWell(ctx context.Context, id string) (*domain.Well, error)
	ListWells(ctx context.Context) ([]*domain.Well, error)
	ListWellIDs(ctx context.Context) ([]string, error)
	SaveWell(ctx context.Context, well *domain.Well) error
	DeleteWell(ctx context.Context, id string) error
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
