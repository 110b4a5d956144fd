package bst

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDProvider hands out identifiers for stages, measurements and segments.
type IDProvider interface {
	NewID() string
}

type UUIDProvider struct{}

func (UUIDProvider) NewID() string {
	return uuid.NewString()
}

// CounterProvider yields prefix-1, prefix-2, ... and is safe for concurrent use.
type CounterProvider struct {
	Prefix string
	n      atomic.Uint64
}

func NewCounterProvider(prefix string) *CounterProvider {
	return &CounterProvider{Prefix: prefix}
}

func (c *CounterProvider) NewID() string {
	return c.Prefix + "-" + strconv.FormatUint(c.n.Add(1), 10)
}
