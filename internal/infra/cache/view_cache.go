// Package cache implements the view-cache invalidation contract consumed by
// the UI layer.
package cache

import (
	"context"
	"log/slog"
	"sync"

	"comanda/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines dependencies for the view cache, injected by Fx.
type Params struct {
	fx.In

	Logger *slog.Logger
}

// memoryViewCache tracks a generation counter per view. The UI layer compares
// generations to decide whether its cached read of a screen is stale; the
// backend only guarantees the counter moves on every relevant mutation.
type memoryViewCache struct {
	mu          sync.Mutex
	generations map[string]uint64
	logger      *slog.Logger
}

// NewViewCache is the constructor for the in-process view cache.
func NewViewCache(params Params) service.ViewCache {
	return &memoryViewCache{
		generations: make(map[string]uint64),
		logger:      params.Logger,
	}
}

// Invalidate bumps the generation of each given view.
func (c *memoryViewCache) Invalidate(ctx context.Context, views ...string) {
	c.mu.Lock()
	for _, view := range views {
		c.generations[view]++
	}
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "view cache invalidated", slog.Any("views", views))
}

// Generation reports the current generation of a view. Zero means the view has
// never been invalidated.
func (c *memoryViewCache) Generation(view string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generations[view]
}
