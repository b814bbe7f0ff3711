// Package service defines interfaces for collaborators outside the domain core.
package service

import "context"

// View cache keys known to the UI layer. Each key names a screen whose cached
// reads must be refreshed after the corresponding mutation.
const (
	ViewOrders     = "orders"
	ViewCatalog    = "catalog"
	ViewOrderEntry = "order-entry"
)

// ViewCache is the cache-invalidation contract exposed to the UI layer.
// Catalog mutations invalidate the catalog and order-entry views; order
// mutations invalidate the orders view. Implementations must tolerate
// invalidation of keys nobody is caching.
type ViewCache interface {
	// Invalidate drops any cached reads for the given view keys.
	Invalidate(ctx context.Context, views ...string)

	// Generation reports a counter that moves whenever the view is
	// invalidated. The UI compares generations to detect stale reads; zero
	// means the view was never invalidated.
	Generation(view string) uint64
}
