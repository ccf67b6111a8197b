package domain

import (
	"context"

	"legallens/internal/core/catalog"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	// Current returns the active catalog snapshot
	Current() *catalog.Catalog
	List(ctx context.Context) ([]IntentView, error)
	Reload(ctx context.Context) (ReloadResult, error)
}
