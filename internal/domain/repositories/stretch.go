package repositories

import (
	"context"

	"fitstack/internal/domain/models"
)

// StretchRegionRepository defines data access operations for stretch-region
// reference data. Region decoding is all-or-nothing over the embedded
// stretch definitions.
type StretchRegionRepository interface {
	// FindByRegion retrieves one region by key, or nil if absent or
	// undecodable.
	FindByRegion(ctx context.Context, region models.RegionKey) (*models.StretchRegion, error)

	// FindAll lists all regions ordered by region key ascending.
	FindAll(ctx context.Context) ([]models.StretchRegion, error)

	// Seed bulk-upserts one document per region key in a single atomic
	// batch, stamping identical timestamps across the whole batch. An empty
	// input performs no writes. Seeding is idempotent: existing region
	// documents are replaced, not merged.
	Seed(ctx context.Context, regions []models.SeedStretchRegion) error
}
