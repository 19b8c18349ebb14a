package docstore

import (
	"context"
	"fmt"
	"slices"

	"fitstack/internal/domain"
	"fitstack/internal/domain/models"
	"fitstack/internal/domain/repositories"
	"fitstack/internal/store"
)

// stretchRegionRepository stores stretch reference data, one document per
// body region keyed by the region name itself. Decoding recurses into the
// embedded stretch definitions and fails the whole region if any definition
// is malformed: a partial stretch list is never a valid result.
type stretchRegionRepository struct {
	repository[models.StretchRegion, models.SeedStretchRegion, struct{}]
}

// NewStretchRegionRepository creates a stretch-region repository. Writes go
// through Seed exclusively, so the generic create/update path stays unwired.
func NewStretchRegionRepository(cfg *RepositoryConfig) repositories.StretchRegionRepository {
	r := &stretchRegionRepository{}
	r.repository = repository[models.StretchRegion, models.SeedStretchRegion, struct{}]{
		store:      cfg.Store,
		collection: cfg.Collections.StretchRegions,
		logger:     cfg.logger(),
		now:        cfg.now(),
		parse:      parseStretchRegion,
	}
	return r
}

// FindByRegion retrieves one region by key, or nil if absent or undecodable.
func (r *stretchRegionRepository) FindByRegion(ctx context.Context, region models.RegionKey) (*models.StretchRegion, error) {
	return r.FindByID(ctx, string(region))
}

// FindAll lists all regions ordered by region key ascending.
func (r *stretchRegionRepository) FindAll(ctx context.Context) ([]models.StretchRegion, error) {
	return r.query(ctx, store.Query{}.Asc("region"))
}

// Seed bulk-upserts the regions in one atomic batch with identical
// timestamps. Documents are set whole, not merged, so re-seeding replaces any
// drifted data. An empty input performs no writes.
func (r *stretchRegionRepository) Seed(ctx context.Context, regions []models.SeedStretchRegion) error {
	if len(regions) == 0 {
		return nil
	}

	for _, region := range regions {
		if err := region.Validate(); err != nil {
			return fmt.Errorf("%w: region %q: %v", domain.ErrValidation, region.Region, err)
		}
	}

	now := r.now()
	batch := r.store.Batch()
	for _, region := range regions {
		fields := stretchRegionFields(region)
		fields["created_at"] = now
		fields["updated_at"] = now
		batch.Set(r.collection, string(region.Region), fields)
	}

	if err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("seed %s: %w", r.collection, err)
	}
	return nil
}

// parseStretchRegion validates a stored region. The document key must be a
// known region, and every embedded stretch definition must decode -
// all-or-nothing over the sequence.
func parseStretchRegion(id string, data map[string]any) (*models.StretchRegion, bool) {
	if !slices.Contains(models.RegionKeys(), id) {
		return nil, false
	}
	displayName, ok := readString(data, "display_name")
	if !ok {
		return nil, false
	}
	icon, ok := readString(data, "icon")
	if !ok {
		return nil, false
	}
	raw, ok := data["stretches"].([]any)
	if !ok {
		return nil, false
	}

	stretches := make([]models.StretchDefinition, 0, len(raw))
	for _, el := range raw {
		rec, ok := isRecord(el)
		if !ok {
			return nil, false
		}
		def, ok := parseStretchDefinition(rec)
		if !ok {
			return nil, false
		}
		stretches = append(stretches, *def)
	}

	return &models.StretchRegion{
		Region:      models.RegionKey(id),
		DisplayName: displayName,
		Icon:        icon,
		Stretches:   stretches,
		CreatedAt:   stringOr(data, "created_at"),
		UpdatedAt:   stringOr(data, "updated_at"),
	}, true
}

// parseStretchDefinition validates one embedded stretch. Image is nullable:
// explicit null is fine, a missing or mistyped field is not.
func parseStretchDefinition(rec map[string]any) (*models.StretchDefinition, bool) {
	id, ok := readString(rec, "id")
	if !ok {
		return nil, false
	}
	name, ok := readString(rec, "name")
	if !ok {
		return nil, false
	}
	description, ok := readString(rec, "description")
	if !ok {
		return nil, false
	}
	bilateral, ok := readBool(rec, "bilateral")
	if !ok {
		return nil, false
	}
	image := readNullableString(rec, "image")
	if !image.Present {
		return nil, false
	}

	return &models.StretchDefinition{
		ID:          id,
		Name:        name,
		Description: description,
		Bilateral:   bilateral,
		Image:       image.Value,
	}, true
}

func stretchRegionFields(in models.SeedStretchRegion) map[string]any {
	return map[string]any{
		"region":       string(in.Region),
		"display_name": in.DisplayName,
		"icon":         in.Icon,
		"stretches":    stretchList(in.Stretches),
	}
}

func stretchList(defs []models.StretchDefinition) []any {
	out := make([]any, 0, len(defs))
	for _, d := range defs {
		rec := map[string]any{
			"id":          d.ID,
			"name":        d.Name,
			"description": d.Description,
			"bilateral":   d.Bilateral,
			"image":       nil,
		}
		if d.Image != nil {
			rec["image"] = *d.Image
		}
		out = append(out, rec)
	}
	return out
}
