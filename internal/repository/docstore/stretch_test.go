package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fitstack/internal/domain"
	"fitstack/internal/domain/models"
)

func validStretchRecord() map[string]any {
	return map[string]any{
		"id":          "hips-pigeon",
		"name":        "Pigeon Stretch",
		"description": "Fold one shin in front of you.",
		"bilateral":   true,
		"image":       "stretches/hips-pigeon.png",
	}
}

func TestParseStretchDefinition(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		wantOK bool
	}{
		{"valid", func(map[string]any) {}, true},
		{"null image", func(m map[string]any) { m["image"] = nil }, true},
		{"missing image", func(m map[string]any) { delete(m, "image") }, false},
		{"numeric image", func(m map[string]any) { m["image"] = 7 }, false},
		{"missing name", func(m map[string]any) { delete(m, "name") }, false},
		{"string bilateral", func(m map[string]any) { m["bilateral"] = "yes" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validStretchRecord()
			tt.mutate(rec)

			def, ok := parseStretchDefinition(rec)
			require.Equal(t, tt.wantOK, ok)
			if ok && rec["image"] == nil {
				require.Nil(t, def.Image)
			}
		})
	}
}

func TestParseStretchRegionAllOrNothing(t *testing.T) {
	good := func() []any {
		return []any{
			validStretchRecord(),
			map[string]any{
				"id": "hips-kneeling-flexor", "name": "Kneeling Hip Flexor Stretch",
				"description": "Half-kneel and shift forward.", "bilateral": true, "image": nil,
			},
			map[string]any{
				"id": "hips-butterfly", "name": "Butterfly",
				"description": "Soles together, knees wide.", "bilateral": false, "image": nil,
			},
		}
	}

	base := map[string]any{
		"display_name": "Hips",
		"icon":         "icon-hips",
		"stretches":    good(),
	}

	region, ok := parseStretchRegion("hips", base)
	require.True(t, ok)
	require.Len(t, region.Stretches, 3)
	require.Equal(t, models.RegionHips, region.Region)

	// Three valid stretches plus one invalid: the whole region fails, not a
	// region with three stretches.
	broken := append(good(), map[string]any{"id": "hips-mystery"})
	rec := map[string]any{
		"display_name": "Hips",
		"icon":         "icon-hips",
		"stretches":    broken,
	}
	_, ok = parseStretchRegion("hips", rec)
	require.False(t, ok)

	// Unknown region key fails regardless of content.
	_, ok = parseStretchRegion("forearms", base)
	require.False(t, ok)

	// A non-array stretches field fails.
	rec["stretches"] = "none"
	_, ok = parseStretchRegion("hips", rec)
	require.False(t, ok)
}

func seedRegions() []models.SeedStretchRegion {
	return []models.SeedStretchRegion{
		{
			Region: models.RegionNeck, DisplayName: "Neck", Icon: "icon-neck",
			Stretches: []models.StretchDefinition{
				{ID: "neck-chin-tuck", Name: "Chin Tuck", Description: "Draw the chin back.", Bilateral: false},
			},
		},
		{
			Region: models.RegionCalves, DisplayName: "Calves", Icon: "icon-calves",
			Stretches: []models.StretchDefinition{
				{ID: "calves-wall-lean", Name: "Wall Calf Stretch", Description: "Lean into a wall.", Bilateral: true},
			},
		},
	}
}

func TestStretchSeedAndFindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewStretchRegionRepository(newTestConfig())

	require.NoError(t, repo.Seed(ctx, seedRegions()))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// region ascending
	require.Equal(t, models.RegionCalves, all[0].Region)
	require.Equal(t, models.RegionNeck, all[1].Region)

	// Identical timestamps across the batch.
	require.Equal(t, all[0].CreatedAt, all[1].CreatedAt)
	require.Equal(t, all[0].CreatedAt, all[0].UpdatedAt)
}

func TestStretchSeedEmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := NewStretchRegionRepository(newTestConfig())

	require.NoError(t, repo.Seed(ctx, nil))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestStretchSeedValidation(t *testing.T) {
	ctx := context.Background()
	repo := NewStretchRegionRepository(newTestConfig())

	err := repo.Seed(ctx, []models.SeedStretchRegion{
		{Region: "forearms", DisplayName: "Forearms", Icon: "icon", Stretches: []models.StretchDefinition{
			{ID: "x", Name: "X", Description: "d", Bilateral: false},
		}},
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestStretchSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewStretchRegionRepository(newTestConfig())

	require.NoError(t, repo.Seed(ctx, seedRegions()))

	// Re-seed with a changed display name: the document is replaced whole.
	regions := seedRegions()
	regions[0].DisplayName = "Neck & Traps"
	require.NoError(t, repo.Seed(ctx, regions))

	neck, err := repo.FindByRegion(ctx, models.RegionNeck)
	require.NoError(t, err)
	require.NotNil(t, neck)
	require.Equal(t, "Neck & Traps", neck.DisplayName)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestStretchFindByRegionMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewStretchRegionRepository(newTestConfig())

	region, err := repo.FindByRegion(ctx, models.RegionHips)
	require.NoError(t, err)
	require.Nil(t, region)
}

func TestStretchFindAllDropsCorruptRegion(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	repo := NewStretchRegionRepository(cfg)

	require.NoError(t, repo.Seed(ctx, seedRegions()))

	// A region whose embedded list was hand-edited into an invalid shape.
	require.NoError(t, cfg.Store.Set(ctx, cfg.Collections.StretchRegions, "hips", map[string]any{
		"region":       "hips",
		"display_name": "Hips",
		"icon":         "icon-hips",
		"stretches":    []any{map[string]any{"id": "hips-pigeon"}},
	}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, region := range all {
		require.NotEqual(t, models.RegionHips, region.Region)
	}
}
