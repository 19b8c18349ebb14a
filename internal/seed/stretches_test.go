package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"fitstack/internal/domain/models"
	"fitstack/internal/repository/docstore"
	"fitstack/internal/store/memory"
)

func TestLoadStretchRegions(t *testing.T) {
	regions, err := LoadStretchRegions()
	require.NoError(t, err)
	require.Len(t, regions, len(models.RegionKeys()))

	seen := map[models.RegionKey]bool{}
	for _, region := range regions {
		require.NoError(t, region.Validate(), "region %s", region.Region)
		require.False(t, seen[region.Region])
		seen[region.Region] = true
	}
}

func TestStretchSeederRun(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := docstore.NewStretchRegionRepository(&docstore.RepositoryConfig{
		Store:       memory.New(),
		Collections: docstore.NewCollectionNames("test_"),
		Logger:      logger,
	})

	require.NoError(t, NewStretchSeeder(repo, logger).Run(ctx))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(models.RegionKeys()))
	for _, region := range all {
		require.NotEmpty(t, region.DisplayName)
		require.NotEmpty(t, region.Stretches)
	}
}
