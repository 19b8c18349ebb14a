// Package seed bootstraps static reference data.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"fitstack/internal/domain/models"
	"fitstack/internal/domain/repositories"
)

//go:embed data/stretches.yaml
var stretchData []byte

// stretchFile is the on-disk shape of the embedded seed data.
type stretchFile struct {
	Regions []models.SeedStretchRegion `yaml:"regions"`
}

// LoadStretchRegions parses the embedded stretch seed data.
func LoadStretchRegions() ([]models.SeedStretchRegion, error) {
	var file stretchFile
	if err := yaml.Unmarshal(stretchData, &file); err != nil {
		return nil, fmt.Errorf("parse stretch seed data: %w", err)
	}

	seen := make(map[models.RegionKey]bool, len(file.Regions))
	for _, region := range file.Regions {
		if seen[region.Region] {
			return nil, fmt.Errorf("duplicate region %q in seed data", region.Region)
		}
		seen[region.Region] = true
	}
	return file.Regions, nil
}

// StretchSeeder writes the embedded stretch regions through the repository.
type StretchSeeder struct {
	repo   repositories.StretchRegionRepository
	logger *slog.Logger
}

// NewStretchSeeder creates a stretch seeder.
func NewStretchSeeder(repo repositories.StretchRegionRepository, logger *slog.Logger) *StretchSeeder {
	return &StretchSeeder{repo: repo, logger: logger}
}

// Run loads, validates and upserts the stretch regions. Safe to re-run:
// region documents are replaced whole.
func (s *StretchSeeder) Run(ctx context.Context) error {
	regions, err := LoadStretchRegions()
	if err != nil {
		return err
	}

	if err := s.repo.Seed(ctx, regions); err != nil {
		return fmt.Errorf("seed stretch regions: %w", err)
	}

	s.logger.Info("seeded stretch regions", "count", len(regions))
	return nil
}
