package repositories

import (
	"context"

	"fitstack/internal/domain/models"
)

// MesocycleRepository defines data access operations for mesocycles.
type MesocycleRepository interface {
	// FindByID retrieves one mesocycle, or nil if absent or undecodable.
	FindByID(ctx context.Context, id string) (*models.Mesocycle, error)

	// Create writes a new mesocycle. current_week is always 1 and status
	// always pending on creation, regardless of caller input.
	Create(ctx context.Context, in models.CreateMesocycle) (*models.Mesocycle, error)

	// Update applies a partial update, or returns nil if the id is absent.
	Update(ctx context.Context, id string, in models.UpdateMesocycle) (*models.Mesocycle, error)

	// Delete removes a mesocycle; deleting a non-existent id is not an error.
	Delete(ctx context.Context, id string) error

	// FindByPlanID lists a plan's mesocycles ordered by start_date descending.
	FindByPlanID(ctx context.Context, planID string) ([]models.Mesocycle, error)

	// FindActive lists mesocycles with status=active, start_date descending.
	FindActive(ctx context.Context) ([]models.Mesocycle, error)

	// FindAll lists all mesocycles ordered by start_date descending.
	FindAll(ctx context.Context) ([]models.Mesocycle, error)
}
