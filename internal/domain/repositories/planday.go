package repositories

import (
	"context"

	"fitstack/internal/domain/models"
)

// PlanDayRepository defines data access operations for plan days. Plan days
// carry no timestamp fields, so updates do not stamp updated_at.
type PlanDayRepository interface {
	// FindByID retrieves one plan day, or nil if absent or undecodable.
	FindByID(ctx context.Context, id string) (*models.PlanDay, error)

	// Create writes a new plan day with a generated id.
	Create(ctx context.Context, in models.CreatePlanDay) (*models.PlanDay, error)

	// Update applies a partial update, or returns nil if the id is absent.
	Update(ctx context.Context, id string, in models.UpdatePlanDay) (*models.PlanDay, error)

	// Delete removes a plan day; deleting a non-existent id is not an error.
	Delete(ctx context.Context, id string) error

	// FindByPlanID lists the days of one plan ordered by sort_order ascending.
	FindByPlanID(ctx context.Context, planID string) ([]models.PlanDay, error)

	// FindAll lists all plan days ordered by plan_id, then sort_order.
	FindAll(ctx context.Context) ([]models.PlanDay, error)
}
