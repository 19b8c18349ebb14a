package repositories

import (
	"context"

	"fitstack/internal/domain/models"
)

// MealPlanSessionRepository defines data access operations for meal-plan
// sessions. History mutations use the store's atomic array-union append, so
// concurrent appenders cannot lose each other's messages; plan mutations
// replace the plan wholesale.
type MealPlanSessionRepository interface {
	// FindByID retrieves one session, or nil if absent.
	FindByID(ctx context.Context, id string) (*models.MealPlanSession, error)

	// Create writes a new session with generated id and timestamps.
	Create(ctx context.Context, in models.CreateMealPlanSession) (*models.MealPlanSession, error)

	// Update applies a partial update, or returns nil if the id is absent.
	Update(ctx context.Context, id string, in models.UpdateMealPlanSession) (*models.MealPlanSession, error)

	// Delete removes a session; deleting a non-existent id is not an error.
	Delete(ctx context.Context, id string) error

	// FindAll lists all sessions ordered by created_at descending.
	FindAll(ctx context.Context) ([]models.MealPlanSession, error)

	// AppendHistory atomically appends one message to the session's history
	// and refreshes updated_at. Returns the freshly re-read session, or nil
	// (without creating anything) if the session does not exist.
	AppendHistory(ctx context.Context, id string, msg models.ChatMessage) (*models.MealPlanSession, error)

	// UpdatePlan replaces the whole plan sequence and refreshes updated_at.
	// Returns nil if the session does not exist.
	UpdatePlan(ctx context.Context, id string, plan []models.MealPlanEntry) (*models.MealPlanSession, error)

	// ApplyCritiqueUpdates appends the user/assistant message pair and
	// replaces the plan in a single store call, so no intermediate state
	// with only one new history entry is ever observable. Returns nil if
	// the session does not exist.
	ApplyCritiqueUpdates(ctx context.Context, id string, userMsg, assistantMsg models.ChatMessage, plan []models.MealPlanEntry) (*models.MealPlanSession, error)
}
