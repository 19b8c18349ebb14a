package docstore

import (
	"context"

	"fitstack/internal/domain/models"
	"fitstack/internal/domain/repositories"
	"fitstack/internal/store"
)

// planDayRepository stores plan days. Stored records drifted across app
// versions (day_of_week was briefly written as a string), so reads validate
// and drop anything outside the current shape.
type planDayRepository struct {
	repository[models.PlanDay, models.CreatePlanDay, models.UpdatePlanDay]
}

// NewPlanDayRepository creates a plan-day repository.
func NewPlanDayRepository(cfg *RepositoryConfig) repositories.PlanDayRepository {
	r := &planDayRepository{}
	r.repository = repository[models.PlanDay, models.CreatePlanDay, models.UpdatePlanDay]{
		store:        cfg.Store,
		collection:   cfg.Collections.PlanDays,
		logger:       cfg.logger(),
		now:          cfg.now(),
		build:        buildPlanDay,
		parse:        parsePlanDay,
		createFields: planDayCreateFields,
		updateFields: planDayUpdateFields,
		// plan days carry no timestamp fields
		touchOnUpdate: false,
	}
	return r
}

// FindByPlanID lists the days of one plan ordered by sort_order ascending.
func (r *planDayRepository) FindByPlanID(ctx context.Context, planID string) ([]models.PlanDay, error) {
	return r.query(ctx, store.Query{}.Where("plan_id", planID).Asc("sort_order"))
}

// FindAll lists all plan days ordered by plan_id, then sort_order.
func (r *planDayRepository) FindAll(ctx context.Context) ([]models.PlanDay, error) {
	return r.query(ctx, store.Query{}.Asc("plan_id").Asc("sort_order"))
}

// buildPlanDay is the trusting decode used on the write path.
func buildPlanDay(id string, data map[string]any) *models.PlanDay {
	return &models.PlanDay{
		ID:        id,
		PlanID:    stringOr(data, "plan_id"),
		DayOfWeek: intOr(data, "day_of_week"),
		Name:      stringOr(data, "name"),
		SortOrder: intOr(data, "sort_order"),
	}
}

// parsePlanDay validates a stored record. Every field is required;
// day_of_week must be an integer in [0,6].
func parsePlanDay(id string, data map[string]any) (*models.PlanDay, bool) {
	planID, ok := readString(data, "plan_id")
	if !ok {
		return nil, false
	}
	dayOfWeek, ok := readInt(data, "day_of_week")
	if !ok || dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, false
	}
	name, ok := readString(data, "name")
	if !ok {
		return nil, false
	}
	sortOrder, ok := readInt(data, "sort_order")
	if !ok {
		return nil, false
	}

	return &models.PlanDay{
		ID:        id,
		PlanID:    planID,
		DayOfWeek: dayOfWeek,
		Name:      name,
		SortOrder: sortOrder,
	}, true
}

func planDayCreateFields(in models.CreatePlanDay) map[string]any {
	return map[string]any{
		"plan_id":     in.PlanID,
		"day_of_week": in.DayOfWeek,
		"name":        in.Name,
		"sort_order":  in.SortOrder,
	}
}

func planDayUpdateFields(in models.UpdatePlanDay) map[string]any {
	fields := map[string]any{}
	if in.DayOfWeek != nil {
		fields["day_of_week"] = *in.DayOfWeek
	}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.SortOrder != nil {
		fields["sort_order"] = *in.SortOrder
	}
	return fields
}
