package docstore

import (
	"context"

	"fitstack/internal/domain/models"
	"fitstack/internal/domain/repositories"
	"fitstack/internal/store"
)

// mesocycleRepository stores mesocycles. The status vocabulary changed once
// already (old exports carry retired values), so reads validate the closed
// enum and drop unknown statuses.
type mesocycleRepository struct {
	repository[models.Mesocycle, models.CreateMesocycle, models.UpdateMesocycle]
}

// NewMesocycleRepository creates a mesocycle repository.
func NewMesocycleRepository(cfg *RepositoryConfig) repositories.MesocycleRepository {
	r := &mesocycleRepository{}
	r.repository = repository[models.Mesocycle, models.CreateMesocycle, models.UpdateMesocycle]{
		store:         cfg.Store,
		collection:    cfg.Collections.Mesocycles,
		logger:        cfg.logger(),
		now:           cfg.now(),
		build:         buildMesocycle,
		parse:         parseMesocycle,
		createFields:  mesocycleCreateFields,
		updateFields:  mesocycleUpdateFields,
		touchOnUpdate: true,
	}
	return r
}

// FindByPlanID lists a plan's mesocycles ordered by start_date descending.
func (r *mesocycleRepository) FindByPlanID(ctx context.Context, planID string) ([]models.Mesocycle, error) {
	return r.query(ctx, store.Query{}.Where("plan_id", planID).Desc("start_date"))
}

// FindActive lists mesocycles with status=active, start_date descending.
func (r *mesocycleRepository) FindActive(ctx context.Context) ([]models.Mesocycle, error) {
	return r.query(ctx, store.Query{}.
		Where("status", string(models.MesocycleActive)).
		Desc("start_date"))
}

// FindAll lists all mesocycles ordered by start_date descending.
func (r *mesocycleRepository) FindAll(ctx context.Context) ([]models.Mesocycle, error) {
	return r.query(ctx, store.Query{}.Desc("start_date"))
}

// buildMesocycle is the trusting decode used on the write path.
func buildMesocycle(id string, data map[string]any) *models.Mesocycle {
	return &models.Mesocycle{
		ID:          id,
		PlanID:      stringOr(data, "plan_id"),
		StartDate:   stringOr(data, "start_date"),
		CurrentWeek: intOr(data, "current_week"),
		Status:      models.MesocycleStatus(stringOr(data, "status")),
		CreatedAt:   stringOr(data, "created_at"),
		UpdatedAt:   stringOr(data, "updated_at"),
	}
}

// parseMesocycle validates a stored record against the closed status enum.
func parseMesocycle(id string, data map[string]any) (*models.Mesocycle, bool) {
	planID, ok := readString(data, "plan_id")
	if !ok {
		return nil, false
	}
	startDate, ok := readString(data, "start_date")
	if !ok {
		return nil, false
	}
	currentWeek, ok := readInt(data, "current_week")
	if !ok {
		return nil, false
	}
	status, ok := readEnum(data, "status", models.MesocycleStatuses())
	if !ok {
		return nil, false
	}

	return &models.Mesocycle{
		ID:          id,
		PlanID:      planID,
		StartDate:   startDate,
		CurrentWeek: currentWeek,
		Status:      models.MesocycleStatus(status),
		CreatedAt:   stringOr(data, "created_at"),
		UpdatedAt:   stringOr(data, "updated_at"),
	}, true
}

// mesocycleCreateFields ignores any caller-supplied week or status: a new
// mesocycle always starts at week 1 in pending.
func mesocycleCreateFields(in models.CreateMesocycle) map[string]any {
	return map[string]any{
		"plan_id":      in.PlanID,
		"start_date":   in.StartDate,
		"current_week": 1,
		"status":       string(models.MesocyclePending),
	}
}

func mesocycleUpdateFields(in models.UpdateMesocycle) map[string]any {
	fields := map[string]any{}
	if in.StartDate != nil {
		fields["start_date"] = *in.StartDate
	}
	if in.CurrentWeek != nil {
		fields["current_week"] = *in.CurrentWeek
	}
	if in.Status != nil {
		fields["status"] = string(*in.Status)
	}
	return fields
}
