package docstore

import (
	"context"

	"fitstack/internal/domain/models"
	"fitstack/internal/domain/repositories"
	"fitstack/internal/store"
)

// mealPlanSessionRepository stores meal-plan sessions. The stored shape is
// trusted; the interesting part is the mutation semantics: history grows only
// through the store's atomic array-union append, and the plan is only ever
// replaced wholesale.
type mealPlanSessionRepository struct {
	repository[models.MealPlanSession, models.CreateMealPlanSession, models.UpdateMealPlanSession]
}

// NewMealPlanSessionRepository creates a meal-plan session repository.
func NewMealPlanSessionRepository(cfg *RepositoryConfig) repositories.MealPlanSessionRepository {
	r := &mealPlanSessionRepository{}
	r.repository = repository[models.MealPlanSession, models.CreateMealPlanSession, models.UpdateMealPlanSession]{
		store:         cfg.Store,
		collection:    cfg.Collections.MealPlanSessions,
		logger:        cfg.logger(),
		now:           cfg.now(),
		build:         buildMealPlanSession,
		parse:         trustingParse(buildMealPlanSession),
		createFields:  mealPlanSessionCreateFields,
		updateFields:  mealPlanSessionUpdateFields,
		touchOnUpdate: true,
	}
	return r
}

// FindAll lists all sessions ordered by created_at descending.
func (r *mealPlanSessionRepository) FindAll(ctx context.Context) ([]models.MealPlanSession, error) {
	return r.query(ctx, store.Query{}.Desc("created_at"))
}

// AppendHistory atomically appends one message and refreshes updated_at.
// The existence check and the append are separate requests, so a concurrent
// delete between them can lose the write; the append itself is an atomic
// array-union, so concurrent appenders never lose each other's messages.
func (r *mealPlanSessionRepository) AppendHistory(ctx context.Context, id string, msg models.ChatMessage) (*models.MealPlanSession, error) {
	current, err := r.FindByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	return r.updateRaw(ctx, id, map[string]any{
		"history": store.Union(chatMessageFields(msg)),
	})
}

// UpdatePlan replaces the whole plan sequence and refreshes updated_at.
func (r *mealPlanSessionRepository) UpdatePlan(ctx context.Context, id string, plan []models.MealPlanEntry) (*models.MealPlanSession, error) {
	return r.updateRaw(ctx, id, map[string]any{
		"plan": planEntryList(plan),
	})
}

// ApplyCritiqueUpdates appends the user/assistant pair and replaces the plan
// in one store call. Batching the two mutations keeps them atomic for the
// target document: findById can never observe only one of the new entries.
func (r *mealPlanSessionRepository) ApplyCritiqueUpdates(ctx context.Context, id string, userMsg, assistantMsg models.ChatMessage, plan []models.MealPlanEntry) (*models.MealPlanSession, error) {
	return r.updateRaw(ctx, id, map[string]any{
		"history": store.Union(chatMessageFields(userMsg), chatMessageFields(assistantMsg)),
		"plan":    planEntryList(plan),
	})
}

// buildMealPlanSession is the trusting decode. Malformed elements inside the
// nested sequences are skipped rather than failing the session.
func buildMealPlanSession(id string, data map[string]any) *models.MealPlanSession {
	return &models.MealPlanSession{
		ID:        id,
		Plan:      planEntriesOf(data["plan"]),
		Meals:     mealsOf(data["meals"]),
		History:   historyOf(data["history"]),
		Finalized: boolOr(data, "finalized"),
		CreatedAt: stringOr(data, "created_at"),
		UpdatedAt: stringOr(data, "updated_at"),
	}
}

func planEntriesOf(v any) []models.MealPlanEntry {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	entries := make([]models.MealPlanEntry, 0, len(raw))
	for _, el := range raw {
		rec, ok := isRecord(el)
		if !ok {
			continue
		}
		entries = append(entries, models.MealPlanEntry{
			MealID:      stringOr(rec, "meal_id"),
			Title:       stringOr(rec, "title"),
			Description: stringOr(rec, "description"),
		})
	}
	return entries
}

func mealsOf(v any) []models.Meal {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	meals := make([]models.Meal, 0, len(raw))
	for _, el := range raw {
		rec, ok := isRecord(el)
		if !ok {
			continue
		}
		meals = append(meals, models.Meal{
			ID:   stringOr(rec, "id"),
			Name: stringOr(rec, "name"),
		})
	}
	return meals
}

func historyOf(v any) []models.ChatMessage {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	msgs := make([]models.ChatMessage, 0, len(raw))
	for _, el := range raw {
		rec, ok := isRecord(el)
		if !ok {
			continue
		}
		msgs = append(msgs, models.ChatMessage{
			Role:    stringOr(rec, "role"),
			Content: stringOr(rec, "content"),
		})
	}
	return msgs
}

// Entities are written as plain maps/slices so every store binding sees the
// same schemaless shape it reads back.

func chatMessageFields(m models.ChatMessage) map[string]any {
	return map[string]any{
		"role":    m.Role,
		"content": m.Content,
	}
}

func planEntryList(plan []models.MealPlanEntry) []any {
	out := make([]any, 0, len(plan))
	for _, e := range plan {
		out = append(out, map[string]any{
			"meal_id":     e.MealID,
			"title":       e.Title,
			"description": e.Description,
		})
	}
	return out
}

func mealList(meals []models.Meal) []any {
	out := make([]any, 0, len(meals))
	for _, m := range meals {
		out = append(out, map[string]any{
			"id":   m.ID,
			"name": m.Name,
		})
	}
	return out
}

func historyList(history []models.ChatMessage) []any {
	out := make([]any, 0, len(history))
	for _, m := range history {
		out = append(out, chatMessageFields(m))
	}
	return out
}

func mealPlanSessionCreateFields(in models.CreateMealPlanSession) map[string]any {
	return map[string]any{
		"plan":      planEntryList(in.Plan),
		"meals":     mealList(in.Meals),
		"history":   historyList(in.History),
		"finalized": false,
	}
}

func mealPlanSessionUpdateFields(in models.UpdateMealPlanSession) map[string]any {
	fields := map[string]any{}
	if in.Finalized != nil {
		fields["finalized"] = *in.Finalized
	}
	return fields
}
