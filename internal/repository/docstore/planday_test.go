package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fitstack/internal/domain/models"
)

func TestParsePlanDay(t *testing.T) {
	valid := map[string]any{
		"plan_id":     "plan-1",
		"day_of_week": 3,
		"name":        "Push",
		"sort_order":  0,
	}

	tests := []struct {
		name   string
		mutate func(map[string]any)
		wantOK bool
	}{
		{"valid", func(map[string]any) {}, true},
		{"day zero", func(m map[string]any) { m["day_of_week"] = 0 }, true},
		{"day six", func(m map[string]any) { m["day_of_week"] = 6 }, true},
		{"whole float day", func(m map[string]any) { m["day_of_week"] = float64(5) }, true},
		{"day seven", func(m map[string]any) { m["day_of_week"] = 7 }, false},
		{"negative day", func(m map[string]any) { m["day_of_week"] = -1 }, false},
		{"fractional day", func(m map[string]any) { m["day_of_week"] = 6.5 }, false},
		{"string day", func(m map[string]any) { m["day_of_week"] = "3" }, false},
		{"missing day", func(m map[string]any) { delete(m, "day_of_week") }, false},
		{"missing plan id", func(m map[string]any) { delete(m, "plan_id") }, false},
		{"missing name", func(m map[string]any) { delete(m, "name") }, false},
		{"missing sort order", func(m map[string]any) { delete(m, "sort_order") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := map[string]any{}
			for k, v := range valid {
				rec[k] = v
			}
			tt.mutate(rec)

			day, ok := parsePlanDay("day-1", rec)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				require.Equal(t, "day-1", day.ID)
				require.Equal(t, "plan-1", day.PlanID)
			}
		})
	}
}

func TestPlanDayFindByPlanID(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanDayRepository(newTestConfig())

	for _, in := range []models.CreatePlanDay{
		{PlanID: "plan-a", DayOfWeek: 1, Name: "Pull", SortOrder: 1},
		{PlanID: "plan-a", DayOfWeek: 0, Name: "Push", SortOrder: 0},
		{PlanID: "plan-b", DayOfWeek: 2, Name: "Legs", SortOrder: 0},
	} {
		_, err := repo.Create(ctx, in)
		require.NoError(t, err)
	}

	days, err := repo.FindByPlanID(ctx, "plan-a")
	require.NoError(t, err)
	require.Len(t, days, 2)
	require.Equal(t, "Push", days[0].Name)
	require.Equal(t, "Pull", days[1].Name)

	none, err := repo.FindByPlanID(ctx, "plan-c")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestPlanDayFindAllDropsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	repo := NewPlanDayRepository(cfg)

	_, err := repo.Create(ctx, models.CreatePlanDay{
		PlanID: "plan-a", DayOfWeek: 4, Name: "Upper", SortOrder: 0,
	})
	require.NoError(t, err)

	// Legacy records written before the current schema: one with an
	// out-of-range day, one with a string day, one that is missing fields.
	coll := cfg.Collections.PlanDays
	require.NoError(t, cfg.Store.Set(ctx, coll, "legacy-1", map[string]any{
		"plan_id": "plan-a", "day_of_week": 9, "name": "Bad", "sort_order": 1,
	}))
	require.NoError(t, cfg.Store.Set(ctx, coll, "legacy-2", map[string]any{
		"plan_id": "plan-a", "day_of_week": "2", "name": "Bad", "sort_order": 2,
	}))
	require.NoError(t, cfg.Store.Set(ctx, coll, "legacy-3", map[string]any{
		"plan_id": "plan-a",
	}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Upper", all[0].Name)
}

func TestPlanDayFindByIDUndecodable(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	repo := NewPlanDayRepository(cfg)

	require.NoError(t, cfg.Store.Set(ctx, cfg.Collections.PlanDays, "legacy", map[string]any{
		"plan_id": "plan-a", "day_of_week": 9, "name": "Bad", "sort_order": 0,
	}))

	found, err := repo.FindByID(ctx, "legacy")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestPlanDayUpdateDoesNotTouchTimestamps(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	repo := NewPlanDayRepository(cfg)

	created, err := repo.Create(ctx, models.CreatePlanDay{
		PlanID: "plan-a", DayOfWeek: 2, Name: "Legs", SortOrder: 0,
	})
	require.NoError(t, err)

	before, err := cfg.Store.Get(ctx, cfg.Collections.PlanDays, created.ID)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, models.UpdatePlanDay{Name: ptr("Leg day")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Leg day", updated.Name)

	after, err := cfg.Store.Get(ctx, cfg.Collections.PlanDays, created.ID)
	require.NoError(t, err)
	require.Equal(t, before["updated_at"], after["updated_at"])
}

func TestPlanDayFindAllOrdersByPlanThenSortOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanDayRepository(newTestConfig())

	for _, in := range []models.CreatePlanDay{
		{PlanID: "plan-b", DayOfWeek: 0, Name: "b0", SortOrder: 0},
		{PlanID: "plan-a", DayOfWeek: 1, Name: "a1", SortOrder: 1},
		{PlanID: "plan-a", DayOfWeek: 0, Name: "a0", SortOrder: 0},
	} {
		_, err := repo.Create(ctx, in)
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []string{"a0", "a1", "b0"}, []string{all[0].Name, all[1].Name, all[2].Name})
}
