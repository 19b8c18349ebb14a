package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Chat roles used in a meal-plan session's conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry in a session's append-only conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Meal is a snapshot of one configured meal slot (breakfast, lunch, ...) taken
// when the session was created, so later edits to the user's meal setup do not
// reshape an in-flight session.
type Meal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MealPlanEntry is one proposed item in the session's plan, tied to a meal
// slot from the snapshot.
type MealPlanEntry struct {
	MealID      string `json:"meal_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MealPlanSession is an interactive meal-planning conversation. The plan and
// history are whole-value fields: the plan is only ever replaced wholesale and
// the history only ever grows via atomic array-union appends, never through
// field-by-field merges.
type MealPlanSession struct {
	ID        string          `json:"id"`
	Plan      []MealPlanEntry `json:"plan"`
	Meals     []Meal          `json:"meals"`
	History   []ChatMessage   `json:"history"`
	Finalized bool            `json:"finalized"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// CreateMealPlanSession carries the initial plan, meal snapshot and opening
// conversation history for a new session.
type CreateMealPlanSession struct {
	Plan    []MealPlanEntry `json:"plan"`
	Meals   []Meal          `json:"meals"`
	History []ChatMessage   `json:"history"`
}

// Validate checks the create input before any write is issued.
func (c CreateMealPlanSession) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Plan, validation.Required),
		validation.Field(&c.Meals, validation.Required),
	)
}

// UpdateMealPlanSession carries a partial update; nil pointers leave fields
// unchanged. Plan and history mutations go through the dedicated session
// operations instead.
type UpdateMealPlanSession struct {
	Finalized *bool `json:"finalized,omitempty"`
}
