package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PlanDay is one scheduled day within a training plan. It carries no
// timestamp fields, so updates do not refresh updated_at.
//
// Stored plan-day records predate the current schema in places, so reads go
// through a validating decoder: a record whose day_of_week is not an integer
// in [0,6] is dropped from results entirely.
type PlanDay struct {
	ID        string `json:"id"`
	PlanID    string `json:"plan_id"`
	DayOfWeek int    `json:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// CreatePlanDay carries caller-supplied fields for a new plan day.
type CreatePlanDay struct {
	PlanID    string `json:"plan_id"`
	DayOfWeek int    `json:"day_of_week"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// Validate checks the create input before any write is issued.
func (c CreatePlanDay) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.PlanID, validation.Required),
		validation.Field(&c.DayOfWeek, validation.Min(0), validation.Max(6)),
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.SortOrder, validation.Min(0)),
	)
}

// UpdatePlanDay carries a partial update; nil pointers leave fields unchanged.
type UpdatePlanDay struct {
	DayOfWeek *int    `json:"day_of_week,omitempty"`
	Name      *string `json:"name,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}
