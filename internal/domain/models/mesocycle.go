package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MesocycleStatus is the lifecycle state of a mesocycle. The set is closed:
// stored records with any other value fail decoding and are dropped.
type MesocycleStatus string

const (
	MesocyclePending   MesocycleStatus = "pending"
	MesocycleActive    MesocycleStatus = "active"
	MesocycleCompleted MesocycleStatus = "completed"
	MesocycleCancelled MesocycleStatus = "cancelled"
)

// MesocycleStatuses lists every valid status value.
func MesocycleStatuses() []string {
	return []string{
		string(MesocyclePending),
		string(MesocycleActive),
		string(MesocycleCompleted),
		string(MesocycleCancelled),
	}
}

// Mesocycle is a multi-week training block within a plan.
type Mesocycle struct {
	ID          string          `json:"id"`
	PlanID      string          `json:"plan_id"`
	StartDate   string          `json:"start_date"` // YYYY-MM-DD
	CurrentWeek int             `json:"current_week"`
	Status      MesocycleStatus `json:"status"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// CreateMesocycle carries caller-supplied fields for a new mesocycle.
// The repository always writes current_week=1 and status=pending regardless
// of any other input.
type CreateMesocycle struct {
	PlanID    string `json:"plan_id"`
	StartDate string `json:"start_date"`
}

// Validate checks the create input before any write is issued.
func (c CreateMesocycle) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.PlanID, validation.Required),
		validation.Field(&c.StartDate, validation.Required, validation.Date("2006-01-02")),
	)
}

// UpdateMesocycle carries a partial update; nil pointers leave fields unchanged.
type UpdateMesocycle struct {
	StartDate   *string          `json:"start_date,omitempty"`
	CurrentWeek *int             `json:"current_week,omitempty"`
	Status      *MesocycleStatus `json:"status,omitempty"`
}
