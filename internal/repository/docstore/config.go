// Package docstore implements the typed repositories on top of the schemaless
// document store. Each repository pairs generic CRUD plumbing with an
// entity-specific decode strategy: trusted entities use a best-effort field
// copy, while entities whose stored shape may drift use a validating decoder
// that drops malformed records from results instead of surfacing them.
package docstore

import (
	"fmt"
	"log/slog"
	"time"

	"fitstack/internal/store"
)

// RepositoryConfig holds the shared collaborators for repository
// implementations.
type RepositoryConfig struct {
	Store       store.Store
	Collections *CollectionNames
	Logger      *slog.Logger

	// Now stamps created_at/updated_at values. Defaults to UTC wall clock
	// in a fixed-width layout so lexicographic order matches chronological
	// order.
	Now func() string
}

// CollectionNames holds environment-prefixed collection names.
type CollectionNames struct {
	Barcodes         string
	PlanDays         string
	Mesocycles       string
	MealPlanSessions string
	StretchRegions   string
}

// NewCollectionNames creates collection names with the given prefix.
func NewCollectionNames(prefix string) *CollectionNames {
	return &CollectionNames{
		Barcodes:         fmt.Sprintf("%sbarcodes", prefix),
		PlanDays:         fmt.Sprintf("%splan_days", prefix),
		Mesocycles:       fmt.Sprintf("%smesocycles", prefix),
		MealPlanSessions: fmt.Sprintf("%smeal_plan_sessions", prefix),
		StretchRegions:   fmt.Sprintf("%sstretch_regions", prefix),
	}
}

// timestampLayout keeps sub-second precision at fixed width; created_at
// ordering relies on the lexicographic/chronological equivalence.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

func defaultNow() string {
	return time.Now().UTC().Format(timestampLayout)
}

func (c *RepositoryConfig) now() func() string {
	if c.Now != nil {
		return c.Now
	}
	return defaultNow
}

func (c *RepositoryConfig) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
