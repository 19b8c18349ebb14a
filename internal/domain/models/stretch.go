package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RegionKey identifies one of the eight named body regions. Region documents
// use the key itself as their document identifier.
type RegionKey string

const (
	RegionNeck       RegionKey = "neck"
	RegionShoulders  RegionKey = "shoulders"
	RegionChest      RegionKey = "chest"
	RegionUpperBack  RegionKey = "upper_back"
	RegionLowerBack  RegionKey = "lower_back"
	RegionHips       RegionKey = "hips"
	RegionHamstrings RegionKey = "hamstrings"
	RegionCalves     RegionKey = "calves"
)

// RegionKeys lists every valid region key.
func RegionKeys() []string {
	return []string{
		string(RegionNeck),
		string(RegionShoulders),
		string(RegionChest),
		string(RegionUpperBack),
		string(RegionLowerBack),
		string(RegionHips),
		string(RegionHamstrings),
		string(RegionCalves),
	}
}

// StretchDefinition is one stretch within a region. Image is nullable in the
// store: explicitly null means "no image", while a missing or mistyped field
// fails the decode of the whole region.
type StretchDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Bilateral   bool    `json:"bilateral"` // performed per side
	Image       *string `json:"image"`
}

// Validate checks a seed-supplied definition.
func (s StretchDefinition) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required),
		validation.Field(&s.Name, validation.Required),
	)
}

// StretchRegion is static reference data: a body region with its ordered
// stretches. Decoding is all-or-nothing over the embedded definitions - a
// region with even one malformed definition is dropped entirely rather than
// surfaced with a partial list.
type StretchRegion struct {
	Region      RegionKey           `json:"region"` // also the document id
	DisplayName string              `json:"display_name"`
	Icon        string              `json:"icon"`
	Stretches   []StretchDefinition `json:"stretches"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

// SeedStretchRegion is the timestamp-free shape consumed by the bulk seeder;
// the repository stamps identical timestamps across the whole batch.
type SeedStretchRegion struct {
	Region      RegionKey           `json:"region" yaml:"region"`
	DisplayName string              `json:"display_name" yaml:"display_name"`
	Icon        string              `json:"icon" yaml:"icon"`
	Stretches   []StretchDefinition `json:"stretches" yaml:"stretches"`
}

// Validate checks one seed region, including every embedded definition:
// ozzo walks slice elements that implement Validatable, so
// StretchDefinition.Validate runs per stretch without an explicit Each rule.
func (s SeedStretchRegion) Validate() error {
	keys := make([]any, 0, len(RegionKeys()))
	for _, k := range RegionKeys() {
		keys = append(keys, RegionKey(k))
	}
	return validation.ValidateStruct(&s,
		validation.Field(&s.Region, validation.Required, validation.In(keys...)),
		validation.Field(&s.DisplayName, validation.Required),
		validation.Field(&s.Stretches, validation.Required),
	)
}
