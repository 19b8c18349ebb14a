package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Barcode is a saved product barcode. The stored shape is trusted, so reads
// use the default field-copy decode rather than a validating decoder.
type Barcode struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	Type      string `json:"type"`  // symbology tag, e.g. "ean13", "upc_a", "qr"
	Color     string `json:"color"` // UI accent color
	SortOrder int    `json:"sort_order"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateBarcode carries caller-supplied fields for a new barcode.
// SortOrder defaults to 0 when omitted.
type CreateBarcode struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Type      string `json:"type"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
}

// Validate checks the create input before any write is issued.
func (c CreateBarcode) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Label, validation.Required),
		validation.Field(&c.Value, validation.Required),
		validation.Field(&c.Type, validation.Required),
		validation.Field(&c.SortOrder, validation.Min(0)),
	)
}

// UpdateBarcode carries a partial update; nil pointers leave fields unchanged.
type UpdateBarcode struct {
	Label     *string `json:"label,omitempty"`
	Value     *string `json:"value,omitempty"`
	Type      *string `json:"type,omitempty"`
	Color     *string `json:"color,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}
