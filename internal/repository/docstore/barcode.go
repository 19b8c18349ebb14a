package docstore

import (
	"context"

	"fitstack/internal/domain/models"
	"fitstack/internal/domain/repositories"
	"fitstack/internal/store"
)

// barcodeRepository stores saved barcodes. The stored shape is trusted, so
// reads use the default field-copy decode.
type barcodeRepository struct {
	repository[models.Barcode, models.CreateBarcode, models.UpdateBarcode]
}

// NewBarcodeRepository creates a barcode repository.
func NewBarcodeRepository(cfg *RepositoryConfig) repositories.BarcodeRepository {
	r := &barcodeRepository{}
	r.repository = repository[models.Barcode, models.CreateBarcode, models.UpdateBarcode]{
		store:         cfg.Store,
		collection:    cfg.Collections.Barcodes,
		logger:        cfg.logger(),
		now:           cfg.now(),
		build:         buildBarcode,
		parse:         trustingParse(buildBarcode),
		createFields:  barcodeCreateFields,
		updateFields:  barcodeUpdateFields,
		touchOnUpdate: true,
	}
	return r
}

// FindAll lists all barcodes ordered by sort_order ascending.
func (r *barcodeRepository) FindAll(ctx context.Context) ([]models.Barcode, error) {
	return r.query(ctx, store.Query{}.Asc("sort_order"))
}

func buildBarcode(id string, data map[string]any) *models.Barcode {
	return &models.Barcode{
		ID:        id,
		Label:     stringOr(data, "label"),
		Value:     stringOr(data, "value"),
		Type:      stringOr(data, "type"),
		Color:     stringOr(data, "color"),
		SortOrder: intOr(data, "sort_order"),
		CreatedAt: stringOr(data, "created_at"),
		UpdatedAt: stringOr(data, "updated_at"),
	}
}

func barcodeCreateFields(in models.CreateBarcode) map[string]any {
	return map[string]any{
		"label":      in.Label,
		"value":      in.Value,
		"type":       in.Type,
		"color":      in.Color,
		"sort_order": in.SortOrder,
	}
}

func barcodeUpdateFields(in models.UpdateBarcode) map[string]any {
	fields := map[string]any{}
	if in.Label != nil {
		fields["label"] = *in.Label
	}
	if in.Value != nil {
		fields["value"] = *in.Value
	}
	if in.Type != nil {
		fields["type"] = *in.Type
	}
	if in.Color != nil {
		fields["color"] = *in.Color
	}
	if in.SortOrder != nil {
		fields["sort_order"] = *in.SortOrder
	}
	return fields
}
