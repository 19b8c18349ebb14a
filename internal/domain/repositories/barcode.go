// Package repositories defines the data-access interfaces implemented by the
// docstore layer. All read methods return a nil entity (not an error) when the
// target id does not exist, and listings silently exclude stored records that
// fail decoding - a listing can legitimately return fewer items than documents
// physically stored.
package repositories

import (
	"context"

	"fitstack/internal/domain/models"
)

// BarcodeRepository defines data access operations for saved barcodes.
type BarcodeRepository interface {
	// FindByID retrieves one barcode, or nil if absent.
	FindByID(ctx context.Context, id string) (*models.Barcode, error)

	// Create writes a new barcode with generated id and timestamps.
	Create(ctx context.Context, in models.CreateBarcode) (*models.Barcode, error)

	// Update applies a partial update, or returns nil if the id is absent.
	Update(ctx context.Context, id string, in models.UpdateBarcode) (*models.Barcode, error)

	// Delete removes a barcode; deleting a non-existent id is not an error.
	Delete(ctx context.Context, id string) error

	// FindAll lists all barcodes ordered by sort_order ascending.
	FindAll(ctx context.Context) ([]models.Barcode, error)
}
