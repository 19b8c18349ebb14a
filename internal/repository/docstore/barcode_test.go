package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fitstack/internal/domain"
	"fitstack/internal/domain/models"
)

func TestBarcodeCRUD(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	repo := NewBarcodeRepository(cfg)

	created, err := repo.Create(ctx, models.CreateBarcode{
		Label:     "Protein bar",
		Value:     "7312345678901",
		Type:      "ean13",
		Color:     "#FF6B35",
		SortOrder: 2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Protein bar", created.Label)
	require.Equal(t, 2, created.SortOrder)
	require.NotEmpty(t, created.CreatedAt)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created, found)

	updated, err := repo.Update(ctx, created.ID, models.UpdateBarcode{
		Label: ptr("Protein bar (big)"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Protein bar (big)", updated.Label)
	require.Equal(t, created.Value, updated.Value)
	require.Greater(t, updated.UpdatedAt, created.UpdatedAt)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, repo.Delete(ctx, created.ID))

	gone, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestBarcodeFindByIDMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewBarcodeRepository(newTestConfig())

	found, err := repo.FindByID(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestBarcodeUpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewBarcodeRepository(newTestConfig())

	updated, err := repo.Update(ctx, "nope", models.UpdateBarcode{Label: ptr("x")})
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestBarcodeDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewBarcodeRepository(newTestConfig())

	require.NoError(t, repo.Delete(ctx, "never-existed"))
}

func TestBarcodeCreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := NewBarcodeRepository(newTestConfig())

	_, err := repo.Create(ctx, models.CreateBarcode{Label: "no value"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestBarcodeFindAllOrdersBySortOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewBarcodeRepository(newTestConfig())

	for i, label := range []string{"third", "first", "second"} {
		order := []int{30, 10, 20}[i]
		_, err := repo.Create(ctx, models.CreateBarcode{
			Label: label, Value: label, Type: "qr", SortOrder: order,
		})
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "first", all[0].Label)
	require.Equal(t, "second", all[1].Label)
	require.Equal(t, "third", all[2].Label)
}
