package docstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fitstack/internal/domain"
	"fitstack/internal/store"
)

// validatable is satisfied by every create-input model.
type validatable interface {
	Validate() error
}

// repository is the generic CRUD core shared by the concrete repositories,
// parameterized by entity, create-input and update-input types. The decode
// strategy is injected rather than inherited: build is the trusting
// field-copy used for the write path and as the default read decode, parse is
// the optional validating override for entities whose stored shape may drift.
type repository[E any, C validatable, U any] struct {
	store      store.Store
	collection string
	logger     *slog.Logger
	now        func() string

	// build converts id + raw fields to an entity without validation. The
	// write path is trusted by construction and never re-checked through
	// the validating decoder.
	build func(id string, data map[string]any) *E

	// parse is the read-path decode. A false result drops the record.
	parse func(id string, data map[string]any) (*E, bool)

	// createFields/updateFields map inputs to stored field names. Update
	// maps contain only the fields being changed.
	createFields func(in C) map[string]any
	updateFields func(in U) map[string]any

	// touchOnUpdate refreshes updated_at on every update. PlanDay opts out
	// since the entity has no timestamp fields.
	touchOnUpdate bool
}

// trustingParse adapts a build func into a parse that never fails.
func trustingParse[E any](build func(id string, data map[string]any) *E) func(string, map[string]any) (*E, bool) {
	return func(id string, data map[string]any) (*E, bool) {
		return build(id, data), true
	}
}

// FindByID fetches one document. Returns nil (no error) when the id does not
// exist or the stored record fails decoding.
func (r *repository[E, C, U]) FindByID(ctx context.Context, id string) (*E, error) {
	data, err := r.store.Get(ctx, r.collection, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s/%s: %w", r.collection, id, err)
	}

	e, ok := r.parse(id, data)
	if !ok {
		r.logger.Debug("dropping undecodable document",
			"collection", r.collection, "id", id)
		return nil, nil
	}
	return e, nil
}

// Create validates the input, merges caller fields with generated timestamps
// and writes a new document. The returned entity is built from the written
// fields directly - never round-tripped through the validating decoder.
func (r *repository[E, C, U]) Create(ctx context.Context, in C) (*E, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	fields := r.createFields(in)
	now := r.now()
	fields["created_at"] = now
	fields["updated_at"] = now

	id, err := r.store.Add(ctx, r.collection, fields)
	if err != nil {
		return nil, fmt.Errorf("add %s: %w", r.collection, err)
	}
	return r.build(id, fields), nil
}

// Update applies a partial field update and returns the re-read entity, or
// nil when the target id does not exist.
func (r *repository[E, C, U]) Update(ctx context.Context, id string, in U) (*E, error) {
	fields := r.updateFields(in)
	if len(fields) == 0 && !r.touchOnUpdate {
		return r.FindByID(ctx, id)
	}
	return r.updateRaw(ctx, id, fields)
}

// updateRaw issues a partial update with store-level field values (plain
// replacements or ArrayUnion merges), stamping updated_at where the entity
// carries timestamps. Entity-specific operations that bypass the typed update
// input come through here.
func (r *repository[E, C, U]) updateRaw(ctx context.Context, id string, fields map[string]any) (*E, error) {
	if r.touchOnUpdate {
		fields["updated_at"] = r.now()
	}

	if err := r.store.Update(ctx, r.collection, id, fields); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("update %s/%s: %w", r.collection, id, err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes a document. Idempotent: deleting a non-existent id succeeds.
func (r *repository[E, C, U]) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, r.collection, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", r.collection, id, err)
	}
	return nil
}

// query runs a store query and decodes each record independently: valid ones
// are kept, invalid ones dropped, so one corrupt legacy document cannot fail
// an entire listing. Store-level failures propagate unmodified.
func (r *repository[E, C, U]) query(ctx context.Context, q store.Query) ([]E, error) {
	docs, err := r.store.Query(ctx, r.collection, q)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.collection, err)
	}

	out := make([]E, 0, len(docs))
	for _, d := range docs {
		e, ok := r.parse(d.ID, d.Data)
		if !ok {
			r.logger.Debug("dropping undecodable document",
				"collection", r.collection, "id", d.ID)
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}
