// Package store defines the narrow document-store interface the repositories
// are written against. Implementations exist for Cloud Firestore, PostgreSQL
// (JSONB) and an in-memory store used in tests.
package store

import (
	"context"
)

// Document is one raw record returned by a store query: the store-assigned
// identifier plus the untyped field map. The store enforces no schema, so any
// field may be missing or mistyped.
type Document struct {
	ID   string
	Data map[string]any
}

// Filter is an equality condition on a single field.
type Filter struct {
	Field string
	Value any
}

// Order describes a sort on a single field.
type Order struct {
	Field string
	Desc  bool
}

// Query is an equality-filter + order-by query. All filters are ANDed.
// Anything fancier than that is out of scope for this layer.
type Query struct {
	Filters []Filter
	OrderBy []Order
}

// Where appends an equality filter.
func (q Query) Where(field string, value any) Query {
	q.Filters = append(q.Filters, Filter{Field: field, Value: value})
	return q
}

// Asc appends an ascending order-by.
func (q Query) Asc(field string) Query {
	q.OrderBy = append(q.OrderBy, Order{Field: field})
	return q
}

// Desc appends a descending order-by.
func (q Query) Desc(field string) Query {
	q.OrderBy = append(q.OrderBy, Order{Field: field, Desc: true})
	return q
}

// ArrayUnion marks a field value in an Update call as an atomic add-only
// array merge: the wrapped elements are appended to the stored array (skipping
// elements already present) as a single indivisible operation, safe under
// concurrent writers. The merge is commutative, so concurrent appends cannot
// lose each other's elements.
type ArrayUnion struct {
	Elems []any
}

// Union wraps values for use as an ArrayUnion field in Update.
func Union(elems ...any) ArrayUnion {
	return ArrayUnion{Elems: elems}
}

// Batch accumulates whole-document writes that commit atomically: either every
// Set lands or none does.
type Batch interface {
	// Set stages a full-document write (create or replace, not a merge).
	Set(collection, id string, data map[string]any)

	// Commit applies all staged writes in one atomic request. Calling Commit
	// with no staged writes is a no-op.
	Commit(ctx context.Context) error
}

// Store is the set of primitives this layer consumes from the document store.
// All methods are single-shot network requests; the store's own request
// lifecycle handles timeouts and cancellation beyond the passed context.
type Store interface {
	// Get fetches one document's raw fields. Returns an error wrapping
	// domain.ErrNotFound when the id does not exist.
	Get(ctx context.Context, collection, id string) (map[string]any, error)

	// Add writes a new document with a store-generated identifier.
	Add(ctx context.Context, collection string, data map[string]any) (string, error)

	// Set writes a full document under a caller-chosen identifier,
	// replacing any existing document.
	Set(ctx context.Context, collection, id string, data map[string]any) error

	// Update applies a partial field update. Field values may be plain
	// values (replace) or ArrayUnion (atomic add-only array merge). Returns
	// an error wrapping domain.ErrNotFound when the id does not exist.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes a document. Deleting a non-existent id is not an error.
	Delete(ctx context.Context, collection, id string) error

	// Query runs an equality-filter + order-by query.
	Query(ctx context.Context, collection string, q Query) ([]Document, error)

	// Batch starts an atomic write batch.
	Batch() Batch

	// Close releases the underlying client resources.
	Close() error
}
