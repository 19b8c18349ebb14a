// Package memory provides an in-process store.Store for tests and local
// development. Semantics mirror the hosted document store: generated string
// ids, equality-filter + order-by queries, atomic array-union updates and
// atomic write batches.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"

	"fitstack/internal/domain"
	"fitstack/internal/store"
)

// Store is an in-memory document store. All operations take a single lock, so
// every individual call is atomic with respect to concurrent callers.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{collections: make(map[string]map[string]map[string]any)}
}

// Get returns a copy of one document's fields.
func (s *Store) Get(_ context.Context, collection, id string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	return cloneRecord(doc), nil
}

// Add writes a new document under a generated identifier.
func (s *Store) Add(_ context.Context, collection string, data map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.ensure(collection)[id] = cloneRecord(data)
	return id, nil
}

// Set writes a full document, replacing any existing one.
func (s *Store) Set(_ context.Context, collection, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensure(collection)[id] = cloneRecord(data)
	return nil
}

// Update applies a partial field update under the write lock, so the whole
// update (including array-union merges) is atomic against concurrent callers.
func (s *Store) Update(_ context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}

	for field, value := range fields {
		if union, ok := value.(store.ArrayUnion); ok {
			doc[field] = unionInto(doc[field], union.Elems)
			continue
		}
		doc[field] = cloneValue(value)
	}
	return nil
}

// Delete removes a document; deleting a non-existent id is a no-op.
func (s *Store) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

// Query returns matching documents, filtered by field equality and sorted by
// the requested orderings.
func (s *Store) Query(_ context.Context, collection string, q store.Query) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []store.Document
	for id, doc := range s.collections[collection] {
		if !matches(doc, q.Filters) {
			continue
		}
		docs = append(docs, store.Document{ID: id, Data: cloneRecord(doc)})
	}

	sort.SliceStable(docs, func(i, j int) bool {
		for _, ord := range q.OrderBy {
			c := compareValues(docs[i].Data[ord.Field], docs[j].Data[ord.Field])
			if c == 0 {
				continue
			}
			if ord.Desc {
				return c > 0
			}
			return c < 0
		}
		// stable fallback so test output is deterministic
		return docs[i].ID < docs[j].ID
	})

	return docs, nil
}

// Batch starts an atomic write batch.
func (s *Store) Batch() store.Batch {
	return &batch{store: s}
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }

func (s *Store) ensure(collection string) map[string]map[string]any {
	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string]map[string]any)
		s.collections[collection] = coll
	}
	return coll
}

// batch stages Set writes and applies them under one lock acquisition.
type batch struct {
	store  *Store
	writes []write
}

type write struct {
	collection string
	id         string
	data       map[string]any
}

func (b *batch) Set(collection, id string, data map[string]any) {
	b.writes = append(b.writes, write{collection, id, cloneRecord(data)})
}

func (b *batch) Commit(_ context.Context) error {
	if len(b.writes) == 0 {
		return nil
	}

	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	for _, w := range b.writes {
		b.store.ensure(w.collection)[w.id] = w.data
	}
	b.writes = nil
	return nil
}

// unionInto merges elems into an array field: elements already present are
// skipped, everything else is appended in order. A missing or non-array field
// becomes a fresh array.
func unionInto(current any, elems []any) []any {
	arr, _ := current.([]any)
	for _, el := range elems {
		present := false
		for _, existing := range arr {
			if reflect.DeepEqual(existing, el) {
				present = true
				break
			}
		}
		if !present {
			arr = append(arr, cloneValue(el))
		}
	}
	return arr
}

func matches(doc map[string]any, filters []store.Filter) bool {
	for _, f := range filters {
		if !reflect.DeepEqual(doc[f.Field], f.Value) {
			return false
		}
	}
	return true
}

// compareValues orders mixed stored values: nil first, then bools, numbers,
// strings. Cross-type comparisons only matter for malformed data; they get a
// stable arbitrary order.
func compareValues(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	switch va := a.(type) {
	case bool:
		vb := b.(bool)
		if va == vb {
			return 0
		}
		if !va {
			return -1
		}
		return 1
	case string:
		vb := b.(string)
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
		return 0
	default:
		na, aok := asFloat(a)
		nb, bok := asFloat(b)
		if aok && bok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			}
		}
		return 0
	}
}

func rank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case int, int32, int64, float32, float64:
		return 2
	case string:
		return 3
	default:
		return 4
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func cloneRecord(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneRecord(val)
	case []any:
		out := make([]any, len(val))
		for i, el := range val {
			out[i] = cloneValue(el)
		}
		return out
	default:
		return val
	}
}
