// Package firestore binds the store.Store interface to Cloud Firestore.
// Connection, retries and request lifecycle belong to the Firestore client;
// this binding only translates the narrow primitives and the NotFound error.
package firestore

import (
	"context"
	"fmt"

	cloudfs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fitstack/internal/domain"
	"fitstack/internal/store"
)

// Store is a Cloud Firestore implementation of store.Store.
type Store struct {
	client *cloudfs.Client
}

// New connects to Firestore for the given project. Credentials resolve the
// usual way (ADC) unless overridden via opts.
func New(ctx context.Context, projectID string, opts ...option.ClientOption) (*Store, error) {
	client, err := cloudfs.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return &Store{client: client}, nil
}

// Get fetches one document's raw fields.
func (s *Store) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return snap.Data(), nil
}

// Add writes a new document with a Firestore-generated identifier.
func (s *Store) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("add %s: %w", collection, err)
	}
	return ref.ID, nil
}

// Set writes a full document under a caller-chosen identifier.
func (s *Store) Set(ctx context.Context, collection, id string, data map[string]any) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Update applies a partial field update. store.ArrayUnion values map to
// Firestore's native ArrayUnion transform, which is what makes concurrent
// history appends loss-free.
func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	updates := make([]cloudfs.Update, 0, len(fields))
	for field, value := range fields {
		if union, ok := value.(store.ArrayUnion); ok {
			value = cloudfs.ArrayUnion(union.Elems...)
		}
		updates = append(updates, cloudfs.Update{Path: field, Value: value})
	}

	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
		}
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete removes a document. Firestore deletes are already idempotent.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// Query runs an equality-filter + order-by query.
func (s *Store) Query(ctx context.Context, collection string, q store.Query) ([]store.Document, error) {
	query := s.client.Collection(collection).Query
	for _, f := range q.Filters {
		query = query.Where(f.Field, "==", f.Value)
	}
	for _, ord := range q.OrderBy {
		dir := cloudfs.Asc
		if ord.Desc {
			dir = cloudfs.Desc
		}
		query = query.OrderBy(ord.Field, dir)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var docs []store.Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", collection, err)
		}
		docs = append(docs, store.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

// Batch starts an atomic write batch backed by a Firestore WriteBatch.
func (s *Store) Batch() store.Batch {
	return &batch{store: s, wb: s.client.Batch()}
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

type batch struct {
	store  *Store
	wb     *cloudfs.WriteBatch
	staged int
}

func (b *batch) Set(collection, id string, data map[string]any) {
	b.wb.Set(b.store.client.Collection(collection).Doc(id), data)
	b.staged++
}

func (b *batch) Commit(ctx context.Context) error {
	if b.staged == 0 {
		return nil
	}
	if _, err := b.wb.Commit(ctx); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}
