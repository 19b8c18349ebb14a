// Package postgres binds the store.Store interface to PostgreSQL, holding
// every collection in one JSONB documents table. Self-hosted deployments use
// this instead of Firestore; the repositories cannot tell the difference.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitstack/internal/domain"
	"fitstack/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	data       JSONB NOT NULL,
	PRIMARY KEY (collection, id)
)`

// Store is a PostgreSQL implementation of store.Store.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a connection pool and ensures the documents table exists.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	config.MaxConns = 10

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Get fetches one document's raw fields.
func (s *Store) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	var data map[string]any
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return data, nil
}

// Add writes a new document under a generated identifier.
func (s *Store) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`,
		collection, id, payload,
	)
	if err != nil {
		return "", fmt.Errorf("add %s: %w", collection, err)
	}
	return id, nil
}

// Set writes a full document, replacing any existing one.
func (s *Store) Set(ctx context.Context, collection, id string, data map[string]any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data`,
		collection, id, payload,
	)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Update applies a partial field update as one UPDATE statement, so the whole
// mutation (plain replacements plus array-union appends) is atomic per
// document. Union appends skip elements already present, matching Firestore's
// ArrayUnion semantics.
//
// Field names are interpolated into the jsonb path expressions; they are
// compile-time constants owned by the repositories, never caller input.
func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	plain := map[string]any{}
	expr := "data"
	args := []any{collection, id}

	for field, value := range fields {
		union, ok := value.(store.ArrayUnion)
		if !ok {
			plain[field] = value
			continue
		}
		payload, err := json.Marshal(union.Elems)
		if err != nil {
			return fmt.Errorf("encode %s elements: %w", field, err)
		}
		args = append(args, payload)
		current := fmt.Sprintf("coalesce(data->'%s', '[]'::jsonb)", field)
		appended := fmt.Sprintf(
			`(SELECT coalesce(jsonb_agg(el), '[]'::jsonb)
			  FROM jsonb_array_elements($%d::jsonb) el
			  WHERE NOT %s @> jsonb_build_array(el))`,
			len(args), current)
		expr = fmt.Sprintf("jsonb_set(%s, '{%s}', %s || %s)", expr, field, current, appended)
	}

	if len(plain) > 0 {
		payload, err := json.Marshal(plain)
		if err != nil {
			return fmt.Errorf("encode fields: %w", err)
		}
		args = append(args, payload)
		expr = fmt.Sprintf("(%s) || $%d::jsonb", expr, len(args))
	}

	query := fmt.Sprintf(
		`UPDATE documents SET data = %s WHERE collection = $1 AND id = $2`, expr)
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a document; deleting a non-existent id is a no-op.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// Query runs an equality-filter + order-by query against the JSONB fields.
// jsonb ordering compares numbers numerically and strings lexicographically,
// which is exactly what sort_order and the timestamp fields need.
func (s *Store) Query(ctx context.Context, collection string, q store.Query) ([]store.Document, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, data FROM documents WHERE collection = $1`)
	args := []any{collection}

	for _, f := range q.Filters {
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("encode filter %s: %w", f.Field, err)
		}
		args = append(args, f.Field)
		sb.WriteString(fmt.Sprintf(" AND data->$%d", len(args)))
		args = append(args, value)
		sb.WriteString(fmt.Sprintf(" = $%d::jsonb", len(args)))
	}

	for i, ord := range q.OrderBy {
		if i == 0 {
			sb.WriteString(" ORDER BY ")
		} else {
			sb.WriteString(", ")
		}
		args = append(args, ord.Field)
		sb.WriteString(fmt.Sprintf("data->$%d", len(args)))
		if ord.Desc {
			sb.WriteString(" DESC")
		}
	}

	rows, err := s.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []store.Document
	for rows.Next() {
		var doc store.Document
		if err := rows.Scan(&doc.ID, &doc.Data); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

// Batch starts a write batch that commits inside one transaction.
func (s *Store) Batch() store.Batch {
	return &batch{store: s}
}

// Close releases the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

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
	b.writes = append(b.writes, write{collection, id, data})
}

func (b *batch) Commit(ctx context.Context) (err error) {
	if len(b.writes) == 0 {
		return nil
	}

	tx, err := b.store.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for _, w := range b.writes {
		payload, err := json.Marshal(w.data)
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
			 ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data`,
			w.collection, w.id, payload,
		)
		if err != nil {
			return fmt.Errorf("set %s/%s: %w", w.collection, w.id, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	b.writes = nil
	return nil
}
