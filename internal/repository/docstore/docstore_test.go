package docstore

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"fitstack/internal/store/memory"
)

// newTestConfig wires the repositories to a fresh in-memory store with a
// deterministic clock: each call to now() yields a strictly later timestamp.
// The counter is atomic since concurrent repository calls share the clock.
func newTestConfig() *RepositoryConfig {
	var tick atomic.Int64
	return &RepositoryConfig{
		Store:       memory.New(),
		Collections: NewCollectionNames("test_"),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now: func() string {
			return fmt.Sprintf("2024-06-01T10:00:00.%09dZ", tick.Add(1))
		},
	}
}

func ptr[T any](v T) *T { return &v }
