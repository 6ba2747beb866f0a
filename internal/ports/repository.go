// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never driver or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, ...)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// QuoteRepository is the storage port for quote records. The collection is
// create-then-read-only: there is no update or delete operation.
//
// Implementations map storage failures to domain.ErrUnavailable and an
// empty sample to domain.ErrNotFound, so callers never see driver errors.
type QuoteRepository interface {
	// Insert persists a new quote and returns its storage-assigned
	// identifier as a string. The storage layer stamps the creation time.
	Insert(ctx context.Context, q domain.Quote) (string, error)

	// Find returns up to limit records whose tags contain tag (every
	// record when tag is empty), in the storage layer's natural
	// retrieval order.
	Find(ctx context.Context, tag string, limit int64) ([]domain.Document, error)

	// Count reports how many records match the tag filter (all records
	// when tag is empty).
	Count(ctx context.Context, tag string) (int64, error)

	// SampleOne returns one uniformly-sampled record matching the tag
	// filter. Returns domain.ErrNotFound when nothing matches; the
	// uniformity guarantee is whatever the storage engine provides.
	SampleOne(ctx context.Context, tag string) (*domain.Document, error)

	// CollectionNames enumerates the visible collection names in the
	// backing database. Used by the status endpoint only.
	CollectionNames(ctx context.Context) ([]string, error)
}
