// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// QuoteService orchestrates quote-related use cases.
// It depends on the repository port, not a concrete storage implementation,
// following the Dependency Inversion Principle.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		repo:   cfg.Repository,
		logger: logger,
	}
}

// CreateQuoteInput carries the candidate fields for a new quote.
// Defaults (author, tags) are applied by the domain constructor.
type CreateQuoteInput struct {
	Text     string
	Author   string
	Tags     []string
	Template *string
}

// CreateQuote inserts a new quote and returns its storage-assigned
// identifier. No validation happens here beyond what the boundary
// already did; empty text is accepted.
func (s *QuoteService) CreateQuote(ctx context.Context, in CreateQuoteInput) (string, error) {
	quote := domain.NewQuote(in.Text, in.Author, in.Tags, in.Template)

	id, err := s.repo.Insert(ctx, quote)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to insert quote",
			slog.Any("error", err),
		)
		return "", fmt.Errorf("create quote: %w", err)
	}

	s.logger.InfoContext(ctx, "quote created",
		slog.String("quote_id", id),
		slog.String("author", quote.Author),
	)

	return id, nil
}

// ListQuotes returns serializable documents matching the optional tag
// filter, capped at limit. Ordering is the storage layer's natural
// retrieval order.
func (s *QuoteService) ListQuotes(ctx context.Context, tag string, limit int64) ([]domain.Document, error) {
	docs, err := s.repo.Find(ctx, tag, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list quotes",
			slog.String("tag", tag),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	return docs, nil
}

// RandomQuote returns one uniformly-sampled quote matching the optional
// tag filter, seeding the collection first if it is empty for that
// filter. Returns domain.ErrNotFound when nothing matches even after
// seeding.
func (s *QuoteService) RandomQuote(ctx context.Context, tag string) (*domain.Document, error) {
	if err := s.seedIfEmpty(ctx, tag); err != nil {
		return nil, err
	}

	doc, err := s.repo.SampleOne(ctx, tag)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewNotFoundError("quotes", tagFilterLabel(tag))
		}

		s.logger.ErrorContext(ctx, "failed to sample quote",
			slog.String("tag", tag),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("random quote: %w", err)
	}

	return doc, nil
}

// tagFilterLabel renders the filter for error messages; empty means
// no filter was applied.
func tagFilterLabel(tag string) string {
	if tag == "" {
		return ""
	}

	return "tag=" + tag
}
