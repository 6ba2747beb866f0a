package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// seedCatalog is the fixed list of quotes inserted when the collection is
// found empty. Order and content are fixed.
func seedCatalog() []domain.Quote {
	return []domain.Quote{
		domain.NewQuote(
			"The only limit to our realization of tomorrow is our doubts of today.",
			"Franklin D. Roosevelt",
			[]string{"inspiration", "future"},
			nil,
		),
		domain.NewQuote(
			"Believe you can and you're halfway there.",
			"Theodore Roosevelt",
			[]string{"confidence", "motivation"},
			nil,
		),
		domain.NewQuote(
			"Do what you can, with what you have, where you are.",
			"Theodore Roosevelt",
			[]string{"action"},
			nil,
		),
		domain.NewQuote(
			"It always seems impossible until it's done.",
			"Nelson Mandela",
			[]string{"perseverance"},
			nil,
		),
	}
}

// seedIfEmpty counts records matching the tag filter and, when zero,
// inserts the seed catalog best-effort: per-record insert failures are
// logged and dropped, never failing the outer request. Not transactional;
// an interrupted batch stays partially inserted.
//
// This is check-then-act: two concurrent calls against an empty collection
// can both pass the count and both insert the catalog. Accepted, not
// mitigated.
func (s *QuoteService) seedIfEmpty(ctx context.Context, tag string) error {
	count, err := s.repo.Count(ctx, tag)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count quotes before seeding",
			slog.String("tag", tag),
			slog.Any("error", err),
		)
		return fmt.Errorf("seed check: %w", err)
	}

	if count > 0 {
		return nil
	}

	s.logger.InfoContext(ctx, "seeding empty quote collection",
		slog.String("tag", tag),
	)

	inserted := 0
	for _, quote := range seedCatalog() {
		if _, err := s.repo.Insert(ctx, quote); err != nil {
			s.logger.WarnContext(ctx, "seed insert failed, continuing",
				slog.String("author", quote.Author),
				slog.Any("error", err),
			)
			continue
		}

		inserted++
	}

	s.logger.InfoContext(ctx, "seeding finished",
		slog.Int("inserted", inserted),
	)

	return nil
}
