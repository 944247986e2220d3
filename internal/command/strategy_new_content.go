package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

var _ RecommendationStrategy = (*NewContentStrategy)(nil)

// NewContentStrategy surfaces just-published content from every catalog.
// Results keep catalog order rather than interleaving by recency, so each
// content type stays grouped.
type NewContentStrategy struct {
	Registry datasources.ContentRegistry

	// Window is the maximum age for content to count as new.
	Window time.Duration
}

// NewNewContentStrategy creates a properly initialized NewContentStrategy.
func NewNewContentStrategy(registry datasources.ContentRegistry, window time.Duration) *NewContentStrategy {
	return &NewContentStrategy{
		Registry: registry,
		Window:   window,
	}
}

func (s *NewContentStrategy) Strategy() domain.Strategy {
	return domain.StrategyNewContent
}

// Candidates returns the newest published content per catalog. A catalog that
// fails to list contributes nothing for its type.
func (s *NewContentStrategy) Candidates(
	ctx context.Context, _ uuid.UUID, subLimit int,
) ([]domain.Recommendation, error) {
	logger := domain.LoggerFromContext(ctx)

	cutoff := time.Now().Add(-s.Window)
	perTypeLimit := subLimit/len(domain.ContentTypes()) + 1

	var recs []domain.Recommendation
	for _, contentType := range domain.ContentTypes() {
		repo, ok := s.Registry[contentType]
		if !ok {
			continue
		}

		summaries, err := repo.ListContent(ctx,
			domain.ContentFilters{
				Status:       domain.ContentStatusPublished,
				CreatedAfter: cutoff,
			},
			domain.ContentListOptions{
				Ordering: []domain.ContentOrdering{
					{Field: domain.ContentOrderingFieldCreatedAt, Desc: true},
				},
				Limit: perTypeLimit,
			},
		)
		if err != nil {
			logger.WarnContext(ctx, "failed to list new content",
				"content_type", contentType, "error", err)
			continue
		}

		for _, summary := range summaries {
			recs = append(recs, domain.Recommendation{
				ContentRef: summary.ContentRef,
				Strategy:   domain.StrategyNewContent,
				Confidence: 0.6,
				Reason:     fmt.Sprintf("New %s just released", contentType),
			})
		}
	}

	return truncateRecommendations(recs, subLimit), nil
}
