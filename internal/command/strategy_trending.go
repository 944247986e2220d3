package command

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

var _ RecommendationStrategy = (*TrendingStrategy)(nil)

// TrendingStrategy recommends recently published content with high
// engagement, scanning every catalog so each content type is represented.
type TrendingStrategy struct {
	Registry datasources.ContentRegistry

	// Window is how far back a publication date may lie for the content to
	// still count as trending.
	Window time.Duration
}

// NewTrendingStrategy creates a properly initialized TrendingStrategy.
func NewTrendingStrategy(registry datasources.ContentRegistry, window time.Duration) *TrendingStrategy {
	return &TrendingStrategy{
		Registry: registry,
		Window:   window,
	}
}

func (s *TrendingStrategy) Strategy() domain.Strategy {
	return domain.StrategyTrending
}

// Candidates returns the most engaged recent content per catalog. A catalog
// that fails to list contributes nothing for its type; the others still count.
func (s *TrendingStrategy) Candidates(
	ctx context.Context, _ uuid.UUID, subLimit int,
) ([]domain.Recommendation, error) {
	logger := domain.LoggerFromContext(ctx)

	cutoff := time.Now().Add(-s.Window)
	perTypeLimit := ceilDiv(subLimit, len(domain.ContentTypes())) + 1

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
					{Field: domain.ContentOrderingFieldEngagement, Desc: true},
				},
				Limit: perTypeLimit,
			},
		)
		if err != nil {
			logger.WarnContext(ctx, "failed to list trending content",
				"content_type", contentType, "error", err)
			continue
		}

		for _, summary := range summaries {
			recs = append(recs, domain.Recommendation{
				ContentRef: summary.ContentRef,
				Strategy:   domain.StrategyTrending,
				Confidence: trendingConfidence(summary.ViewCount),
				Reason:     fmt.Sprintf("Trending %s with high engagement", contentType),
			})
		}
	}

	return truncateRecommendations(recs, subLimit), nil
}

// trendingConfidence starts at 0.5 and grows with view count, capped at 0.9.
func trendingConfidence(viewCount int64) float64 {
	return domain.ClampConfidence(math.Min(0.9, 0.5+float64(viewCount)/10000))
}
