package command

import (
	"context"
	"fmt"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

// PopularFallback serves the all-time most viewed content per catalog. It is
// the answer of last resort when the personalized pipeline fails, so it never
// returns an error: a catalog that fails to list contributes nothing.
type PopularFallback struct {
	Registry datasources.ContentRegistry
}

// NewPopularFallback creates a properly initialized PopularFallback.
func NewPopularFallback(registry datasources.ContentRegistry) *PopularFallback {
	return &PopularFallback{Registry: registry}
}

// Recommendations returns up to limit popular picks across all catalogs.
func (f *PopularFallback) Recommendations(ctx context.Context, limit int) []domain.Recommendation {
	logger := domain.LoggerFromContext(ctx)

	perTypeLimit := limit/len(domain.ContentTypes()) + 1

	var recs []domain.Recommendation
	for _, contentType := range domain.ContentTypes() {
		repo, ok := f.Registry[contentType]
		if !ok {
			continue
		}

		summaries, err := repo.ListContent(ctx,
			domain.ContentFilters{
				Status: domain.ContentStatusPublished,
			},
			domain.ContentListOptions{
				Ordering: []domain.ContentOrdering{
					{Field: domain.ContentOrderingFieldViewCount, Desc: true},
				},
				Limit: perTypeLimit,
			},
		)
		if err != nil {
			logger.WarnContext(ctx, "failed to list popular content",
				"content_type", contentType, "error", err)
			continue
		}

		for _, summary := range summaries {
			recs = append(recs, domain.Recommendation{
				ContentRef: summary.ContentRef,
				Strategy:   domain.StrategyPopular,
				Confidence: 0.5,
				Reason:     fmt.Sprintf("Popular %s content", contentType),
			})
		}
	}

	return truncateRecommendations(recs, limit)
}
