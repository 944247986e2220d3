package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/domain"
)

// RecommendationStrategy produces scored candidates for a single scoring
// approach. Implementations must keep their output within subLimit and must
// not emit confidence scores outside [0.0, 1.0].
//
// A returned error means the strategy contributed nothing; the caller decides
// whether that is fatal. Implementations degrade internally where they can,
// so errors are reserved for failures that invalidate the whole strategy.
type RecommendationStrategy interface {
	// Strategy identifies the scoring approach, used to attribute results.
	Strategy() domain.Strategy

	// Candidates returns up to subLimit scored candidates for the user.
	Candidates(ctx context.Context, userID uuid.UUID, subLimit int) ([]domain.Recommendation, error)
}

// truncateRecommendations caps recs at limit. A limit of zero or less means
// no candidates, matching the slice bounds a sub-limit of zero produces.
func truncateRecommendations(recs []domain.Recommendation, limit int) []domain.Recommendation {
	if limit <= 0 {
		return nil
	}
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// ceilDiv is integer division rounding up.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
