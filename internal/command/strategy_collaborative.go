package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

var _ RecommendationStrategy = (*CollaborativeStrategy)(nil)

// CollaborativeStrategy recommends content enjoyed by users with overlapping
// taste. Overlap is approximated by shared highly-rated categories rather
// than a full user-to-user similarity model.
type CollaborativeStrategy struct {
	Library   datasources.LibraryEntriesLister
	Raters    datasources.CategoryRatersLister
	RatedRefs datasources.RatedRefsLister

	// MinRating is the lowest rating counted as enjoying content, both for
	// the user's own taste profile and for the peers' picks.
	MinRating int

	// MaxSimilarUsers caps how many peers contribute candidates.
	MaxSimilarUsers int

	// PerUserLimit is how many picks each peer contributes.
	PerUserLimit int
}

// NewCollaborativeStrategy creates a properly initialized CollaborativeStrategy.
func NewCollaborativeStrategy(
	library datasources.LibraryEntriesLister,
	raters datasources.CategoryRatersLister,
	ratedRefs datasources.RatedRefsLister,
	minRating, maxSimilarUsers, perUserLimit int,
) *CollaborativeStrategy {
	return &CollaborativeStrategy{
		Library:         library,
		Raters:          raters,
		RatedRefs:       ratedRefs,
		MinRating:       minRating,
		MaxSimilarUsers: maxSimilarUsers,
		PerUserLimit:    perUserLimit,
	}
}

func (s *CollaborativeStrategy) Strategy() domain.Strategy {
	return domain.StrategyCollaborative
}

// Candidates collects the top-rated picks of users who rated the same
// categories highly. A peer whose picks fail to load contributes nothing.
func (s *CollaborativeStrategy) Candidates(
	ctx context.Context, userID uuid.UUID, subLimit int,
) ([]domain.Recommendation, error) {
	logger := domain.LoggerFromContext(ctx)

	peers, err := s.similarUsers(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(peers) == 0 {
		return nil, nil
	}

	var recs []domain.Recommendation
	for _, peer := range peers {
		refs, err := s.RatedRefs.ListRatedRefs(ctx, peer, s.MinRating, s.PerUserLimit)
		if err != nil {
			logger.WarnContext(ctx, "failed to list peer's rated content",
				"peer_user_id", peer, "error", err)
			continue
		}

		for _, ref := range refs {
			recs = append(recs, domain.Recommendation{
				ContentRef: ref,
				Strategy:   domain.StrategyCollaborative,
				Confidence: 0.7,
				Reason:     "Users with similar tastes also enjoyed this",
			})
		}
	}

	return truncateRecommendations(recs, subLimit), nil
}

// similarUsers finds other users who rated the requesting user's preferred
// categories at or above MinRating, capped at MaxSimilarUsers. The user's own
// categories come from their highly-rated library entries.
func (s *CollaborativeStrategy) similarUsers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	logger := domain.LoggerFromContext(ctx)

	entries, err := s.Library.ListLibraryEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing library entries: %w", err)
	}

	var categories []string
	seenCategories := make(map[string]struct{})
	for _, entry := range entries {
		if !entry.Rated(s.MinRating) || entry.Category == nil || *entry.Category == "" {
			continue
		}
		if _, ok := seenCategories[*entry.Category]; ok {
			continue
		}
		seenCategories[*entry.Category] = struct{}{}
		categories = append(categories, *entry.Category)
	}
	if len(categories) == 0 {
		return nil, nil
	}

	perCategoryLimit := s.MaxSimilarUsers/len(categories) + 1

	var peers []uuid.UUID
	seenPeers := make(map[uuid.UUID]struct{})
	for _, category := range categories {
		raters, err := s.Raters.ListCategoryRaterIDs(ctx, category, s.MinRating, userID, perCategoryLimit)
		if err != nil {
			logger.WarnContext(ctx, "failed to list category raters",
				"category", category, "error", err)
			continue
		}

		for _, rater := range raters {
			if _, ok := seenPeers[rater]; ok {
				continue
			}
			seenPeers[rater] = struct{}{}
			peers = append(peers, rater)
		}
	}

	if len(peers) > s.MaxSimilarUsers {
		peers = peers[:s.MaxSimilarUsers]
	}
	return peers, nil
}
