package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

var _ RecommendationStrategy = (*SimilarContentStrategy)(nil)

// SimilarContentStrategy recommends content sharing a category or author with
// items the user has favorited or rated highly. Each such item seeds a lookup
// in its own catalog.
type SimilarContentStrategy struct {
	Registry  datasources.ContentRegistry
	Favorites datasources.FavoriteRefsLister
	Library   datasources.LibraryEntriesLister

	// MinSeedRating is the lowest library rating that makes an entry a seed.
	MinSeedRating int
}

// NewSimilarContentStrategy creates a properly initialized SimilarContentStrategy.
func NewSimilarContentStrategy(
	registry datasources.ContentRegistry,
	favorites datasources.FavoriteRefsLister,
	library datasources.LibraryEntriesLister,
	minSeedRating int,
) *SimilarContentStrategy {
	return &SimilarContentStrategy{
		Registry:      registry,
		Favorites:     favorites,
		Library:       library,
		MinSeedRating: minSeedRating,
	}
}

func (s *SimilarContentStrategy) Strategy() domain.Strategy {
	return domain.StrategySimilar
}

// Candidates finds lookalikes for each seed. Seeds that no longer resolve are
// skipped; the per-seed quota divides subLimit evenly across seeds.
func (s *SimilarContentStrategy) Candidates(
	ctx context.Context, userID uuid.UUID, subLimit int,
) ([]domain.Recommendation, error) {
	logger := domain.LoggerFromContext(ctx)

	seeds, err := s.seedRefs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, nil
	}

	perSeedLimit := subLimit/len(seeds) + 1

	var recs []domain.Recommendation
	for _, seedRef := range seeds {
		repo, ok := s.Registry[seedRef.Type]
		if !ok {
			continue
		}

		seed, err := repo.FetchContentByID(ctx, seedRef)
		if errors.Is(err, datasources.ErrNotFound) {
			continue
		}
		if err != nil {
			logger.WarnContext(ctx, "failed to fetch seed content",
				"content_type", seedRef.Type, "content_id", seedRef.ID, "error", err)
			continue
		}

		for _, match := range s.lookalikes(ctx, repo, seed, perSeedLimit) {
			recs = append(recs, domain.Recommendation{
				ContentRef: match.ContentRef,
				Strategy:   domain.StrategySimilar,
				Confidence: 0.8,
				Reason:     fmt.Sprintf("Similar to '%s' which you liked", seed.Title),
			})
		}
	}

	return truncateRecommendations(recs, subLimit), nil
}

// seedRefs unions the user's favorites with library entries rated at or above
// MinSeedRating, preserving encounter order.
func (s *SimilarContentStrategy) seedRefs(ctx context.Context, userID uuid.UUID) ([]domain.ContentRef, error) {
	favorites, err := s.Favorites.ListFavoriteRefs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}

	entries, err := s.Library.ListLibraryEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing library entries: %w", err)
	}

	seen := make(map[domain.ContentRef]struct{}, len(favorites)+len(entries))
	seeds := make([]domain.ContentRef, 0, len(favorites)+len(entries))
	for _, ref := range favorites {
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		seeds = append(seeds, ref)
	}
	for _, entry := range entries {
		if !entry.Rated(s.MinSeedRating) {
			continue
		}
		if _, ok := seen[entry.Ref]; ok {
			continue
		}
		seen[entry.Ref] = struct{}{}
		seeds = append(seeds, entry.Ref)
	}

	return seeds, nil
}

// lookalikes lists published content from the seed's catalog that shares its
// category or author, with the seed itself excluded. Category matches rank by
// view count; author matches rank by recency and get half the quota.
func (s *SimilarContentStrategy) lookalikes(
	ctx context.Context,
	repo datasources.ContentRepository,
	seed domain.ContentSummary,
	limit int,
) []domain.ContentSummary {
	logger := domain.LoggerFromContext(ctx)

	var matches []domain.ContentSummary
	seen := make(map[uuid.UUID]struct{})

	if seed.Category != nil && *seed.Category != "" {
		byCategory, err := repo.ListContent(ctx,
			domain.ContentFilters{
				Status:     domain.ContentStatusPublished,
				Category:   *seed.Category,
				ExcludeIDs: []uuid.UUID{seed.ID},
			},
			domain.ContentListOptions{
				Ordering: []domain.ContentOrdering{
					{Field: domain.ContentOrderingFieldViewCount, Desc: true},
				},
				Limit: limit,
			},
		)
		if err != nil {
			logger.WarnContext(ctx, "failed to list same-category content",
				"content_type", seed.Type, "category", *seed.Category, "error", err)
		}
		for _, match := range byCategory {
			if _, ok := seen[match.ID]; ok {
				continue
			}
			seen[match.ID] = struct{}{}
			matches = append(matches, match)
		}
	}

	if authorLimit := limit / 2; seed.AuthorID != nil && authorLimit > 0 {
		byAuthor, err := repo.ListContent(ctx,
			domain.ContentFilters{
				Status:     domain.ContentStatusPublished,
				AuthorID:   seed.AuthorID,
				ExcludeIDs: []uuid.UUID{seed.ID},
			},
			domain.ContentListOptions{
				Ordering: []domain.ContentOrdering{
					{Field: domain.ContentOrderingFieldCreatedAt, Desc: true},
				},
				Limit: authorLimit,
			},
		)
		if err != nil {
			logger.WarnContext(ctx, "failed to list same-author content",
				"content_type", seed.Type, "author_id", seed.AuthorID, "error", err)
		}
		for _, match := range byAuthor {
			if _, ok := seen[match.ID]; ok {
				continue
			}
			seen[match.ID] = struct{}{}
			matches = append(matches, match)
		}
	}

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
