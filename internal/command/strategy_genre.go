package command

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

var _ RecommendationStrategy = (*GenreAffinityStrategy)(nil)

// GenreAffinityStrategy recommends popular content from the genres the user's
// library leans toward. Every library entry with a category counts toward the
// genre's weight; rated entries count extra.
type GenreAffinityStrategy struct {
	Registry datasources.ContentRegistry
	Library  datasources.LibraryEntriesLister

	// TopGenres is how many of the heaviest genres to query.
	TopGenres int
}

// NewGenreAffinityStrategy creates a properly initialized GenreAffinityStrategy.
func NewGenreAffinityStrategy(
	registry datasources.ContentRegistry,
	library datasources.LibraryEntriesLister,
	topGenres int,
) *GenreAffinityStrategy {
	return &GenreAffinityStrategy{
		Registry:  registry,
		Library:   library,
		TopGenres: topGenres,
	}
}

func (s *GenreAffinityStrategy) Strategy() domain.Strategy {
	return domain.StrategyGenreBased
}

// Candidates queries every catalog for each of the user's top genres. The
// genre's weight sets the confidence for all content it yields.
func (s *GenreAffinityStrategy) Candidates(
	ctx context.Context, userID uuid.UUID, subLimit int,
) ([]domain.Recommendation, error) {
	logger := domain.LoggerFromContext(ctx)

	entries, err := s.Library.ListLibraryEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing library entries: %w", err)
	}

	weights := genreWeights(entries)
	if len(weights) == 0 {
		return nil, nil
	}

	perQueryLimit := subLimit/10 + 1

	var recs []domain.Recommendation
	for _, genre := range topGenresByWeight(weights, s.TopGenres) {
		confidence := genreConfidence(weights[genre])

		for _, contentType := range domain.ContentTypes() {
			repo, ok := s.Registry[contentType]
			if !ok {
				continue
			}

			summaries, err := repo.ListContent(ctx,
				domain.ContentFilters{
					Status:   domain.ContentStatusPublished,
					Category: genre,
				},
				domain.ContentListOptions{
					Ordering: []domain.ContentOrdering{
						{Field: domain.ContentOrderingFieldViewCount, Desc: true},
						{Field: domain.ContentOrderingFieldCreatedAt, Desc: true},
					},
					Limit: perQueryLimit,
				},
			)
			if err != nil {
				logger.WarnContext(ctx, "failed to list genre content",
					"genre", genre, "content_type", contentType, "error", err)
				continue
			}

			for _, summary := range summaries {
				recs = append(recs, domain.Recommendation{
					ContentRef: summary.ContentRef,
					Strategy:   domain.StrategyGenreBased,
					Confidence: confidence,
					Reason:     fmt.Sprintf("You enjoy %s content", genre),
				})
			}
		}
	}

	return truncateRecommendations(recs, subLimit), nil
}

// genreWeights tallies affinity per category: one point per library entry,
// plus rating/5 for rated entries.
func genreWeights(entries []domain.LibraryEntry) map[string]float64 {
	weights := make(map[string]float64)
	for _, entry := range entries {
		if entry.Category == nil || *entry.Category == "" {
			continue
		}
		weights[*entry.Category]++
		if entry.Rating != nil {
			weights[*entry.Category] += float64(*entry.Rating) / 5.0
		}
	}
	return weights
}

// topGenresByWeight returns up to n genres, heaviest first. Ties break by
// name to keep the selection deterministic.
func topGenresByWeight(weights map[string]float64, n int) []string {
	genres := make([]string, 0, len(weights))
	for genre := range weights {
		genres = append(genres, genre)
	}

	sort.Slice(genres, func(i, j int) bool {
		if weights[genres[i]] != weights[genres[j]] {
			return weights[genres[i]] > weights[genres[j]]
		}
		return genres[i] < genres[j]
	})

	if len(genres) > n {
		genres = genres[:n]
	}
	return genres
}

// genreConfidence starts at 0.4 and grows with the genre's weight, capped at 0.9.
func genreConfidence(weight float64) float64 {
	return domain.ClampConfidence(math.Min(0.9, 0.4+weight/10))
}
