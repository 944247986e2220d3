package app

import (
	"time"

	"github.com/narravia/content-recommendations/internal/command"
	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

// Strategy tunables. Each strategy fills at most its share of the requested
// limit before blending.
const (
	trendingWindow   = 7 * 24 * time.Hour
	newContentWindow = 3 * 24 * time.Hour

	minSeedRating     = 4
	topGenreCount     = 5
	maxSimilarUsers   = 10
	peerRatedRefLimit = 5
)

// DefaultStrategies builds the scoring strategies in their canonical order,
// which is also the deduplication precedence between them.
func DefaultStrategies(
	registry datasources.ContentRegistry,
	interactions datasources.UserInteractionRepository,
) []command.RecommendationStrategy {
	return []command.RecommendationStrategy{
		command.NewTrendingStrategy(registry, trendingWindow),
		command.NewSimilarContentStrategy(registry, interactions, interactions, minSeedRating),
		command.NewGenreAffinityStrategy(registry, interactions, topGenreCount),
		command.NewCollaborativeStrategy(
			interactions, interactions, interactions,
			minSeedRating, maxSimilarUsers, peerRatedRefLimit,
		),
		command.NewNewContentStrategy(registry, newContentWindow),
	}
}

// DefaultGenerateRecommendationsConfig returns the default config for the recommendation engine.
func DefaultGenerateRecommendationsConfig() command.GenerateRecommendationsConfig {
	return command.GenerateRecommendationsConfig{
		StrategyShares: map[domain.Strategy]float64{
			domain.StrategyTrending:      0.20,
			domain.StrategySimilar:       0.30,
			domain.StrategyGenreBased:    0.25,
			domain.StrategyCollaborative: 0.15,
			domain.StrategyNewContent:    0.10,
		},
		TTL: 7 * 24 * time.Hour,
	}
}

// DefaultGenerateAllRecommendationsConfig returns the default config for batch generation.
func DefaultGenerateAllRecommendationsConfig() command.GenerateAllRecommendationsConfig {
	return command.GenerateAllRecommendationsConfig{
		ActiveWindow: 30 * 24 * time.Hour,
		Limit:        20,
		Concurrency:  8,
	}
}
