package command

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

// GenerateRecommendationsRequest is the request for the GenerateRecommendations command.
type GenerateRecommendationsRequest struct {
	UserID uuid.UUID
	Limit  int
}

// GenerateRecommendationsConfig holds configuration for recommendation generation.
type GenerateRecommendationsConfig struct {
	// StrategyShares is each strategy's share of the requested limit.
	// Sub-limits truncate, so shares are approximate and the blended list
	// can come in under the limit.
	StrategyShares map[domain.Strategy]float64

	// TTL is how long persisted recommendations stay current.
	TTL time.Duration
}

// GenerateRecommendations blends candidates from every scoring strategy into
// one ranked list, filters out content the user already consumed, and
// persists the result for later serving.
type GenerateRecommendations struct {
	Strategies     []RecommendationStrategy
	Favorites      datasources.FavoriteRefsLister
	Library        datasources.LibraryEntriesLister
	Upserter       datasources.RecommendationUpserter
	ExpiredDeleter datasources.UserExpiredRecommendationsDeleter
	Fallback       *PopularFallback
	Config         GenerateRecommendationsConfig
}

// NewGenerateRecommendations creates a properly initialized GenerateRecommendations command.
func NewGenerateRecommendations(
	strategies []RecommendationStrategy,
	favorites datasources.FavoriteRefsLister,
	library datasources.LibraryEntriesLister,
	upserter datasources.RecommendationUpserter,
	expiredDeleter datasources.UserExpiredRecommendationsDeleter,
	fallback *PopularFallback,
	config GenerateRecommendationsConfig,
) *GenerateRecommendations {
	return &GenerateRecommendations{
		Strategies:     strategies,
		Favorites:      favorites,
		Library:        library,
		Upserter:       upserter,
		ExpiredDeleter: expiredDeleter,
		Fallback:       fallback,
		Config:         config,
	}
}

// Execute generates recommendations for a user. It never fails outright:
// when the pipeline cannot run, the popularity fallback answers instead.
func (c *GenerateRecommendations) Execute(
	ctx context.Context, req GenerateRecommendationsRequest,
) []domain.Recommendation {
	recs, err := c.generate(ctx, req)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "recommendation pipeline failed, serving fallback",
			"user_id", req.UserID, "error", err)
		return c.Fallback.Recommendations(ctx, req.Limit)
	}

	return recs
}

func (c *GenerateRecommendations) generate(
	ctx context.Context, req GenerateRecommendationsRequest,
) ([]domain.Recommendation, error) {
	// Content the user already consumed must never be recommended back,
	// so failing to load the set fails the whole pipeline.
	consumed, err := c.getConsumedRefs(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	candidates := c.collectCandidates(ctx, req)

	recs := c.rankAndDeduplicate(candidates, req.Limit, consumed)

	c.persistRecommendations(ctx, req.UserID, recs)

	return recs, nil
}

// collectCandidates runs every strategy concurrently, each writing into its
// own slot. The merge consumes slots in Strategies order, so the blended
// list is deterministic no matter which strategy finishes first.
func (c *GenerateRecommendations) collectCandidates(
	ctx context.Context, req GenerateRecommendationsRequest,
) []domain.Recommendation {
	results := make([][]domain.Recommendation, len(c.Strategies))
	errs := make([]error, len(c.Strategies))

	var wg sync.WaitGroup
	for i, strategy := range c.Strategies {
		wg.Add(1)
		go func(i int, strategy RecommendationStrategy) {
			defer wg.Done()
			subLimit := int(float64(req.Limit) * c.Config.StrategyShares[strategy.Strategy()])
			results[i], errs[i] = strategy.Candidates(ctx, req.UserID, subLimit)
		}(i, strategy)
	}
	wg.Wait()

	logger := domain.LoggerFromContext(ctx)

	var candidates []domain.Recommendation
	for i, strategy := range c.Strategies {
		if errs[i] != nil {
			logger.WarnContext(ctx, "recommendation strategy failed",
				"strategy", strategy.Strategy(), "error", errs[i])
			continue
		}
		candidates = append(candidates, results[i]...)
	}

	return candidates
}

// rankAndDeduplicate drops consumed content, deduplicates keeping the first
// occurrence, and returns the top-K by confidence. The sort is stable, so
// equally confident candidates keep strategy order.
func (c *GenerateRecommendations) rankAndDeduplicate(
	candidates []domain.Recommendation,
	limit int,
	consumed map[domain.ContentRef]struct{},
) []domain.Recommendation {
	seen := make(map[domain.ContentRef]struct{}, len(candidates))
	recs := make([]domain.Recommendation, 0, len(candidates))
	for _, cand := range candidates {
		if _, ok := consumed[cand.ContentRef]; ok {
			continue
		}
		if _, ok := seen[cand.ContentRef]; ok {
			continue
		}
		seen[cand.ContentRef] = struct{}{}
		recs = append(recs, cand)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Confidence > recs[j].Confidence
	})

	return truncateRecommendations(recs, limit)
}

// getConsumedRefs fetches everything the user favorited or shelved.
func (c *GenerateRecommendations) getConsumedRefs(
	ctx context.Context, userID uuid.UUID,
) (map[domain.ContentRef]struct{}, error) {
	favorites, err := c.Favorites.ListFavoriteRefs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}

	entries, err := c.Library.ListLibraryEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing library entries: %w", err)
	}

	consumed := make(map[domain.ContentRef]struct{}, len(favorites)+len(entries))
	for _, ref := range favorites {
		consumed[ref] = struct{}{}
	}
	for _, entry := range entries {
		consumed[entry.Ref] = struct{}{}
	}

	return consumed, nil
}

// persistRecommendations sweeps the user's expired rows, then upserts the
// fresh list. Persistence is best-effort: a row that fails to write is
// logged and skipped, and the in-memory list is served regardless.
func (c *GenerateRecommendations) persistRecommendations(
	ctx context.Context, userID uuid.UUID, recs []domain.Recommendation,
) {
	logger := domain.LoggerFromContext(ctx)

	now := time.Now()
	if _, err := c.ExpiredDeleter.DeleteUserExpiredRecommendations(ctx, userID, now); err != nil {
		logger.WarnContext(ctx, "failed to sweep expired recommendations",
			"user_id", userID, "error", err)
	}

	for _, rec := range recs {
		persisted := domain.PersistedRecommendation{
			ContentRef: rec.ContentRef,
			UserID:     userID,
			Strategy:   rec.Strategy,
			Confidence: rec.Confidence,
			Reason:     rec.Reason,
			CreatedAt:  now,
			ExpiresAt:  now.Add(c.Config.TTL),
		}
		if err := c.Upserter.UpsertRecommendation(ctx, persisted); err != nil {
			logger.WarnContext(ctx, "failed to persist recommendation",
				"user_id", userID,
				"content_type", rec.Type, "content_id", rec.ID, "error", err)
		}
	}
}
