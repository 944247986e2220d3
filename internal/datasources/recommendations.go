package datasources

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/domain"
)

// RecommendationStore combines all stored-recommendation operations.
type RecommendationStore interface {
	RecommendationUpserter
	CurrentRecommendationsLister
	RecommendationEngagementUpdater
	UserExpiredRecommendationsDeleter
	ExpiredRecommendationsDeleter
	StrategyStatsLister
}

// RecommendationUpserter inserts a recommendation row, or refreshes the
// confidence and reason of the existing row with the same
// (user, content type, content ID, strategy) key. Engagement counters and
// the original expiry survive refreshes.
type RecommendationUpserter interface {
	UpsertRecommendation(ctx context.Context, rec domain.PersistedRecommendation) error
}

// CurrentRecommendationsLister lists a user's stored recommendations that
// have not expired and have not been dismissed, highest confidence first.
type CurrentRecommendationsLister interface {
	ListCurrentRecommendations(
		ctx context.Context,
		userID uuid.UUID,
		now time.Time,
		limit int,
	) ([]domain.PersistedRecommendation, error)
}

// RecommendationEngagementUpdater records a click or dismissal against the
// user's stored recommendation for the given content, incrementing its
// shown count. Updating a missing row is a no-op, not an error.
type RecommendationEngagementUpdater interface {
	UpdateRecommendationEngagement(
		ctx context.Context,
		userID uuid.UUID,
		ref domain.ContentRef,
		action domain.EngagementAction,
	) error
}

// UserExpiredRecommendationsDeleter removes one user's expired rows.
type UserExpiredRecommendationsDeleter interface {
	DeleteUserExpiredRecommendations(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error)
}

// ExpiredRecommendationsDeleter removes all expired rows.
type ExpiredRecommendationsDeleter interface {
	DeleteExpiredRecommendations(ctx context.Context, now time.Time) (int64, error)
}

// StrategyStatsLister aggregates a user's stored recommendations by strategy.
type StrategyStatsLister interface {
	ListStrategyStats(ctx context.Context, userID uuid.UUID) ([]domain.StrategyStats, error)
}

// NullRecommendationStore is a null implementation of RecommendationStore.
type NullRecommendationStore struct{}

var _ RecommendationStore = NullRecommendationStore{}

func (NullRecommendationStore) UpsertRecommendation(
	_ context.Context,
	_ domain.PersistedRecommendation,
) error {
	return nil
}

func (NullRecommendationStore) ListCurrentRecommendations(
	_ context.Context,
	_ uuid.UUID,
	_ time.Time,
	_ int,
) ([]domain.PersistedRecommendation, error) {
	return nil, nil
}

func (NullRecommendationStore) UpdateRecommendationEngagement(
	_ context.Context,
	_ uuid.UUID,
	_ domain.ContentRef,
	_ domain.EngagementAction,
) error {
	return nil
}

func (NullRecommendationStore) DeleteUserExpiredRecommendations(
	_ context.Context,
	_ uuid.UUID,
	_ time.Time,
) (int64, error) {
	return 0, nil
}

func (NullRecommendationStore) DeleteExpiredRecommendations(
	_ context.Context,
	_ time.Time,
) (int64, error) {
	return 0, nil
}

func (NullRecommendationStore) ListStrategyStats(
	_ context.Context,
	_ uuid.UUID,
) ([]domain.StrategyStats, error) {
	return nil, nil
}
