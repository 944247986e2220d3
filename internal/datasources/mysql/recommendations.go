package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

const upsertRecommendationStmt = `
INSERT INTO user_recommendations
	(user_id, content_type, content_id, recommendation_type,
	 confidence_score, reason, shown_count, clicked, dismissed, created_at, expires_at)
VALUES (?, ?, ?, ?, ?, ?, 0, FALSE, FALSE, ?, ?)
ON DUPLICATE KEY UPDATE
	confidence_score = VALUES(confidence_score),
	reason = VALUES(reason)`

const updateEngagementStmtFmt = `
UPDATE user_recommendations
SET %s = TRUE, shown_count = shown_count + 1
WHERE user_id = ? AND content_type = ? AND content_id = ?
ORDER BY confidence_score DESC
LIMIT 1`

const deleteUserExpiredStmt = `
DELETE FROM user_recommendations
WHERE user_id = ? AND expires_at < ?`

const deleteExpiredStmt = `
DELETE FROM user_recommendations
WHERE expires_at < ?`

var recommendationColumns = []string{
	"content_type", "content_id", "recommendation_type", "confidence_score",
	"reason", "shown_count", "clicked", "dismissed", "created_at", "expires_at",
}

var _ datasources.RecommendationStore = (*RecommendationStore)(nil)

// RecommendationStore persists generated recommendations and their
// engagement counters in the user_recommendations table, which is unique on
// (user_id, content_type, content_id, recommendation_type).
type RecommendationStore struct {
	db *sql.DB
}

func NewRecommendationStore(db *sql.DB) *RecommendationStore {
	return &RecommendationStore{db: db}
}

func (s *RecommendationStore) UpsertRecommendation(
	ctx context.Context,
	rec domain.PersistedRecommendation,
) error {
	_, err := s.db.ExecContext(
		ctx, upsertRecommendationStmt,
		rec.UserID.String(),
		string(rec.Type),
		rec.ID.String(),
		string(rec.Strategy),
		rec.Confidence,
		rec.Reason,
		rec.CreatedAt,
		rec.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("upserting recommendation: %w", err)
	}
	return nil
}

func (s *RecommendationStore) ListCurrentRecommendations(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) ([]domain.PersistedRecommendation, error) {
	sb := sqlbuilder.Select(recommendationColumns...)
	sb.From("user_recommendations")
	sb.Where(
		sb.Equal("user_id", userID.String()),
		sb.GreaterThan("expires_at", now),
		sb.Equal("dismissed", false),
	)
	sb.OrderBy("confidence_score DESC", "created_at DESC")
	if limit > 0 {
		sb.Limit(limit)
	}

	query, args := sb.Build()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running current recommendations query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recs := []domain.PersistedRecommendation{}
	for rows.Next() {
		var (
			contentType string
			contentID   string
			strategy    string
		)
		rec := domain.PersistedRecommendation{UserID: userID}
		if err := rows.Scan(
			&contentType,
			&contentID,
			&strategy,
			&rec.Confidence,
			&rec.Reason,
			&rec.ShownCount,
			&rec.Clicked,
			&rec.Dismissed,
			&rec.CreatedAt,
			&rec.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("scanning recommendation row: %w", err)
		}

		ref, err := parseContentRef(contentType, contentID)
		if err != nil {
			return nil, fmt.Errorf("reading recommendation: %w", err)
		}
		rec.ContentRef = ref
		rec.Strategy = domain.Strategy(strategy)

		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recommendation rows: %w", err)
	}

	return recs, nil
}

func (s *RecommendationStore) UpdateRecommendationEngagement(
	ctx context.Context,
	userID uuid.UUID,
	ref domain.ContentRef,
	action domain.EngagementAction,
) error {
	var column string
	switch action {
	case domain.EngagementActionClicked:
		column = "clicked"
	case domain.EngagementActionDismissed:
		column = "dismissed"
	default:
		return fmt.Errorf("invalid engagement action: %s", action)
	}

	// Affecting zero rows is fine: engagement against a recommendation that
	// was never stored, or has been swept, is a no-op.
	_, err := s.db.ExecContext(
		ctx, fmt.Sprintf(updateEngagementStmtFmt, column),
		userID.String(), string(ref.Type), ref.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("updating recommendation engagement: %w", err)
	}
	return nil
}

func (s *RecommendationStore) DeleteUserExpiredRecommendations(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteUserExpiredStmt, userID.String(), now)
	if err != nil {
		return 0, fmt.Errorf("deleting user expired recommendations: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted recommendations: %w", err)
	}
	return deleted, nil
}

func (s *RecommendationStore) DeleteExpiredRecommendations(
	ctx context.Context,
	now time.Time,
) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteExpiredStmt, now)
	if err != nil {
		return 0, fmt.Errorf("deleting expired recommendations: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted recommendations: %w", err)
	}
	return deleted, nil
}

func (s *RecommendationStore) ListStrategyStats(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.StrategyStats, error) {
	sb := sqlbuilder.Select(
		"recommendation_type",
		"COUNT(*)",
		"SUM(clicked)",
		"SUM(dismissed)",
		"SUM(shown_count)",
		"AVG(confidence_score)",
	)
	sb.From("user_recommendations")
	sb.Where(sb.Equal("user_id", userID.String()))
	sb.GroupBy("recommendation_type")
	sb.OrderBy("COUNT(*) DESC")

	query, args := sb.Build()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running strategy stats query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stats := []domain.StrategyStats{}
	for rows.Next() {
		var row domain.StrategyStats
		var strategy string
		if err := rows.Scan(
			&strategy,
			&row.Total,
			&row.Clicked,
			&row.Dismissed,
			&row.TotalShown,
			&row.AvgConfidence,
		); err != nil {
			return nil, fmt.Errorf("scanning strategy stats row: %w", err)
		}
		row.Strategy = domain.Strategy(strategy)
		stats = append(stats, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating strategy stats rows: %w", err)
	}

	return stats, nil
}
