package command

import (
	"context"
	"fmt"
	"time"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

// CleanupExpiredRecommendationsRequest is the request for the CleanupExpiredRecommendations command.
// This command takes no parameters beyond context.
type CleanupExpiredRecommendationsRequest struct{}

// CleanupExpiredRecommendationsResult reports how many rows the sweep removed.
type CleanupExpiredRecommendationsResult struct {
	Deleted int64
}

// CleanupExpiredRecommendations deletes every recommendation whose expiry
// has passed, across all users.
type CleanupExpiredRecommendations struct {
	Deleter datasources.ExpiredRecommendationsDeleter
}

// NewCleanupExpiredRecommendations creates a properly initialized CleanupExpiredRecommendations command.
func NewCleanupExpiredRecommendations(
	deleter datasources.ExpiredRecommendationsDeleter,
) *CleanupExpiredRecommendations {
	return &CleanupExpiredRecommendations{Deleter: deleter}
}

// Execute runs the global expiry sweep.
func (c *CleanupExpiredRecommendations) Execute(
	ctx context.Context, _ CleanupExpiredRecommendationsRequest,
) (CleanupExpiredRecommendationsResult, error) {
	deleted, err := c.Deleter.DeleteExpiredRecommendations(ctx, time.Now())
	if err != nil {
		return CleanupExpiredRecommendationsResult{}, fmt.Errorf("deleting expired recommendations: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "expired recommendations cleaned up", "deleted_count", deleted)

	return CleanupExpiredRecommendationsResult{Deleted: deleted}, nil
}
