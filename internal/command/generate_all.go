package command

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

// GenerateAllRecommendationsRequest is the request for the GenerateAllRecommendations command.
// This command takes no parameters beyond context.
type GenerateAllRecommendationsRequest struct{}

// GenerateAllRecommendationsResult reports how the batch run went.
type GenerateAllRecommendationsResult struct {
	// Processed is how many active users the run attempted.
	Processed int

	// Succeeded is how many users ended up with at least one recommendation.
	Succeeded int
}

// GenerateAllRecommendationsConfig holds configuration for batch recommendation generation.
type GenerateAllRecommendationsConfig struct {
	// ActiveWindow selects users whose last login falls within it.
	ActiveWindow time.Duration

	// Limit is the number of recommendations to generate per user.
	Limit int

	// Concurrency caps how many users generate at once.
	Concurrency int
}

// GenerateAllRecommendations handles background generation of recommendations
// for every recently active user.
type GenerateAllRecommendations struct {
	ActiveUsers     datasources.ActiveUserIDsLister
	GenerateCommand *GenerateRecommendations
	Config          GenerateAllRecommendationsConfig
}

// NewGenerateAllRecommendations creates a properly initialized GenerateAllRecommendations command.
func NewGenerateAllRecommendations(
	activeUsers datasources.ActiveUserIDsLister,
	generateCommand *GenerateRecommendations,
	config GenerateAllRecommendationsConfig,
) *GenerateAllRecommendations {
	return &GenerateAllRecommendations{
		ActiveUsers:     activeUsers,
		GenerateCommand: generateCommand,
		Config:          config,
	}
}

// Execute generates recommendations for all recently active users. Users are
// processed in a bounded pool; one user coming up empty never stops the run.
// A user counts as succeeded when generation produced at least one
// recommendation for them.
func (c *GenerateAllRecommendations) Execute(
	ctx context.Context, _ GenerateAllRecommendationsRequest,
) (GenerateAllRecommendationsResult, error) {
	logger := domain.LoggerFromContext(ctx)

	activeSince := time.Now().Add(-c.Config.ActiveWindow)
	userIDs, err := c.ActiveUsers.ListActiveUserIDs(ctx, activeSince)
	if err != nil {
		return GenerateAllRecommendationsResult{}, fmt.Errorf("listing active users: %w", err)
	}

	if len(userIDs) == 0 {
		logger.InfoContext(ctx, "no active users to generate recommendations for")
		return GenerateAllRecommendationsResult{}, nil
	}

	logger.InfoContext(ctx, "starting recommendation generation",
		"user_count", len(userIDs))

	succeeded := make([]bool, len(userIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Config.Concurrency)

	for i, userID := range userIDs {
		i, userID := i, userID
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			recs := c.GenerateCommand.Execute(gctx, GenerateRecommendationsRequest{
				UserID: userID,
				Limit:  c.Config.Limit,
			})
			succeeded[i] = len(recs) > 0

			if !succeeded[i] {
				logger.DebugContext(gctx, "no recommendations generated for user",
					"user_id", userID)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return GenerateAllRecommendationsResult{}, fmt.Errorf("generating recommendations: %w", err)
	}

	result := GenerateAllRecommendationsResult{Processed: len(userIDs)}
	for _, ok := range succeeded {
		if ok {
			result.Succeeded++
		}
	}

	logger.InfoContext(ctx, "recommendation generation complete",
		"success_count", result.Succeeded, "fail_count", result.Processed-result.Succeeded)

	return result, nil
}
