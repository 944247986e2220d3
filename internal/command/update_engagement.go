package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

// ErrInvalidEngagementAction is returned when the requested action is not a
// known engagement action.
var ErrInvalidEngagementAction = errors.New("invalid engagement action")

// UpdateRecommendationEngagementRequest is the request for the UpdateRecommendationEngagement command.
type UpdateRecommendationEngagementRequest struct {
	UserID uuid.UUID
	Ref    domain.ContentRef
	Action domain.EngagementAction
}

// UpdateRecommendationEngagement records a click or dismissal against one of
// the user's stored recommendations. Updating content the user has no
// recommendation for is a no-op, not an error.
type UpdateRecommendationEngagement struct {
	Updater datasources.RecommendationEngagementUpdater
}

// NewUpdateRecommendationEngagement creates a properly initialized UpdateRecommendationEngagement command.
func NewUpdateRecommendationEngagement(
	updater datasources.RecommendationEngagementUpdater,
) *UpdateRecommendationEngagement {
	return &UpdateRecommendationEngagement{Updater: updater}
}

// Execute validates the action and applies it.
func (c *UpdateRecommendationEngagement) Execute(
	ctx context.Context, req UpdateRecommendationEngagementRequest,
) (Empty, error) {
	switch req.Action {
	case domain.EngagementActionClicked, domain.EngagementActionDismissed:
	default:
		return Empty{}, fmt.Errorf("%w: %q", ErrInvalidEngagementAction, req.Action)
	}

	if err := c.Updater.UpdateRecommendationEngagement(ctx, req.UserID, req.Ref, req.Action); err != nil {
		return Empty{}, fmt.Errorf("updating recommendation engagement: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "updated recommendation engagement",
		"content_type", req.Ref.Type, "content_id", req.Ref.ID, "action", req.Action)

	return Empty{}, nil
}
