package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/command"
	"github.com/narravia/content-recommendations/internal/domain"
)

// RecommendationEngagementSet records a click or dismissal against one of
// the authenticated user's stored recommendations.
type RecommendationEngagementSet struct {
	Command command.Command[command.UpdateRecommendationEngagementRequest, command.Empty]
}

type RecommendationEngagementRequest struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
	Action      string `json:"action"`
}

func (c RecommendationEngagementSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == uuid.Nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var body RecommendationEngagementRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode engagement request body", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	contentType, err := domain.ParseContentType(body.ContentType)
	if err != nil {
		logger.ErrorContext(ctx, "invalid content type in engagement request", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	contentID, err := uuid.Parse(body.ContentID)
	if err != nil {
		logger.ErrorContext(ctx, "invalid content ID in engagement request", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ctx = domain.ContextWithLogger(ctx, logger.With(
		"content_type", contentType, "content_id", contentID))

	_, err = c.Command.Execute(ctx, command.UpdateRecommendationEngagementRequest{
		UserID: userID,
		Ref:    domain.ContentRef{Type: contentType, ID: contentID},
		Action: domain.EngagementAction(body.Action),
	})
	if errors.Is(err, command.ErrInvalidEngagementAction) {
		logger.ErrorContext(ctx, "invalid action in engagement request", "action", body.Action)

		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to update recommendation engagement", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
