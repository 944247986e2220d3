package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/command"
	"github.com/narravia/content-recommendations/internal/domain"
)

// RecommendationGenerator is the engine entry point the list handler calls.
// Execute returns no error; the engine falls back internally.
type RecommendationGenerator interface {
	Execute(ctx context.Context, req command.GenerateRecommendationsRequest) []domain.Recommendation
}

// RecommendationsList generates a fresh set of recommendations for the
// authenticated user and returns them immediately.
type RecommendationsList struct {
	Command RecommendationGenerator
}

type RecommendationsListResponse struct {
	Success                bool                                        `json:"success"`
	Recommendations        []domain.Recommendation                     `json:"recommendations"`
	GroupedRecommendations map[domain.Strategy][]domain.Recommendation `json:"grouped_recommendations"`
	TotalCount             int                                         `json:"total_count"`
}

func (c RecommendationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == uuid.Nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse limit in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	recs := c.Command.Execute(ctx, command.GenerateRecommendationsRequest{
		UserID: userID,
		Limit:  limit,
	})

	if recs == nil {
		recs = []domain.Recommendation{}
	}

	grouped := make(map[domain.Strategy][]domain.Recommendation)
	for _, rec := range recs {
		grouped[rec.Strategy] = append(grouped[rec.Strategy], rec)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RecommendationsListResponse{
		Success:                true,
		Recommendations:        recs,
		GroupedRecommendations: grouped,
		TotalCount:             len(recs),
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write recommendations to response", "error", err)
	}
}
