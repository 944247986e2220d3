package controller

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

// RecommendationStatsList reports per-strategy engagement aggregates over
// the authenticated user's stored recommendations.
type RecommendationStatsList struct {
	Lister datasources.StrategyStatsLister
}

type RecommendationStatsResponse struct {
	Success bool                   `json:"success"`
	Stats   []domain.StrategyStats `json:"stats"`
}

func (c RecommendationStatsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == uuid.Nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	stats, err := c.Lister.ListStrategyStats(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list recommendation stats", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if stats == nil {
		stats = []domain.StrategyStats{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RecommendationStatsResponse{
		Success: true,
		Stats:   stats,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write recommendation stats to response", "error", err)
	}
}
