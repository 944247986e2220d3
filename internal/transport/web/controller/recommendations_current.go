package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

// CurrentRecommendationsList returns the authenticated user's stored
// recommendations that are still current, without regenerating anything.
type CurrentRecommendationsList struct {
	Lister datasources.CurrentRecommendationsLister
}

type CurrentRecommendationsResponse struct {
	Success                bool                                                 `json:"success"`
	Recommendations        []domain.PersistedRecommendation                     `json:"recommendations"`
	GroupedRecommendations map[domain.Strategy][]domain.PersistedRecommendation `json:"grouped_recommendations"`
	TotalCount             int                                                  `json:"total_count"`
}

func (c CurrentRecommendationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	recs, err := c.Lister.ListCurrentRecommendations(ctx, userID, time.Now(), limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list current recommendations", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if recs == nil {
		recs = []domain.PersistedRecommendation{}
	}

	grouped := make(map[domain.Strategy][]domain.PersistedRecommendation)
	for _, rec := range recs {
		grouped[rec.Strategy] = append(grouped[rec.Strategy], rec)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(CurrentRecommendationsResponse{
		Success:                true,
		Recommendations:        recs,
		GroupedRecommendations: grouped,
		TotalCount:             len(recs),
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write current recommendations to response", "error", err)
	}
}
