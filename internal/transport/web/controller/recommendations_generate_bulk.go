package controller

import (
	"encoding/json"
	"net/http"

	"github.com/narravia/content-recommendations/internal/command"
	"github.com/narravia/content-recommendations/internal/domain"
)

// RecommendationsGenerateBulk triggers the batch regeneration inline, the
// same run the scheduled binary performs.
type RecommendationsGenerateBulk struct {
	Command command.Command[command.GenerateAllRecommendationsRequest, command.GenerateAllRecommendationsResult]
}

type RecommendationsGenerateBulkResponse struct {
	Success   bool `json:"success"`
	Processed int  `json:"processed"`
	Succeeded int  `json:"succeeded"`
}

func (c RecommendationsGenerateBulk) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	result, err := c.Command.Execute(ctx, command.GenerateAllRecommendationsRequest{})
	if err != nil {
		logger.ErrorContext(ctx, "bulk recommendation generation failed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RecommendationsGenerateBulkResponse{
		Success:   true,
		Processed: result.Processed,
		Succeeded: result.Succeeded,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write bulk generation result to response", "error", err)
	}
}
