package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/narravia/content-recommendations/internal/command"
	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/transport/web/controller"
)

const rssFeedItemLimit = 50

func MakeRouter(
	registry datasources.ContentRegistry,
	recommendations datasources.RecommendationStore,
	generateCmd *command.GenerateRecommendations,
	engagementCmd command.Command[command.UpdateRecommendationEngagementRequest, command.Empty],
	generateAllCmd command.Command[command.GenerateAllRecommendationsRequest, command.GenerateAllRecommendationsResult],
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail, contentBaseURL string,
	latestCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/recommendations", requireAuthMiddleware(controller.RecommendationsList{
		Command: generateCmd,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/recommendations/current", requireAuthMiddleware(controller.CurrentRecommendationsList{
		Lister: recommendations,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/recommendations/engagement", requireAuthMiddleware(controller.RecommendationEngagementSet{
		Command: engagementCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/recommendations/stats", requireAuthMiddleware(controller.RecommendationStatsList{
		Lister: recommendations,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/admin/recommendations/generate", requireAuthMiddleware(controller.RecommendationsGenerateBulk{
		Command: generateAllCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/rss/latest", controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss/latest",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		ContentBaseURL:  contentBaseURL,
		Registry:        registry,
		ItemLimit:       rssFeedItemLimit,
		CacheMaxAge:     latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
