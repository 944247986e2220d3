package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/narravia/content-recommendations/internal/command"
	"github.com/narravia/content-recommendations/internal/datasources/mysql"
	"github.com/narravia/content-recommendations/internal/transport/web/router"
	"github.com/narravia/content-recommendations/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}

	registry := mysql.NewContentRegistry(db)
	interactions := mysql.NewInteractionRepository(db)
	recommendations := mysql.NewRecommendationStore(db)
	users := mysql.NewUserRepository(db)

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	generateCmd := command.NewGenerateRecommendations(
		DefaultStrategies(registry, interactions),
		interactions,
		interactions,
		recommendations,
		recommendations,
		command.NewPopularFallback(registry),
		DefaultGenerateRecommendationsConfig(),
	)

	engagementCmd := command.NewUpdateRecommendationEngagement(recommendations)

	generateAllCmd := command.NewGenerateAllRecommendations(
		users,
		generateCmd,
		DefaultGenerateAllRecommendationsConfig(),
	)

	httpRouter, err := router.MakeRouter(
		registry,
		recommendations,
		generateCmd,
		engagementCmd,
		generateAllCmd,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsString(ctx, "CONTENT_BASE_URL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_LATEST_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
