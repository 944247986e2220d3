package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/narravia/content-recommendations/internal/app"
	"github.com/narravia/content-recommendations/internal/command"
	"github.com/narravia/content-recommendations/internal/datasources/mysql"
	"github.com/narravia/content-recommendations/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	// Setup logger
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "recommendation generation failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "recommendation generation completed successfully")
}

func run(ctx context.Context) error {
	// Connect to MySQL
	mysqlURI := os.Getenv("MYSQL_URI")
	if mysqlURI == "" {
		return fmt.Errorf("MYSQL_URI environment variable is required")
	}

	db, err := mysql.Connect(ctx, mysqlURI)
	if err != nil {
		return fmt.Errorf("connecting to MySQL: %w", err)
	}
	defer func() { _ = db.Close() }()

	registry := mysql.NewContentRegistry(db)
	interactions := mysql.NewInteractionRepository(db)
	recommendations := mysql.NewRecommendationStore(db)
	users := mysql.NewUserRepository(db)

	// Create the per-user generation command (actual scoring logic)
	generateCmd := command.NewGenerateRecommendations(
		app.DefaultStrategies(registry, interactions),
		interactions,
		interactions,
		recommendations,
		recommendations,
		command.NewPopularFallback(registry),
		app.DefaultGenerateRecommendationsConfig(),
	)

	// Create the batch runner covering every recently active user
	generateAllCmd := command.NewGenerateAllRecommendations(
		users,
		generateCmd,
		app.DefaultGenerateAllRecommendationsConfig(),
	)

	// Execute generation, then sweep out expired rows
	if _, err := generateAllCmd.Execute(ctx, command.GenerateAllRecommendationsRequest{}); err != nil {
		return err
	}

	cleanupCmd := command.NewCleanupExpiredRecommendations(recommendations)
	if _, err := cleanupCmd.Execute(ctx, command.CleanupExpiredRecommendationsRequest{}); err != nil {
		return fmt.Errorf("cleaning up expired recommendations: %w", err)
	}

	return nil
}
