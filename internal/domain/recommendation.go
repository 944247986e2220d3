package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Strategy identifies which scoring strategy produced a recommendation.
type Strategy string

const (
	// StrategyTrending recommends content with high recent engagement.
	StrategyTrending Strategy = "trending"
	// StrategySimilar recommends content matching items the user liked.
	StrategySimilar Strategy = "similar"
	// StrategyGenreBased recommends content from the user's preferred categories.
	StrategyGenreBased Strategy = "genre_based"
	// StrategyCollaborative recommends content enjoyed by users with similar tastes.
	StrategyCollaborative Strategy = "collaborative"
	// StrategyNewContent recommends recently published content.
	StrategyNewContent Strategy = "new_content"
	// StrategyPopular is the fallback strategy based on all-time view counts.
	StrategyPopular Strategy = "popular"
)

// Strategies returns every strategy in canonical order, fallback last.
// Deduplication precedence between strategies follows this order.
func Strategies() []Strategy {
	return []Strategy{
		StrategyTrending,
		StrategySimilar,
		StrategyGenreBased,
		StrategyCollaborative,
		StrategyNewContent,
		StrategyPopular,
	}
}

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyTrending, StrategySimilar, StrategyGenreBased,
		StrategyCollaborative, StrategyNewContent, StrategyPopular:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("invalid recommendation strategy: %s", s)
}

// ClampConfidence bounds a confidence score to [0, 1].
func ClampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Recommendation is one scored candidate produced by a strategy.
type Recommendation struct {
	ContentRef
	Strategy   Strategy `json:"recommendation_type"`
	Confidence float64  `json:"confidence_score"`
	Reason     string   `json:"reason"`
}

// PersistedRecommendation is a stored recommendation row, including the
// engagement counters accumulated after it was generated.
type PersistedRecommendation struct {
	ContentRef
	UserID     uuid.UUID `json:"-"`
	Strategy   Strategy  `json:"recommendation_type"`
	Confidence float64   `json:"confidence_score"`
	Reason     string    `json:"reason"`
	ShownCount int       `json:"shown_count"`
	Clicked    bool      `json:"clicked"`
	Dismissed  bool      `json:"dismissed"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// EngagementAction is a user interaction recorded against a stored recommendation.
type EngagementAction string

const EngagementActionClicked EngagementAction = "clicked"
const EngagementActionDismissed EngagementAction = "dismissed"

func ParseEngagementAction(s string) (EngagementAction, error) {
	switch EngagementAction(s) {
	case EngagementActionClicked, EngagementActionDismissed:
		return EngagementAction(s), nil
	}
	return "", fmt.Errorf("invalid engagement action: %s", s)
}

// StrategyStats aggregates a user's stored recommendations for one strategy.
type StrategyStats struct {
	Strategy      Strategy `json:"recommendation_type"`
	Total         int64    `json:"total"`
	Clicked       int64    `json:"clicked"`
	Dismissed     int64    `json:"dismissed"`
	TotalShown    int64    `json:"total_shown"`
	AvgConfidence float64  `json:"avg_confidence"`
}
