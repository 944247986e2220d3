package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		expected  Strategy
		expectErr bool
	}{
		{name: "trending", input: "trending", expected: StrategyTrending},
		{name: "similar", input: "similar", expected: StrategySimilar},
		{name: "genre_based", input: "genre_based", expected: StrategyGenreBased},
		{name: "collaborative", input: "collaborative", expected: StrategyCollaborative},
		{name: "new_content", input: "new_content", expected: StrategyNewContent},
		{name: "popular", input: "popular", expected: StrategyPopular},
		{name: "unknown_rejected", input: "ai_curated", expectErr: true},
		{name: "empty_rejected", input: "", expectErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStrategy(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestStrategiesCanonicalOrder(t *testing.T) {
	assert.Equal(t, []Strategy{
		StrategyTrending,
		StrategySimilar,
		StrategyGenreBased,
		StrategyCollaborative,
		StrategyNewContent,
		StrategyPopular,
	}, Strategies())
}

func TestClampConfidence(t *testing.T) {
	cases := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "below_zero_clamped", input: -0.5, expected: 0},
		{name: "zero_unchanged", input: 0, expected: 0},
		{name: "mid_unchanged", input: 0.65, expected: 0.65},
		{name: "one_unchanged", input: 1, expected: 1},
		{name: "above_one_clamped", input: 1.3, expected: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClampConfidence(tc.input))
		})
	}
}

func TestParseEngagementAction(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		expected  EngagementAction
		expectErr bool
	}{
		{name: "clicked", input: "clicked", expected: EngagementActionClicked},
		{name: "dismissed", input: "dismissed", expected: EngagementActionDismissed},
		{name: "shown_rejected", input: "shown", expectErr: true},
		{name: "empty_rejected", input: "", expectErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseEngagementAction(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
