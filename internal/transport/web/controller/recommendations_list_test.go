package controller

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narravia/content-recommendations/internal/command"
	"github.com/narravia/content-recommendations/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID uuid.UUID) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

// fakeGenerator records the request it was invoked with and returns canned
// recommendations.
type fakeGenerator struct {
	gotReq command.GenerateRecommendationsRequest
	called bool
	recs   []domain.Recommendation
}

func (f *fakeGenerator) Execute(
	_ context.Context, req command.GenerateRecommendationsRequest,
) []domain.Recommendation {
	f.gotReq = req
	f.called = true
	return f.recs
}

func TestRecommendationsList_ServeHTTP(t *testing.T) {
	userID := uuid.New()

	trendingRec := domain.Recommendation{
		ContentRef: domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()},
		Strategy:   domain.StrategyTrending,
		Confidence: 0.9,
		Reason:     "Trending story with high engagement",
	}
	similarRec := domain.Recommendation{
		ContentRef: domain.ContentRef{Type: domain.ContentTypeFilm, ID: uuid.New()},
		Strategy:   domain.StrategySimilar,
		Confidence: 0.8,
		Reason:     "Similar to 'Some Film' which you liked",
	}

	cases := []struct {
		name         string
		queryString  string
		setupContext func(r *http.Request) *http.Request
		recs         []domain.Recommendation
		wantStatus   int
		wantLimit    int
		wantRecs     []domain.Recommendation
	}{
		{
			name:         "successful_generation",
			setupContext: testContextWithUserID(userID),
			recs:         []domain.Recommendation{trendingRec, similarRec},
			wantStatus:   http.StatusOK,
			wantLimit:    20,
			wantRecs:     []domain.Recommendation{trendingRec, similarRec},
		},
		{
			name:         "custom_limit",
			queryString:  "limit=5",
			setupContext: testContextWithUserID(userID),
			recs:         []domain.Recommendation{trendingRec},
			wantStatus:   http.StatusOK,
			wantLimit:    5,
			wantRecs:     []domain.Recommendation{trendingRec},
		},
		{
			name:         "empty_result",
			setupContext: testContextWithUserID(userID),
			recs:         nil,
			wantStatus:   http.StatusOK,
			wantLimit:    20,
			wantRecs:     []domain.Recommendation{},
		},
		{
			name:         "no_user_id_unauthorized",
			setupContext: testContext(),
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "invalid_limit",
			queryString:  "limit=invalid",
			setupContext: testContextWithUserID(userID),
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "limit_exceeds_maximum",
			queryString:  "limit=500",
			setupContext: testContextWithUserID(userID),
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "zero_limit",
			queryString:  "limit=0",
			setupContext: testContextWithUserID(userID),
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			generator := &fakeGenerator{recs: tc.recs}

			sut := RecommendationsList{Command: generator}

			req := httptest.NewRequest(http.MethodGet, "/v1/recommendations?"+tc.queryString, nil)
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			sut.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus != http.StatusOK {
				assert.False(t, generator.called)
				return
			}

			assert.Equal(t, command.GenerateRecommendationsRequest{
				UserID: userID,
				Limit:  tc.wantLimit,
			}, generator.gotReq)

			var response RecommendationsListResponse
			err := json.NewDecoder(rec.Body).Decode(&response)
			require.NoError(t, err)

			assert.True(t, response.Success)
			assert.Equal(t, tc.wantRecs, response.Recommendations)
			assert.Equal(t, len(tc.wantRecs), response.TotalCount)

			for _, want := range tc.wantRecs {
				assert.Contains(t, response.GroupedRecommendations[want.Strategy], want)
			}
		})
	}
}

func TestRecommendationsList_ServeHTTP_GroupsByStrategy(t *testing.T) {
	userID := uuid.New()

	storyA := domain.Recommendation{
		ContentRef: domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()},
		Strategy:   domain.StrategyTrending,
		Confidence: 0.9,
	}
	storyB := domain.Recommendation{
		ContentRef: domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()},
		Strategy:   domain.StrategyTrending,
		Confidence: 0.7,
	}
	film := domain.Recommendation{
		ContentRef: domain.ContentRef{Type: domain.ContentTypeFilm, ID: uuid.New()},
		Strategy:   domain.StrategyGenreBased,
		Confidence: 0.8,
	}

	generator := &fakeGenerator{recs: []domain.Recommendation{storyA, film, storyB}}

	sut := RecommendationsList{Command: generator}

	req := httptest.NewRequest(http.MethodGet, "/v1/recommendations", nil)
	req = testContextWithUserID(userID)(req)
	rec := httptest.NewRecorder()

	sut.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response RecommendationsListResponse
	err := json.NewDecoder(rec.Body).Decode(&response)
	require.NoError(t, err)

	assert.Equal(t, map[domain.Strategy][]domain.Recommendation{
		domain.StrategyTrending:   {storyA, storyB},
		domain.StrategyGenreBased: {film},
	}, response.GroupedRecommendations)
	assert.Equal(t, 3, response.TotalCount)
}
