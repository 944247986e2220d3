package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/datasources/mocks"
	"github.com/narravia/content-recommendations/internal/domain"
)

func TestNewContentStrategy_Candidates(t *testing.T) {
	storyRef := domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()}

	storyRepo := mocks.NewMockContentRepository(t)
	storyRepo.EXPECT().
		ListContent(mock.Anything,
			mock.MatchedBy(func(f domain.ContentFilters) bool {
				return f.Status == domain.ContentStatusPublished && !f.CreatedAfter.IsZero()
			}),
			domain.ContentListOptions{
				Ordering: []domain.ContentOrdering{
					{Field: domain.ContentOrderingFieldCreatedAt, Desc: true},
				},
				Limit: 2,
			}).
		Return([]domain.ContentSummary{
			{ContentRef: storyRef, Title: "Fresh Story"},
		}, nil)

	filmRepo := mocks.NewMockContentRepository(t)
	filmRepo.EXPECT().
		ListContent(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection timeout"))

	sut := NewNewContentStrategy(datasources.ContentRegistry{
		domain.ContentTypeStory: storyRepo,
		domain.ContentTypeFilm:  filmRepo,
	}, 3*24*time.Hour)

	recs, err := sut.Candidates(context.Background(), uuid.New(), 10)

	require.NoError(t, err)
	require.Len(t, recs, 1)

	assert.Equal(t, storyRef, recs[0].ContentRef)
	assert.Equal(t, domain.StrategyNewContent, recs[0].Strategy)
	assert.InDelta(t, 0.6, recs[0].Confidence, 0.0001)
	assert.Equal(t, "New story just released", recs[0].Reason)
}

func TestNewContentStrategy_Candidates_TruncatesToSubLimit(t *testing.T) {
	summaries := []domain.ContentSummary{
		{ContentRef: domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()}, Title: "A"},
		{ContentRef: domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()}, Title: "B"},
	}

	storyRepo := mocks.NewMockContentRepository(t)
	storyRepo.EXPECT().
		ListContent(mock.Anything, mock.Anything, mock.Anything).
		Return(summaries, nil)

	sut := NewNewContentStrategy(datasources.ContentRegistry{
		domain.ContentTypeStory: storyRepo,
	}, 3*24*time.Hour)

	recs, err := sut.Candidates(context.Background(), uuid.New(), 1)

	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
