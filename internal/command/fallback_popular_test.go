package command

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/datasources/mocks"
	"github.com/narravia/content-recommendations/internal/domain"
)

func TestPopularFallback_Recommendations(t *testing.T) {
	storyRef := domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()}

	storyRepo := mocks.NewMockContentRepository(t)
	storyRepo.EXPECT().
		ListContent(mock.Anything,
			domain.ContentFilters{Status: domain.ContentStatusPublished},
			domain.ContentListOptions{
				Ordering: []domain.ContentOrdering{
					{Field: domain.ContentOrderingFieldViewCount, Desc: true},
				},
				Limit: 2,
			}).
		Return([]domain.ContentSummary{
			{ContentRef: storyRef, Title: "Blockbuster", ViewCount: 50000},
		}, nil)

	filmRepo := mocks.NewMockContentRepository(t)
	filmRepo.EXPECT().
		ListContent(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection timeout"))

	sut := NewPopularFallback(datasources.ContentRegistry{
		domain.ContentTypeStory: storyRepo,
		domain.ContentTypeFilm:  filmRepo,
	})

	recs := sut.Recommendations(context.Background(), 10)

	require.Len(t, recs, 1)
	assert.Equal(t, storyRef, recs[0].ContentRef)
	assert.Equal(t, domain.StrategyPopular, recs[0].Strategy)
	assert.InDelta(t, 0.5, recs[0].Confidence, 0.0001)
	assert.Equal(t, "Popular story content", recs[0].Reason)
}

func TestPopularFallback_Recommendations_TruncatesToLimit(t *testing.T) {
	summaries := []domain.ContentSummary{
		{ContentRef: domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()}, Title: "A"},
		{ContentRef: domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()}, Title: "B"},
	}

	storyRepo := mocks.NewMockContentRepository(t)
	storyRepo.EXPECT().
		ListContent(mock.Anything, mock.Anything, mock.Anything).
		Return(summaries, nil)

	sut := NewPopularFallback(datasources.ContentRegistry{
		domain.ContentTypeStory: storyRepo,
	})

	assert.Len(t, sut.Recommendations(context.Background(), 1), 1)
}
