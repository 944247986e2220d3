package command

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/narravia/content-recommendations/internal/datasources/mocks"
	"github.com/narravia/content-recommendations/internal/domain"
)

func TestUpdateRecommendationEngagement_Execute(t *testing.T) {
	userID := uuid.New()
	ref := domain.ContentRef{Type: domain.ContentTypeFilm, ID: uuid.New()}

	cases := []struct {
		name   string
		action domain.EngagementAction
	}{
		{name: "clicked", action: domain.EngagementActionClicked},
		{name: "dismissed", action: domain.EngagementActionDismissed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			updater := mocks.NewMockRecommendationEngagementUpdater(t)
			updater.EXPECT().
				UpdateRecommendationEngagement(mock.Anything, userID, ref, tc.action).
				Return(nil)

			sut := NewUpdateRecommendationEngagement(updater)

			_, err := sut.Execute(context.Background(), UpdateRecommendationEngagementRequest{
				UserID: userID,
				Ref:    ref,
				Action: tc.action,
			})

			require.NoError(t, err)
		})
	}
}

func TestUpdateRecommendationEngagement_Execute_InvalidAction(t *testing.T) {
	updater := mocks.NewMockRecommendationEngagementUpdater(t)

	sut := NewUpdateRecommendationEngagement(updater)

	_, err := sut.Execute(context.Background(), UpdateRecommendationEngagementRequest{
		UserID: uuid.New(),
		Ref:    domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()},
		Action: domain.EngagementAction("shared"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEngagementAction)
}

func TestUpdateRecommendationEngagement_Execute_StoreError(t *testing.T) {
	userID := uuid.New()
	ref := domain.ContentRef{Type: domain.ContentTypePodcast, ID: uuid.New()}

	updater := mocks.NewMockRecommendationEngagementUpdater(t)
	updater.EXPECT().
		UpdateRecommendationEngagement(mock.Anything, userID, ref, domain.EngagementActionClicked).
		Return(errors.New("database error"))

	sut := NewUpdateRecommendationEngagement(updater)

	_, err := sut.Execute(context.Background(), UpdateRecommendationEngagementRequest{
		UserID: userID,
		Ref:    ref,
		Action: domain.EngagementActionClicked,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "updating recommendation engagement")
}
