package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/narravia/content-recommendations/internal/datasources/mocks"
)

func TestCleanupExpiredRecommendations_Execute(t *testing.T) {
	deleter := mocks.NewMockExpiredRecommendationsDeleter(t)
	deleter.EXPECT().
		DeleteExpiredRecommendations(mock.Anything, mock.MatchedBy(func(now time.Time) bool {
			return time.Since(now) < 5*time.Second
		})).
		Return(int64(42), nil)

	sut := NewCleanupExpiredRecommendations(deleter)

	result, err := sut.Execute(context.Background(), CleanupExpiredRecommendationsRequest{})

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.Deleted)
}

func TestCleanupExpiredRecommendations_Execute_StoreError(t *testing.T) {
	deleter := mocks.NewMockExpiredRecommendationsDeleter(t)
	deleter.EXPECT().
		DeleteExpiredRecommendations(mock.Anything, mock.Anything).
		Return(0, errors.New("database error"))

	sut := NewCleanupExpiredRecommendations(deleter)

	_, err := sut.Execute(context.Background(), CleanupExpiredRecommendationsRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deleting expired recommendations")
}
