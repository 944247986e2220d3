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

func stringPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

func TestSimilarContentStrategy_Candidates(t *testing.T) {
	userID := uuid.New()
	authorID := uuid.New()

	favoriteRef := domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()}
	ratedRef := domain.ContentRef{Type: domain.ContentTypeFilm, ID: uuid.New()}

	favorites := mocks.NewMockFavoriteRefsLister(t)
	favorites.EXPECT().
		ListFavoriteRefs(mock.Anything, userID).
		Return([]domain.ContentRef{favoriteRef}, nil)

	library := mocks.NewMockLibraryEntriesLister(t)
	library.EXPECT().
		ListLibraryEntries(mock.Anything, userID).
		Return([]domain.LibraryEntry{
			{Ref: ratedRef, Rating: intPtr(5), Category: stringPtr("action")},
			{Ref: domain.ContentRef{Type: domain.ContentTypePodcast, ID: uuid.New()}},
		}, nil)

	categoryMatch := domain.ContentSummary{
		ContentRef: domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()},
		Title:      "Another Fantasy",
	}
	authorMatch := domain.ContentSummary{
		ContentRef: domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()},
		Title:      "Same Author",
	}

	storyRepo := mocks.NewMockContentRepository(t)
	storyRepo.EXPECT().
		FetchContentByID(mock.Anything, favoriteRef).
		Return(domain.ContentSummary{
			ContentRef: favoriteRef,
			Title:      "Story F",
			Category:   stringPtr("fantasy"),
			AuthorID:   uuidPtr(authorID),
		}, nil)
	storyRepo.EXPECT().
		ListContent(mock.Anything,
			mock.MatchedBy(func(f domain.ContentFilters) bool {
				return f.Category == "fantasy" && f.AuthorID == nil
			}),
			domain.ContentListOptions{
				Ordering: []domain.ContentOrdering{
					{Field: domain.ContentOrderingFieldViewCount, Desc: true},
				},
				Limit: 6,
			}).
		Return([]domain.ContentSummary{categoryMatch}, nil)
	storyRepo.EXPECT().
		ListContent(mock.Anything,
			mock.MatchedBy(func(f domain.ContentFilters) bool {
				return f.AuthorID != nil && *f.AuthorID == authorID
			}),
			domain.ContentListOptions{
				Ordering: []domain.ContentOrdering{
					{Field: domain.ContentOrderingFieldCreatedAt, Desc: true},
				},
				Limit: 3,
			}).
		Return([]domain.ContentSummary{authorMatch}, nil)

	filmMatch := domain.ContentSummary{
		ContentRef: domain.ContentRef{Type: domain.ContentTypeFilm, ID: uuid.New()},
		Title:      "Another Action Film",
	}

	filmRepo := mocks.NewMockContentRepository(t)
	filmRepo.EXPECT().
		FetchContentByID(mock.Anything, ratedRef).
		Return(domain.ContentSummary{
			ContentRef: ratedRef,
			Title:      "Film L",
			Category:   stringPtr("action"),
		}, nil)
	filmRepo.EXPECT().
		ListContent(mock.Anything,
			mock.MatchedBy(func(f domain.ContentFilters) bool {
				return f.Category == "action"
			}),
			mock.Anything).
		Return([]domain.ContentSummary{filmMatch}, nil)

	sut := NewSimilarContentStrategy(datasources.ContentRegistry{
		domain.ContentTypeStory: storyRepo,
		domain.ContentTypeFilm:  filmRepo,
	}, favorites, library, 4)

	recs, err := sut.Candidates(context.Background(), userID, 10)

	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, categoryMatch.ContentRef, recs[0].ContentRef)
	assert.Equal(t, domain.StrategySimilar, recs[0].Strategy)
	assert.InDelta(t, 0.8, recs[0].Confidence, 0.0001)
	assert.Equal(t, "Similar to 'Story F' which you liked", recs[0].Reason)

	assert.Equal(t, authorMatch.ContentRef, recs[1].ContentRef)
	assert.Equal(t, "Similar to 'Story F' which you liked", recs[1].Reason)

	assert.Equal(t, filmMatch.ContentRef, recs[2].ContentRef)
	assert.Equal(t, "Similar to 'Film L' which you liked", recs[2].Reason)
}

func TestSimilarContentStrategy_Candidates_MissingSeedSkipped(t *testing.T) {
	userID := uuid.New()

	goneRef := domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()}
	liveRef := domain.ContentRef{Type: domain.ContentTypeFilm, ID: uuid.New()}

	favorites := mocks.NewMockFavoriteRefsLister(t)
	favorites.EXPECT().
		ListFavoriteRefs(mock.Anything, userID).
		Return([]domain.ContentRef{goneRef, liveRef}, nil)

	library := mocks.NewMockLibraryEntriesLister(t)
	library.EXPECT().
		ListLibraryEntries(mock.Anything, userID).
		Return(nil, nil)

	storyRepo := mocks.NewMockContentRepository(t)
	storyRepo.EXPECT().
		FetchContentByID(mock.Anything, goneRef).
		Return(domain.ContentSummary{}, datasources.ErrNotFound)

	filmMatch := domain.ContentSummary{
		ContentRef: domain.ContentRef{Type: domain.ContentTypeFilm, ID: uuid.New()},
		Title:      "Match",
	}

	filmRepo := mocks.NewMockContentRepository(t)
	filmRepo.EXPECT().
		FetchContentByID(mock.Anything, liveRef).
		Return(domain.ContentSummary{
			ContentRef: liveRef,
			Title:      "Film L",
			Category:   stringPtr("drama"),
		}, nil)
	filmRepo.EXPECT().
		ListContent(mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.ContentSummary{filmMatch}, nil)

	sut := NewSimilarContentStrategy(datasources.ContentRegistry{
		domain.ContentTypeStory: storyRepo,
		domain.ContentTypeFilm:  filmRepo,
	}, favorites, library, 4)

	recs, err := sut.Candidates(context.Background(), userID, 10)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, filmMatch.ContentRef, recs[0].ContentRef)
}

func TestSimilarContentStrategy_Candidates_NoSeeds(t *testing.T) {
	userID := uuid.New()

	favorites := mocks.NewMockFavoriteRefsLister(t)
	favorites.EXPECT().
		ListFavoriteRefs(mock.Anything, userID).
		Return(nil, nil)

	library := mocks.NewMockLibraryEntriesLister(t)
	library.EXPECT().
		ListLibraryEntries(mock.Anything, userID).
		Return([]domain.LibraryEntry{
			{Ref: domain.ContentRef{Type: domain.ContentTypeStory, ID: uuid.New()}, Rating: intPtr(2)},
		}, nil)

	sut := NewSimilarContentStrategy(datasources.ContentRegistry{}, favorites, library, 4)

	recs, err := sut.Candidates(context.Background(), userID, 10)

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestSimilarContentStrategy_Candidates_FavoritesError(t *testing.T) {
	userID := uuid.New()

	favorites := mocks.NewMockFavoriteRefsLister(t)
	favorites.EXPECT().
		ListFavoriteRefs(mock.Anything, userID).
		Return(nil, errors.New("database error"))

	library := mocks.NewMockLibraryEntriesLister(t)

	sut := NewSimilarContentStrategy(datasources.ContentRegistry{}, favorites, library, 4)

	recs, err := sut.Candidates(context.Background(), userID, 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing favorites")
	assert.Nil(t, recs)
}
