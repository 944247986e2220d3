package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

func TestContentRepository_ListContent(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	authorID := uuid.New()
	drama := domain.ContentSummary{
		ContentRef: domain.ContentRef{Type: domain.ContentTypeFilm, ID: uuid.New()},
		Title:      "Quiet Harbour",
		Category:   stringPtr("drama"),
		AuthorID:   uuidPtr(authorID),
		Status:     domain.ContentStatusPublished,
		ViewCount:  4000,
		LikeCount:  3000,
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	thriller := domain.ContentSummary{
		ContentRef: domain.ContentRef{Type: domain.ContentTypeFilm, ID: uuid.New()},
		Title:      "Redline",
		Category:   stringPtr("thriller"),
		Status:     domain.ContentStatusPublished,
		ViewCount:  9000,
		LikeCount:  100,
		CreatedAt:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
	draft := domain.ContentSummary{
		ContentRef: domain.ContentRef{Type: domain.ContentTypeFilm, ID: uuid.New()},
		Title:      "Unreleased Cut",
		Category:   stringPtr("drama"),
		Status:     domain.ContentStatusDraft,
		ViewCount:  50000,
		CreatedAt:  time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC),
	}
	insertTestContent(t, db, drama)
	insertTestContent(t, db, thriller)
	insertTestContent(t, db, draft)

	sut := NewContentRepository(db, domain.ContentTypeFilm)

	cases := []struct {
		name     string
		filters  domain.ContentFilters
		options  domain.ContentListOptions
		expected []domain.ContentSummary
	}{
		{
			name:    "published_only_newest_first",
			filters: domain.ContentFilters{Status: domain.ContentStatusPublished},
			options: domain.ContentListOptions{},
			expected: []domain.ContentSummary{
				thriller, drama,
			},
		},
		{
			name: "category_filter",
			filters: domain.ContentFilters{
				Status:   domain.ContentStatusPublished,
				Category: "drama",
			},
			options:  domain.ContentListOptions{},
			expected: []domain.ContentSummary{drama},
		},
		{
			name: "author_filter",
			filters: domain.ContentFilters{
				Status:   domain.ContentStatusPublished,
				AuthorID: uuidPtr(authorID),
			},
			options:  domain.ContentListOptions{},
			expected: []domain.ContentSummary{drama},
		},
		{
			name: "created_after_filter",
			filters: domain.ContentFilters{
				Status:       domain.ContentStatusPublished,
				CreatedAfter: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			},
			options:  domain.ContentListOptions{},
			expected: []domain.ContentSummary{thriller},
		},
		{
			name: "exclude_ids",
			filters: domain.ContentFilters{
				Status:     domain.ContentStatusPublished,
				ExcludeIDs: []uuid.UUID{thriller.ID},
			},
			options:  domain.ContentListOptions{},
			expected: []domain.ContentSummary{drama},
		},
		{
			name:    "view_count_ordering",
			filters: domain.ContentFilters{Status: domain.ContentStatusPublished},
			options: domain.ContentListOptions{
				Ordering: []domain.ContentOrdering{
					{Field: domain.ContentOrderingFieldViewCount, Desc: true},
				},
			},
			expected: []domain.ContentSummary{thriller, drama},
		},
		{
			name:    "engagement_ordering_weighs_likes_double",
			filters: domain.ContentFilters{Status: domain.ContentStatusPublished},
			options: domain.ContentListOptions{
				Ordering: []domain.ContentOrdering{
					{Field: domain.ContentOrderingFieldEngagement, Desc: true},
				},
			},
			// drama: 4000 + 2*3000 = 10000; thriller: 9000 + 2*100 = 9200
			expected: []domain.ContentSummary{drama, thriller},
		},
		{
			name:    "limit_applied",
			filters: domain.ContentFilters{Status: domain.ContentStatusPublished},
			options: domain.ContentListOptions{Limit: 1},
			expected: []domain.ContentSummary{
				thriller,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := sut.ListContent(context.Background(), tc.filters, tc.options)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, results)
		})
	}
}

func TestContentRepository_FetchContentByID(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	podcast := domain.ContentSummary{
		ContentRef: domain.ContentRef{Type: domain.ContentTypePodcast, ID: uuid.New()},
		Title:      "Night Frequencies",
		Category:   stringPtr("technology"),
		Status:     domain.ContentStatusPublished,
		ViewCount:  120,
		LikeCount:  30,
		CreatedAt:  time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC),
	}
	insertTestContent(t, db, podcast)

	sut := NewContentRepository(db, domain.ContentTypePodcast)

	t.Run("found", func(t *testing.T) {
		got, err := sut.FetchContentByID(context.Background(), podcast.ContentRef)
		require.NoError(t, err)
		assert.Equal(t, podcast, got)
	})

	t.Run("not_found", func(t *testing.T) {
		missing := domain.ContentRef{Type: domain.ContentTypePodcast, ID: uuid.New()}
		_, err := sut.FetchContentByID(context.Background(), missing)
		assert.ErrorIs(t, err, datasources.ErrNotFound)
	})
}
