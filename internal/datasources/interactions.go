package datasources

import (
	"context"

	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/domain"
)

// UserInteractionRepository combines all user interaction reads.
type UserInteractionRepository interface {
	FavoriteRefsLister
	LibraryEntriesLister
	RatedRefsLister
	CategoryRatersLister
}

// FavoriteRefsLister lists the content a user has favorited.
type FavoriteRefsLister interface {
	ListFavoriteRefs(ctx context.Context, userID uuid.UUID) ([]domain.ContentRef, error)
}

// LibraryEntriesLister lists a user's library entries joined with each
// item's category.
type LibraryEntriesLister interface {
	ListLibraryEntries(ctx context.Context, userID uuid.UUID) ([]domain.LibraryEntry, error)
}

// RatedRefsLister lists the content a user rated at or above minRating,
// most recently updated first.
type RatedRefsLister interface {
	ListRatedRefs(
		ctx context.Context,
		userID uuid.UUID,
		minRating int,
		limit int,
	) ([]domain.ContentRef, error)
}

// CategoryRatersLister lists users other than excludeUserID who rated
// content in the given category at or above minRating.
type CategoryRatersLister interface {
	ListCategoryRaterIDs(
		ctx context.Context,
		category string,
		minRating int,
		excludeUserID uuid.UUID,
		limit int,
	) ([]uuid.UUID, error)
}
