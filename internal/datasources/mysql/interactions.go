package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

// catalogProjection is a UNION ALL projecting (content_type, id, category)
// across all catalog tables, for joining interaction rows to their content.
var catalogProjection = func() string {
	selects := make([]string, 0, len(contentTables))
	for _, contentType := range domain.ContentTypes() {
		selects = append(selects, fmt.Sprintf(
			"SELECT '%s' AS content_type, id, category FROM %s",
			contentType, contentTables[contentType],
		))
	}
	return strings.Join(selects, " UNION ALL ")
}()

var listLibraryEntriesQuery = `
SELECT l.content_type, l.content_id, l.rating, c.category
FROM user_library l
LEFT JOIN (` + catalogProjection + `) c
	ON c.content_type = l.content_type AND c.id = l.content_id
WHERE l.user_id = ?
ORDER BY l.updated_at DESC`

var listCategoryRaterIDsQuery = `
SELECT DISTINCT l.user_id
FROM user_library l
JOIN (` + catalogProjection + `) c
	ON c.content_type = l.content_type AND c.id = l.content_id
WHERE c.category = ? AND l.rating >= ? AND l.user_id <> ?
LIMIT ?`

var _ datasources.UserInteractionRepository = (*InteractionRepository)(nil)

// InteractionRepository reads user favorites and library rows.
type InteractionRepository struct {
	db *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

func (r *InteractionRepository) ListFavoriteRefs(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.ContentRef, error) {
	sb := sqlbuilder.Select("content_type", "content_id")
	sb.From("user_favorites")
	sb.Distinct()
	sb.Where(sb.Equal("user_id", userID.String()))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running favorites query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	refs := []domain.ContentRef{}
	for rows.Next() {
		var contentType, contentID string
		if err := rows.Scan(&contentType, &contentID); err != nil {
			return nil, fmt.Errorf("scanning favorite row: %w", err)
		}

		ref, err := parseContentRef(contentType, contentID)
		if err != nil {
			return nil, fmt.Errorf("reading favorite: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating favorite rows: %w", err)
	}

	return refs, nil
}

func (r *InteractionRepository) ListLibraryEntries(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.LibraryEntry, error) {
	rows, err := r.db.QueryContext(ctx, listLibraryEntriesQuery, userID.String())
	if err != nil {
		return nil, fmt.Errorf("running library query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []domain.LibraryEntry{}
	for rows.Next() {
		var (
			contentType string
			contentID   string
			rating      sql.NullInt64
			category    sql.NullString
		)
		if err := rows.Scan(&contentType, &contentID, &rating, &category); err != nil {
			return nil, fmt.Errorf("scanning library row: %w", err)
		}

		ref, err := parseContentRef(contentType, contentID)
		if err != nil {
			return nil, fmt.Errorf("reading library entry: %w", err)
		}

		entry := domain.LibraryEntry{Ref: ref}
		if rating.Valid {
			value := int(rating.Int64)
			entry.Rating = &value
		}
		if category.Valid {
			entry.Category = &category.String
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating library rows: %w", err)
	}

	return entries, nil
}

func (r *InteractionRepository) ListRatedRefs(
	ctx context.Context,
	userID uuid.UUID,
	minRating int,
	limit int,
) ([]domain.ContentRef, error) {
	sb := sqlbuilder.Select("content_type", "content_id")
	sb.From("user_library")
	sb.Where(
		sb.Equal("user_id", userID.String()),
		sb.GreaterEqualThan("rating", minRating),
	)
	sb.OrderBy("updated_at DESC")
	if limit > 0 {
		sb.Limit(limit)
	}

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running rated refs query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	refs := []domain.ContentRef{}
	for rows.Next() {
		var contentType, contentID string
		if err := rows.Scan(&contentType, &contentID); err != nil {
			return nil, fmt.Errorf("scanning rated ref row: %w", err)
		}

		ref, err := parseContentRef(contentType, contentID)
		if err != nil {
			return nil, fmt.Errorf("reading rated ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rated ref rows: %w", err)
	}

	return refs, nil
}

func (r *InteractionRepository) ListCategoryRaterIDs(
	ctx context.Context,
	category string,
	minRating int,
	excludeUserID uuid.UUID,
	limit int,
) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(
		ctx, listCategoryRaterIDsQuery,
		category, minRating, excludeUserID.String(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("running category raters query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	userIDs := []uuid.UUID{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning category rater row: %w", err)
		}

		userID, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parsing rater user id %q: %w", id, err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rater rows: %w", err)
	}

	return userIDs, nil
}

func parseContentRef(contentType, contentID string) (domain.ContentRef, error) {
	parsedType, err := domain.ParseContentType(contentType)
	if err != nil {
		return domain.ContentRef{}, err
	}

	id, err := uuid.Parse(contentID)
	if err != nil {
		return domain.ContentRef{}, fmt.Errorf("parsing content id %q: %w", contentID, err)
	}

	return domain.ContentRef{Type: parsedType, ID: id}, nil
}
