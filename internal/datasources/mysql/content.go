package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

// contentTables maps each content type to its catalog table. All six tables
// share the engine-relevant column set.
var contentTables = map[domain.ContentType]string{
	domain.ContentTypeStory:     "stories",
	domain.ContentTypeFilm:      "films",
	domain.ContentTypeContent:   "contents",
	domain.ContentTypePodcast:   "podcasts",
	domain.ContentTypeAnimation: "animations",
	domain.ContentTypeSneakPeek: "sneak_peeks",
}

var contentColumns = []string{
	"id", "title", "category", "author_id", "status", "view_count", "like_count", "created_at",
}

var _ datasources.ContentRepository = (*ContentRepository)(nil)

// ContentRepository reads one content type's catalog table.
type ContentRepository struct {
	db          *sql.DB
	contentType domain.ContentType
	table       string
}

func NewContentRepository(db *sql.DB, contentType domain.ContentType) *ContentRepository {
	return &ContentRepository{
		db:          db,
		contentType: contentType,
		table:       contentTables[contentType],
	}
}

// NewContentRegistry returns a registry with a repository per content type.
func NewContentRegistry(db *sql.DB) datasources.ContentRegistry {
	registry := make(datasources.ContentRegistry, len(contentTables))
	for _, contentType := range domain.ContentTypes() {
		registry[contentType] = NewContentRepository(db, contentType)
	}
	return registry
}

func (r *ContentRepository) ListContent(
	ctx context.Context,
	filters domain.ContentFilters,
	options domain.ContentListOptions,
) ([]domain.ContentSummary, error) {
	sb := sqlbuilder.Select(contentColumns...)
	sb.From(r.table)

	conds := buildContentConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	orderings, err := buildContentOrder(options)
	if err != nil {
		return nil, fmt.Errorf("building %s order by clause: %w", r.table, err)
	}
	sb.OrderBy(orderings...)

	if options.Limit > 0 {
		sb.Limit(options.Limit)
	}

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running %s query: %w", r.table, err)
	}
	defer func() { _ = rows.Close() }()

	summaries := []domain.ContentSummary{}
	for rows.Next() {
		summary, err := scanContentSummary(r.contentType, rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", r.table, err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", r.table, err)
	}

	return summaries, nil
}

func (r *ContentRepository) FetchContentByID(
	ctx context.Context,
	ref domain.ContentRef,
) (domain.ContentSummary, error) {
	sb := sqlbuilder.Select(contentColumns...)
	sb.From(r.table)
	sb.Where(sb.Equal("id", ref.ID.String()))
	sb.Limit(1)

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	summary, err := scanContentSummary(r.contentType, row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ContentSummary{}, datasources.ErrNotFound
	}
	if err != nil {
		return domain.ContentSummary{}, fmt.Errorf("fetching %s by id: %w", r.table, err)
	}

	return summary, nil
}

// scanContentSummary reads one catalog row through the given scan function,
// which lets it serve both sql.Rows and sql.Row.
func scanContentSummary(
	contentType domain.ContentType,
	scan func(dest ...any) error,
) (domain.ContentSummary, error) {
	var (
		id        string
		title     string
		category  sql.NullString
		authorID  sql.NullString
		status    string
		viewCount int64
		likeCount int64
		createdAt time.Time
	)

	if err := scan(&id, &title, &category, &authorID, &status, &viewCount, &likeCount, &createdAt); err != nil {
		return domain.ContentSummary{}, err
	}

	contentID, err := uuid.Parse(id)
	if err != nil {
		return domain.ContentSummary{}, fmt.Errorf("parsing content id %q: %w", id, err)
	}

	summary := domain.ContentSummary{
		ContentRef: domain.ContentRef{Type: contentType, ID: contentID},
		Title:      title,
		Status:     domain.ContentStatus(status),
		ViewCount:  viewCount,
		LikeCount:  likeCount,
		CreatedAt:  createdAt,
	}

	if category.Valid {
		summary.Category = &category.String
	}
	if authorID.Valid {
		parsed, err := uuid.Parse(authorID.String)
		if err != nil {
			return domain.ContentSummary{}, fmt.Errorf("parsing author id %q: %w", authorID.String, err)
		}
		summary.AuthorID = &parsed
	}

	return summary, nil
}

func buildContentConditions(sb *sqlbuilder.SelectBuilder, filters domain.ContentFilters) []string {
	var conds []string

	if filters.Status != "" {
		conds = append(conds, sb.Equal("status", string(filters.Status)))
	}

	if filters.Category != "" {
		conds = append(conds, sb.Equal("category", filters.Category))
	}

	if filters.AuthorID != nil {
		conds = append(conds, sb.Equal("author_id", filters.AuthorID.String()))
	}

	if filters.CreatedAfter != (time.Time{}) {
		conds = append(conds, sb.GreaterEqualThan("created_at", filters.CreatedAfter))
	}

	if filters.CreatedBefore != (time.Time{}) {
		conds = append(conds, sb.LessEqualThan("created_at", filters.CreatedBefore))
	}

	if len(filters.ExcludeIDs) > 0 {
		excluded := make([]interface{}, 0, len(filters.ExcludeIDs))
		for _, id := range filters.ExcludeIDs {
			excluded = append(excluded, id.String())
		}
		conds = append(conds, sb.NotIn("id", excluded...))
	}

	return conds
}

func buildContentOrder(options domain.ContentListOptions) ([]string, error) {
	if len(options.Ordering) == 0 {
		return []string{"created_at DESC"}, nil
	}

	var orderings []string
	for _, ordering := range options.Ordering {
		var col string
		switch ordering.Field {
		case domain.ContentOrderingFieldCreatedAt:
			col = "created_at"
		case domain.ContentOrderingFieldViewCount:
			col = "view_count"
		case domain.ContentOrderingFieldLikeCount:
			col = "like_count"
		case domain.ContentOrderingFieldEngagement:
			col = "(view_count + 2 * like_count)"
		default:
			return nil, fmt.Errorf("unknown ordering field: %s", ordering.Field)
		}

		if ordering.Desc {
			col += " DESC"
		}
		orderings = append(orderings, col)
	}

	return orderings, nil
}
