package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/narravia/content-recommendations/internal/datasources"
)

var _ datasources.ActiveUserIDsLister = (*UserRepository)(nil)

// UserRepository reads the platform's users table.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ListActiveUserIDs(
	ctx context.Context,
	activeSince time.Time,
) ([]uuid.UUID, error) {
	sb := sqlbuilder.Select("id")
	sb.From("users")
	sb.Where(
		sb.Equal("is_active", true),
		sb.GreaterEqualThan("last_login", activeSince),
	)
	sb.OrderBy("last_login DESC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running active users query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	userIDs := []uuid.UUID{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}

		userID, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parsing user id %q: %w", id, err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	return userIDs, nil
}
