package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/narravia/content-recommendations/internal/domain"
)

var testSchema = []string{
	`CREATE TABLE IF NOT EXISTS stories (
		id CHAR(36) NOT NULL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		category VARCHAR(100) NULL,
		author_id CHAR(36) NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'draft',
		view_count BIGINT NOT NULL DEFAULT 0,
		like_count BIGINT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS films LIKE stories`,
	`CREATE TABLE IF NOT EXISTS contents LIKE stories`,
	`CREATE TABLE IF NOT EXISTS podcasts LIKE stories`,
	`CREATE TABLE IF NOT EXISTS animations LIKE stories`,
	`CREATE TABLE IF NOT EXISTS sneak_peeks LIKE stories`,
	`CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) NOT NULL PRIMARY KEY,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		last_login DATETIME NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_favorites (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		content_type VARCHAR(20) NOT NULL,
		content_id CHAR(36) NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE KEY uq_user_favorite (user_id, content_type, content_id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_library (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		content_type VARCHAR(20) NOT NULL,
		content_id CHAR(36) NOT NULL,
		rating INT NULL,
		updated_at DATETIME NOT NULL,
		UNIQUE KEY uq_user_library (user_id, content_type, content_id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_recommendations (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		content_type VARCHAR(20) NOT NULL,
		content_id CHAR(36) NOT NULL,
		recommendation_type VARCHAR(20) NOT NULL,
		confidence_score DOUBLE NOT NULL DEFAULT 0.5,
		reason VARCHAR(255) NOT NULL DEFAULT '',
		shown_count INT NOT NULL DEFAULT 0,
		clicked BOOLEAN NOT NULL DEFAULT FALSE,
		dismissed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME NOT NULL,
		expires_at DATETIME NOT NULL,
		UNIQUE KEY uq_user_recommendation (user_id, content_type, content_id, recommendation_type),
		KEY idx_user_expires (user_id, expires_at)
	)`,
}

var testTables = []string{
	"stories", "films", "contents", "podcasts", "animations", "sneak_peeks",
	"users", "user_favorites", "user_library", "user_recommendations",
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}
	uri := os.Getenv("MYSQL_URI")
	if uri == "" {
		t.Skip("MYSQL_URI not set, skipping MySQL integration tests")
	}

	db, err := Connect(context.Background(), uri)
	require.NoError(t, err)

	for _, stmt := range testSchema {
		_, err := db.ExecContext(context.Background(), stmt)
		require.NoError(t, err)
	}
	truncateTestTables(t, db)

	return db
}

func teardownTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	truncateTestTables(t, db)
	require.NoError(t, db.Close())
}

func truncateTestTables(t *testing.T, db *sql.DB) {
	t.Helper()

	for _, table := range testTables {
		_, err := db.ExecContext(context.Background(), "DELETE FROM "+table)
		require.NoError(t, err)
	}
}

func insertTestContent(t *testing.T, db *sql.DB, c domain.ContentSummary) {
	t.Helper()

	var category, authorID any
	if c.Category != nil {
		category = *c.Category
	}
	if c.AuthorID != nil {
		authorID = c.AuthorID.String()
	}

	_, err := db.ExecContext(
		context.Background(),
		"INSERT INTO "+contentTables[c.Type]+
			" (id, title, category, author_id, status, view_count, like_count, created_at)"+
			" VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		c.ID.String(), c.Title, category, authorID, string(c.Status),
		c.ViewCount, c.LikeCount, c.CreatedAt,
	)
	require.NoError(t, err)
}

func insertTestUser(t *testing.T, db *sql.DB, id uuid.UUID, active bool, lastLogin any) {
	t.Helper()

	_, err := db.ExecContext(
		context.Background(),
		"INSERT INTO users (id, is_active, last_login) VALUES (?, ?, ?)",
		id.String(), active, lastLogin,
	)
	require.NoError(t, err)
}

func insertTestFavorite(t *testing.T, db *sql.DB, userID uuid.UUID, ref domain.ContentRef) {
	t.Helper()

	_, err := db.ExecContext(
		context.Background(),
		"INSERT INTO user_favorites (user_id, content_type, content_id, created_at) VALUES (?, ?, ?, NOW())",
		userID.String(), string(ref.Type), ref.ID.String(),
	)
	require.NoError(t, err)
}

func insertTestLibraryEntry(t *testing.T, db *sql.DB, userID uuid.UUID, ref domain.ContentRef, rating any) {
	t.Helper()

	_, err := db.ExecContext(
		context.Background(),
		"INSERT INTO user_library (user_id, content_type, content_id, rating, updated_at) VALUES (?, ?, ?, ?, NOW())",
		userID.String(), string(ref.Type), ref.ID.String(), rating,
	)
	require.NoError(t, err)
}

func stringPtr(s string) *string { return &s }
func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }
