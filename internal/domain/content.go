package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ContentType string

const ContentTypeStory ContentType = "story"
const ContentTypeFilm ContentType = "film"
const ContentTypeContent ContentType = "content"
const ContentTypePodcast ContentType = "podcast"
const ContentTypeAnimation ContentType = "animation"
const ContentTypeSneakPeek ContentType = "sneak_peek"

// ContentTypes returns every content type in canonical order.
// Cross-type iteration and result merging always follow this order.
func ContentTypes() []ContentType {
	return []ContentType{
		ContentTypeStory,
		ContentTypeFilm,
		ContentTypeContent,
		ContentTypePodcast,
		ContentTypeAnimation,
		ContentTypeSneakPeek,
	}
}

func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentTypeStory, ContentTypeFilm, ContentTypeContent,
		ContentTypePodcast, ContentTypeAnimation, ContentTypeSneakPeek:
		return ContentType(s), nil
	}
	return "", fmt.Errorf("invalid content type: %s", s)
}

type ContentStatus string

const ContentStatusDraft ContentStatus = "draft"
const ContentStatusPublished ContentStatus = "published"
const ContentStatusArchived ContentStatus = "archived"
const ContentStatusProcessing ContentStatus = "processing"

// ContentRef identifies one item of content across the catalog tables.
// It is comparable and used as a map key for dedupe and exclusion sets.
type ContentRef struct {
	Type ContentType `json:"content_type"`
	ID   uuid.UUID   `json:"content_id"`
}

type ContentSummary struct {
	ContentRef
	Title     string        `json:"title"`
	Category  *string       `json:"category,omitempty"`
	AuthorID  *uuid.UUID    `json:"author_id,omitempty"`
	Status    ContentStatus `json:"status"`
	ViewCount int64         `json:"view_count"`
	LikeCount int64         `json:"like_count"`
	CreatedAt time.Time     `json:"created_at"`
}

type ContentFilters struct {
	Status        ContentStatus
	Category      string
	AuthorID      *uuid.UUID
	CreatedAfter  time.Time
	CreatedBefore time.Time
	ExcludeIDs    []uuid.UUID
}

type ContentListOptions struct {
	Ordering []ContentOrdering
	Limit    int
}

type ContentOrdering struct {
	Field ContentOrderingField
	Desc  bool
}

type ContentOrderingField string

const ContentOrderingFieldCreatedAt ContentOrderingField = "created_at"
const ContentOrderingFieldViewCount ContentOrderingField = "view_count"
const ContentOrderingFieldLikeCount ContentOrderingField = "like_count"

// ContentOrderingFieldEngagement sorts by view_count + 2*like_count,
// computed in the query rather than read from a column.
const ContentOrderingFieldEngagement ContentOrderingField = "engagement"

var ValidContentOrderingFields = []ContentOrderingField{
	ContentOrderingFieldCreatedAt,
	ContentOrderingFieldViewCount,
	ContentOrderingFieldLikeCount,
	ContentOrderingFieldEngagement,
}
