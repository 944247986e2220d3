package datasources

import (
	"context"
	"errors"

	"github.com/narravia/content-recommendations/internal/domain"
)

// ErrNotFound is returned by fetchers when no row matches.
var ErrNotFound = errors.New("not found")

// ContentRepository combines the operations available on one content catalog table.
type ContentRepository interface {
	ContentLister
	ContentFetcher
}

type ContentLister interface {
	ListContent(
		ctx context.Context,
		filters domain.ContentFilters,
		options domain.ContentListOptions,
	) ([]domain.ContentSummary, error)
}

type ContentFetcher interface {
	FetchContentByID(ctx context.Context, ref domain.ContentRef) (domain.ContentSummary, error)
}

// ContentRegistry maps each content type to its repository. Callers iterate
// it via domain.ContentTypes() so cross-type traversal keeps canonical order.
type ContentRegistry map[domain.ContentType]ContentRepository

// NullContentRepository is a null implementation of ContentRepository.
type NullContentRepository struct{}

var _ ContentRepository = NullContentRepository{}

func (NullContentRepository) ListContent(
	_ context.Context,
	_ domain.ContentFilters,
	_ domain.ContentListOptions,
) ([]domain.ContentSummary, error) {
	return nil, nil
}

func (NullContentRepository) FetchContentByID(
	_ context.Context,
	_ domain.ContentRef,
) (domain.ContentSummary, error) {
	return domain.ContentSummary{}, ErrNotFound
}
