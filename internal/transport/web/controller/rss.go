package controller

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/feeds"

	"github.com/narravia/content-recommendations/internal/datasources"
	"github.com/narravia/content-recommendations/internal/domain"
)

// RSS serves a feed of the newest published content across the catalog.
// It is a public endpoint; responses carry a cache header instead of
// per-user state.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string

	// ContentBaseURL prefixes item links, which take the form
	// <base>/<content type>/<content ID>.
	ContentBaseURL string

	Registry    datasources.ContentRegistry
	ItemLimit   int
	CacheMaxAge time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "Narravia New Releases",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of the newest stories, films, podcasts and other releases on Narravia",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	perTypeLimit := c.ItemLimit/len(domain.ContentTypes()) + 1

	var latest []domain.ContentSummary
	for _, contentType := range domain.ContentTypes() {
		repo, ok := c.Registry[contentType]
		if !ok {
			continue
		}

		summaries, err := repo.ListContent(ctx,
			domain.ContentFilters{Status: domain.ContentStatusPublished},
			domain.ContentListOptions{
				Ordering: []domain.ContentOrdering{
					{Field: domain.ContentOrderingFieldCreatedAt, Desc: true},
				},
				Limit: perTypeLimit,
			},
		)
		if err != nil {
			logger.WarnContext(ctx, "failed to list latest content for feed",
				"content_type", contentType, "error", err)
			continue
		}

		latest = append(latest, summaries...)
	}

	sort.SliceStable(latest, func(i, j int) bool {
		return latest[i].CreatedAt.After(latest[j].CreatedAt)
	})
	if len(latest) > c.ItemLimit {
		latest = latest[:c.ItemLimit]
	}

	for _, summary := range latest {
		description := fmt.Sprintf("New %s", summary.Type)
		if summary.Category != nil && *summary.Category != "" {
			description = fmt.Sprintf("New %s %s", *summary.Category, summary.Type)
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          fmt.Sprintf("%s:%s", summary.Type, summary.ID),
			IsPermaLink: "false",
			Title:       summary.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/%s/%s", c.ContentBaseURL, summary.Type, summary.ID)},
			Description: description,
			Created:     summary.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
