package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/star-reviews/internal/domain"
	"github.com/jbeshir/star-reviews/internal/reviewstore"
)

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Snapshots       reviewstore.SnapshotReader
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snap := c.Snapshots.Snapshot()

	feed := &feeds.Feed{
		Title:       "Reviews",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of published star reviews",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}
	if snap.Loaded() {
		feed.Updated = snap.FetchedAt
	}

	for _, review := range snap.Reviews {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          review.ID,
			IsPermaLink: "false",
			Title:       reviewTitle(review),
			Link:        &feeds.Link{Href: c.FeedHostname + "/v1/reviews#" + review.ID},
			Description: review.Description,
			Author:      &feeds.Author{Name: review.Name},
			Created:     review.CreatedAt,
			Updated:     review.UpdatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func reviewTitle(review domain.Review) string {
	stars := strings.Repeat("★", max(0, min(review.Rating, domain.MaxRating)))
	if review.Name == "" {
		return stars
	}
	return stars + " " + review.Name
}
