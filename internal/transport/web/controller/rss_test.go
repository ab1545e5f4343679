package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/star-reviews/internal/domain"
	"github.com/jbeshir/star-reviews/internal/reviewstore"
	"github.com/jbeshir/star-reviews/internal/reviewstore/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSS_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)

	snapshots := mocks.NewMockSnapshotReader(t)
	snapshots.EXPECT().Snapshot().Return(reviewstore.Snapshot{
		Reviews: []domain.Review{
			{ID: "rev_1", Name: "Ann", Rating: 4, Description: "Great", CreatedAt: testTime},
			{ID: "rev_2", Rating: 1, Description: "Poor", CreatedAt: testTime},
		},
		FetchedAt: testTime,
	})

	ctrl := RSS{
		FeedHostname:    "https://reviews.example.com",
		FeedPath:        "/rss",
		FeedAuthorName:  "Reviews",
		FeedAuthorEmail: "reviews@example.com",
		Snapshots:       snapshots,
		CacheMaxAge:     5 * time.Minute,
	}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/rss", nil))
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=300", rec.Header().Get("Cache-Control"))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>★★★★ Ann</title>")
	assert.Contains(t, body, "<title>★</title>")
	assert.Contains(t, body, "<description>Great</description>")
	assert.Contains(t, body, "https://reviews.example.com/v1/reviews#rev_1")
}

func TestReviewTitle(t *testing.T) {
	assert.Equal(t, "★★★ Bob", reviewTitle(domain.Review{Name: "Bob", Rating: 3}))
	assert.Equal(t, "", reviewTitle(domain.Review{Rating: 0}))
	assert.Equal(t, "★★★★★", reviewTitle(domain.Review{Rating: 7}))
}
