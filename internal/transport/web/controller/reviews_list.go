package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jbeshir/star-reviews/internal/domain"
	"github.com/jbeshir/star-reviews/internal/reviewstore"
)

// ReviewsList handles GET /v1/reviews. The list changes on every mutation, so clients
// must revalidate it rather than reuse a cached copy.
type ReviewsList struct {
	Snapshots reviewstore.SnapshotReader
}

type ReviewsListResponse struct {
	Data     []domain.Review     `json:"data"`
	Metadata ReviewsListMetadata `json:"metadata"`
}

type ReviewsListMetadata struct {
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
}

func (c ReviewsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snap := c.Snapshots.Snapshot()

	resp := ReviewsListResponse{
		Data: snap.Reviews,
	}
	if resp.Data == nil {
		resp.Data = []domain.Review{}
	}
	if snap.Loaded() {
		resp.Metadata.FetchedAt = &snap.FetchedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write reviews to response", "error", err)
	}
}
