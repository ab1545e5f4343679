package reviewstore

import (
	"time"

	"github.com/jbeshir/star-reviews/internal/domain"
)

// Snapshot is the full set of reviews the remote service returned for one listing.
type Snapshot struct {
	Reviews   []domain.Review
	FetchedAt time.Time
}

// Loaded reports whether any listing has succeeded yet.
func (s Snapshot) Loaded() bool {
	return !s.FetchedAt.IsZero()
}

// IDs returns the review IDs in listing order.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s.Reviews))
	for _, r := range s.Reviews {
		ids = append(ids, r.ID)
	}
	return ids
}
