package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/star-reviews/internal/datasources"
	"github.com/jbeshir/star-reviews/internal/domain"
)

var _ datasources.ReviewRepository = (*Repository)(nil)

type record struct {
	review    domain.Review
	published bool
}

// Repository keeps reviews in process memory, mirroring the remote service's
// draft and published stages. Only published reviews are listed.
type Repository struct {
	mu      sync.Mutex
	records []record
	now     func() time.Time
}

func New() *Repository {
	return &Repository{now: time.Now}
}

func (r *Repository) CreateReview(_ context.Context, input domain.ReviewInput) (domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	review := domain.Review{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Rating:      input.Rating,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.records = append(r.records, record{review: review})

	return review, nil
}

func (r *Repository) PublishReview(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].review.ID == id {
			r.records[i].published = true
			r.records[i].review.UpdatedAt = r.now().UTC()
			return nil
		}
	}

	return &datasources.RemoteError{
		Op:  "publishReview",
		Err: fmt.Errorf("review [%s] not found", id),
	}
}

func (r *Repository) ListReviews(_ context.Context) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews := make([]domain.Review, 0, len(r.records))
	for _, rec := range r.records {
		if rec.published {
			reviews = append(reviews, rec.review)
		}
	}

	return reviews, nil
}

func (r *Repository) DeleteReview(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].review.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}

	return nil
}
