package datasources

import (
	"context"

	"github.com/jbeshir/star-reviews/internal/domain"
)

// ReviewRepository combines all operations offered by the remote review service.
type ReviewRepository interface {
	ReviewCreator
	ReviewPublisher
	ReviewLister
	ReviewDeleter
}

// ReviewCreator creates an unpublished review and returns it with its assigned ID.
type ReviewCreator interface {
	CreateReview(ctx context.Context, input domain.ReviewInput) (domain.Review, error)
}

// ReviewPublisher makes a created review visible in listings.
type ReviewPublisher interface {
	PublishReview(ctx context.Context, id string) error
}

// ReviewLister lists all published reviews in the order the service returns them.
type ReviewLister interface {
	ListReviews(ctx context.Context) ([]domain.Review, error)
}

// ReviewDeleter deletes a review in any state. Deleting an absent review is not an error.
type ReviewDeleter interface {
	DeleteReview(ctx context.Context, id string) error
}
