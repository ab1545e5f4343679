package hygraph

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jbeshir/star-reviews/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type reviewRef struct {
	ID string `json:"id" validate:"required"`
}

type createdReview struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name"`
	Rating      int    `json:"rating"`
	Description string `json:"description"`
}

type createReviewResponse struct {
	CreateReview *createdReview `json:"createReview" validate:"required"`
}

type publishReviewResponse struct {
	PublishReview *reviewRef `json:"publishReview" validate:"required"`
}

type reviewRecord struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type listReviewsResponse struct {
	Reviews []reviewRecord `json:"reviews" validate:"required,dive"`
}

// DeleteReview is null when no record matched.
type deleteReviewResponse struct {
	DeleteReview *reviewRef `json:"deleteReview"`
}

func (r reviewRecord) toDomain() domain.Review {
	return domain.Review{
		ID:          r.ID,
		Name:        r.Name,
		Rating:      r.Rating,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r createdReview) toDomain() domain.Review {
	return domain.Review{
		ID:          r.ID,
		Name:        r.Name,
		Rating:      r.Rating,
		Description: r.Description,
	}
}
