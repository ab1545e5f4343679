package domain

import "time"

// Review is a published star rating with its comment, as held by the remote content service.
type Review struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Rating      int       `json:"rating"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// ReviewInput is the data sent to the remote service when creating a review.
type ReviewInput struct {
	Name        string
	Rating      int
	Description string
}
