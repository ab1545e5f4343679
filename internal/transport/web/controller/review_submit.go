package controller

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jbeshir/star-reviews/internal/domain"
	"github.com/jbeshir/star-reviews/internal/reviewstore"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ReviewSubmitRequest is the draft as sent by the review form.
type ReviewSubmitRequest struct {
	Name        string `json:"name"`
	Rating      int    `json:"rating"`
	Description string `json:"description" validate:"required"`
}

// ReviewSubmit handles POST /v1/reviews.
type ReviewSubmit struct {
	Submitter reviewstore.Submitter
}

func (c ReviewSubmit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req ReviewSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "unable to decode review submission", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		logger.WarnContext(ctx, "invalid review submission", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := &domain.ReviewDraft{
		Name:        req.Name,
		Rating:      req.Rating,
		Description: req.Description,
	}

	created, err := c.Submitter.Submit(ctx, draft)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(created); err != nil {
		logger.ErrorContext(ctx, "unable to write created review to response", "error", err)
	}
}
