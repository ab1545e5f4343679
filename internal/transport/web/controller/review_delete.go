package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/star-reviews/internal/reviewstore"
)

// ReviewDelete handles DELETE /v1/reviews/{review_id}.
type ReviewDelete struct {
	Remover reviewstore.Remover
}

func (c ReviewDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["review_id"]
	if reviewID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.Remover.Remove(r.Context(), reviewID); err != nil {
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
