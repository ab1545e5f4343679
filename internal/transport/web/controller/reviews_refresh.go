package controller

import (
	"net/http"

	"github.com/jbeshir/star-reviews/internal/reviewstore"
)

// ReviewsRefresh handles POST /v1/reviews/refresh, reloading the snapshot from the remote service.
type ReviewsRefresh struct {
	Loader reviewstore.Loader
}

func (c ReviewsRefresh) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := c.Loader.Load(r.Context()); err != nil {
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
