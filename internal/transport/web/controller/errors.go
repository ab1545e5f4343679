package controller

import (
	"errors"
	"net/http"

	"github.com/jbeshir/star-reviews/internal/datasources"
)

// writeStoreError reports a failed store operation, which the store has already logged.
// Failures of the remote review service become 502s; anything else is a 500.
func writeStoreError(w http.ResponseWriter, err error) {
	var remoteErr *datasources.RemoteError
	if errors.As(err, &remoteErr) {
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
}
