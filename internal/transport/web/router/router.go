package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/star-reviews/internal/reviewstore"
	"github.com/jbeshir/star-reviews/internal/transport/web/controller"
)

// ReviewStore is the set of store operations exposed over HTTP.
type ReviewStore interface {
	reviewstore.Loader
	reviewstore.Submitter
	reviewstore.Remover
	reviewstore.SnapshotReader
}

func MakeRouter(
	store ReviewStore,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	cacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
	deleteRequiresAuth bool,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/reviews", controller.ReviewsList{
		Snapshots: store,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/reviews", controller.ReviewSubmit{
		Submitter: store,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/reviews/refresh", controller.ReviewsRefresh{
		Loader: store,
	}).Methods(http.MethodPost, http.MethodOptions)

	var deleteHandler http.Handler = controller.ReviewDelete{
		Remover: store,
	}
	if deleteRequiresAuth {
		deleteHandler = requireAuthMiddleware(deleteHandler)
	}
	r.Handle("/v1/reviews/{review_id}", deleteHandler).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		Snapshots:       store,
		CacheMaxAge:     cacheMaxAge,
	}).Methods(http.MethodGet)

	return r, nil
}
