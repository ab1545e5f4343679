package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/star-reviews/internal/datasources"
	"github.com/jbeshir/star-reviews/internal/datasources/hygraph"
	"github.com/jbeshir/star-reviews/internal/datasources/memory"
	"github.com/jbeshir/star-reviews/internal/domain"
	"github.com/jbeshir/star-reviews/internal/reviewstore"
	"github.com/jbeshir/star-reviews/internal/transport/web/router"
	"github.com/jbeshir/star-reviews/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	store, err := SetupReviewStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up review store: %w", err)
	}

	// Best-effort; the snapshot stays empty until a later refresh succeeds.
	if err := store.Load(ctx); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "initial review load failed, starting with empty snapshot", "error", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	httpRouter, err := router.MakeRouter(
		store,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "REVIEWS_CACHE_MAX_AGE"),
		authMiddleware,
		MustGetEnvAsBoolean(ctx, "REVIEW_DELETE_REQUIRES_AUTH"),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

// SetupReviewStore creates a review store backed by the driver named in REVIEW_DRIVER.
func SetupReviewStore(ctx context.Context) (*reviewstore.Store, error) {
	repo, err := setupReviewRepository(ctx)
	if err != nil {
		return nil, err
	}
	return reviewstore.NewFromRepository(repo), nil
}

func setupReviewRepository(ctx context.Context) (datasources.ReviewRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "REVIEW_DRIVER"); driver {
	case "memory":
		return memory.New(), nil
	case "hygraph":
		return hygraph.NewClient(
			MustGetEnvAsString(ctx, "HYGRAPH_ENDPOINT"),
			MustGetEnvAsString(ctx, "HYGRAPH_AUTH_TOKEN"),
			MustGetEnvAsDuration(ctx, "HYGRAPH_REQUEST_TIMEOUT"),
		), nil
	default:
		return nil, fmt.Errorf("unknown review driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
