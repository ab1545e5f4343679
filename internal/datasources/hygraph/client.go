package hygraph

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/star-reviews/internal/datasources"
	"github.com/jbeshir/star-reviews/internal/domain"
	"github.com/machinebox/graphql"
)

var _ datasources.ReviewRepository = (*Client)(nil)

// Client stores reviews in a Hygraph content project through its GraphQL content API.
type Client struct {
	gql       *graphql.Client
	authToken string
}

// NewClient creates a client for the given content API endpoint.
// A zero timeout leaves requests bounded only by their context.
func NewClient(endpoint, authToken string, timeout time.Duration) *Client {
	return &Client{
		gql: graphql.NewClient(endpoint, graphql.WithHTTPClient(&http.Client{
			Transport: statusTransport{next: http.DefaultTransport},
			Timeout:   timeout,
		})),
		authToken: authToken,
	}
}

func (c *Client) CreateReview(ctx context.Context, input domain.ReviewInput) (domain.Review, error) {
	req := graphql.NewRequest(createReviewMutation)
	req.Var("name", input.Name)
	req.Var("rating", input.Rating)
	req.Var("description", input.Description)

	var resp createReviewResponse
	if err := c.run(ctx, "createReview", req, &resp); err != nil {
		return domain.Review{}, err
	}

	return resp.CreateReview.toDomain(), nil
}

func (c *Client) PublishReview(ctx context.Context, id string) error {
	req := graphql.NewRequest(publishReviewMutation)
	req.Var("id", id)

	var resp publishReviewResponse
	if err := c.run(ctx, "publishReview", req, &resp); err != nil {
		return err
	}

	if resp.PublishReview.ID != id {
		return &datasources.RemoteError{
			Op:  "publishReview",
			Err: fmt.Errorf("published review [%s] does not match requested review [%s]", resp.PublishReview.ID, id),
		}
	}

	return nil
}

func (c *Client) ListReviews(ctx context.Context) ([]domain.Review, error) {
	req := graphql.NewRequest(listReviewsQuery)

	var resp listReviewsResponse
	if err := c.run(ctx, "listReviews", req, &resp); err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(resp.Reviews))
	for _, r := range resp.Reviews {
		reviews = append(reviews, r.toDomain())
	}

	return reviews, nil
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	req := graphql.NewRequest(deleteReviewMutation)
	req.Var("id", id)

	var resp deleteReviewResponse
	if err := c.run(ctx, "deleteReview", req, &resp); err != nil {
		return err
	}

	if resp.DeleteReview == nil {
		logger := domain.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "review to delete did not exist", "review_id", id)
	}

	return nil
}

func (c *Client) run(ctx context.Context, op string, req *graphql.Request, resp any) error {
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	if err := c.gql.Run(ctx, req, resp); err != nil {
		return &datasources.RemoteError{Op: op, Err: err}
	}

	if err := validate.Struct(resp); err != nil {
		return &datasources.RemoteError{Op: op, Err: fmt.Errorf("validating response: %w", err)}
	}

	return nil
}
