package memory

import (
	"context"
	"testing"
	"time"

	"github.com/jbeshir/star-reviews/internal/datasources"
	"github.com/jbeshir/star-reviews/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)

	repo := New()
	repo.now = func() time.Time { return testTime }

	created, err := repo.CreateReview(ctx, domain.ReviewInput{Name: "Ann", Rating: 4, Description: "Great"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, testTime, created.CreatedAt)

	reviews, err := repo.ListReviews(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews, "unpublished reviews must not be listed")

	require.NoError(t, repo.PublishReview(ctx, created.ID))

	reviews, err = repo.ListReviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Review{created}, reviews)

	require.NoError(t, repo.DeleteReview(ctx, created.ID))
	require.NoError(t, repo.DeleteReview(ctx, created.ID))

	reviews, err = repo.ListReviews(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestRepository_ListPreservesCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := New()

	var ids []string
	for _, desc := range []string{"first", "second", "third"} {
		created, err := repo.CreateReview(ctx, domain.ReviewInput{Rating: 3, Description: desc})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	// Publish out of order; listing follows creation order.
	for _, i := range []int{2, 0, 1} {
		require.NoError(t, repo.PublishReview(ctx, ids[i]))
	}

	reviews, err := repo.ListReviews(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	for i, r := range reviews {
		assert.Equal(t, ids[i], r.ID)
	}
}

func TestRepository_PublishUnknown(t *testing.T) {
	err := New().PublishReview(context.Background(), "missing")

	var remoteErr *datasources.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "publishReview", remoteErr.Op)
}
