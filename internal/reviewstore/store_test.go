package reviewstore

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jbeshir/star-reviews/internal/datasources"
	"github.com/jbeshir/star-reviews/internal/datasources/mocks"
	"github.com/jbeshir/star-reviews/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

type storeMocks struct {
	creator   *mocks.MockReviewCreator
	publisher *mocks.MockReviewPublisher
	lister    *mocks.MockReviewLister
	deleter   *mocks.MockReviewDeleter
}

func newTestStore(t *testing.T) (*Store, storeMocks) {
	m := storeMocks{
		creator:   mocks.NewMockReviewCreator(t),
		publisher: mocks.NewMockReviewPublisher(t),
		lister:    mocks.NewMockReviewLister(t),
		deleter:   mocks.NewMockReviewDeleter(t),
	}
	return New(m.creator, m.publisher, m.lister, m.deleter), m
}

var (
	reviewAnn = domain.Review{ID: "rev_ann", Name: "Ann", Rating: 4, Description: "Great"}
	review123 = domain.Review{ID: "rev_123", Name: "Bob", Rating: 2, Description: "Meh"}
	reviewCat = domain.Review{ID: "rev_cat", Name: "Cat", Rating: 5, Description: "Superb"}
)

func TestStore_Snapshot_Empty(t *testing.T) {
	store, _ := newTestStore(t)

	snap := store.Snapshot()
	assert.Empty(t, snap.Reviews)
	assert.False(t, snap.Loaded())
}

func TestStore_Load(t *testing.T) {
	store, m := newTestStore(t)

	m.lister.EXPECT().ListReviews(mock.Anything).Return([]domain.Review{reviewCat, review123}, nil).Once()

	require.NoError(t, store.Load(testContext()))

	snap := store.Snapshot()
	assert.True(t, snap.Loaded())
	assert.Equal(t, []string{"rev_cat", "rev_123"}, snap.IDs(), "service order must be kept")
}

func TestStore_Load_FailureKeepsPreviousSnapshot(t *testing.T) {
	store, m := newTestStore(t)

	m.lister.EXPECT().ListReviews(mock.Anything).Return([]domain.Review{review123}, nil).Once()
	require.NoError(t, store.Load(testContext()))
	before := store.Snapshot()

	remoteErr := &datasources.RemoteError{Op: "listReviews", Err: errors.New("connection refused")}
	m.lister.EXPECT().ListReviews(mock.Anything).Return(nil, remoteErr).Once()

	err := store.Load(testContext())
	require.Error(t, err)
	assert.ErrorIs(t, err, remoteErr)
	assert.Equal(t, before, store.Snapshot())
}

func TestStore_Load_Twice_SameIDs(t *testing.T) {
	store, m := newTestStore(t)

	m.lister.EXPECT().ListReviews(mock.Anything).Return([]domain.Review{review123, reviewCat}, nil).Once()
	m.lister.EXPECT().ListReviews(mock.Anything).Return([]domain.Review{reviewCat, review123}, nil).Once()

	require.NoError(t, store.Load(testContext()))
	first := store.Snapshot().IDs()
	require.NoError(t, store.Load(testContext()))
	second := store.Snapshot().IDs()

	assert.ElementsMatch(t, first, second)
}

func TestStore_Snapshot_ReturnsCopy(t *testing.T) {
	store, m := newTestStore(t)

	listed := []domain.Review{review123}
	m.lister.EXPECT().ListReviews(mock.Anything).Return(listed, nil).Once()
	require.NoError(t, store.Load(testContext()))

	listed[0].Name = "mutated by lister"
	snap := store.Snapshot()
	snap.Reviews[0].Name = "mutated by caller"

	assert.Equal(t, "Bob", store.Snapshot().Reviews[0].Name)
}

func TestStore_Submit(t *testing.T) {
	store, m := newTestStore(t)

	draft := &domain.ReviewDraft{Name: "Ann", Description: "Great"}
	draft.ClickStar(4)

	create := m.creator.EXPECT().
		CreateReview(mock.Anything, domain.ReviewInput{Name: "Ann", Rating: 4, Description: "Great"}).
		Return(reviewAnn, nil).Once()
	publish := m.publisher.EXPECT().
		PublishReview(mock.Anything, "rev_ann").
		Run(func(_ context.Context, _ string) {
			assert.NotContains(t, store.Snapshot().IDs(), "rev_ann", "review visible before refresh")
		}).
		Return(nil).Once()
	list := m.lister.EXPECT().
		ListReviews(mock.Anything).
		Return([]domain.Review{review123, reviewAnn}, nil).Once()
	mock.InOrder(create, publish, list)

	created, err := store.Submit(testContext(), draft)
	require.NoError(t, err)

	assert.Equal(t, reviewAnn, created)
	assert.Contains(t, store.Snapshot().Reviews, reviewAnn)
	assert.Equal(t, domain.ReviewDraft{}, *draft, "draft must be reset")
}

func TestStore_Submit_Failures(t *testing.T) {
	boom := &datasources.RemoteError{Op: "test", Err: errors.New("boom")}

	cases := []struct {
		name        string
		setup       func(m storeMocks)
		wantErrText string
	}{
		{
			name: "create_fails",
			setup: func(m storeMocks) {
				m.creator.EXPECT().CreateReview(mock.Anything, mock.Anything).Return(domain.Review{}, boom).Once()
			},
			wantErrText: "creating review",
		},
		{
			name: "publish_fails",
			setup: func(m storeMocks) {
				m.creator.EXPECT().CreateReview(mock.Anything, mock.Anything).Return(reviewAnn, nil).Once()
				m.publisher.EXPECT().PublishReview(mock.Anything, "rev_ann").Return(boom).Once()
			},
			wantErrText: "publishing review [rev_ann]",
		},
		{
			name: "refresh_fails",
			setup: func(m storeMocks) {
				m.creator.EXPECT().CreateReview(mock.Anything, mock.Anything).Return(reviewAnn, nil).Once()
				m.publisher.EXPECT().PublishReview(mock.Anything, "rev_ann").Return(nil).Once()
				m.lister.EXPECT().ListReviews(mock.Anything).Return(nil, boom).Once()
			},
			wantErrText: "refreshing after submit",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, m := newTestStore(t)

			m.lister.EXPECT().ListReviews(mock.Anything).Return([]domain.Review{review123}, nil).Once()
			require.NoError(t, store.Load(testContext()))
			before := store.Snapshot()

			tc.setup(m)

			draft := &domain.ReviewDraft{Name: "Ann", Rating: 4, Description: "Great"}
			draftBefore := *draft

			_, err := store.Submit(testContext(), draft)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErrText)

			var remoteErr *datasources.RemoteError
			assert.ErrorAs(t, err, &remoteErr)

			assert.Equal(t, before, store.Snapshot())
			assert.Equal(t, draftBefore, *draft)
		})
	}
}

func TestStore_Remove(t *testing.T) {
	store, m := newTestStore(t)

	m.lister.EXPECT().ListReviews(mock.Anything).Return([]domain.Review{review123, reviewCat}, nil).Once()
	require.NoError(t, store.Load(testContext()))

	del := m.deleter.EXPECT().DeleteReview(mock.Anything, "rev_123").Return(nil).Once()
	list := m.lister.EXPECT().ListReviews(mock.Anything).Return([]domain.Review{reviewCat}, nil).Once()
	mock.InOrder(del, list)

	require.NoError(t, store.Remove(testContext(), "rev_123"))
	assert.NotContains(t, store.Snapshot().IDs(), "rev_123")
}

func TestStore_Remove_Failures(t *testing.T) {
	boom := errors.New("boom")

	cases := []struct {
		name        string
		setup       func(m storeMocks)
		wantErrText string
	}{
		{
			name: "delete_fails",
			setup: func(m storeMocks) {
				m.deleter.EXPECT().DeleteReview(mock.Anything, "rev_123").Return(boom).Once()
			},
			wantErrText: "deleting review [rev_123]",
		},
		{
			name: "refresh_fails",
			setup: func(m storeMocks) {
				m.deleter.EXPECT().DeleteReview(mock.Anything, "rev_123").Return(nil).Once()
				m.lister.EXPECT().ListReviews(mock.Anything).Return(nil, boom).Once()
			},
			wantErrText: "refreshing after delete",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, m := newTestStore(t)

			m.lister.EXPECT().ListReviews(mock.Anything).Return([]domain.Review{review123}, nil).Once()
			require.NoError(t, store.Load(testContext()))
			before := store.Snapshot()

			tc.setup(m)

			err := store.Remove(testContext(), "rev_123")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErrText)
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, before, store.Snapshot())
		})
	}
}
