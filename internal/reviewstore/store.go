// Package reviewstore keeps a local snapshot of the reviews held by the remote review
// service and performs the write sequences that change them.
//
// The snapshot is never patched locally. Every mutation is followed by a full listing,
// and the listing replaces the snapshot wholesale. Concurrent operations are not
// coordinated: whichever listing completes last determines the snapshot.
package reviewstore

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/jbeshir/star-reviews/internal/datasources"
	"github.com/jbeshir/star-reviews/internal/domain"
)

// Loader refreshes the snapshot from the remote service.
type Loader interface {
	Load(ctx context.Context) error
}

// Submitter creates and publishes a review from a draft.
type Submitter interface {
	Submit(ctx context.Context, draft *domain.ReviewDraft) (domain.Review, error)
}

// Remover deletes a review.
type Remover interface {
	Remove(ctx context.Context, id string) error
}

// SnapshotReader returns the current snapshot.
type SnapshotReader interface {
	Snapshot() Snapshot
}

var (
	_ Loader         = (*Store)(nil)
	_ Submitter      = (*Store)(nil)
	_ Remover        = (*Store)(nil)
	_ SnapshotReader = (*Store)(nil)
)

type Store struct {
	Creator   datasources.ReviewCreator
	Publisher datasources.ReviewPublisher
	Lister    datasources.ReviewLister
	Deleter   datasources.ReviewDeleter

	snapshot atomic.Pointer[Snapshot]
}

// New creates a Store with an empty snapshot.
func New(
	creator datasources.ReviewCreator,
	publisher datasources.ReviewPublisher,
	lister datasources.ReviewLister,
	deleter datasources.ReviewDeleter,
) *Store {
	return &Store{
		Creator:   creator,
		Publisher: publisher,
		Lister:    lister,
		Deleter:   deleter,
	}
}

// NewFromRepository creates a Store backed by a single remote repository.
func NewFromRepository(repo datasources.ReviewRepository) *Store {
	return New(repo, repo, repo, repo)
}

// Snapshot returns the current snapshot. The returned slice is the caller's own.
func (s *Store) Snapshot() Snapshot {
	snap := s.snapshot.Load()
	if snap == nil {
		return Snapshot{}
	}

	return Snapshot{
		Reviews:   slices.Clone(snap.Reviews),
		FetchedAt: snap.FetchedAt,
	}
}

// Load replaces the snapshot with a fresh listing. On failure the previous snapshot is kept.
func (s *Store) Load(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	reviews, err := s.Lister.ListReviews(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "unable to load reviews, keeping previous snapshot", "error", err)
		return fmt.Errorf("loading reviews: %w", err)
	}

	s.snapshot.Store(&Snapshot{
		Reviews:   slices.Clone(reviews),
		FetchedAt: time.Now(),
	})

	logger.DebugContext(ctx, "loaded reviews", "count", len(reviews))
	return nil
}

// Submit creates a review from the draft, publishes it and refreshes the snapshot,
// resetting the draft once all three have succeeded. The first failing step aborts
// the sequence and leaves both draft and snapshot as they were.
//
// If publishing fails the created review stays on the remote service unpublished.
func (s *Store) Submit(ctx context.Context, draft *domain.ReviewDraft) (domain.Review, error) {
	logger := domain.LoggerFromContext(ctx)

	created, err := s.Creator.CreateReview(ctx, draft.Input())
	if err != nil {
		logger.ErrorContext(ctx, "unable to create review", "error", err)
		return domain.Review{}, fmt.Errorf("creating review: %w", err)
	}

	logger = logger.With("review_id", created.ID)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := s.Publisher.PublishReview(ctx, created.ID); err != nil {
		logger.ErrorContext(ctx, "unable to publish review, left unpublished", "error", err)
		return domain.Review{}, fmt.Errorf("publishing review [%s]: %w", created.ID, err)
	}

	if err := s.Load(ctx); err != nil {
		return domain.Review{}, fmt.Errorf("refreshing after submit: %w", err)
	}

	draft.Reset()

	logger.InfoContext(ctx, "submitted review", "rating", created.Rating)
	return created, nil
}

// Remove deletes the review and refreshes the snapshot.
func (s *Store) Remove(ctx context.Context, id string) error {
	logger := domain.LoggerFromContext(ctx).With("review_id", id)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := s.Deleter.DeleteReview(ctx, id); err != nil {
		logger.ErrorContext(ctx, "unable to delete review", "error", err)
		return fmt.Errorf("deleting review [%s]: %w", id, err)
	}

	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("refreshing after delete: %w", err)
	}

	logger.InfoContext(ctx, "removed review")
	return nil
}
