package service

import (
	"context"
	"time"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
	"golang.org/x/sync/singleflight"
)

// loadTimeout bounds a shared load, which no longer follows any single
// caller's cancellation.
const loadTimeout = 10 * time.Second

// ThreadHeaderCache stores thread headers outside the database.
// Get reports a miss with ok == false and a nil error.
type ThreadHeaderCache interface {
	Get(ctx context.Context, id domain.ThreadId) (thread domain.ThreadDetail, ok bool, err error)
	Set(ctx context.Context, thread domain.ThreadDetail) error
}

// CachedThreadRepository is a read-through cache in front of a
// ThreadRepository. Threads are never edited, so entries are only
// dropped by expiry. Cache failures fall back to the wrapped repository.
type CachedThreadRepository struct {
	ThreadRepository
	cache ThreadHeaderCache
	group singleflight.Group
}

func NewCachedThreadRepository(repo ThreadRepository, cache ThreadHeaderCache) *CachedThreadRepository {
	return &CachedThreadRepository{ThreadRepository: repo, cache: cache}
}

// GetThreadById collapses concurrent misses for the same id into one
// repository call. Each caller stops waiting when its own ctx is done;
// the shared load keeps running for the others.
func (r *CachedThreadRepository) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if thread, ok := r.lookup(ctx, id); ok {
		return thread, nil
	}

	ch := r.group.DoChan(id, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		thread, err := r.ThreadRepository.GetThreadById(loadCtx, id)
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		if err := r.cache.Set(loadCtx, thread); err != nil {
			logger.Log.Warn("failed to cache thread", "thread_id", id, "error", err)
		}
		return thread, nil
	})

	select {
	case <-ctx.Done():
		return domain.ThreadDetail{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.ThreadDetail{}, res.Err
		}
		return res.Val.(domain.ThreadDetail), nil
	}
}

// VerifyThreadExists treats a cached header as proof of existence.
func (r *CachedThreadRepository) VerifyThreadExists(ctx context.Context, id domain.ThreadId) error {
	if _, ok := r.lookup(ctx, id); ok {
		return nil
	}
	return r.ThreadRepository.VerifyThreadExists(ctx, id)
}

func (r *CachedThreadRepository) lookup(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, bool) {
	thread, ok, err := r.cache.Get(ctx, id)
	switch {
	case err != nil:
		metrics.ObserveCacheLookup("error")
		logger.Log.Warn("thread cache read failed", "thread_id", id, "error", err)
		return domain.ThreadDetail{}, false
	case !ok:
		metrics.ObserveCacheLookup("miss")
		return domain.ThreadDetail{}, false
	}
	metrics.ObserveCacheLookup("hit")
	return thread, true
}
