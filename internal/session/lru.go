package session

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MuForge_Go/internal/concurrency"
	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// LRUOptions configures an LRUStore
type LRUOptions struct {
	// Size bounds the number of live sessions; the least recently used is evicted
	Size int
	// TTL expires idle sessions. Every Update renews it. Zero disables expiry.
	TTL time.Duration
	// OnEvict is called with the id of every session leaving the cache
	OnEvict func(id string)
}

// LRUStore keeps a bounded set of sessions in an expiring LRU cache.
// Note: a non-zero TTL starts a cleanup goroutine that lives as long as the process.
type LRUStore struct {
	cache *expirable.LRU[string, *domain.Session]
	locks *concurrency.LockManager
}

// NewLRUStore creates an LRUStore
func NewLRUStore(opts LRUOptions) *LRUStore {
	s := &LRUStore{locks: concurrency.NewLockManager()}
	onEvict := func(id string, _ *domain.Session) {
		s.locks.Remove(id)
		if opts.OnEvict != nil {
			opts.OnEvict(id)
		}
	}
	s.cache = expirable.NewLRU[string, *domain.Session](opts.Size, onEvict, opts.TTL)
	return s
}

// Create registers a new session, possibly evicting the oldest one
func (s *LRUStore) Create(ctx context.Context, sess *domain.Session) error {
	if s.cache.Contains(sess.ID) {
		return fmt.Errorf(ErrMsgDuplicateSessionFmt, sess.ID, domain.ErrInvalidInput)
	}
	evicted := s.cache.Add(sess.ID, sess)
	logger.FromContext(ctx).Debug(LogMsgSessionStored, "session_id", sess.ID, "store", StoreKindLRU, "evicted", evicted)
	return nil
}

// Get returns a deep copy of the session and marks it recently used
func (s *LRUStore) Get(_ context.Context, id string) (*domain.Session, error) {
	var snapshot *domain.Session
	err := s.withSession(id, func(sess *domain.Session) error {
		snapshot = sess.Clone()
		return nil
	})
	return snapshot, err
}

// Update runs fn against the live session under its lock and renews its TTL
func (s *LRUStore) Update(_ context.Context, id string, fn func(sess *domain.Session) error) error {
	return s.withSession(id, func(sess *domain.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		// renew only if the entry was not evicted while fn ran
		if current, ok := s.cache.Peek(id); ok && current == sess {
			s.cache.Add(id, sess)
		}
		return nil
	})
}

// Delete drops the session. The eviction callback releases its lock.
func (s *LRUStore) Delete(ctx context.Context, id string) error {
	return s.locks.WithLock(id, func() error {
		if !s.cache.Remove(id) {
			return notFound(id)
		}
		logger.FromContext(ctx).Debug(LogMsgSessionDeleted, "session_id", id)
		return nil
	})
}

// Len reports the number of cached sessions, including expired ones not yet swept
func (s *LRUStore) Len() int {
	return s.cache.Len()
}

func (s *LRUStore) withSession(id string, fn func(sess *domain.Session) error) error {
	if _, ok := s.cache.Get(id); !ok {
		return notFound(id)
	}
	return s.locks.WithLock(id, func() error {
		sess, ok := s.cache.Peek(id)
		if !ok {
			return notFound(id)
		}
		return fn(sess)
	})
}
