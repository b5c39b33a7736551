package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/MuForge_Go/internal/concurrency"
	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// MemoryStore keeps sessions for the life of the process with no eviction
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	locks    *concurrency.LockManager
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*domain.Session),
		locks:    concurrency.NewLockManager(),
	}
}

// Create registers a new session. Reusing a live id is rejected.
func (s *MemoryStore) Create(ctx context.Context, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.ID]; exists {
		return fmt.Errorf(ErrMsgDuplicateSessionFmt, sess.ID, domain.ErrInvalidInput)
	}
	s.sessions[sess.ID] = sess
	logger.FromContext(ctx).Debug(LogMsgSessionStored, "session_id", sess.ID, "store", StoreKindMemory)
	return nil
}

// Get returns a deep copy of the session
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	var snapshot *domain.Session
	err := s.withSession(id, func(sess *domain.Session) error {
		snapshot = sess.Clone()
		return nil
	})
	return snapshot, err
}

// Update runs fn against the live session under its lock
func (s *MemoryStore) Update(_ context.Context, id string, fn func(sess *domain.Session) error) error {
	return s.withSession(id, fn)
}

// Delete drops the session and its lock
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	return s.locks.WithLock(id, func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.sessions[id]; !ok {
			return notFound(id)
		}
		delete(s.sessions, id)
		s.locks.Remove(id)
		logger.FromContext(ctx).Debug(LogMsgSessionDeleted, "session_id", id)
		return nil
	})
}

// Len reports the number of live sessions
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// withSession takes the per-session lock, then confirms the session still
// exists before calling fn, so a concurrent Delete is never raced.
func (s *MemoryStore) withSession(id string, fn func(sess *domain.Session) error) error {
	if !s.exists(id) {
		return notFound(id)
	}
	return s.locks.WithLock(id, func() error {
		sess, ok := s.lookup(id)
		if !ok {
			return notFound(id)
		}
		return fn(sess)
	})
}

func (s *MemoryStore) exists(id string) bool {
	_, ok := s.lookup(id)
	return ok
}

func (s *MemoryStore) lookup(id string) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func notFound(id string) error {
	return fmt.Errorf(ErrMsgSessionNotFoundFmt, id, domain.ErrSessionNotFound)
}
