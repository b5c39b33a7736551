// Package concurrency provides keyed locking for per-session serialisation.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Different keys never contend.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the key's mutex
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// Remove forgets the key's mutex. A caller still holding the old mutex keeps
// it; the next GetLock for the key creates a fresh one.
func (lm *LockManager) Remove(key string) {
	lm.locks.Delete(key)
}
