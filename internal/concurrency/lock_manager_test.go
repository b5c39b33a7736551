package concurrency

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()

	assert.Same(t, lm.GetLock("a"), lm.GetLock("a"))
	assert.NotSame(t, lm.GetLock("a"), lm.GetLock("b"))
}

func TestWithLock_SerialisesSameKey(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock("session", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestWithLock_ReturnsFnError(t *testing.T) {
	lm := NewLockManager()
	boom := errors.New("boom")

	err := lm.WithLock("k", func() error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.True(t, lm.GetLock("k").TryLock(), "lock should be released after fn returns")
}

func TestRemove_CreatesFreshMutex(t *testing.T) {
	lm := NewLockManager()
	old := lm.GetLock("k")

	lm.Remove("k")

	assert.NotSame(t, old, lm.GetLock("k"))
}
