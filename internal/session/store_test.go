package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/testing/leaktest"
	"github.com/osse101/MuForge_Go/internal/utils"
)

type storeFactory struct {
	name string
	new  func() Store
}

func storeFactories() []storeFactory {
	return []storeFactory{
		{StoreKindMemory, func() Store { return NewMemoryStore() }},
		{StoreKindLRU, func() Store { return NewLRUStore(LRUOptions{Size: 100}) }},
	}
}

func newSession(id string) *domain.Session {
	return domain.NewSession(id, utils.NewRand(1, 1), time.Unix(0, 0))
}

func TestStore_Contract(t *testing.T) {
	for _, f := range storeFactories() {
		t.Run(f.name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("get unknown id", func(t *testing.T) {
				store := f.new()
				_, err := store.Get(ctx, "missing")
				assert.ErrorIs(t, err, domain.ErrSessionNotFound)
			})

			t.Run("update unknown id", func(t *testing.T) {
				store := f.new()
				called := false
				err := store.Update(ctx, "missing", func(*domain.Session) error {
					called = true
					return nil
				})
				assert.ErrorIs(t, err, domain.ErrSessionNotFound)
				assert.False(t, called)
			})

			t.Run("create rejects duplicate id", func(t *testing.T) {
				store := f.new()
				require.NoError(t, store.Create(ctx, newSession("a")))
				err := store.Create(ctx, newSession("a"))
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Equal(t, 1, store.Len())
			})

			t.Run("get returns an independent copy", func(t *testing.T) {
				store := f.new()
				require.NoError(t, store.Create(ctx, newSession("a")))

				snapshot, err := store.Get(ctx, "a")
				require.NoError(t, err)
				snapshot.Player.Credits = 999
				snapshot.Player.Inventory = append(snapshot.Player.Inventory, domain.ItemStack{Name: domain.ItemScrap, Qty: 1})

				again, err := store.Get(ctx, "a")
				require.NoError(t, err)
				assert.Zero(t, again.Player.Credits)
				assert.Empty(t, again.Player.Inventory)
			})

			t.Run("update mutates live state", func(t *testing.T) {
				store := f.new()
				require.NoError(t, store.Create(ctx, newSession("a")))

				err := store.Update(ctx, "a", func(sess *domain.Session) error {
					sess.Player.Credits = 42
					return nil
				})
				require.NoError(t, err)

				snapshot, err := store.Get(ctx, "a")
				require.NoError(t, err)
				assert.Equal(t, 42, snapshot.Player.Credits)
			})

			t.Run("update propagates fn error", func(t *testing.T) {
				store := f.new()
				require.NoError(t, store.Create(ctx, newSession("a")))
				boom := errors.New("boom")

				err := store.Update(ctx, "a", func(*domain.Session) error { return boom })

				assert.ErrorIs(t, err, boom)
			})

			t.Run("delete", func(t *testing.T) {
				store := f.new()
				require.NoError(t, store.Create(ctx, newSession("a")))

				require.NoError(t, store.Delete(ctx, "a"))
				assert.Zero(t, store.Len())
				_, err := store.Get(ctx, "a")
				assert.ErrorIs(t, err, domain.ErrSessionNotFound)
				assert.ErrorIs(t, store.Delete(ctx, "a"), domain.ErrSessionNotFound)
			})
		})
	}
}

func TestStore_SerialisesSameSession(t *testing.T) {
	for _, f := range storeFactories() {
		t.Run(f.name, func(t *testing.T) {
			ctx := context.Background()
			store := f.new()
			require.NoError(t, store.Create(ctx, newSession("shared")))

			const workers = 50
			var wg sync.WaitGroup
			for range workers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					err := store.Update(ctx, "shared", func(sess *domain.Session) error {
						credits := sess.Player.Credits
						time.Sleep(time.Microsecond)
						sess.Player.Credits = credits + 1
						return nil
					})
					assert.NoError(t, err)
				}()
			}
			wg.Wait()

			snapshot, err := store.Get(ctx, "shared")
			require.NoError(t, err)
			assert.Equal(t, workers, snapshot.Player.Credits)
		})
	}
}

func TestMemoryStore_IndependentSessionsNoLeak(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		ctx := context.Background()
		store := NewMemoryStore()

		var wg sync.WaitGroup
		for i := range 20 {
			id := fmt.Sprintf("s-%d", i)
			require.NoError(t, store.Create(ctx, newSession(id)))
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 10 {
					_ = store.Update(ctx, id, func(sess *domain.Session) error {
						sess.Player.Credits++
						return nil
					})
					_, _ = store.Get(ctx, id)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 20, store.Len())
		for i := range 20 {
			snapshot, err := store.Get(ctx, fmt.Sprintf("s-%d", i))
			require.NoError(t, err)
			assert.Equal(t, 10, snapshot.Player.Credits)
		}
	})
}

func TestMemoryStore_DeleteDuringUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, newSession("a")))

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Update(ctx, "a", func(sess *domain.Session) error {
				sess.Player.Credits++
				return nil
			})
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrSessionNotFound)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, store.Delete(ctx, "a"))
	}()
	wg.Wait()

	assert.Zero(t, store.Len())
}

func TestLRUStore_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	var evicted []string
	store := NewLRUStore(LRUOptions{
		Size:    2,
		OnEvict: func(id string) { evicted = append(evicted, id) },
	})

	require.NoError(t, store.Create(ctx, newSession("a")))
	require.NoError(t, store.Create(ctx, newSession("b")))
	_, err := store.Get(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, newSession("c")))

	assert.Equal(t, []string{"b"}, evicted)
	assert.Equal(t, 2, store.Len())
	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = store.Get(ctx, "a")
	assert.NoError(t, err)
}

func TestLRUStore_ExpiresIdleSessions(t *testing.T) {
	ctx := context.Background()
	store := NewLRUStore(LRUOptions{Size: 10, TTL: 50 * time.Millisecond})
	require.NoError(t, store.Create(ctx, newSession("a")))

	time.Sleep(100 * time.Millisecond)

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestLRUStore_UpdateRenewsTTL(t *testing.T) {
	ctx := context.Background()
	store := NewLRUStore(LRUOptions{Size: 10, TTL: 300 * time.Millisecond})
	require.NoError(t, store.Create(ctx, newSession("a")))

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, store.Update(ctx, "a", func(*domain.Session) error { return nil }))
	time.Sleep(200 * time.Millisecond)

	_, err := store.Get(ctx, "a")
	assert.NoError(t, err)
}
