// Package session keeps live game sessions in process memory and serialises
// every mutation of one session behind that session's lock.
package session

import (
	"context"

	"github.com/osse101/MuForge_Go/internal/domain"
)

// Store maps session ids to live game state.
//
// Get hands out a deep copy taken under the session lock. Update runs fn
// under the same lock against the live session; fn must not retain the
// pointer after returning. Unknown ids fail with domain.ErrSessionNotFound.
type Store interface {
	Create(ctx context.Context, sess *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Update(ctx context.Context, id string, fn func(sess *domain.Session) error) error
	Delete(ctx context.Context, id string) error
	Len() int
}
