package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/event"
	"github.com/osse101/MuForge_Go/internal/logger"
	"github.com/osse101/MuForge_Go/internal/utils"
)

// CreateSession starts a new game with a fresh player and returns its id
func (s *service) CreateSession(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	rnd, err := s.newRand()
	if err != nil {
		log.Error(LogMsgSeedFailed, "error", err)
		return "", fmt.Errorf(ErrMsgCreateSessionFmt, err)
	}

	id := uuid.NewString()
	if err := s.store.Create(ctx, domain.NewSession(id, rnd, s.now())); err != nil {
		log.Error(LogMsgCreateSessionFailed, "session_id", id, "error", err)
		return "", fmt.Errorf(ErrMsgCreateSessionFmt, err)
	}

	log.Info(LogMsgSessionCreated, "session_id", id)
	s.publish(ctx, event.SessionCreated, id, "", 0, "")
	return id, nil
}

// GetState returns a snapshot of the session
func (s *service) GetState(ctx context.Context, sessionID string) (*State, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return stateOf(sess), nil
}

// newRand builds the random source for one session. With a fixed seed each
// session still gets its own PCG stream.
func (s *service) newRand() (domain.Rand, error) {
	if s.randSource != nil {
		return s.randSource(), nil
	}
	seed := s.seed
	if seed == 0 {
		var err error
		if seed, err = utils.NewSeed(); err != nil {
			return nil, err
		}
	}
	return utils.NewRand(seed, s.streams.Add(1)), nil
}
