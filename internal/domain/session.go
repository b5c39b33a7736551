package domain

import (
	"slices"
	"time"
)

// Rand is the random source every game operation draws from.
// *math/rand/v2.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// Node is the location the player currently stands in
type Node struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"desc"`
}

// StartingNode returns the node new sessions begin on
func StartingNode() Node {
	return Node{
		ID:          StartingNodeID,
		Name:        StartingNodeName,
		Description: StartingNodeDescription,
	}
}

// Session is one player's in-memory game state, addressed by an opaque id
type Session struct {
	ID            string       `json:"session_id"`
	Player        *Player      `json:"player"`
	Node          Node         `json:"node"`
	Combat        *Combat      `json:"combat"`
	UnclaimedLoot LootManifest `json:"loot"`
	Messages      []string     `json:"messages"`
	CreatedAt     time.Time    `json:"created_at"`

	// Rand is owned by the session so concurrent sessions never share RNG state
	Rand Rand `json:"-"`
}

// NewSession builds a fresh session around a new player
func NewSession(id string, rnd Rand, now time.Time) *Session {
	return &Session{
		ID:            id,
		Player:        NewPlayer(),
		Node:          StartingNode(),
		Combat:        nil,
		UnclaimedLoot: LootManifest{},
		Messages:      []string{},
		CreatedAt:     now,
		Rand:          rnd,
	}
}

// AddMessage appends an entry to the session message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)
}

// Clone returns a deep copy suitable for handing outside the session lock.
// The random source is not copied.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := &Session{
		ID:            s.ID,
		Player:        s.Player.Clone(),
		Node:          s.Node,
		Combat:        s.Combat.Clone(),
		UnclaimedLoot: slices.Clone(s.UnclaimedLoot),
		Messages:      slices.Clone(s.Messages),
		CreatedAt:     s.CreatedAt,
	}
	if c.UnclaimedLoot == nil {
		c.UnclaimedLoot = LootManifest{}
	}
	if c.Messages == nil {
		c.Messages = []string{}
	}
	return c
}
