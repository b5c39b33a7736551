package domain

import "slices"

// Player is the character owned by a single session
type Player struct {
	Name              string      `json:"name"`
	Health            int         `json:"health"`
	MaxHealth         int         `json:"max_health"`
	XP                int         `json:"xp"`
	XPToNext          int         `json:"xp_to_next"`
	Level             int         `json:"level"`
	Credits           int         `json:"credits"`
	Inventory         []ItemStack `json:"inventory"`
	PlasmaDurability  int         `json:"plasma_durability"`
	UnlockedLocations []string    `json:"unlocked_locations"`
}

// NewPlayer returns the character every new session starts with
func NewPlayer() *Player {
	return &Player{
		Name:              StartingPlayerName,
		Health:            StartingHealth,
		MaxHealth:         StartingHealth,
		XP:                0,
		XPToNext:          StartingXPToNext,
		Level:             StartingLevel,
		Credits:           StartingCredits,
		Inventory:         []ItemStack{},
		PlasmaDurability:  0,
		UnlockedLocations: []string{},
	}
}

// IsDead reports whether the player has been reduced to zero health
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// HasUnlocked reports whether the location id is already unlocked
func (p *Player) HasUnlocked(locationID string) bool {
	return slices.Contains(p.UnlockedLocations, locationID)
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	c.Inventory = slices.Clone(p.Inventory)
	c.UnlockedLocations = slices.Clone(p.UnlockedLocations)
	if c.Inventory == nil {
		c.Inventory = []ItemStack{}
	}
	if c.UnlockedLocations == nil {
		c.UnlockedLocations = []string{}
	}
	return &c
}
