package domain

import "slices"

// Enemy is a single combatant inside an encounter.
// ID is assigned when the encounter starts and never re-derived from position.
type Enemy struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Health       int    `json:"health"`
	MaxHealth    int    `json:"max_health"`
	Attack       int    `json:"attack"`
	Level        int    `json:"level"`
	CreditReward int    `json:"credit_reward"`
}

// Combat is an active encounter. A nil *Combat means no encounter.
type Combat struct {
	Enemies []Enemy `json:"enemies"`
}

// FindEnemy returns the roster index of the live enemy with the given id, or -1
func (c *Combat) FindEnemy(id int) int {
	if c == nil {
		return -1
	}
	return slices.IndexFunc(c.Enemies, func(e Enemy) bool { return e.ID == id })
}

// RemoveEnemy drops the enemy at index i, keeping roster order
func (c *Combat) RemoveEnemy(i int) {
	c.Enemies = slices.Delete(c.Enemies, i, i+1)
}

// Clone returns a deep copy of the combat
func (c *Combat) Clone() *Combat {
	if c == nil {
		return nil
	}
	return &Combat{Enemies: slices.Clone(c.Enemies)}
}
