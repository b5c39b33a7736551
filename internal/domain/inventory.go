package domain

import "encoding/json"

// ItemStack is a bounded-quantity grouping of identical items
type ItemStack struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// UnmarshalJSON accepts the legacy "count" field as an alias for "qty".
// Older clients stored stack sizes under both keys; only qty survives decoding.
func (s *ItemStack) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string `json:"name"`
		Qty   *int   `json:"qty"`
		Count *int   `json:"count"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Name = raw.Name
	switch {
	case raw.Qty != nil:
		s.Qty = *raw.Qty
	case raw.Count != nil:
		s.Qty = *raw.Count
	default:
		s.Qty = 0
	}
	return nil
}

// LootEntry is one line of a loot manifest or search result
type LootEntry struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// UnmarshalJSON applies the same qty/count folding as ItemStack.
func (e *LootEntry) UnmarshalJSON(data []byte) error {
	var stack ItemStack
	if err := json.Unmarshal(data, &stack); err != nil {
		return err
	}
	e.Name, e.Qty = stack.Name, stack.Qty
	return nil
}

// LootManifest is a pending, unclaimed reward list attached to a session
type LootManifest []LootEntry
