package loot

// ==================== Player Messages ====================

const (
	MsgInventoryFull = "Your inventory is full. You leave any scraps you find behind."
	MsgSearchFound   = "You scour the area and find some useful scraps."
)

// ==================== Log Messages ====================

const (
	LogMsgSearchCalled        = "Search called"
	LogMsgSearchInventoryFull = "Search skipped, inventory full"
	LogMsgSearchCompleted     = "Search completed"
	LogMsgClaimCalled         = "Claim called"
	LogMsgLootClaimed         = "Loot claimed"
)
