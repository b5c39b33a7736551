package economy

// ==================== Error Messages ====================

// Formatted error messages, each wrapping a domain sentinel
const (
	ErrMsgInvalidScrapTypeFmt   = "invalid scrap type %q: %w"
	ErrMsgItemNotPurchasableFmt = "%s: %w"
	ErrMsgUnknownLocationFmt    = "%s: %w"
	ErrMsgInsufficientFundsFmt  = "cost %d, balance %d: %w"
)

// ==================== Player Messages ====================

const (
	MsgDepositedFmt = "Deposited %d %s for %d credits."
	MsgPurchasedFmt = "Purchased %s for %d credits!"
	MsgUnlockedFmt  = "Unlocked %s!"
	MsgHealedFmt    = "Healed for %d"
)

// ==================== Log Messages ====================

const (
	LogMsgDepositCalled    = "Deposit called"
	LogMsgScrapDeposited   = "Scrap deposited"
	LogMsgPurchaseCalled   = "Purchase called"
	LogMsgItemPurchased    = "Item purchased"
	LogMsgUnlockCalled     = "UnlockLocation called"
	LogMsgLocationUnlocked = "Location unlocked"
	LogMsgAlreadyUnlocked  = "Location already unlocked, charging again"
	LogMsgPlayerHealed     = "Player healed"
	LogMsgCreditsGranted   = "Credits granted"
	LogMsgGetPricesCalled  = "GetPrices called"
)

// ==================== Grant Sources ====================

// Sources passed to Grant for logging and metrics
const (
	SourceCombatReward = "combat_reward"
	SourceLootClaim    = "loot_claim"
	SourceSearchBonus  = "search_bonus"
	SourceDeposit      = "deposit"
	SourcePurchase     = "purchase"
	SourceUnlock       = "unlock"
)
