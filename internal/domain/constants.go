package domain

// Item name constants - the names clients send and the names stored in inventories
const (
	ItemCredits       = "Credits" // pseudo-item used only in loot manifests
	ItemScrap         = "Scrap"
	ItemIronScrap     = "Iron Scrap"
	ItemEnergyCell    = "Energy Cell"
	ItemChargeCell    = "Charge Cell"
	ItemNanoRepairKit = "Nano Repair Kit"
	ItemMedpack       = "Medpack"
	ItemArmor         = "Armor"
	ItemEnergyShield  = "Energy Shield"
	ItemWeapon        = "Weapon"
	ItemBlaster       = "Blaster"
	ItemPlasmaBlaster = "Plasma Blaster"
)

// Location id constants
const (
	LocationTerra         = "terra"
	LocationDeltaBase     = "delta_base"
	LocationDeltaBaseNode = "node.delta.base"
)

// Inventory limits
const (
	// DefaultStackSize is the maximum quantity held by a single stack of a stackable item
	DefaultStackSize = 64

	// DefaultMaxInventorySlots is the slot count at which search stops adding items
	DefaultMaxInventorySlots = 6
)

// Starting character values for a fresh session
const (
	StartingPlayerName = "Traveler"
	StartingHealth     = 100
	StartingXPToNext   = 50
	StartingLevel      = 1
	StartingCredits    = 0

	StartingNodeID          = LocationTerra
	StartingNodeName        = "Terra"
	StartingNodeDescription = "The home planet. Your journey begins here."
)

// Player-facing message log entries
const (
	MsgPlasmaLastCharge = "⚠️ Your Plasma Blaster will break after this adventure unless repaired with a Nano Repair Kit."
	MsgPlasmaBroke      = "💥 Your Plasma Blaster breaks!"
)

// IsScrap reports whether name is one of the depositable scrap kinds.
func IsScrap(name string) bool {
	return name == ItemScrap || name == ItemIronScrap
}
