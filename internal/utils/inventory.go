package utils

import (
	"slices"

	"github.com/osse101/MuForge_Go/internal/domain"
)

// FindSlot finds the first stack with the given item name in an inventory.
// Returns the index of the stack and the quantity found.
// Returns -1, 0 if not found.
func FindSlot(inventory []domain.ItemStack, name string) (int, int) {
	for i, stack := range inventory {
		if stack.Name == name {
			return i, stack.Qty
		}
	}
	return -1, 0
}

// HasItem reports whether any stack of the named item is present
func HasItem(inventory []domain.ItemStack, name string) bool {
	idx, _ := FindSlot(inventory, name)
	return idx >= 0
}

// CountItem sums quantities across every stack of the named item
func CountItem(inventory []domain.ItemStack, name string) int {
	total := 0
	for _, stack := range inventory {
		if stack.Name == name {
			total += stack.Qty
		}
	}
	return total
}

// RemoveItem drops every stack of the named item, keeping the order of the rest
func RemoveItem(inventory []domain.ItemStack, name string) []domain.ItemStack {
	return slices.DeleteFunc(inventory, func(stack domain.ItemStack) bool {
		return stack.Name == name
	})
}

// AddStacked merges qty units of name into the inventory.
// Partial stacks of the same name are filled in order first; whatever is left
// opens new stacks of at most stackSize each. No stack ever exceeds stackSize
// and names are never mixed. Slot limits are the caller's concern.
// A non-positive qty or stackSize leaves the inventory untouched.
func AddStacked(inventory []domain.ItemStack, name string, qty, stackSize int) []domain.ItemStack {
	if qty <= 0 || stackSize <= 0 {
		return inventory
	}

	for i := range inventory {
		if inventory[i].Name != name || inventory[i].Qty >= stackSize {
			continue
		}

		space := stackSize - inventory[i].Qty
		addNow := min(space, qty)
		inventory[i].Qty += addNow
		qty -= addNow

		if qty == 0 {
			return inventory
		}
	}

	for qty > 0 {
		addNow := min(stackSize, qty)
		inventory = append(inventory, domain.ItemStack{Name: name, Qty: addNow})
		qty -= addNow
	}
	return inventory
}
