package menu

import (
	"fmt"

	"github.com/atomicstack/slotmenu/host"
)

// Click describes a click dispatched to an item or slot action.
type Click struct {
	Viewer  host.ViewerID
	Slot    int
	Content *host.Content
}

// ClickFunc handles a click on a slot or item.
type ClickFunc func(Click)

// Item is an immutable-once-built content unit: a cosmetic payload plus an
// optional click callback. Builder methods return modified copies, so a
// placed Item never changes under a menu.
type Item struct {
	content host.Content
	onClick ClickFunc
}

// NewItem creates an item with the given display name.
func NewItem(name string) Item {
	return Item{content: host.Content{Name: name, Amount: 1}}
}

// FromContent wraps an existing cosmetic payload.
func FromContent(c host.Content) Item {
	return Item{content: c}
}

// Named returns a copy with the display name replaced.
func (it Item) Named(name string) Item {
	it.content.Name = name
	return it
}

// WithLore returns a copy with the given lore lines.
func (it Item) WithLore(lines ...string) Item {
	it.content.Lore = append([]string(nil), lines...)
	return it
}

// WithIcon returns a copy with the given icon identifier.
func (it Item) WithIcon(icon string) Item {
	it.content.Icon = icon
	return it
}

// WithAmount returns a copy with the given stack amount.
func (it Item) WithAmount(amount int) Item {
	it.content.Amount = amount
	return it
}

// Glowing returns a copy with the glow highlight enabled.
func (it Item) Glowing() Item {
	it.content.Glow = true
	return it
}

// OnClick returns a copy with the given click callback.
func (it Item) OnClick(fn ClickFunc) Item {
	it.onClick = fn
	return it
}

// Content returns the cosmetic payload.
func (it Item) Content() host.Content {
	c := it.content
	c.Lore = append([]string(nil), it.content.Lore...)
	return c
}

// Name returns the display name.
func (it Item) Name() string {
	return it.content.Name
}

// ClickAction returns the click callback, or nil.
func (it Item) ClickAction() ClickFunc {
	return it.onClick
}

// sameContent reports cosmetic equality, used when removing items from a
// backing list. Callbacks are not compared.
func (it Item) sameContent(other Item) bool {
	a, b := it.content, other.content
	if a.Name != b.Name || a.Icon != b.Icon || a.Amount != b.Amount || a.Glow != b.Glow {
		return false
	}
	if len(a.Lore) != len(b.Lore) {
		return false
	}
	for i := range a.Lore {
		if a.Lore[i] != b.Lore[i] {
			return false
		}
	}
	return true
}

// Navigation item factories. Icons are host-interpreted identifiers; the
// terminal host renders them as plain markers.

// PreviousPage is the default previous-page control.
func PreviousPage() Item {
	return NewItem("« Previous Page").WithIcon("arrow-left")
}

// NextPage is the default next-page control.
func NextPage() Item {
	return NewItem("Next Page »").WithIcon("arrow-right")
}

// PageInfo is the default page indicator.
func PageInfo(current, total int) Item {
	return NewItem(pageInfoLabel(current, total)).WithIcon("book")
}

// CloseButton is the default close control.
func CloseButton() Item {
	return NewItem("Close").WithIcon("barrier")
}

// BackButton is a generic back control for nested menus.
func BackButton() Item {
	return NewItem("« Back").WithIcon("arrow-left")
}

// ConfirmButton is the confirmation control used by confirmation menus.
func ConfirmButton() Item {
	return NewItem("Confirm").WithIcon("check").Glowing()
}

// CancelButton is the cancel control used by confirmation menus.
func CancelButton() Item {
	return NewItem("Cancel").WithIcon("cross")
}

// Placeholder is an empty filler item for unused slots.
func Placeholder() Item {
	return NewItem(" ").WithIcon("pane")
}

func pageInfoLabel(current, total int) string {
	return fmt.Sprintf("Page %d/%d", current, total)
}
