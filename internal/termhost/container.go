package termhost

import "github.com/atomicstack/slotmenu/host"

// slotsPerRow mirrors the row width the menus lay out against.
const slotsPerRow = 9

// Container is a terminal-rendered slot container. The model draws it as a
// grid, one cell per slot.
type Container struct {
	title string
	slots []*host.Content
}

func newContainer(size int, title string) *Container {
	return &Container{
		title: title,
		slots: make([]*host.Content, size),
	}
}

// Size implements host.Handle.
func (c *Container) Size() int { return len(c.slots) }

// Title returns the container title shown above the grid.
func (c *Container) Title() string { return c.title }

// Slot returns the content at slot, or nil for an empty or out-of-range slot.
func (c *Container) Slot(slot int) *host.Content {
	if slot < 0 || slot >= len(c.slots) {
		return nil
	}
	return c.slots[slot]
}

func (c *Container) set(slot int, content *host.Content) {
	if slot < 0 || slot >= len(c.slots) {
		return
	}
	c.slots[slot] = content
}

func (c *Container) clear() {
	for i := range c.slots {
		c.slots[i] = nil
	}
}

func (c *Container) rows() int {
	n := len(c.slots) / slotsPerRow
	if len(c.slots)%slotsPerRow != 0 {
		n++
	}
	return n
}
