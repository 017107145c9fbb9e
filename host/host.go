// Package host declares the contracts a hosting process must satisfy to run
// slot menus: a container service, an event bus, a scheduler, and an optional
// free-text editor surface. The host delivers input events already decoded;
// everything here is invoked on the host's single event-delivery thread.
package host

import "github.com/google/uuid"

// ViewerID identifies a participant interacting with a container. Values are
// derived from the host's connection identity and are stable for the life of
// the connection.
type ViewerID uuid.UUID

// NewViewerID generates a fresh viewer identity. Hosts normally derive IDs
// from their own connection table; this is a convenience for hosts and tests
// that have no such table.
func NewViewerID() ViewerID {
	return ViewerID(uuid.New())
}

func (v ViewerID) String() string {
	return uuid.UUID(v).String()
}

// Content is the cosmetic payload a container slot can display. It carries no
// behaviour; click callbacks live on the menu side.
type Content struct {
	Name   string
	Lore   []string
	Icon   string
	Amount int
	Glow   bool
}

// Handle identifies a container created by the host. Implementations must be
// comparable so menus can match incoming events against their own container.
type Handle interface {
	Size() int
}

// Containers is the host's modal container service. SetSlot with nil content
// clears the slot.
type Containers interface {
	Create(size int, title string) (Handle, error)
	Open(viewer ViewerID, h Handle) error
	Close(viewer ViewerID) error
	SetSlot(h Handle, slot int, c *Content) error
	Clear(h Handle) error
	Refresh(viewer ViewerID) error
}

// Editors is the host's free-text input surface, used by board menus. Hosts
// without such a surface may leave it unimplemented; board menus then fail to
// open.
type Editors interface {
	OpenEditor(viewer ViewerID, lines []string) error
	CloseEditor(viewer ViewerID) error
}

// Scheduler marshals work between the host's event-delivery thread and its
// background execution facility. Menu state must only be touched from tasks
// submitted via Run or RunAfter. Delays are expressed in host ticks.
type Scheduler interface {
	Run(task func())
	RunAsync(task func())
	RunAfter(task func(), ticks int64)
	RunAsyncAfter(task func(), ticks int64)
}
