// Package menu implements a reusable widget layer for slot-addressed,
// paginated menus on top of an abstract host (see the host package). Menus
// are state machines driven by host input events; all operations must be
// invoked from the host's event-delivery thread.
package menu

import (
	"fmt"

	"github.com/atomicstack/slotmenu/host"
	"github.com/google/uuid"
)

// ID uniquely identifies a menu instance. It is generated at construction and
// stable for the menu's lifetime; the registry uses it for global lookups.
type ID uuid.UUID

func newID() ID {
	return ID(uuid.New())
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// Menu is the minimal contract every menu kind satisfies. Variant-specific
// behaviour (pagination, text capture) lives on the concrete types and the
// capability interfaces below, so unsupported operations are inexpressible
// rather than runtime surprises.
type Menu interface {
	ID() ID
	Open(viewer host.ViewerID) error
	Close(viewer host.ViewerID)
	Register()
	Unregister()
	IsOpen() bool
	Viewers() []host.ViewerID
}

// Paginator is the capability of menus that window a backing item list.
type Paginator interface {
	CurrentPage() int
	TotalPages() int
	NextPage()
	PreviousPage()
	GoToPage(page int) bool
}

// TextCapture is the capability of single-shot input menus. Submit feeds
// input programmatically, firing the input handler and closing the surface
// exactly as a host submit event would.
type TextCapture interface {
	Submit(viewer host.ViewerID, lines ...string)
}

// PaginatorOf returns the pagination capability of m, or ErrUnsupported when
// the menu kind has no pages.
func PaginatorOf(m Menu) (Paginator, error) {
	if p, ok := m.(Paginator); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%s: pagination: %w", kindOf(m), ErrUnsupported)
}

// TextCaptureOf returns the text-capture capability of m, or ErrUnsupported
// when the menu kind captures no text.
func TextCaptureOf(m Menu) (TextCapture, error) {
	if t, ok := m.(TextCapture); ok {
		return t, nil
	}
	return nil, fmt.Errorf("%s: text capture: %w", kindOf(m), ErrUnsupported)
}

func kindOf(m Menu) string {
	switch m.(type) {
	case *Paginated:
		return "paginated menu"
	case *Prompt:
		return "prompt menu"
	case *Board:
		return "board menu"
	default:
		return "menu"
	}
}
