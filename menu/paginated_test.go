package menu

import (
	"errors"
	"testing"

	"github.com/atomicstack/slotmenu/host"
	"github.com/atomicstack/slotmenu/internal/hosttest"
)

func TestNewPaginatedRejectsBadSize(t *testing.T) {
	_, reg := newTestHost(t)
	if _, err := NewPaginated(reg, "Broken", 10); !errors.Is(err, ErrBadSize) {
		t.Fatalf("expected ErrBadSize, got %v", err)
	}
}

func TestPaginatedWindowsItemsAcrossPages(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Catalog", 54)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.SetItems(numberedItems(65))

	if got := p.TotalPages(); got != 2 {
		t.Fatalf("expected 2 pages for 65 items over 45 slots, got %d", got)
	}
	viewer := host.NewViewerID()
	if err := p.Open(viewer); err != nil {
		t.Fatalf("open: %v", err)
	}
	c := h.LastContainer()
	if !c.OpenFor(viewer) {
		t.Fatalf("host container not opened for viewer")
	}
	if got := len(p.PageItems()); got != 45 {
		t.Fatalf("expected 45 items on page 1, got %d", got)
	}
	// 45 content + page info + close + next; no previous on the first page.
	if got := c.FilledSlots(); got != 48 {
		t.Fatalf("unexpected filled slots on page 1: got %d want 48", got)
	}
	if c.Slot(45) != nil {
		t.Fatalf("previous-page control placed on the first page")
	}
	if info := c.Slot(49); info == nil || info.Name != "Page 1/2" {
		t.Fatalf("unexpected page indicator: %+v", info)
	}

	p.NextPage()
	if p.CurrentPage() != 2 {
		t.Fatalf("expected page 2, got %d", p.CurrentPage())
	}
	if got := len(p.PageItems()); got != 20 {
		t.Fatalf("expected 20 items on page 2, got %d", got)
	}
	// 20 content + page info + close + previous; no next on the last page.
	if got := c.FilledSlots(); got != 23 {
		t.Fatalf("unexpected filled slots on page 2: got %d want 23", got)
	}
	if c.Slot(53) != nil {
		t.Fatalf("next-page control placed on the last page")
	}
	if first := c.Slot(0); first == nil || first.Name != "item 46" {
		t.Fatalf("unexpected first item on page 2: %+v", first)
	}
}

func TestPaginatedEmptyListHasOnePage(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Empty", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	viewer := host.NewViewerID()
	if err := p.Open(viewer); err != nil {
		t.Fatalf("open: %v", err)
	}
	if p.TotalPages() != 1 || p.CurrentPage() != 1 {
		t.Fatalf("empty list: got page %d of %d, want 1 of 1",
			p.CurrentPage(), p.TotalPages())
	}
	// Only the page indicator and the close control are drawn.
	c := h.LastContainer()
	if got := c.FilledSlots(); got != 2 {
		t.Fatalf("unexpected filled slots: got %d want 2", got)
	}
	if info := c.Slot(22); info == nil || info.Name != "Page 1/1" {
		t.Fatalf("unexpected page indicator: %+v", info)
	}
	if closeBtn := c.Slot(25); closeBtn == nil || closeBtn.Name != "Close" {
		t.Fatalf("unexpected close control: %+v", closeBtn)
	}
}

func TestPaginatedPageBoundaries(t *testing.T) {
	_, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Steps", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.SetItems(numberedItems(3))
	p.SetItemsPerPage(1)
	if p.TotalPages() != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages())
	}

	p.PreviousPage()
	if p.CurrentPage() != 1 {
		t.Fatalf("previous at first page moved to %d", p.CurrentPage())
	}
	if !p.GoToPage(3) {
		t.Fatalf("GoToPage(3) rejected a valid page")
	}
	p.NextPage()
	if p.CurrentPage() != 3 {
		t.Fatalf("next at last page moved to %d", p.CurrentPage())
	}
	if p.GoToPage(0) || p.GoToPage(4) {
		t.Fatalf("GoToPage accepted an out-of-range page")
	}
	if p.CurrentPage() != 3 {
		t.Fatalf("failed GoToPage mutated the page: %d", p.CurrentPage())
	}
}

func TestPaginatedOpenPageResetsOutOfRange(t *testing.T) {
	_, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Reset", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.SetItems(numberedItems(5))
	viewer := host.NewViewerID()
	if err := p.OpenPage(viewer, 9); err != nil {
		t.Fatalf("open: %v", err)
	}
	if p.CurrentPage() != 1 {
		t.Fatalf("out-of-range open landed on page %d", p.CurrentPage())
	}
}

func TestPaginatedMutationsClampPage(t *testing.T) {
	_, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Shrink", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.SetItems(numberedItems(6))
	p.SetItemsPerPage(5)
	if !p.GoToPage(2) {
		t.Fatalf("GoToPage(2) rejected")
	}

	p.RemoveItem(NewItem("item 6"))
	if got := len(p.AllItems()); got != 5 {
		t.Fatalf("expected 5 items after removal, got %d", got)
	}
	if p.TotalPages() != 1 || p.CurrentPage() != 1 {
		t.Fatalf("page not clamped after removal: page %d of %d",
			p.CurrentPage(), p.TotalPages())
	}

	p.GoToPage(1)
	p.AddItem(NewItem("item 6"))
	if p.TotalPages() != 2 {
		t.Fatalf("expected 2 pages after re-add, got %d", p.TotalPages())
	}

	p.GoToPage(2)
	p.ClearItems()
	if p.CurrentPage() != 1 || p.TotalPages() != 1 {
		t.Fatalf("clear did not clamp: page %d of %d", p.CurrentPage(), p.TotalPages())
	}
}

func TestPaginatedRemoveItemMatchesContentOnly(t *testing.T) {
	_, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Dedup", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.SetItems([]Item{
		NewItem("keep"),
		NewItem("dup").OnClick(func(Click) {}),
		NewItem("dup"),
	})
	p.RemoveItem(NewItem("dup"))
	items := p.AllItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name() != "keep" || items[1].Name() != "dup" {
		t.Fatalf("removed the wrong occurrence: %q, %q", items[0].Name(), items[1].Name())
	}
	// Removing something absent is a no-op.
	p.RemoveItem(NewItem("ghost"))
	if len(p.AllItems()) != 2 {
		t.Fatalf("no-op removal changed the list")
	}
}

func TestPaginatedClickRouting(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Routes", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var itemClicks, hookClicks int
	items := numberedItems(20)
	items[0] = items[0].OnClick(func(c Click) {
		itemClicks++
		if c.Slot != 0 {
			t.Fatalf("unexpected click slot %d", c.Slot)
		}
	})
	p.SetItems(items)
	p.OnContentClick(func(Click) { hookClicks++ })

	viewer := host.NewViewerID()
	if err := p.Open(viewer); err != nil {
		t.Fatalf("open: %v", err)
	}

	// Item callback wins over the content hook.
	if !h.Click(viewer, p.Handle(), 0) {
		t.Fatalf("content click not consumed")
	}
	if itemClicks != 1 || hookClicks != 0 {
		t.Fatalf("unexpected dispatch: item %d hook %d", itemClicks, hookClicks)
	}
	// An item without its own callback falls back to the hook.
	if !h.Click(viewer, p.Handle(), 1) {
		t.Fatalf("content click not consumed")
	}
	if hookClicks != 1 {
		t.Fatalf("content hook did not fire: %d", hookClicks)
	}

	// Navigation: next advances, previous from page 1 is inert but consumed.
	p.SetItemsPerPage(10)
	if !h.Click(viewer, p.Handle(), 18) {
		t.Fatalf("previous click not consumed")
	}
	if p.CurrentPage() != 1 {
		t.Fatalf("previous at first page moved to %d", p.CurrentPage())
	}
	if !h.Click(viewer, p.Handle(), 26) {
		t.Fatalf("next click not consumed")
	}
	if p.CurrentPage() != 2 {
		t.Fatalf("next click landed on page %d", p.CurrentPage())
	}

	// Close control drops the viewer.
	if !h.Click(viewer, p.Handle(), 25) {
		t.Fatalf("close click not consumed")
	}
	if p.IsOpen() {
		t.Fatalf("menu still open after close click")
	}
	if reg.HasOpen(viewer) {
		t.Fatalf("viewer still registered after close click")
	}
}

func TestPaginatedExplicitActionWinsOverNavigation(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Override", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.SetItems(numberedItems(40))
	fired := 0
	p.SetAction(26, func(Click) { fired++ })

	viewer := host.NewViewerID()
	if err := p.Open(viewer); err != nil {
		t.Fatalf("open: %v", err)
	}
	if !h.Click(viewer, p.Handle(), 26) {
		t.Fatalf("action click not consumed")
	}
	if fired != 1 {
		t.Fatalf("explicit action did not fire: %d", fired)
	}
	if p.CurrentPage() != 1 {
		t.Fatalf("navigation ran despite explicit action: page %d", p.CurrentPage())
	}
}

func TestPaginatedDeadSlotClickIsConsumed(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Sparse", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.SetContentSlots([]int{0, 1}); err != nil {
		t.Fatalf("set content slots: %v", err)
	}
	p.SetItems(numberedItems(2))
	viewer := host.NewViewerID()
	if err := p.Open(viewer); err != nil {
		t.Fatalf("open: %v", err)
	}
	// Slot 5 belongs to neither content nor navigation but sits inside the
	// menu's container, so the click must not leak to the host.
	if !h.Click(viewer, p.Handle(), 5) {
		t.Fatalf("dead-slot click escaped the menu")
	}
}

func TestPaginatedIgnoresStaleEvents(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Mine", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other, err := NewPaginated(reg, "Other", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.SetItems(numberedItems(3))
	viewer := host.NewViewerID()
	stranger := host.NewViewerID()
	if err := p.Open(viewer); err != nil {
		t.Fatalf("open: %v", err)
	}

	if h.Click(stranger, p.Handle(), 0) {
		t.Fatalf("click from a non-viewer was consumed")
	}
	if h.Click(viewer, other.Handle(), 0) {
		t.Fatalf("click on a foreign container was consumed")
	}
}

func TestPaginatedCloseSuppressesStaleCloseEvent(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Once", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	closes := 0
	p.OnClose(func(host.ViewerID) { closes++ })
	viewer := host.NewViewerID()
	if err := p.Open(viewer); err != nil {
		t.Fatalf("open: %v", err)
	}

	p.Close(viewer)
	if closes != 1 {
		t.Fatalf("close hook fired %d times, want 1", closes)
	}
	// The host emits a close event after the programmatic close; the viewer
	// is already gone, so the hook must not fire again.
	h.CloseEvent(viewer, p.Handle())
	if closes != 1 {
		t.Fatalf("close hook double-fired: %d", closes)
	}
	p.Close(viewer)
	if closes != 1 {
		t.Fatalf("repeated close fired the hook again: %d", closes)
	}
}

func TestPaginatedUserCloseAndDisconnect(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Leave", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	closes := 0
	p.OnClose(func(host.ViewerID) { closes++ })
	alice := host.NewViewerID()
	bob := host.NewViewerID()
	if err := p.Open(alice); err != nil {
		t.Fatalf("open alice: %v", err)
	}
	if err := p.Open(bob); err != nil {
		t.Fatalf("open bob: %v", err)
	}

	h.CloseEvent(alice, p.Handle())
	if closes != 1 {
		t.Fatalf("close hook fired %d times, want 1", closes)
	}
	if reg.HasOpen(alice) {
		t.Fatalf("alice still registered after user close")
	}
	if !p.IsOpen() {
		t.Fatalf("menu closed while bob still views it")
	}

	h.Disconnect(bob)
	if closes != 2 {
		t.Fatalf("disconnect did not fire the close hook: %d", closes)
	}
	if p.IsOpen() || reg.OpenCount() != 0 {
		t.Fatalf("viewer state leaked after disconnect")
	}
}

func TestPaginatedNavigationOverridesSuppressDefaults(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Custom", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.SetItems(numberedItems(3))
	p.SetNavigationItem(20, NewItem("Sort").WithIcon("hopper"))
	viewer := host.NewViewerID()
	if err := p.Open(viewer); err != nil {
		t.Fatalf("open: %v", err)
	}

	c := h.LastContainer()
	if sort := c.Slot(20); sort == nil || sort.Name != "Sort" {
		t.Fatalf("override not placed: %+v", sort)
	}
	if c.Slot(22) != nil {
		t.Fatalf("default page indicator drawn alongside overrides")
	}
	if c.Slot(25) != nil {
		t.Fatalf("default close control drawn alongside overrides")
	}
}

func TestPaginatedNarrowNavigationShowsOnlyPageInfo(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Narrow", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.SetContentSlots([]int{0, 1, 2, 3}); err != nil {
		t.Fatalf("set content slots: %v", err)
	}
	if err := p.SetNavigationSlots([]int{18, 19}); err != nil {
		t.Fatalf("set navigation slots: %v", err)
	}
	p.SetItems(numberedItems(10))
	viewer := host.NewViewerID()
	if err := p.Open(viewer); err != nil {
		t.Fatalf("open: %v", err)
	}

	c := h.LastContainer()
	if info := c.Slot(19); info == nil || info.Name != "Page 1/3" {
		t.Fatalf("page indicator missing from narrow navigation: %+v", c.Slot(19))
	}
	if c.Slot(18) != nil {
		t.Fatalf("control placed despite too few navigation slots")
	}
}

func TestPaginatedSingleRowGivesWholeRowToContent(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Strip", 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.SetItems(numberedItems(12))
	viewer := host.NewViewerID()
	if err := p.Open(viewer); err != nil {
		t.Fatalf("open: %v", err)
	}
	if p.TotalPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", p.TotalPages())
	}
	c := h.LastContainer()
	if got := c.FilledSlots(); got != 9 {
		t.Fatalf("expected 9 content slots and no navigation, got %d filled", got)
	}
	// No navigation controls, but pages are still reachable programmatically.
	p.NextPage()
	if first := c.Slot(0); first == nil || first.Name != "item 10" {
		t.Fatalf("unexpected first item on page 2: %+v", first)
	}
}

func TestPaginatedSlotConfigurationErrors(t *testing.T) {
	_, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Config", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.SetContentSlots([]int{17, 18}); !errors.Is(err, ErrSlotOverlap) {
		t.Fatalf("expected ErrSlotOverlap, got %v", err)
	}
	if err := p.SetNavigationSlots([]int{27}); !errors.Is(err, ErrSlotRange) {
		t.Fatalf("expected ErrSlotRange, got %v", err)
	}
	// A failed reconfiguration leaves the layout untouched.
	if got := len(p.ContentSlots()); got != 18 {
		t.Fatalf("layout mutated by failed reconfiguration: %d content slots", got)
	}
}

func TestPaginatedSetItemsPerPageClamps(t *testing.T) {
	_, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Clamp", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.SetItemsPerPage(100)
	if got := p.ItemsPerPage(); got != 18 {
		t.Fatalf("oversized window not clamped: %d", got)
	}
	p.SetItemsPerPage(0)
	if got := p.ItemsPerPage(); got != 18 {
		t.Fatalf("zero window not clamped: %d", got)
	}
	p.SetItemsPerPage(7)
	if got := p.ItemsPerPage(); got != 7 {
		t.Fatalf("valid window rejected: %d", got)
	}
}

func TestPaginatedUnregisterForceCloses(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Retire", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alice := host.NewViewerID()
	bob := host.NewViewerID()
	if err := p.Open(alice); err != nil {
		t.Fatalf("open alice: %v", err)
	}
	if err := p.Open(bob); err != nil {
		t.Fatalf("open bob: %v", err)
	}

	p.Unregister()
	if p.IsOpen() {
		t.Fatalf("viewers survive unregister")
	}
	if h.ListenerCount() != 0 {
		t.Fatalf("listener leaked after unregister: %d", h.ListenerCount())
	}
	if reg.OpenCount() != 0 {
		t.Fatalf("registry entries leaked: %d", reg.OpenCount())
	}
	p.Unregister()
}

func TestPaginatedRefreshRedrawsForViewers(t *testing.T) {
	h, reg := newTestHost(t)
	p, err := NewPaginated(reg, "Live", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.SetItems(numberedItems(2))
	viewer := host.NewViewerID()
	if err := p.Open(viewer); err != nil {
		t.Fatalf("open: %v", err)
	}
	before := h.RefreshCount[viewer]
	p.Refresh()
	if h.RefreshCount[viewer] != before+1 {
		t.Fatalf("refresh did not reach the viewer")
	}
}

func TestPaginatedOpenErrorDoesNotRegisterViewer(t *testing.T) {
	h := hosttest.New()
	reg := NewRegistry(h, h, h, h)
	p, err := NewPaginated(reg, "Fail", 27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.OpenErr = errors.New("refused")
	viewer := host.NewViewerID()
	if err := p.Open(viewer); err == nil {
		t.Fatalf("expected open error")
	}
	if p.IsOpen() || reg.HasOpen(viewer) {
		t.Fatalf("failed open left viewer state behind")
	}
}
