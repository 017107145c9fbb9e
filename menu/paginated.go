package menu

import (
	"fmt"

	"github.com/atomicstack/slotmenu/host"
	"github.com/atomicstack/slotmenu/internal/logging/events"
)

// Paginated is a menu that windows an ordered backing item list across pages
// of a fixed-size container. Explicit per-slot actions take precedence over
// built-in navigation, which takes precedence over the content-click hook.
//
// Pages are 1-based and currentPage stays within [1, totalPages] after every
// mutation: item mutations clamp the page before redrawing.
type Paginated struct {
	id     ID
	title  string
	layout Layout
	reg    *Registry
	handle host.Handle

	items    []Item
	page     int
	actions  map[int]ClickFunc
	navItems map[int]Item
	viewers  map[host.ViewerID]struct{}

	onOpen     func(host.ViewerID)
	onClose    func(host.ViewerID)
	onContent  ClickFunc
	defaultNav bool
	registered bool
}

// NewPaginated creates a paginated menu over a fresh host container using the
// default slot layout for size. Layout problems fail fast, before the menu
// registers anywhere.
func NewPaginated(reg *Registry, title string, size int) (*Paginated, error) {
	layout, err := DefaultLayout(size)
	if err != nil {
		return nil, err
	}
	handle, err := reg.Containers().Create(size, title)
	if err != nil {
		return nil, fmt.Errorf("create container: %w", err)
	}
	return &Paginated{
		id:         newID(),
		title:      title,
		layout:     layout,
		reg:        reg,
		handle:     handle,
		page:       1,
		actions:    make(map[int]ClickFunc),
		navItems:   make(map[int]Item),
		viewers:    make(map[host.ViewerID]struct{}),
		defaultNav: true,
	}, nil
}

// ID returns the menu's unique identity.
func (p *Paginated) ID() ID { return p.id }

// Title returns the container title.
func (p *Paginated) Title() string { return p.title }

// Size returns the container size in slots.
func (p *Paginated) Size() int { return p.layout.Size }

// Handle returns the menu's container handle.
func (p *Paginated) Handle() host.Handle { return p.handle }

// Open displays the first page to viewer.
func (p *Paginated) Open(viewer host.ViewerID) error {
	return p.OpenPage(viewer, 1)
}

// OpenPage displays the given page to viewer. An out-of-range page silently
// resets to 1. Re-opening for a viewer already in the set replaces their
// registry entry.
func (p *Paginated) OpenPage(viewer host.ViewerID, page int) error {
	if page < 1 || page > p.TotalPages() {
		page = 1
	}
	p.page = page
	p.Register()
	p.redraw()
	if err := p.reg.Containers().Open(viewer, p.handle); err != nil {
		return fmt.Errorf("open container: %w", err)
	}
	p.viewers[viewer] = struct{}{}
	p.reg.RegisterViewer(viewer, p)
	events.Menu.Open(p.id.String(), viewer.String(), page)
	if p.onOpen != nil {
		p.onOpen(viewer)
	}
	return nil
}

// Close closes the menu for viewer. No-op when the viewer does not have it
// open. The viewer leaves both the menu's set and the registry table before
// the host is asked to close, so the resulting close event is ignored as
// stale and user callbacks cannot double-fire.
func (p *Paginated) Close(viewer host.ViewerID) {
	if _, ok := p.viewers[viewer]; !ok {
		return
	}
	delete(p.viewers, viewer)
	p.reg.UnregisterViewer(viewer)
	p.reg.Containers().Close(viewer)
	events.Menu.Close(p.id.String(), viewer.String())
	if p.onClose != nil {
		p.onClose(viewer)
	}
}

// IsOpen reports whether any viewer currently has the menu open.
func (p *Paginated) IsOpen() bool { return len(p.viewers) > 0 }

// Viewers returns the viewers currently viewing the menu.
func (p *Paginated) Viewers() []host.ViewerID {
	out := make([]host.ViewerID, 0, len(p.viewers))
	for v := range p.viewers {
		out = append(out, v)
	}
	return out
}

// Register makes the menu discoverable globally and subscribes it to host
// events via the registry. Idempotent.
func (p *Paginated) Register() {
	if p.registered {
		return
	}
	p.reg.RegisterGlobal(p)
	p.registered = true
}

// Unregister unsubscribes from host events and force-closes every remaining
// viewer. Idempotent.
func (p *Paginated) Unregister() {
	if p.registered {
		p.reg.UnregisterGlobal(p)
		p.registered = false
	}
	for _, viewer := range p.Viewers() {
		p.Close(viewer)
	}
}

// CurrentPage returns the 1-based current page.
func (p *Paginated) CurrentPage() int { return p.page }

// TotalPages returns max(1, ceil(len(items)/itemsPerPage)).
func (p *Paginated) TotalPages() int {
	k := p.layout.ItemsPerPage
	if len(p.items) == 0 || k <= 0 {
		return 1
	}
	return (len(p.items) + k - 1) / k
}

// PageItems returns the visible slice for the current page.
func (p *Paginated) PageItems() []Item {
	k := p.layout.ItemsPerPage
	if k <= 0 {
		return nil
	}
	start := (p.page - 1) * k
	if start >= len(p.items) {
		return nil
	}
	end := start + k
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// AllItems returns a copy of the backing list.
func (p *Paginated) AllItems() []Item {
	return append([]Item(nil), p.items...)
}

// SetItems replaces the backing list, clamps the page, and redraws.
func (p *Paginated) SetItems(items []Item) {
	p.items = append([]Item(nil), items...)
	p.clampPage()
	p.redraw()
}

// AddItem appends to the backing list and redraws.
func (p *Paginated) AddItem(item Item) {
	p.items = append(p.items, item)
	p.clampPage()
	p.redraw()
}

// RemoveItem removes the first item with equal content, clamps the page, and
// redraws. No-op when nothing matches.
func (p *Paginated) RemoveItem(item Item) {
	for i := range p.items {
		if p.items[i].sameContent(item) {
			p.items = append(p.items[:i], p.items[i+1:]...)
			break
		}
	}
	p.clampPage()
	p.redraw()
}

// ClearItems empties the backing list and redraws.
func (p *Paginated) ClearItems() {
	p.items = nil
	p.clampPage()
	p.redraw()
}

// NextPage advances one page; a boundary call is a silent no-op.
func (p *Paginated) NextPage() {
	if p.page < p.TotalPages() {
		p.GoToPage(p.page + 1)
	}
}

// PreviousPage goes back one page; a boundary call is a silent no-op.
func (p *Paginated) PreviousPage() {
	if p.page > 1 {
		p.GoToPage(p.page - 1)
	}
}

// GoToPage jumps to page. Returns false without mutating anything when page
// is outside [1, totalPages].
func (p *Paginated) GoToPage(page int) bool {
	if page < 1 || page > p.TotalPages() {
		return false
	}
	p.page = page
	events.Menu.Page(p.id.String(), page, p.TotalPages())
	p.redraw()
	return true
}

// ItemsPerPage returns the current page window size.
func (p *Paginated) ItemsPerPage() int { return p.layout.ItemsPerPage }

// SetItemsPerPage shrinks the page window below the content-slot count.
// Values outside [1, len(contentSlots)] are clamped to the content-slot
// count.
func (p *Paginated) SetItemsPerPage(n int) {
	if n < 1 || n > len(p.layout.Content) {
		n = len(p.layout.Content)
	}
	p.layout.ItemsPerPage = n
	p.clampPage()
	p.redraw()
}

// ContentSlots returns a copy of the content slot assignment.
func (p *Paginated) ContentSlots() []int {
	return append([]int(nil), p.layout.Content...)
}

// SetContentSlots replaces the content slot assignment. ItemsPerPage is
// recomputed to len(slots). Overlap with navigation slots or out-of-range
// slots is a configuration error.
func (p *Paginated) SetContentSlots(slots []int) error {
	next := p.layout
	next.Content = append([]int(nil), slots...)
	next.ItemsPerPage = len(slots)
	if err := next.Validate(); err != nil {
		return err
	}
	p.layout = next
	p.clampPage()
	p.redraw()
	return nil
}

// NavigationSlots returns a copy of the navigation slot assignment.
func (p *Paginated) NavigationSlots() []int {
	return append([]int(nil), p.layout.Navigation...)
}

// SetNavigationSlots replaces the navigation slot assignment, validating
// bounds and disjointness.
func (p *Paginated) SetNavigationSlots(slots []int) error {
	next := p.layout
	next.Navigation = append([]int(nil), slots...)
	if err := next.Validate(); err != nil {
		return err
	}
	p.layout = next
	p.redraw()
	return nil
}

// SetNavigationItem overrides the item displayed at a navigation-area slot.
// Any override suppresses the synthesized default navigation entirely.
func (p *Paginated) SetNavigationItem(slot int, item Item) {
	p.navItems[slot] = item
	p.redraw()
}

// NavigationItems returns a copy of the navigation overrides.
func (p *Paginated) NavigationItems() map[int]Item {
	out := make(map[int]Item, len(p.navItems))
	for slot, item := range p.navItems {
		out[slot] = item
	}
	return out
}

// SetAction binds an explicit callback to a slot. Explicit actions win over
// navigation and content dispatch.
func (p *Paginated) SetAction(slot int, fn ClickFunc) {
	p.actions[slot] = fn
}

// Action returns the explicit callback bound to slot, or nil.
func (p *Paginated) Action(slot int) ClickFunc {
	return p.actions[slot]
}

// OnContentClick installs the hook invoked for clicks on content slots whose
// item carries no callback of its own. Default is a no-op.
func (p *Paginated) OnContentClick(fn ClickFunc) {
	p.onContent = fn
}

// OnOpen installs a hook fired after each successful open.
func (p *Paginated) OnOpen(fn func(host.ViewerID)) { p.onOpen = fn }

// OnClose installs a hook fired after each close.
func (p *Paginated) OnClose(fn func(host.ViewerID)) { p.onClose = fn }

// SetDefaultNavigation toggles the synthesized navigation controls.
func (p *Paginated) SetDefaultNavigation(enabled bool) {
	p.defaultNav = enabled
	p.redraw()
}

// Refresh redraws the current page for all viewers.
func (p *Paginated) Refresh() {
	p.redraw()
}

// HandleSlotClick routes a click: explicit slot action, then built-in
// navigation by position, then the content hook. Clicks inside the menu's
// container are always consumed; clicks elsewhere are ignored as stale.
func (p *Paginated) HandleSlotClick(ev host.SlotClicked) bool {
	if ev.Handle != p.handle {
		return false
	}
	if _, ok := p.viewers[ev.Viewer]; !ok {
		return false
	}
	click := Click{Viewer: ev.Viewer, Slot: ev.Slot, Content: ev.Content}
	if fn, ok := p.actions[ev.Slot]; ok {
		events.Menu.Click(p.id.String(), ev.Viewer.String(), ev.Slot, "action")
		if fn != nil {
			fn(click)
		}
		return true
	}
	if containsSlot(p.layout.Navigation, ev.Slot) {
		events.Menu.Click(p.id.String(), ev.Viewer.String(), ev.Slot, "navigation")
		p.handleNavigationClick(ev.Slot, ev.Viewer)
		return true
	}
	if containsSlot(p.layout.Content, ev.Slot) {
		events.Menu.Click(p.id.String(), ev.Viewer.String(), ev.Slot, "content")
		p.handleContentClick(click)
		return true
	}
	events.Menu.Click(p.id.String(), ev.Viewer.String(), ev.Slot, "dead")
	return true
}

// HandleContainerClose drops the viewer when the host closes their view.
func (p *Paginated) HandleContainerClose(ev host.ContainerClosed) {
	if ev.Handle != p.handle {
		return
	}
	if _, ok := p.viewers[ev.Viewer]; !ok {
		return
	}
	delete(p.viewers, ev.Viewer)
	p.reg.UnregisterViewer(ev.Viewer)
	events.Menu.Close(p.id.String(), ev.Viewer.String())
	if p.onClose != nil {
		p.onClose(ev.Viewer)
	}
}

// HandleTextSubmit is not a paginated concern; submissions belong to another
// menu.
func (p *Paginated) HandleTextSubmit(host.TextSubmitted) {}

// HandleDisconnect drops a viewer who left the host without closing.
func (p *Paginated) HandleDisconnect(ev host.Disconnected) {
	if _, ok := p.viewers[ev.Viewer]; !ok {
		return
	}
	delete(p.viewers, ev.Viewer)
	p.reg.UnregisterViewer(ev.Viewer)
	events.Menu.Close(p.id.String(), ev.Viewer.String())
	if p.onClose != nil {
		p.onClose(ev.Viewer)
	}
}

// handleNavigationClick applies the position convention: first navigation
// slot is previous, last is next, second-to-last is close, middle is the
// page indicator (inert).
func (p *Paginated) handleNavigationClick(slot int, viewer host.ViewerID) {
	nav := p.layout.Navigation
	if len(nav) == 0 {
		return
	}
	switch {
	case slot == nav[0] && p.page > 1:
		p.PreviousPage()
	case slot == nav[len(nav)-1] && p.page < p.TotalPages():
		p.NextPage()
	case len(nav) > 1 && slot == nav[len(nav)-2]:
		p.Close(viewer)
	}
}

// handleContentClick prefers the clicked item's own callback, falling back to
// the menu-wide content hook.
func (p *Paginated) handleContentClick(click Click) {
	idx := -1
	for i, s := range p.layout.Content {
		if s == click.Slot {
			idx = i
			break
		}
	}
	if idx >= 0 {
		itemIdx := (p.page-1)*p.layout.ItemsPerPage + idx
		if itemIdx < len(p.items) {
			if fn := p.items[itemIdx].onClick; fn != nil {
				fn(click)
				return
			}
		}
	}
	if p.onContent != nil {
		p.onContent(click)
	}
}

func (p *Paginated) clampPage() {
	if p.page < 1 {
		p.page = 1
	}
	if total := p.TotalPages(); p.page > total {
		p.page = total
	}
}

// redraw clears the container, places the visible slice into successive
// content slots, applies navigation overrides or synthesizes the defaults,
// and refreshes every open viewer.
func (p *Paginated) redraw() {
	c := p.reg.Containers()
	if err := c.Clear(p.handle); err != nil {
		return
	}
	slice := p.PageItems()
	shown := len(slice)
	if shown > len(p.layout.Content) {
		shown = len(p.layout.Content)
	}
	for i := 0; i < shown; i++ {
		content := slice[i].Content()
		c.SetSlot(p.handle, p.layout.Content[i], &content)
	}
	for slot, item := range p.navItems {
		content := item.Content()
		c.SetSlot(p.handle, slot, &content)
	}
	if len(p.navItems) == 0 && p.defaultNav {
		p.placeDefaultNavigation(c)
	}
	events.Menu.Redraw(p.id.String(), p.page, shown, len(p.viewers))
	for viewer := range p.viewers {
		c.Refresh(viewer)
	}
}

// placeDefaultNavigation synthesizes the standard controls. Previous and next
// appear only when a page exists in that direction. Fewer than three
// navigation slots leave room only for the page indicator.
func (p *Paginated) placeDefaultNavigation(c host.Containers) {
	nav := p.layout.Navigation
	if len(nav) == 0 {
		return
	}
	set := func(slot int, item Item) {
		content := item.Content()
		c.SetSlot(p.handle, slot, &content)
	}
	set(nav[len(nav)/2], PageInfo(p.page, p.TotalPages()))
	if len(nav) < 3 {
		return
	}
	if p.page > 1 {
		set(nav[0], PreviousPage())
	}
	if p.page < p.TotalPages() {
		set(nav[len(nav)-1], NextPage())
	}
	set(nav[len(nav)-2], CloseButton())
}
