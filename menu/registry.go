package menu

import (
	"github.com/atomicstack/slotmenu/host"
	"github.com/atomicstack/slotmenu/internal/logging/events"
)

// Registry tracks which menu each viewer has open and which menus are
// registered globally. It is process-scoped state: the host constructs one at
// startup, passes it to every menu, and tears it down at shutdown. It is the
// single place that subscribes menu listeners to the host event bus, which
// keeps subscriptions from duplicating.
//
// All methods must be called from the host's event-delivery thread.
type Registry struct {
	bus        host.Bus
	containers host.Containers
	editors    host.Editors
	sched      host.Scheduler

	viewers    map[host.ViewerID]Menu
	global     map[ID]Menu
	subscribed map[ID]host.Listener
}

// NewRegistry wires a registry to the host facets menus need. editors may be
// nil when the host has no free-text surface.
func NewRegistry(bus host.Bus, containers host.Containers, editors host.Editors, sched host.Scheduler) *Registry {
	return &Registry{
		bus:        bus,
		containers: containers,
		editors:    editors,
		sched:      sched,
		viewers:    make(map[host.ViewerID]Menu),
		global:     make(map[ID]Menu),
		subscribed: make(map[ID]host.Listener),
	}
}

// Containers exposes the host container service to menus.
func (r *Registry) Containers() host.Containers {
	return r.containers
}

// Editors exposes the host text-editor surface to menus, or nil.
func (r *Registry) Editors() host.Editors {
	return r.editors
}

// RegisterViewer records that viewer now has m open. A prior entry for the
// viewer is overwritten without closing it; the host's own container
// semantics close the previous view.
func (r *Registry) RegisterViewer(viewer host.ViewerID, m Menu) {
	r.viewers[viewer] = m
	events.Registry.ViewerRegistered(viewer.String(), m.ID().String())
}

// UnregisterViewer removes the viewer's entry. No-op if absent.
func (r *Registry) UnregisterViewer(viewer host.ViewerID) {
	if _, ok := r.viewers[viewer]; !ok {
		return
	}
	delete(r.viewers, viewer)
	events.Registry.ViewerDropped(viewer.String())
}

// LookupByViewer returns the menu the viewer currently has open.
func (r *Registry) LookupByViewer(viewer host.ViewerID) (Menu, bool) {
	m, ok := r.viewers[viewer]
	return m, ok
}

// HasOpen reports whether the viewer has any menu open.
func (r *Registry) HasOpen(viewer host.ViewerID) bool {
	_, ok := r.viewers[viewer]
	return ok
}

// RegisterGlobal records a viewer-independent menu by its ID and subscribes
// its listener to the host event bus. A menu receives events if and only if
// it is registered here. Registering an already-registered menu is a no-op.
func (r *Registry) RegisterGlobal(m Menu) {
	id := m.ID()
	r.global[id] = m
	if _, ok := r.subscribed[id]; ok {
		return
	}
	if l, ok := m.(host.Listener); ok {
		r.bus.Subscribe(l)
		r.subscribed[id] = l
	}
	events.Registry.Attached(id.String())
}

// UnregisterGlobal removes the menu and unsubscribes its listener. No-op if
// absent.
func (r *Registry) UnregisterGlobal(m Menu) {
	id := m.ID()
	if _, ok := r.global[id]; !ok {
		return
	}
	delete(r.global, id)
	if l, ok := r.subscribed[id]; ok {
		r.bus.Unsubscribe(l)
		delete(r.subscribed, id)
	}
	events.Registry.Detached(id.String())
}

// OpenCount returns the number of viewers with a menu open.
func (r *Registry) OpenCount() int {
	return len(r.viewers)
}

// GlobalCount returns the number of globally registered menus.
func (r *Registry) GlobalCount() int {
	return len(r.global)
}

// CloseAll closes every open menu for its viewer and clears the viewer table.
// Used at host shutdown.
func (r *Registry) CloseAll() {
	type open struct {
		viewer host.ViewerID
		menu   Menu
	}
	snapshot := make([]open, 0, len(r.viewers))
	for viewer, m := range r.viewers {
		snapshot = append(snapshot, open{viewer, m})
	}
	for _, o := range snapshot {
		o.menu.Close(o.viewer)
	}
	r.viewers = make(map[host.ViewerID]Menu)
}

// Teardown closes all open menus, unregisters every global menu, and clears
// both tables. Idempotent and safe on an already-empty registry.
func (r *Registry) Teardown() {
	events.Registry.Teardown(len(r.viewers), len(r.global))
	r.CloseAll()
	snapshot := make([]Menu, 0, len(r.global))
	for _, m := range r.global {
		snapshot = append(snapshot, m)
	}
	for _, m := range snapshot {
		m.Unregister()
	}
	r.global = make(map[ID]Menu)
	r.subscribed = make(map[ID]host.Listener)
}

// Run executes task on the host event thread.
func (r *Registry) Run(task func()) {
	if r.sched != nil {
		r.sched.Run(task)
	}
}

// RunAsync hands task to the host's background execution facility. Tasks must
// marshal any menu-state mutation back via Run before touching menu state.
func (r *Registry) RunAsync(task func()) {
	if r.sched != nil {
		r.sched.RunAsync(task)
	}
}

// RunAfter executes task on the event thread after a delay in host ticks.
func (r *Registry) RunAfter(task func(), ticks int64) {
	if r.sched != nil {
		r.sched.RunAfter(task, ticks)
	}
}

// RunAsyncAfter executes task in the background after a delay in host ticks.
func (r *Registry) RunAsyncAfter(task func(), ticks int64) {
	if r.sched != nil {
		r.sched.RunAsyncAfter(task, ticks)
	}
}
