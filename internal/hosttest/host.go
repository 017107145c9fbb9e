// Package hosttest provides an in-memory host implementation for tests: a
// recorded container service, a synchronous event bus, an immediate-run
// scheduler, and a text-editor surface.
package hosttest

import (
	"fmt"

	"github.com/atomicstack/slotmenu/host"
)

// Container is a fake container. It records slot contents and which viewers
// currently have it open.
type Container struct {
	size  int
	title string
	slots []*host.Content
	open  map[host.ViewerID]bool
}

// Size implements host.Handle.
func (c *Container) Size() int { return c.size }

// Title returns the creation title.
func (c *Container) Title() string { return c.title }

// Slot returns the content at slot, or nil.
func (c *Container) Slot(slot int) *host.Content {
	if slot < 0 || slot >= len(c.slots) {
		return nil
	}
	return c.slots[slot]
}

// OpenFor reports whether viewer currently has this container open.
func (c *Container) OpenFor(viewer host.ViewerID) bool { return c.open[viewer] }

// FilledSlots counts non-empty slots.
func (c *Container) FilledSlots() int {
	n := 0
	for _, s := range c.slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Host implements host.Containers, host.Editors, host.Bus, and
// host.Scheduler. Event delivery is synchronous, matching the host model the
// menus assume. Run and RunAsync execute immediately; delayed tasks are
// queued until RunPending.
type Host struct {
	containers []*Container
	listeners  []host.Listener

	// Editors state, keyed by viewer.
	EditorLines map[host.ViewerID][]string

	pending []func()

	CreateErr error
	OpenErr   error

	RefreshCount map[host.ViewerID]int
	AsyncCount   int
}

// New creates an empty fake host.
func New() *Host {
	return &Host{
		EditorLines:  make(map[host.ViewerID][]string),
		RefreshCount: make(map[host.ViewerID]int),
	}
}

// Create implements host.Containers.
func (h *Host) Create(size int, title string) (host.Handle, error) {
	if h.CreateErr != nil {
		return nil, h.CreateErr
	}
	c := &Container{
		size:  size,
		title: title,
		slots: make([]*host.Content, size),
		open:  make(map[host.ViewerID]bool),
	}
	h.containers = append(h.containers, c)
	return c, nil
}

// Open implements host.Containers.
func (h *Host) Open(viewer host.ViewerID, hd host.Handle) error {
	if h.OpenErr != nil {
		return h.OpenErr
	}
	c, ok := hd.(*Container)
	if !ok {
		return fmt.Errorf("foreign handle %T", hd)
	}
	// A viewer sees one container at a time.
	for _, other := range h.containers {
		delete(other.open, viewer)
	}
	c.open[viewer] = true
	return nil
}

// Close implements host.Containers.
func (h *Host) Close(viewer host.ViewerID) error {
	for _, c := range h.containers {
		delete(c.open, viewer)
	}
	return nil
}

// SetSlot implements host.Containers.
func (h *Host) SetSlot(hd host.Handle, slot int, content *host.Content) error {
	c, ok := hd.(*Container)
	if !ok {
		return fmt.Errorf("foreign handle %T", hd)
	}
	if slot < 0 || slot >= c.size {
		return fmt.Errorf("slot %d out of range 0..%d", slot, c.size-1)
	}
	c.slots[slot] = content
	return nil
}

// Clear implements host.Containers.
func (h *Host) Clear(hd host.Handle) error {
	c, ok := hd.(*Container)
	if !ok {
		return fmt.Errorf("foreign handle %T", hd)
	}
	for i := range c.slots {
		c.slots[i] = nil
	}
	return nil
}

// Refresh implements host.Containers.
func (h *Host) Refresh(viewer host.ViewerID) error {
	h.RefreshCount[viewer]++
	return nil
}

// OpenEditor implements host.Editors.
func (h *Host) OpenEditor(viewer host.ViewerID, lines []string) error {
	h.EditorLines[viewer] = append([]string(nil), lines...)
	return nil
}

// CloseEditor implements host.Editors.
func (h *Host) CloseEditor(viewer host.ViewerID) error {
	delete(h.EditorLines, viewer)
	return nil
}

// Subscribe implements host.Bus.
func (h *Host) Subscribe(l host.Listener) {
	for _, existing := range h.listeners {
		if existing == l {
			return
		}
	}
	h.listeners = append(h.listeners, l)
}

// Unsubscribe implements host.Bus.
func (h *Host) Unsubscribe(l host.Listener) {
	for i, existing := range h.listeners {
		if existing == l {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of subscribed listeners.
func (h *Host) ListenerCount() int { return len(h.listeners) }

// Run implements host.Scheduler.
func (h *Host) Run(task func()) { task() }

// RunAsync implements host.Scheduler. Tests run tasks inline so assertions
// stay deterministic.
func (h *Host) RunAsync(task func()) {
	h.AsyncCount++
	task()
}

// RunAfter implements host.Scheduler; the task waits for RunPending.
func (h *Host) RunAfter(task func(), ticks int64) {
	h.pending = append(h.pending, task)
}

// RunAsyncAfter implements host.Scheduler; the task waits for RunPending.
func (h *Host) RunAsyncAfter(task func(), ticks int64) {
	h.AsyncCount++
	h.pending = append(h.pending, task)
}

// RunPending executes queued delayed tasks.
func (h *Host) RunPending() {
	queued := h.pending
	h.pending = nil
	for _, task := range queued {
		task()
	}
}

// Click delivers a SlotClicked event carrying the content currently in the
// slot, returning whether any listener consumed it.
func (h *Host) Click(viewer host.ViewerID, hd host.Handle, slot int) bool {
	var content *host.Content
	if c, ok := hd.(*Container); ok {
		content = c.Slot(slot)
	}
	ev := host.SlotClicked{Viewer: viewer, Handle: hd, Slot: slot, Content: content}
	consumed := false
	for _, l := range h.snapshot() {
		if l.HandleSlotClick(ev) {
			consumed = true
		}
	}
	return consumed
}

// CloseEvent delivers a ContainerClosed event, as the host does after a
// user-initiated close.
func (h *Host) CloseEvent(viewer host.ViewerID, hd host.Handle) {
	ev := host.ContainerClosed{Viewer: viewer, Handle: hd}
	for _, l := range h.snapshot() {
		l.HandleContainerClose(ev)
	}
}

// SubmitText delivers a TextSubmitted event from the editor surface.
func (h *Host) SubmitText(viewer host.ViewerID, lines []string) {
	ev := host.TextSubmitted{Viewer: viewer, Lines: lines}
	for _, l := range h.snapshot() {
		l.HandleTextSubmit(ev)
	}
}

// Disconnect delivers a Disconnected event.
func (h *Host) Disconnect(viewer host.ViewerID) {
	ev := host.Disconnected{Viewer: viewer}
	for _, l := range h.snapshot() {
		l.HandleDisconnect(ev)
	}
}

// Containers returns all created containers in creation order.
func (h *Host) Containers() []*Container {
	return append([]*Container(nil), h.containers...)
}

// LastContainer returns the most recently created container.
func (h *Host) LastContainer() *Container {
	if len(h.containers) == 0 {
		return nil
	}
	return h.containers[len(h.containers)-1]
}

// snapshot copies the listener list so delivery survives mid-event
// unsubscription.
func (h *Host) snapshot() []host.Listener {
	return append([]host.Listener(nil), h.listeners...)
}
