package menu

import (
	"fmt"
	"strings"

	"github.com/atomicstack/slotmenu/host"
	"github.com/atomicstack/slotmenu/internal/logging/events"
)

// BoardLines is the number of editable lines on a board surface.
const BoardLines = 4

// Board is a single-shot multi-line text-capture menu over the host's
// free-text editor surface. Submit strips double quotes from every line and
// hands the result to the input handler on the event thread; a close or
// disconnect without a prior submit fires the cancel handler instead.
type Board struct {
	id    ID
	reg   *Registry
	lines []string

	onInput  func([]string)
	onCancel func(host.ViewerID)

	viewers           map[host.ViewerID]struct{}
	registered        bool
	programmaticClose bool
}

// NewBoard creates a board pre-filled with up to BoardLines lines. The host
// must provide an editor surface. onCancel may be nil.
func NewBoard(reg *Registry, lines []string, onInput func([]string), onCancel func(host.ViewerID)) (*Board, error) {
	if reg.Editors() == nil {
		return nil, fmt.Errorf("host has no text editor surface: %w", ErrUnsupported)
	}
	if len(lines) > BoardLines {
		lines = lines[:BoardLines]
	}
	return &Board{
		id:       newID(),
		reg:      reg,
		lines:    append([]string(nil), lines...),
		onInput:  onInput,
		onCancel: onCancel,
		viewers:  make(map[host.ViewerID]struct{}),
	}, nil
}

// ID returns the menu's unique identity.
func (b *Board) ID() ID { return b.id }

// Lines returns the pre-filled lines.
func (b *Board) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Open shows the editor surface to viewer and resets the submit state.
func (b *Board) Open(viewer host.ViewerID) error {
	b.Register()
	b.programmaticClose = false
	if err := b.reg.Editors().OpenEditor(viewer, b.Lines()); err != nil {
		return fmt.Errorf("open editor: %w", err)
	}
	b.viewers[viewer] = struct{}{}
	b.reg.RegisterViewer(viewer, b)
	events.Menu.Open(b.id.String(), viewer.String(), 1)
	return nil
}

// Close dismisses the surface programmatically, suppressing the cancel
// handler. No-op for viewers who do not have it open.
func (b *Board) Close(viewer host.ViewerID) {
	if _, ok := b.viewers[viewer]; !ok {
		return
	}
	b.programmaticClose = true
	b.retire(viewer)
}

// IsOpen reports whether any viewer has the board open.
func (b *Board) IsOpen() bool { return len(b.viewers) > 0 }

// Viewers returns the viewers currently viewing the board.
func (b *Board) Viewers() []host.ViewerID {
	out := make([]host.ViewerID, 0, len(b.viewers))
	for v := range b.viewers {
		out = append(out, v)
	}
	return out
}

// Register subscribes the board to host events. Idempotent.
func (b *Board) Register() {
	if b.registered {
		return
	}
	b.reg.RegisterGlobal(b)
	b.registered = true
}

// Unregister unsubscribes and clears the viewer set without firing cancel
// handlers. Idempotent.
func (b *Board) Unregister() {
	if b.registered {
		b.reg.UnregisterGlobal(b)
		b.registered = false
	}
	for viewer := range b.viewers {
		b.reg.UnregisterViewer(viewer)
	}
	b.viewers = make(map[host.ViewerID]struct{})
}

// Submit feeds lines programmatically, as TextCapture requires.
func (b *Board) Submit(viewer host.ViewerID, lines ...string) {
	if _, ok := b.viewers[viewer]; !ok {
		return
	}
	b.capture(viewer, lines)
}

// HandleSlotClick is not a board concern; boards own no container.
func (b *Board) HandleSlotClick(host.SlotClicked) bool { return false }

// HandleContainerClose treats a close of the viewer's surface as a cancel
// when no submit preceded it. The viewer is retired before the cancel handler
// runs, so the handler can open the viewer's next menu.
func (b *Board) HandleContainerClose(ev host.ContainerClosed) {
	if _, ok := b.viewers[ev.Viewer]; !ok {
		return
	}
	b.retire(ev.Viewer)
	if !b.programmaticClose && b.onCancel != nil {
		events.Input.Cancel(b.id.String(), ev.Viewer.String())
		b.onCancel(ev.Viewer)
	}
	b.Unregister()
}

// HandleTextSubmit captures the submitted lines for viewers of this board.
func (b *Board) HandleTextSubmit(ev host.TextSubmitted) {
	if _, ok := b.viewers[ev.Viewer]; !ok {
		return
	}
	b.capture(ev.Viewer, ev.Lines)
}

// HandleDisconnect treats a disconnect exactly like a user-initiated close:
// the cancel handler fires and the listener never leaks.
func (b *Board) HandleDisconnect(ev host.Disconnected) {
	if _, ok := b.viewers[ev.Viewer]; !ok {
		return
	}
	b.retire(ev.Viewer)
	if !b.programmaticClose && b.onCancel != nil {
		events.Input.Cancel(b.id.String(), ev.Viewer.String())
		b.onCancel(ev.Viewer)
	}
	b.Unregister()
}

// retire drops the viewer's tracking state and dismisses their editor.
func (b *Board) retire(viewer host.ViewerID) {
	delete(b.viewers, viewer)
	b.reg.UnregisterViewer(viewer)
	b.reg.Editors().CloseEditor(viewer)
	events.Menu.Close(b.id.String(), viewer.String())
}

// capture retires the board before handing the cleaned lines to the input
// handler on the event thread, so the handler can open the viewer's next menu.
func (b *Board) capture(viewer host.ViewerID, lines []string) {
	cleaned := make([]string, len(lines))
	for i, line := range lines {
		cleaned[i] = strings.ReplaceAll(line, `"`, "")
	}
	events.Input.Submit(b.id.String(), viewer.String(), len(cleaned))
	b.Close(viewer)
	b.Unregister()
	if b.onInput != nil {
		fn := b.onInput
		b.reg.Run(func() { fn(cleaned) })
	}
}
