package menu

import (
	"fmt"

	"github.com/atomicstack/slotmenu/host"
	"github.com/atomicstack/slotmenu/internal/logging/events"
)

// Prompt slot assignment: one editable input position and one submit
// position, with a spare slot between them.
const (
	PromptSize       = 3
	PromptInputSlot  = 0
	PromptResultSlot = 2
)

// Prompt is a single-shot text-capture menu: the viewer edits the input
// slot's text and clicks the result slot to submit. A programmatic close
// suppresses the cancel handler; a user-initiated close or a disconnect fires
// it. Pagination is inexpressible on this type; use PaginatorOf to surface
// the capability error.
type Prompt struct {
	id    ID
	reg   *Registry
	title string
	input Item

	onInput  func(string)
	onCancel func(host.ViewerID)

	viewers           map[host.ViewerID]struct{}
	handle            host.Handle
	registered        bool
	programmaticClose bool
}

// NewPrompt creates a prompt with the default input item. onCancel may be
// nil.
func NewPrompt(reg *Registry, title string, onInput func(string), onCancel func(host.ViewerID)) (*Prompt, error) {
	return NewPromptWithItem(reg, title, NewItem("Enter text...").WithIcon("paper"), onInput, onCancel)
}

// NewPromptWithItem creates a prompt seeded with a custom input item.
func NewPromptWithItem(reg *Registry, title string, input Item, onInput func(string), onCancel func(host.ViewerID)) (*Prompt, error) {
	handle, err := reg.Containers().Create(PromptSize, title)
	if err != nil {
		return nil, fmt.Errorf("create container: %w", err)
	}
	p := &Prompt{
		id:       newID(),
		reg:      reg,
		title:    title,
		input:    input,
		onInput:  onInput,
		onCancel: onCancel,
		viewers:  make(map[host.ViewerID]struct{}),
		handle:   handle,
	}
	content := input.Content()
	if err := reg.Containers().SetSlot(handle, PromptInputSlot, &content); err != nil {
		return nil, fmt.Errorf("seed input slot: %w", err)
	}
	return p, nil
}

// ID returns the menu's unique identity.
func (p *Prompt) ID() ID { return p.id }

// Title returns the container title.
func (p *Prompt) Title() string { return p.title }

// Handle returns the menu's container handle.
func (p *Prompt) Handle() host.Handle { return p.handle }

// Open displays the input surface to viewer and resets the submit state.
func (p *Prompt) Open(viewer host.ViewerID) error {
	p.Register()
	p.programmaticClose = false
	if err := p.reg.Containers().Open(viewer, p.handle); err != nil {
		return fmt.Errorf("open container: %w", err)
	}
	p.viewers[viewer] = struct{}{}
	p.reg.RegisterViewer(viewer, p)
	events.Menu.Open(p.id.String(), viewer.String(), 1)
	return nil
}

// Close closes the surface programmatically, suppressing the cancel handler.
// No-op for viewers who do not have it open.
func (p *Prompt) Close(viewer host.ViewerID) {
	if _, ok := p.viewers[viewer]; !ok {
		return
	}
	p.programmaticClose = true
	delete(p.viewers, viewer)
	p.reg.UnregisterViewer(viewer)
	p.reg.Containers().Close(viewer)
	events.Menu.Close(p.id.String(), viewer.String())
}

// IsOpen reports whether any viewer has the prompt open.
func (p *Prompt) IsOpen() bool { return len(p.viewers) > 0 }

// Viewers returns the viewers currently viewing the prompt.
func (p *Prompt) Viewers() []host.ViewerID {
	out := make([]host.ViewerID, 0, len(p.viewers))
	for v := range p.viewers {
		out = append(out, v)
	}
	return out
}

// Register subscribes the prompt to host events. Idempotent.
func (p *Prompt) Register() {
	if p.registered {
		return
	}
	p.reg.RegisterGlobal(p)
	p.registered = true
}

// Unregister unsubscribes and clears the viewer set without firing cancel
// handlers; teardown is not a user cancel. Idempotent.
func (p *Prompt) Unregister() {
	if p.registered {
		p.reg.UnregisterGlobal(p)
		p.registered = false
	}
	for viewer := range p.viewers {
		p.reg.UnregisterViewer(viewer)
	}
	p.viewers = make(map[host.ViewerID]struct{})
}

// SetInputItem replaces the content of the input slot.
func (p *Prompt) SetInputItem(item Item) {
	p.input = item
	content := item.Content()
	p.reg.Containers().SetSlot(p.handle, PromptInputSlot, &content)
}

// InputItem returns the current input item.
func (p *Prompt) InputItem() Item { return p.input }

// Submit feeds input programmatically, as TextCapture requires. The first
// line is the captured text; empty input is ignored and the surface stays
// open.
func (p *Prompt) Submit(viewer host.ViewerID, lines ...string) {
	if _, ok := p.viewers[viewer]; !ok {
		return
	}
	if len(lines) == 0 || lines[0] == "" {
		return
	}
	p.capture(viewer, lines[0])
}

// HandleSlotClick consumes every click on the prompt's container. A click on
// the result slot whose content carries text submits; anything else is inert.
// Missing text is a no-op and the surface stays open.
func (p *Prompt) HandleSlotClick(ev host.SlotClicked) bool {
	if ev.Handle != p.handle {
		return false
	}
	if _, ok := p.viewers[ev.Viewer]; !ok {
		return false
	}
	if ev.Slot != PromptResultSlot {
		return true
	}
	if ev.Content == nil || ev.Content.Name == "" {
		return true
	}
	p.capture(ev.Viewer, ev.Content.Name)
	return true
}

// HandleContainerClose fires the cancel handler unless the close was
// programmatic, then retires the prompt.
func (p *Prompt) HandleContainerClose(ev host.ContainerClosed) {
	if ev.Handle != p.handle {
		return
	}
	if _, ok := p.viewers[ev.Viewer]; !ok {
		return
	}
	delete(p.viewers, ev.Viewer)
	p.reg.UnregisterViewer(ev.Viewer)
	if !p.programmaticClose && p.onCancel != nil {
		events.Input.Cancel(p.id.String(), ev.Viewer.String())
		p.onCancel(ev.Viewer)
	}
	p.Unregister()
}

// HandleTextSubmit is not a prompt concern; prompts capture via the result
// slot.
func (p *Prompt) HandleTextSubmit(host.TextSubmitted) {}

// HandleDisconnect treats a disconnect exactly like a user-initiated close.
func (p *Prompt) HandleDisconnect(ev host.Disconnected) {
	if _, ok := p.viewers[ev.Viewer]; !ok {
		return
	}
	delete(p.viewers, ev.Viewer)
	p.reg.UnregisterViewer(ev.Viewer)
	if !p.programmaticClose && p.onCancel != nil {
		events.Input.Cancel(p.id.String(), ev.Viewer.String())
		p.onCancel(ev.Viewer)
	}
	p.Unregister()
}

// capture retires the prompt before firing the input handler, so the handler
// can open the viewer's next menu without the teardown clobbering it.
func (p *Prompt) capture(viewer host.ViewerID, text string) {
	events.Input.Submit(p.id.String(), viewer.String(), 1)
	p.Close(viewer)
	p.Unregister()
	if p.onInput != nil {
		p.onInput(text)
	}
}
