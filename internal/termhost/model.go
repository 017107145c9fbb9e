// Package termhost renders slot containers in a terminal and translates key
// presses into host events. It is the reference host implementation: the
// model satisfies every host facet (containers, event bus, scheduler, text
// editor) for a single local viewer.
package termhost

import (
	"fmt"
	"time"

	"github.com/atomicstack/slotmenu/host"
	"github.com/atomicstack/slotmenu/internal/logging/events"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeIdle mode = iota
	modeGrid
	modeSlotEdit
	modeEditor
)

// tickDuration converts scheduler ticks into wall time.
const tickDuration = 50 * time.Millisecond

// taskMsg marshals a scheduled task onto the update loop.
type taskMsg struct {
	task func()
}

// editorLineCount is the number of lines the editor surface offers.
const editorLineCount = 4

// Model is the Bubble Tea model for the terminal host.
type Model struct {
	viewer host.ViewerID
	styles *Styles

	containers []*Container
	active     *Container
	cursor     int

	listeners []host.Listener

	mode      mode
	slotInput textinput.Model
	editSlot  int

	editor      []textinput.Model
	editorIndex int

	width  int
	height int
	errMsg string

	send func(tea.Msg)
}

// NewModel creates a terminal host with a fresh local viewer.
func NewModel() *Model {
	slotInput := textinput.New()
	slotInput.Prompt = "text> "
	slotInput.Placeholder = "type and press enter"
	slotInput.CharLimit = 64

	editor := make([]textinput.Model, editorLineCount)
	for i := range editor {
		line := textinput.New()
		line.Prompt = fmt.Sprintf("%d> ", i+1)
		line.CharLimit = 64
		editor[i] = line
	}

	return &Model{
		viewer:    host.NewViewerID(),
		styles:    DefaultStyles(),
		mode:      modeIdle,
		slotInput: slotInput,
		editor:    editor,
	}
}

// Viewer returns the local viewer's identity.
func (m *Model) Viewer() host.ViewerID { return m.viewer }

// SetSend installs the program's message injector so scheduled tasks run on
// the update loop. Without it delayed tasks run on the timer goroutine.
func (m *Model) SetSend(send func(tea.Msg)) { m.send = send }

// Active returns the container the viewer currently sees, or nil.
func (m *Model) Active() *Container { return m.active }

// Create implements host.Containers.
func (m *Model) Create(size int, title string) (host.Handle, error) {
	if size <= 0 {
		return nil, fmt.Errorf("container size %d must be positive", size)
	}
	c := newContainer(size, title)
	m.containers = append(m.containers, c)
	return c, nil
}

// Open implements host.Containers. The terminal shows one container at a
// time; replacing the on-screen container reports it as closed first, the
// same way a real host would.
func (m *Model) Open(viewer host.ViewerID, h host.Handle) error {
	if viewer != m.viewer {
		return fmt.Errorf("unknown viewer %s", viewer)
	}
	c, ok := h.(*Container)
	if !ok {
		return fmt.Errorf("foreign handle %T", h)
	}
	if prev := m.active; prev != nil && prev != c {
		m.active = nil
		ev := host.ContainerClosed{Viewer: m.viewer, Handle: prev}
		for _, l := range m.snapshot() {
			l.HandleContainerClose(ev)
		}
	}
	m.active = c
	m.cursor = 0
	m.mode = modeGrid
	return nil
}

// Close implements host.Containers.
func (m *Model) Close(viewer host.ViewerID) error {
	if viewer != m.viewer {
		return nil
	}
	m.active = nil
	m.mode = modeIdle
	return nil
}

// SetSlot implements host.Containers.
func (m *Model) SetSlot(h host.Handle, slot int, content *host.Content) error {
	c, ok := h.(*Container)
	if !ok {
		return fmt.Errorf("foreign handle %T", h)
	}
	if slot < 0 || slot >= c.Size() {
		return fmt.Errorf("slot %d out of range 0..%d", slot, c.Size()-1)
	}
	c.set(slot, content)
	return nil
}

// Clear implements host.Containers.
func (m *Model) Clear(h host.Handle) error {
	c, ok := h.(*Container)
	if !ok {
		return fmt.Errorf("foreign handle %T", h)
	}
	c.clear()
	return nil
}

// Refresh implements host.Containers. The view reads container state
// directly and the program repaints after every update, so there is nothing
// to do here.
func (m *Model) Refresh(viewer host.ViewerID) error {
	return nil
}

// OpenEditor implements host.Editors.
func (m *Model) OpenEditor(viewer host.ViewerID, lines []string) error {
	if viewer != m.viewer {
		return fmt.Errorf("unknown viewer %s", viewer)
	}
	for i := range m.editor {
		m.editor[i].SetValue("")
		m.editor[i].Blur()
		if i < len(lines) {
			m.editor[i].SetValue(lines[i])
		}
	}
	m.editorIndex = 0
	m.editor[0].Focus()
	m.mode = modeEditor
	return nil
}

// CloseEditor implements host.Editors.
func (m *Model) CloseEditor(viewer host.ViewerID) error {
	if viewer != m.viewer {
		return nil
	}
	if m.mode == modeEditor {
		m.mode = modeIdle
		if m.active != nil {
			m.mode = modeGrid
		}
	}
	return nil
}

// Subscribe implements host.Bus.
func (m *Model) Subscribe(l host.Listener) {
	for _, existing := range m.listeners {
		if existing == l {
			return
		}
	}
	m.listeners = append(m.listeners, l)
}

// Unsubscribe implements host.Bus.
func (m *Model) Unsubscribe(l host.Listener) {
	for i, existing := range m.listeners {
		if existing == l {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}

// Run implements host.Scheduler. Callers already sit on the update loop.
func (m *Model) Run(task func()) { task() }

// RunAsync implements host.Scheduler.
func (m *Model) RunAsync(task func()) { go task() }

// RunAfter implements host.Scheduler. The task is marshalled back onto the
// update loop when a program is attached.
func (m *Model) RunAfter(task func(), ticks int64) {
	time.AfterFunc(time.Duration(ticks)*tickDuration, func() {
		if m.send != nil {
			m.send(taskMsg{task: task})
			return
		}
		task()
	})
}

// RunAsyncAfter implements host.Scheduler.
func (m *Model) RunAsyncAfter(task func(), ticks int64) {
	time.AfterFunc(time.Duration(ticks)*tickDuration, func() { go task() })
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update is part of the tea.Model interface.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case taskMsg:
		msg.task()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, m.updateInputs(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "ctrl+c" {
		m.emitDisconnect()
		return m, tea.Quit
	}
	switch m.mode {
	case modeGrid:
		return m.handleGridKey(msg)
	case modeSlotEdit:
		return m.handleSlotEditKey(msg)
	case modeEditor:
		return m.handleEditorKey(msg)
	}
	if msg.String() == "q" {
		m.emitDisconnect()
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.active == nil {
		m.mode = modeIdle
		return m, nil
	}
	size := m.active.Size()
	switch msg.String() {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < size-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor-slotsPerRow >= 0 {
			m.cursor -= slotsPerRow
		}
	case "down", "j":
		if m.cursor+slotsPerRow < size {
			m.cursor += slotsPerRow
		}
	case "enter", " ":
		m.emitClick(m.cursor)
	case "e":
		m.editSlot = m.cursor
		m.slotInput.SetValue("")
		if content := m.active.Slot(m.cursor); content != nil {
			m.slotInput.SetValue(content.Name)
		}
		m.mode = modeSlotEdit
		m.slotInput.Focus()
		return m, nil
	case "esc":
		m.emitUserClose()
	case "q":
		m.emitDisconnect()
		return m, tea.Quit
	}
	return m, nil
}

// handleSlotEditKey lets the viewer type free text into the selected slot,
// then reports the edit as a click so text-capture menus can read it.
func (m *Model) handleSlotEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := m.slotInput.Value()
		m.slotInput.Blur()
		m.mode = modeGrid
		if m.active != nil {
			m.active.set(m.editSlot, &host.Content{Name: text, Amount: 1})
			m.emitClick(m.editSlot)
		}
		return m, nil
	case "esc":
		m.slotInput.Blur()
		m.mode = modeGrid
		return m, nil
	}
	var cmd tea.Cmd
	m.slotInput, cmd = m.slotInput.Update(msg)
	return m, cmd
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "down", "tab":
		if m.editorIndex < len(m.editor)-1 {
			m.editor[m.editorIndex].Blur()
			m.editorIndex++
			m.editor[m.editorIndex].Focus()
			return m, nil
		}
		if msg.String() == "enter" {
			m.submitEditor()
		}
		return m, nil
	case "up", "shift+tab":
		if m.editorIndex > 0 {
			m.editor[m.editorIndex].Blur()
			m.editorIndex--
			m.editor[m.editorIndex].Focus()
			return m, nil
		}
		return m, nil
	case "ctrl+s":
		m.submitEditor()
		return m, nil
	case "esc":
		m.mode = modeIdle
		m.emitUserClose()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor[m.editorIndex], cmd = m.editor[m.editorIndex].Update(msg)
	return m, cmd
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.slotInput, cmd = m.slotInput.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for i := range m.editor {
		m.editor[i], cmd = m.editor[i].Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) submitEditor() {
	lines := make([]string, len(m.editor))
	for i := range m.editor {
		lines[i] = m.editor[i].Value()
	}
	ev := host.TextSubmitted{Viewer: m.viewer, Lines: lines}
	for _, l := range m.snapshot() {
		l.HandleTextSubmit(ev)
	}
}

func (m *Model) emitClick(slot int) {
	if m.active == nil {
		return
	}
	ev := host.SlotClicked{
		Viewer:  m.viewer,
		Handle:  m.active,
		Slot:    slot,
		Content: m.active.Slot(slot),
	}
	consumed := false
	for _, l := range m.snapshot() {
		if l.HandleSlotClick(ev) {
			consumed = true
		}
	}
	if !consumed {
		events.Menu.Click("unrouted", m.viewer.String(), slot, "none")
	}
}

// emitUserClose reports a viewer-initiated close: the container leaves the
// screen first, then listeners hear about it.
func (m *Model) emitUserClose() {
	closed := m.active
	m.active = nil
	m.mode = modeIdle
	if closed == nil {
		ev := host.ContainerClosed{Viewer: m.viewer}
		for _, l := range m.snapshot() {
			l.HandleContainerClose(ev)
		}
		return
	}
	ev := host.ContainerClosed{Viewer: m.viewer, Handle: closed}
	for _, l := range m.snapshot() {
		l.HandleContainerClose(ev)
	}
}

func (m *Model) emitDisconnect() {
	ev := host.Disconnected{Viewer: m.viewer}
	for _, l := range m.snapshot() {
		l.HandleDisconnect(ev)
	}
}

func (m *Model) snapshot() []host.Listener {
	return append([]host.Listener(nil), m.listeners...)
}
