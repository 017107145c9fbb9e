package termhost

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the host model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and runs any resulting commands to
// completion, unpacking batches along the way.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if batch, ok := next.(tea.BatchMsg); ok {
			for _, cmd := range batch {
				queue = h.collect(queue, cmd)
			}
			continue
		}
		mdl, cmd := h.model.Update(next)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		queue = h.collect(queue, cmd)
	}
}

func (h *Harness) collect(queue []tea.Msg, cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return queue
	}
	if msg := cmd(); msg != nil {
		return append(queue, msg)
	}
	return queue
}

// Type sends one key message per rune.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends a named key such as "enter" or "esc".
func (h *Harness) Press(key tea.KeyType) {
	h.Send(tea.KeyMsg{Type: key})
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
