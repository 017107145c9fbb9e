package termhost

import (
	"strconv"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	cellWidth       = 11
	detailWrapWidth = 60
)

// View is part of the tea.Model interface.
func (m *Model) View() string {
	switch m.mode {
	case modeEditor:
		return m.editorView()
	case modeSlotEdit:
		return m.gridView() + "\n" + m.slotInput.View() + "\n"
	case modeGrid:
		return m.gridView()
	}
	return m.styles.Footer.Render("no menu open; q quits") + "\n"
}

func (m *Model) gridView() string {
	c := m.active
	if c == nil {
		return m.styles.Footer.Render("no menu open; q quits") + "\n"
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(c.Title()))
	b.WriteString("\n\n")
	for row := 0; row < c.rows(); row++ {
		for col := 0; col < slotsPerRow; col++ {
			slot := row*slotsPerRow + col
			if slot >= c.Size() {
				break
			}
			b.WriteString(m.renderCell(slot))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.renderDetail())
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteByte('\n')
	}
	b.WriteString(m.styles.Footer.Render("arrows move · enter clicks · e edits · esc closes · q quits"))
	b.WriteByte('\n')
	return b.String()
}

func (m *Model) renderCell(slot int) string {
	content := m.active.Slot(slot)
	label := "·"
	if content != nil {
		label = truncate.StringWithTail(content.Name, cellWidth-2, "…")
	}
	cell := pad(label, cellWidth)
	switch {
	case slot == m.cursor:
		return m.styles.SelectedSlot.Render(cell)
	case content == nil:
		return m.styles.Slot.Render(cell)
	case content.Glow:
		return m.styles.GlowSlot.Render(cell)
	default:
		return m.styles.FilledSlot.Render(cell)
	}
}

// renderDetail shows the full payload of the slot under the cursor.
func (m *Model) renderDetail() string {
	content := m.active.Slot(m.cursor)
	if content == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.DetailTitle.Render(content.Name))
	if content.Icon != "" {
		b.WriteString(m.styles.Detail.Render(" [" + content.Icon + "]"))
	}
	if content.Amount > 1 {
		b.WriteString(m.styles.Detail.Render(" ×" + strconv.Itoa(content.Amount)))
	}
	b.WriteByte('\n')
	for _, line := range content.Lore {
		b.WriteString(m.styles.Lore.Render(wordwrap.String(line, detailWrapWidth)))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

func (m *Model) editorView() string {
	var b strings.Builder
	b.WriteString(m.styles.EditorPrompt.Render("edit text, ctrl+s submits, esc cancels"))
	b.WriteString("\n\n")
	for i := range m.editor {
		b.WriteString(m.editor[i].View())
		b.WriteByte('\n')
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
