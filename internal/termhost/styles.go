package termhost

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the terminal host.
type Styles struct {
	Title        *lipgloss.Style
	Slot         *lipgloss.Style
	FilledSlot   *lipgloss.Style
	SelectedSlot *lipgloss.Style
	GlowSlot     *lipgloss.Style
	Detail       *lipgloss.Style
	DetailTitle  *lipgloss.Style
	Lore         *lipgloss.Style
	Footer       *lipgloss.Style
	EditorPrompt *lipgloss.Style
	Error        *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Slot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	FilledSlot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedSlot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	GlowSlot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	),
	Detail: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	DetailTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Lore: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	EditorPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// DefaultStyles exposes the standard style set used across the host.
func DefaultStyles() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
