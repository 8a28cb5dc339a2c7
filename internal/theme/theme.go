package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared by the search screen and
// the command output.
type Styles struct {
	Header       *lipgloss.Style
	Section      *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Overflow     *lipgloss.Style
	Prompt       *lipgloss.Style
	Info         *lipgloss.Style
	Success      *lipgloss.Style
	Warning      *lipgloss.Style
	Error        *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	),
	Section: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	),
	Overflow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set that renders text unchanged.
func Plain() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header:       ptr(plain),
		Section:      ptr(plain),
		Item:         ptr(plain),
		SelectedItem: ptr(plain),
		Overflow:     ptr(plain),
		Prompt:       ptr(plain),
		Info:         ptr(plain),
		Success:      ptr(plain),
		Warning:      ptr(plain),
		Error:        ptr(plain),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
