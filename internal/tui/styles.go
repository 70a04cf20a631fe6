package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the editor views
var (
	Accent      = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#7a8599")
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
)

// Styles holds the lipgloss styles of the editor
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Pass   lipgloss.Style
	Fail   lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
	Panel  lipgloss.Style
	Swatch func(hex string) lipgloss.Style
}

// DefaultStyles returns the dark-terminal styles
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Header: lipgloss.NewStyle().Bold(true).Foreground(Warning),
		Label:  lipgloss.NewStyle().Foreground(Muted),
		Value:  lipgloss.NewStyle(),
		Pass:   lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Fail:   lipgloss.NewStyle().Bold(true).Foreground(Destructive),
		Status: lipgloss.NewStyle().Foreground(Info),
		Help:   lipgloss.NewStyle().Foreground(Muted),
		Panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Muted).Padding(0, 1),
		Swatch: func(hex string) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		},
	}
}
