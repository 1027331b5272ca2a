package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	TextBox      lipgloss.Style
	TextBoxFocus lipgloss.Style
	Caret        lipgloss.Style
	CaretOpen    lipgloss.Style
	Item         lipgloss.Style
	ItemActive   lipgloss.Style
	ItemEmpty    lipgloss.Style
	Scroll       lipgloss.Style
	Status       lipgloss.Style
	Selected     lipgloss.Style
	Help         lipgloss.Style
	Error        lipgloss.Style
	Main         lipgloss.Style
}

// Main padding, needed to map mouse coordinates back to rows
const (
	PadTop  = 1
	PadLeft = 2
)

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TextBox: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")),
		TextBoxFocus: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("238")).
			Underline(true),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		CaretOpen:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Item:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		ItemEmpty:  lipgloss.NewStyle().Faint(true).Italic(true),
		Scroll:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Help:       lipgloss.NewStyle().Faint(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Main:       lipgloss.NewStyle().Padding(PadTop, PadLeft),
	}
}
