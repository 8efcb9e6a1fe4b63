package views

import (
	"github.com/charmbracelet/lipgloss"

	"leapview/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Text       lipgloss.Style
	Dim        lipgloss.Style
	Cursor     lipgloss.Style
	Selection  lipgloss.Style
	Match      lipgloss.Style
	NextMatch  lipgloss.Style
	Label      lipgloss.Style
	LineNumber lipgloss.Style
	Filler     lipgloss.Style
	Status     lipgloss.Style
	StatusMode lipgloss.Style
	Search     lipgloss.Style
	Notice     lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles creates the styles for a color scheme
func NewStyles(colors config.Colors) *Styles {
	return &Styles{
		Text:       lipgloss.NewStyle(),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Dim)),
		Cursor:     lipgloss.NewStyle().Reverse(true),
		Selection:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Match:      lipgloss.NewStyle().Background(lipgloss.Color(colors.Match)),
		NextMatch: lipgloss.NewStyle().
			Background(lipgloss.Color(colors.NextMatch)).
			Foreground(lipgloss.Color(colors.LabelText)),
		Label: lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color(colors.Label)).
			Foreground(lipgloss.Color(colors.LabelText)),
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filler:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		StatusMode: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("99")),
		Search:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("236")), // yellow
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236")), // red
		Help:       lipgloss.NewStyle().Faint(true),
	}
}
