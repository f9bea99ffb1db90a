package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tagline       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Prompt        lipgloss.Style
	SpeakerActive lipgloss.Style
	Speaker       lipgloss.Style
	CardTitle     lipgloss.Style
	CardMeta      lipgloss.Style
	CardQuote     lipgloss.Style
	CardLink      lipgloss.Style
	CardSelected  lipgloss.Style
	Notice        lipgloss.Style
	Suggestion    lipgloss.Style
	Section       lipgloss.Style
	Toast         lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusLoading lipgloss.Style
	HelpBox       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tagline: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginBottom(1),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		SpeakerActive: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("78")).Padding(0, 1),
		Speaker:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		CardTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		CardMeta:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		CardQuote:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CardLink:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("99")).
			PaddingLeft(1),
		Notice:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // amber
		Suggestion:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("78")).Bold(true).Padding(0, 1),
		Section:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Toast:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),             // green
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),            // gray
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
	}
}

// SpeakerColor returns the accent color used for a speaker's name
func SpeakerColor(speaker string) string {
	switch speaker {
	case "ricky":
		return "33" // blue
	case "steve":
		return "214" // yellow
	case "karl":
		return "203" // red
	default:
		return "252"
	}
}
