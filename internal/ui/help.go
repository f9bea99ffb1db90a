package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// keyMap drives the one-line key hint in the footer
type keyMap struct {
	Search  key.Binding
	Speaker key.Binding
	Copy    key.Binding
	Pager   key.Binding
	Home    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Speaker: key.NewBinding(key.WithKeys("s", "S", "1", "2", "3", "4"), key.WithHelp("s/1-4", "speaker")),
		Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy link")),
		Pager:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view all")),
		Home:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "home")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Speaker, k.Copy, k.Pager, k.Home, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// renderHelpContent renders the help information
func (r *HelpRenderer) renderHelpContent(height int, scrollOffset int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(k, desc string) string {
		return fmt.Sprintf("  %s%s\n", keyStyle.Render(k), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("Quote Finder Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(line("/", "Type a quote (enter to search, esc to cancel)"))
	help.WriteString(line("enter", "Search the suggested quote"))
	help.WriteString(line("s / S", "Next / previous speaker"))
	help.WriteString(line("1-4", "All speakers, Ricky, Steve, Karl"))
	help.WriteString(line("H", "Home: clear search and filter"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Results"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓, j/k", "Move between results"))
	help.WriteString(line("PgUp/PgDn", "Page up/down"))
	help.WriteString(line("gg/G", "First/last result"))
	help.WriteString(line("c", "Copy the Spotify link"))
	help.WriteString(line("v", "View all results in a pager"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("x, esc", "Dismiss error"))
	help.WriteString(line("p", "Privacy policy"))
	help.WriteString(line("?", "Toggle this help"))
	help.WriteString(strings.TrimSuffix(line("q", "Quit"), "\n"))

	content := help.String()
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Account for popup border and padding
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	if totalLines <= visibleHeight {
		return content
	}

	maxOffset := totalLines - visibleHeight
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	endLine := scrollOffset + visibleHeight
	visibleLines := append([]string(nil), lines[scrollOffset:endLine]...)

	scrollStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if scrollOffset > 0 {
		visibleLines[0] = scrollStyle.Render("↑ (more above)")
	}
	if endLine < totalLines {
		visibleLines[len(visibleLines)-1] = scrollStyle.Render("↓ (more below)")
	}

	return strings.Join(visibleLines, "\n")
}
