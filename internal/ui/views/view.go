package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"quotefinder/internal/domain"
	"quotefinder/internal/search"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Search session
	State   search.State
	Query   string
	Speaker domain.Speaker
	Toast   string

	// Presentation
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	InputActive    bool
	TextInput      string // rendered text input while searching
	Spinner        string // current spinner frame
	Stats          *domain.Stats
	StatusMessage  string
	ShowPrivacy    bool
	ShowHelp       bool
	HelpContent    string
	HelpModel      help.Model
	KeyMap         help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	resultRender *ResultRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		resultRender: NewResultRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.popupRender.RenderPopup(state.HelpContent, state.Height, state.Width, r.styles.HelpBox)
	}

	content := &strings.Builder{}
	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	if state.ShowPrivacy {
		content.WriteString(r.renderPrivacy())
		return r.styles.Main.MaxHeight(r.maxHeight(state)).Render(content.String())
	}

	content.WriteString(r.styles.Tagline.Render("Type a quote, get the Spotify link, no faff."))
	content.WriteString("\n")
	content.WriteString(r.renderSearchBox(state))
	content.WriteString("\n")
	content.WriteString(r.renderSpeakers(state.Speaker))
	content.WriteString("\n\n")
	content.WriteString(r.renderBody(state))

	var bottom []string
	if state.Toast != "" {
		bottom = append(bottom, r.styles.Toast.Render("✗ "+state.Toast)+r.styles.Dim.Render("  (x to dismiss)"))
	}
	if state.StatusMessage != "" {
		bottom = append(bottom, r.styles.StatusSuccess.Render(state.StatusMessage))
	}
	bottom = append(bottom, r.renderFooter())
	if state.KeyMap != nil {
		bottom = append(bottom, state.HelpModel.View(state.KeyMap))
	}

	// Push the footer to the bottom of the screen
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2 // Main padding
	if availableLines <= 0 {
		availableLines = 22
	}
	if padding := availableLines - currentLines - len(bottom); padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(strings.Join(bottom, "\n"))

	return r.styles.Main.MaxHeight(r.maxHeight(state)).Render(content.String())
}

func (r *Renderer) maxHeight(state ViewState) int {
	if state.Height <= 0 {
		return 100
	}
	return state.Height
}

// renderTitle renders the logo with the archive stats right-aligned
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("XFM Quote Finder")
	if state.Stats == nil {
		return logo
	}

	right := r.styles.Status.Render("📊 " + FormatStats(*state.Stats))
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderSearchBox(state ViewState) string {
	if state.InputActive {
		return state.TextInput
	}
	prompt := r.styles.Prompt.Render("> ")
	if state.Query == "" {
		return prompt + r.styles.Dim.Render("Press / to search")
	}
	return prompt + state.Query
}

func (r *Renderer) renderSpeakers(current domain.Speaker) string {
	parts := make([]string, 0, len(domain.Speakers))
	for i, sp := range domain.Speakers {
		label := fmt.Sprintf("%d %s", i+1, sp.Label())
		if sp == current {
			parts = append(parts, r.styles.SpeakerActive.Render(label))
		} else {
			parts = append(parts, r.styles.Speaker.Render(label))
		}
	}
	return r.styles.Dim.Render("Speaker ") + strings.Join(parts, " ")
}

// renderBody renders the result area for the current search state
func (r *Renderer) renderBody(state ViewState) string {
	width := state.Width - 4
	if width <= 0 {
		width = 76
	}

	switch st := state.State.(type) {
	case search.Loading:
		label := fmt.Sprintf("Searching for \"%s\"", st.Query)
		if !st.Speaker.IsAll() {
			label += " by " + st.Speaker.Label()
		}
		return r.styles.StatusLoading.Render(state.Spinner + " " + label + "...")

	case search.Success:
		var b strings.Builder
		if st.Response.Message != "" {
			b.WriteString(r.styles.Notice.Render(st.Response.Message))
			b.WriteString("\n")
		}
		if notice := FuzzyNotice(st.Response); notice != "" {
			b.WriteString(r.styles.Notice.Render(notice))
			b.WriteString("\n")
		}
		b.WriteString(r.styles.CardMeta.Render(FormatCount(len(st.Response.Results))))
		b.WriteString("\n\n")
		b.WriteString(r.resultRender.RenderList(st.Response.Results, state.SelectedIndex, state.ViewportOffset, state.ViewportHeight, width))
		return b.String()

	case search.Empty:
		return r.renderEmpty(state.Query, st.Response)

	case search.Failed:
		return r.styles.Dim.Render("The search could not be completed. Press / to try again.")

	default:
		return r.renderIdle()
	}
}
