package views

import (
	"fmt"
	"strings"

	"quotefinder/internal/domain"
)

var searchTips = []string{
	"Try shorter, more common phrases",
	"Use partial quotes you remember",
	"Filter by speaker (Ricky, Steve, Karl)",
	"Check for typos or different spellings",
}

func (r *Renderer) renderTips() string {
	var b strings.Builder
	b.WriteString(r.styles.Section.Render("Search tips:"))
	for _, tip := range searchTips {
		b.WriteString("\n  • " + tip)
	}
	return b.String()
}

func (r *Renderer) renderIdle() string {
	var b strings.Builder
	b.WriteString(r.styles.Dim.Render("Press / to search for a quote."))
	b.WriteString("\n\n")
	b.WriteString(r.renderTips())
	return b.String()
}

// renderEmpty renders the no-results page with the server's suggestion, if any
func (r *Renderer) renderEmpty(query string, resp *domain.SearchResponse) string {
	var b strings.Builder
	b.WriteString(r.styles.CardTitle.Render(fmt.Sprintf("No results found for \"%s\"", query)))
	b.WriteString("\n")
	if resp != nil && resp.Message != "" {
		b.WriteString(resp.Message)
		b.WriteString("\n")
	}

	if resp.HasSuggestion() {
		b.WriteString("\n")
		b.WriteString(r.styles.Suggestion.Render(fmt.Sprintf("Search instead for \"%s\"", resp.SuggestedQuery)))
		b.WriteString(r.styles.Dim.Render("  (enter)"))
		b.WriteString("\n")

		if preview := resp.SuggestionPreview(); len(preview) > 0 {
			b.WriteString("\n")
			b.WriteString(r.styles.CardMeta.Render("What you'd see:"))
			for _, res := range preview {
				b.WriteString("\n  " + FormatPreview(res))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Try adjusting your search terms or check your spelling. You can also try searching for partial quotes."))
	b.WriteString("\n\n")
	b.WriteString(r.renderTips())
	return b.String()
}

func (r *Renderer) renderPrivacy() string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Privacy Policy"))
	b.WriteString("\n\n")
	for _, p := range [][2]string{
		{"Data Collection", "When you search, the server logs your search query, IP address, user agent, and timestamp for analytics purposes."},
		{"Data Storage", "This data is stored in the server's database and used only to understand usage patterns and improve the service."},
		{"Data Sharing", "We do not sell, rent, or share your data with third parties."},
		{"Local Data", "This client keeps nothing between sessions apart from its config and log files."},
		{"Third-Party Services", "Spotify links are provided for episode playback."},
	} {
		b.WriteString(r.styles.CardTitle.Render(p[0]+":") + " " + p[1] + "\n\n")
	}
	b.WriteString(r.styles.Dim.Render("← Press p or esc to go back"))
	return b.String()
}

func (r *Renderer) renderFooter() string {
	return r.styles.Dim.Render("Transcripts from scrimpton.com • Spotify uploads by RSK XFM Pilky01 • p privacy")
}
