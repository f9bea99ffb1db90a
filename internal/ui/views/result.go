package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quotefinder/internal/domain"
)

// ResultRenderer handles rendering of result cards
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{styles: styles}
}

// RenderResult renders one result card of the given width
func (r *ResultRenderer) RenderResult(res domain.SearchResult, isSelected bool, width int) string {
	if width < 20 {
		width = 20
	}

	speakerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(SpeakerColor(strings.ToLower(res.Speaker))))
	meta := fmt.Sprintf("%s • %s",
		r.styles.CardMeta.Render(res.TimestampHMS),
		speakerStyle.Render(domain.SpeakerLabel(res.Speaker)),
	)

	lines := []string{
		r.styles.CardTitle.Render(FormatEpisodeDisplay(res.EpisodeID, res.EpisodeName)),
		meta,
		r.styles.CardQuote.Width(width - 4).Render(fmt.Sprintf("\"%s\"", res.Text)),
	}
	if res.HasLink() {
		link := "♫ " + res.SpotifyURL
		if isSelected {
			link += r.styles.Dim.Render("  (c to copy)")
		}
		lines = append(lines, r.styles.CardLink.Render(link))
	}

	card := strings.Join(lines, "\n")
	if isSelected {
		return r.styles.CardSelected.Render(card)
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(card)
}

// RenderList renders the visible window of results
func (r *ResultRenderer) RenderList(results []domain.SearchResult, selected, offset, height, width int) string {
	if len(results) == 0 {
		return ""
	}
	if height < 1 {
		height = 1
	}
	end := offset + height
	if end > len(results) {
		end = len(results)
	}

	var cards []string
	if offset > 0 {
		cards = append(cards, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above", offset)))
	}
	for i := offset; i < end; i++ {
		cards = append(cards, r.RenderResult(results[i], i == selected, width))
	}
	if remaining := len(results) - end; remaining > 0 {
		cards = append(cards, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below", remaining)))
	}
	return strings.Join(cards, "\n\n")
}
