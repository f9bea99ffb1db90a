package views

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"quotefinder/internal/domain"
)

// episodeIDRE matches ids like xfm-s2e32, podcast-s1e1 and guide-s1e1
var episodeIDRE = regexp.MustCompile(`^(\w+)-s(\d+)e(\d+)$`)

var numberPrinter = message.NewPrinter(language.English)

// FormatEpisodeDisplay turns an episode id into a heading such as
// "XFM | Series 2 Episode 32". Guides with a name show the name instead of
// numbers; ids in any other shape fall back to the name, then the id.
func FormatEpisodeDisplay(episodeID, episodeName string) string {
	m := episodeIDRE.FindStringSubmatch(episodeID)
	if m == nil {
		if episodeName != "" {
			return episodeName
		}
		return episodeID
	}
	publication, series, episode := m[1], m[2], m[3]

	var prefix string
	switch publication {
	case "xfm":
		prefix = "XFM"
	case "podcast", "guide":
		prefix = "Podcast"
	default:
		prefix = strings.ToUpper(publication[:1]) + publication[1:]
	}

	if publication == "guide" && strings.TrimSpace(episodeName) != "" {
		return prefix + " | " + episodeName
	}
	return fmt.Sprintf("%s | Series %s Episode %s", prefix, series, episode)
}

// FormatStats renders "1,234 quotes from 56 episodes"
func FormatStats(s domain.Stats) string {
	return numberPrinter.Sprintf("%d quotes from %d episodes", s.TotalQuotes, s.UniqueEpisodes)
}

// FormatCount renders "Found N result(s)"
func FormatCount(n int) string {
	if n == 1 {
		return "Found 1 result"
	}
	return fmt.Sprintf("Found %d results", n)
}

// FuzzyNotice returns the "Showing results for" line of a corrected
// response, or "" when the server matched the query as typed.
func FuzzyNotice(resp *domain.SearchResponse) string {
	if resp == nil || resp.SearchType != domain.SearchTypeFuzzy || resp.QueryUsed == "" {
		return ""
	}
	if resp.QueryUsed == resp.OriginalQuery || (resp.OriginalQuery == "" && resp.QueryUsed == resp.Query) {
		return ""
	}
	return fmt.Sprintf("Showing results for \"%s\"", resp.QueryUsed)
}

// FormatPreview renders one suggestion preview line
func FormatPreview(r domain.SearchResult) string {
	return fmt.Sprintf("“%s” — %s @ %s", r.Text, domain.SpeakerLabel(r.Speaker), r.TimestampHMS)
}

// PlainResults renders results as uncolored text for the pager and the
// search command
func PlainResults(query string, resp *domain.SearchResponse) string {
	var b strings.Builder
	if resp == nil {
		return ""
	}

	if len(resp.Results) == 0 {
		if resp.Message != "" {
			b.WriteString(resp.Message + "\n")
		}
		if resp.HasSuggestion() {
			fmt.Fprintf(&b, "Suggested query: %s\n", resp.SuggestedQuery)
			if preview := resp.SuggestionPreview(); len(preview) > 0 {
				b.WriteString("\nPreview results for suggestion:\n")
				for _, r := range preview {
					fmt.Fprintf(&b, "- %s\n", FormatPreview(r))
				}
			}
		}
		b.WriteString("No matches found.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Top matches for: \"%s\"\n", query)
	if notice := FuzzyNotice(resp); notice != "" {
		if resp.Message != "" {
			b.WriteString(resp.Message + "\n")
		}
		b.WriteString(notice + "\n")
	}
	b.WriteString(FormatCount(len(resp.Results)) + "\n\n")

	for _, r := range resp.Results {
		fmt.Fprintf(&b, "%s\n", FormatEpisodeDisplay(r.EpisodeID, r.EpisodeName))
		fmt.Fprintf(&b, "  %s • %s\n", r.TimestampHMS, domain.SpeakerLabel(r.Speaker))
		fmt.Fprintf(&b, "  \"%s\"\n", r.Text)
		if r.HasLink() {
			fmt.Fprintf(&b, "  Spotify: %s\n", r.SpotifyURL)
		}
		b.WriteString("\n")
	}
	return b.String()
}
