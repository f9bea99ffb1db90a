package domain

// SearchType tells how the server matched a query
type SearchType string

const (
	SearchTypeExact      SearchType = "exact"
	SearchTypeFuzzy      SearchType = "fuzzy"
	SearchTypeSuggestion SearchType = "suggestion"
	SearchTypeNone       SearchType = "none"
)

// SearchResult is a single transcript snippet returned by the quote server
type SearchResult struct {
	EpisodeID    string   `json:"episode_id"`
	EpisodeName  string   `json:"episode_name"`
	TimestampSec float64  `json:"timestamp_sec"`
	TimestampHMS string   `json:"timestamp_hms"`
	Speaker      string   `json:"speaker"`
	Text         string   `json:"text"`
	SpotifyURL   string   `json:"spotify_url,omitempty"`
	Rank         *float64 `json:"rank,omitempty"`
	Score        *float64 `json:"score,omitempty"`
}

// HasLink reports whether the result carries an external audio link
func (r SearchResult) HasLink() bool {
	return r.SpotifyURL != ""
}

// SearchResponse is the full reply of GET /search
type SearchResponse struct {
	Query            string         `json:"query"`
	QueryUsed        string         `json:"query_used"`
	OriginalQuery    string         `json:"original_query"`
	Count            int            `json:"count"`
	Results          []SearchResult `json:"results"`
	SearchType       SearchType     `json:"search_type"`
	Message          string         `json:"message,omitempty"`
	SuggestedQuery   string         `json:"suggested_query,omitempty"`
	SuggestedResults []SearchResult `json:"suggested_results,omitempty"`

	// Decoded for forward compatibility; nothing reads them.
	SuggestionConfidence *float64 `json:"suggestion_confidence,omitempty"`
	AutoCorrected        *bool    `json:"auto_corrected,omitempty"`
}

// HasSuggestion reports whether the server offered an alternate query
func (r *SearchResponse) HasSuggestion() bool {
	return r != nil && r.SearchType == SearchTypeSuggestion && r.SuggestedQuery != ""
}

// MaxSuggestionPreview is how many suggestion results are previewed
const MaxSuggestionPreview = 3

// SuggestionPreview returns at most MaxSuggestionPreview suggested results
func (r *SearchResponse) SuggestionPreview() []SearchResult {
	if !r.HasSuggestion() {
		return nil
	}
	if len(r.SuggestedResults) > MaxSuggestionPreview {
		return r.SuggestedResults[:MaxSuggestionPreview]
	}
	return r.SuggestedResults
}

// Corrected reports whether the server matched a different query than the one submitted
func (r *SearchResponse) Corrected(submitted string) bool {
	return r != nil && r.SearchType == SearchTypeFuzzy && r.QueryUsed != "" && r.QueryUsed != submitted
}

// Stats is the reply of GET /stats
type Stats struct {
	TotalQuotes    int      `json:"total_quotes"`
	UniqueEpisodes int      `json:"unique_episodes"`
	Episodes       []string `json:"episodes"`
}
