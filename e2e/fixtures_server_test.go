//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi/v5"
)

// Quote mirrors one result of the quote server
type Quote struct {
	EpisodeID    string `json:"episode_id"`
	TimestampHMS string `json:"timestamp_hms"`
	Speaker      string `json:"speaker"`
	Text         string `json:"text"`
	SpotifyURL   string `json:"spotify_url,omitempty"`
}

// Reply is the canned /search response for one query
type Reply struct {
	Status           int     `json:"-"`
	Query            string  `json:"query"`
	QueryUsed        string  `json:"query_used"`
	OriginalQuery    string  `json:"original_query"`
	SearchType       string  `json:"search_type"`
	Message          string  `json:"message,omitempty"`
	Results          []Quote `json:"results"`
	SuggestedQuery   string  `json:"suggested_query,omitempty"`
	SuggestedResults []Quote `json:"suggested_results,omitempty"`
}

// DefaultQuotes covers the scenarios most tests need
func DefaultQuotes() map[string]Reply {
	return map[string]Reply{
		"laff": {
			Query: "laff", QueryUsed: "laugh", OriginalQuery: "laff", SearchType: "fuzzy",
			Results: []Quote{
				{EpisodeID: "xfm-s2e32", TimestampHMS: "0:42:01", Speaker: "karl", Text: "Are you having a laugh", SpotifyURL: "https://open.spotify.com/episode/1"},
				{EpisodeID: "podcast-s1e1", TimestampHMS: "0:01:02", Speaker: "ricky", Text: "That is a proper laugh"},
			},
		},
		"xyzzy": {
			Query: "xyzzy", SearchType: "suggestion", Message: "No exact matches",
			SuggestedQuery:   "laff",
			SuggestedResults: []Quote{{EpisodeID: "xfm-s2e32", TimestampHMS: "0:42:01", Speaker: "karl", Text: "Are you having a laugh"}},
		},
		"boom": {Status: http.StatusInternalServerError},
	}
}

// CreateTestWorkspace creates an isolated HOME for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "quotefinder-e2e-*")
	if err != nil {
		return "", err
	}
	tf.workspace = dir
	return dir, nil
}

// ServeQuotes starts a fake quote server behind the /api proxy prefix
func (tf *TUITestFramework) ServeQuotes(replies map[string]Reply) {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
			reply, ok := replies[req.URL.Query().Get("q")]
			if !ok {
				reply = Reply{Query: req.URL.Query().Get("q"), SearchType: "none"}
			}
			if reply.Status != 0 {
				w.WriteHeader(reply.Status)
				return
			}
			_ = json.NewEncoder(w).Encode(reply)
		})
		r.Get("/stats", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"total_quotes": 12345, "unique_episodes": 120, "episodes": []}`))
		})
	})

	srv := httptest.NewServer(r)
	tf.t.Cleanup(srv.Close)
	tf.apiURL = srv.URL
}
