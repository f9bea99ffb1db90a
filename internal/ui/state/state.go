package state

import (
	"quotefinder/internal/domain"
)

// AppState holds the presentation state that is not owned by the search
// session: cursor, overlays and auxiliary data.
type AppState struct {
	// Result cursor
	SelectedIndex  int // currently selected result
	ViewportOffset int // first visible result
	ViewportHeight int // number of results that fit on screen

	// Overlays
	ShowHelp         bool
	HelpScrollOffset int
	ShowPrivacy      bool

	// Auxiliary data
	Stats         *domain.Stats // nil until loaded
	StatusMessage string        // transient status line, e.g. after copying

	// ClearToken is the last session clear token the input has honoured
	ClearToken int
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 5, // Updated on first WindowSizeMsg
	}
}

// ResetCursor puts the cursor on the first result
func (s *AppState) ResetCursor() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// Navigate moves the cursor within total results
func (s *AppState) Navigate(direction string, total int) {
	if total <= 0 {
		s.ResetCursor()
		return
	}

	page := s.ViewportHeight
	if page < 1 {
		page = 1
	}

	switch direction {
	case "up":
		s.SelectedIndex--
	case "down":
		s.SelectedIndex++
	case "pageup":
		s.SelectedIndex -= page
	case "pagedown":
		s.SelectedIndex += page
	case "home":
		s.SelectedIndex = 0
	case "end":
		s.SelectedIndex = total - 1
	}

	s.Clamp(total)
}

// Clamp keeps the cursor inside total results and the viewport around it
func (s *AppState) Clamp(total int) {
	if s.SelectedIndex >= total {
		s.SelectedIndex = total - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}

	height := s.ViewportHeight
	if height < 1 {
		height = 1
	}
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ViewportOffset+height {
		s.ViewportOffset = s.SelectedIndex - height + 1
	}
	if maxOffset := total - height; s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

// ScrollHelp moves the help overlay by delta lines
func (s *AppState) ScrollHelp(delta int) {
	s.HelpScrollOffset += delta
	if s.HelpScrollOffset < 0 {
		s.HelpScrollOffset = 0
	}
}
