package types

import "quotefinder/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search actions
type SelectSuggestionAction struct{}

func (a SelectSuggestionAction) Type() string { return "select_suggestion" }

type CycleSpeakerAction struct {
	Delta int // 1 forward, -1 back
}

func (a CycleSpeakerAction) Type() string { return "cycle_speaker" }

type SetSpeakerAction struct {
	Speaker domain.Speaker
}

func (a SetSpeakerAction) Type() string { return "set_speaker" }

type ResetAction struct{}

func (a ResetAction) Type() string { return "reset" }

type DismissErrorAction struct{}

func (a DismissErrorAction) Type() string { return "dismiss_error" }

// Result actions
type CopyLinkAction struct {
	URL string
}

func (a CopyLinkAction) Type() string { return "copy_link" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// Overlay actions
type TogglePrivacyAction struct{}

func (a TogglePrivacyAction) Type() string { return "toggle_privacy" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
