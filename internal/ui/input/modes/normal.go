package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quotefinder/internal/domain"
	"quotefinder/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		// Enter runs the suggested query from the empty state
		if ctx.CanSelectSuggestion() {
			return []types.Action{types.SelectSuggestionAction{}}, true
		}
		return nil, false

	case tea.KeyEsc:
		if ctx.HasToast() {
			return []types.Action{types.DismissErrorAction{}}, true
		}
		return nil, true
	}

	switch key := msg.String(); key {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.Query()}}, true

	case "s":
		return []types.Action{types.CycleSpeakerAction{Delta: 1}}, true

	case "S":
		return []types.Action{types.CycleSpeakerAction{Delta: -1}}, true

	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(domain.Speakers) {
			return []types.Action{types.SetSpeakerAction{Speaker: domain.Speakers[idx]}}, true
		}
		return nil, false

	case "H":
		return []types.Action{types.ResetAction{}}, true

	case "c":
		if link := ctx.CurrentLink(); link != "" {
			return []types.Action{types.CopyLinkAction{URL: link}}, true
		}
		return nil, true

	case "v":
		if ctx.ResultCount() > 0 {
			return []types.Action{types.OpenPagerAction{}}, true
		}
		return nil, true

	case "x":
		if ctx.HasToast() {
			return []types.Action{types.DismissErrorAction{}}, true
		}
		return nil, true

	case "p":
		return []types.Action{types.TogglePrivacyAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		m.lastKeyWasG = false
	}

	return nil, false
}
