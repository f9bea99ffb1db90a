package domain

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownSpeaker is returned when a speaker name is not one of Speakers
var ErrUnknownSpeaker = errors.New("unknown speaker")

// Speaker restricts results to one participant. The zero value means no filter.
type Speaker string

const (
	SpeakerAll   Speaker = ""
	SpeakerRicky Speaker = "ricky"
	SpeakerSteve Speaker = "steve"
	SpeakerKarl  Speaker = "karl"
)

// Speakers lists the selectable filters in display order, "all" first
var Speakers = []Speaker{SpeakerAll, SpeakerRicky, SpeakerSteve, SpeakerKarl}

var titleCaser = cases.Title(language.English)

// ParseSpeaker maps user input to a Speaker. Empty input and "all" mean no filter.
func ParseSpeaker(s string) (Speaker, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "all" {
		return SpeakerAll, nil
	}
	for _, sp := range Speakers {
		if string(sp) == name {
			return sp, nil
		}
	}
	return SpeakerAll, fmt.Errorf("%w %q: must be one of ricky, steve, karl", ErrUnknownSpeaker, s)
}

// IsAll reports whether no filter is set
func (s Speaker) IsAll() bool {
	return s == SpeakerAll
}

// Label is the human readable name
func (s Speaker) Label() string {
	if s.IsAll() {
		return "All speakers"
	}
	return SpeakerLabel(string(s))
}

// Next returns the following filter in Speakers, wrapping around
func (s Speaker) Next() Speaker {
	return s.step(1)
}

// Prev returns the preceding filter in Speakers, wrapping around
func (s Speaker) Prev() Speaker {
	return s.step(-1)
}

func (s Speaker) step(delta int) Speaker {
	idx := 0
	for i, sp := range Speakers {
		if sp == s {
			idx = i
			break
		}
	}
	n := len(Speakers)
	return Speakers[((idx+delta)%n+n)%n]
}

// SpeakerLabel title-cases a speaker name as sent by the server
func SpeakerLabel(name string) string {
	return titleCaser.String(strings.ToLower(name))
}
