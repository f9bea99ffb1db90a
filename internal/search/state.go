package search

import "quotefinder/internal/domain"

// Kind identifies which variant a State is
type Kind int

const (
	KindIdle Kind = iota
	KindLoading
	KindSuccess
	KindEmpty
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindEmpty:
		return "empty"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// State is what the result area currently shows. Only the variants in this
// package implement it.
type State interface {
	Kind() Kind
	sealed()
}

// Idle is the start screen
type Idle struct{}

// Loading waits for the search of Query filtered by Speaker
type Loading struct {
	Query   string
	Speaker domain.Speaker
}

// Success holds a response with at least one result
type Success struct {
	Response *domain.SearchResponse
}

// Empty holds a response with no results, possibly carrying a suggestion
type Empty struct {
	Response *domain.SearchResponse
}

// Failed holds the display message of a transport failure
type Failed struct {
	Message string
}

func (Idle) Kind() Kind    { return KindIdle }
func (Loading) Kind() Kind { return KindLoading }
func (Success) Kind() Kind { return KindSuccess }
func (Empty) Kind() Kind   { return KindEmpty }
func (Failed) Kind() Kind  { return KindError }

func (Idle) sealed()    {}
func (Loading) sealed() {}
func (Success) sealed() {}
func (Empty) sealed()   {}
func (Failed) sealed()  {}
