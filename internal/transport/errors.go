package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultFailureMessage is shown when a failure carries nothing more specific
const DefaultFailureMessage = "Search failed"

// Error is returned for every failed request: non-2xx replies, connectivity
// problems and undecodable bodies.
type Error struct {
	Endpoint string
	Status   int    // 0 when no response was received
	Detail   string // "detail" field of the server's JSON error body, if any
	Message  string // display-ready text
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the display text for err, falling back to
// DefaultFailureMessage when err is not a transport error.
func Message(err error) string {
	var tErr *Error
	if errors.As(err, &tErr) && tErr.Message != "" {
		return tErr.Message
	}
	return DefaultFailureMessage
}

func newStatusError(endpoint, label string, status int, body []byte) *Error {
	detail := extractDetail(body)
	msg := fmt.Sprintf("%s failed: %d", label, status)
	if detail != "" {
		msg += " (" + detail + ")"
	}
	return &Error{Endpoint: endpoint, Status: status, Detail: detail, Message: msg}
}

func newFailure(endpoint, label string, err error) *Error {
	return &Error{Endpoint: endpoint, Message: label + " failed", Err: err}
}

// extractDetail pulls "detail" out of a JSON error body. The server sends
// either a string or a list of validation errors carrying "msg".
func extractDetail(body []byte) string {
	var parsed struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) != nil || len(parsed.Detail) == 0 {
		return ""
	}

	var s string
	if json.Unmarshal(parsed.Detail, &s) == nil {
		return s
	}

	var list []struct {
		Msg string `json:"msg"`
	}
	if json.Unmarshal(parsed.Detail, &list) == nil && len(list) > 0 {
		return list[0].Msg
	}
	return ""
}
