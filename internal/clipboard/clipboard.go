package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("clipboard unavailable")

// Copier writes text to the system clipboard
type Copier struct {
	write       func(string) error
	unsupported bool
}

// New returns a Copier backed by the platform clipboard
func New() *Copier {
	return &Copier{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// NewWithWriter returns a Copier that hands text to write
func NewWithWriter(write func(string) error) *Copier {
	return &Copier{write: write}
}

// Copy puts text on the clipboard
func (c *Copier) Copy(text string) error {
	if text == "" {
		return errors.New("nothing to copy")
	}
	if c.unsupported {
		return ErrUnsupported
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
