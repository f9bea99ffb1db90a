package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigateStaysInBounds(t *testing.T) {
	s := NewAppState()
	s.ViewportHeight = 3

	s.Navigate("up", 10)
	assert.Equal(t, 0, s.SelectedIndex)

	s.Navigate("end", 10)
	assert.Equal(t, 9, s.SelectedIndex)
	assert.Equal(t, 7, s.ViewportOffset)

	s.Navigate("down", 10)
	assert.Equal(t, 9, s.SelectedIndex)

	s.Navigate("pageup", 10)
	assert.Equal(t, 6, s.SelectedIndex)
	assert.Equal(t, 6, s.ViewportOffset)

	s.Navigate("home", 10)
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, 0, s.ViewportOffset)
}

func TestNavigateWithoutResults(t *testing.T) {
	s := NewAppState()
	s.SelectedIndex = 4
	s.Navigate("down", 0)
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, 0, s.ViewportOffset)
}

func TestClampAfterShrink(t *testing.T) {
	s := NewAppState()
	s.ViewportHeight = 2
	s.SelectedIndex = 8
	s.ViewportOffset = 7

	s.Clamp(3)
	assert.Equal(t, 2, s.SelectedIndex)
	assert.Equal(t, 1, s.ViewportOffset)
}

func TestScrollHelp(t *testing.T) {
	s := NewAppState()
	s.ScrollHelp(-3)
	assert.Equal(t, 0, s.HelpScrollOffset)
	s.ScrollHelp(2)
	assert.Equal(t, 2, s.HelpScrollOffset)
}
