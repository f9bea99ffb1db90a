//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	// Ensure the test binary exists (it should be built by TestMain)
	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// Not through the PTY since it exits quickly
	cmd := exec.Command(binPath, "--help")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "USAGE")
	for _, want := range []string{"search", "stats", "--api-url", "--speaker"} {
		require.True(t, strings.Contains(output, want), "help should mention %s", want)
	}
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	tf.SendKeys("?")
	require.True(t, tf.SeePlain("Quote Finder Help"), "Should show the help overlay")

	tf.SendKeys(KeyEsc)
	require.True(t, tf.SeePlain("Press / to search"), "Should return to the search screen")
}
