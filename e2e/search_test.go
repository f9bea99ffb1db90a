//go:build e2e && unix

package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzySearchRewritesQuery(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("12,345 quotes from 120 episodes"), "Should show archive stats")

	require.NoError(t, tf.Search("laff"))

	require.True(t, tf.SeePlain(`Showing results for "laugh"`), "Should explain the corrected query")
	require.True(t, tf.SeePlain("XFM | Series 2 Episode 32"))
	require.True(t, tf.SeePlain("> laugh"), "The search box should show the corrected query")
}

func TestSuggestionFlow(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Search("xyzzy"))
	require.True(t, tf.SeePlain(`No results found for "xyzzy"`))
	require.True(t, tf.SeePlain(`Search instead for "laff"`))

	tf.Enter()
	require.True(t, tf.SeePlain("Found 2 results"), "Selecting the suggestion should search it")
}

func TestSearchFailureToast(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Search("boom"))
	require.True(t, tf.SeePlain("Search failed: 500"), "Should show the failure toast")

	tf.SendKeys(KeyHome)
	require.True(t, tf.SeePlain("Search tips:"), "Home should bring back the idle page")
}

func TestSpeakerFlagPreselectsFilter(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--speaker", "karl", "laff"))
	require.True(t, tf.SeePlain("Found 2 results"))
}

func TestSearchSubcommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	tf.ServeQuotes(DefaultQuotes())

	cmd := exec.Command(binPath, "--api-url", tf.apiURL, "search", "laff")
	cmd.Env = append(cmd.Environ(), "XDG_CONFIG_HOME="+tf.workspace, "HOME="+tf.workspace, "QUOTEFINDER_ENV=local")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Contains(t, string(out), "Are you having a laugh")

	cmd = exec.Command(binPath, "--api-url", tf.apiURL, "search", "boom")
	cmd.Env = append(cmd.Environ(), "XDG_CONFIG_HOME="+tf.workspace, "HOME="+tf.workspace, "QUOTEFINDER_ENV=local")
	out, err = cmd.CombinedOutput()
	require.Error(t, err, "a failed search exits non-zero")
	assert.Contains(t, string(out), "Search failed: 500")
}
