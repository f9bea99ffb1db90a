package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "qf.log")

	l, err := New("local", "debug", path)
	require.NoError(t, err)
	l.Info("search settled")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "search settled")
}

func TestNewProdIsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qf.log")

	l, err := New("prod", "", path)
	require.NoError(t, err)
	l.Info("hello")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("staging", "", "")
	require.Error(t, err)

	_, err = New("local", "loud", "")
	require.Error(t, err)
}

func TestNewWithoutPathIsNop(t *testing.T) {
	l, err := New("dev", "info", "")
	require.NoError(t, err)
	assert.NotNil(t, l)
}
