package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFile writes content to name inside dir, creating dir when needed.
func CreateTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}
