package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Executable creates dir/name with mode 0755.
func Executable(t *testing.T, dir, name string) string {
	t.Helper()
	return writeFile(t, dir, name, 0o755)
}

// Plain creates dir/name with mode 0644.
func Plain(t *testing.T, dir, name string) string {
	t.Helper()
	return writeFile(t, dir, name, 0o644)
}

// SearchDir returns a fresh temporary directory holding one executable file
// per name.
func SearchDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		Executable(t, dir, name)
	}
	return dir
}

// SearchPath joins dirs with the platform list separator, the way PATH is
// written.
func SearchPath(dirs ...string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}

func writeFile(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), mode))
	// WriteFile honours the umask; force the bits the test asked for.
	require.NoError(t, os.Chmod(path, mode))
	return path
}
