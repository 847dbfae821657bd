//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ProjectDir string // a mock project the installer writes into
}

// setupTestEnv creates an isolated project directory for one test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{ProjectDir: t.TempDir()}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("expected file, got directory: %s", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected directory %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("expected directory, got file: %s", path)
	}
}

func assertFileAbsent(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected %s to be absent", path)
	}
}

func join(parts ...string) string {
	return filepath.Join(parts...)
}
