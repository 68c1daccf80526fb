// Package testutil provides reusable test utilities for taskman tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv provides access to isolated test directories
type TestEnv struct {
	Home       string // Mocked HOME directory
	ProjectDir string // Working directory for the test
	GlobalDir  string // ~/.taskman equivalent
	t          *testing.T
}

// SetupTestEnv creates an isolated environment with a mocked HOME and
// switches the working directory to a fresh project directory.
// Tests using it must not call t.Parallel().
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	tmpProject := t.TempDir()

	globalDir := filepath.Join(tmpHome, ".taskman")
	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatalf("Failed to create global .taskman: %v", err)
	}

	// Set HOME to temp directory (auto-restored after test)
	t.Setenv("HOME", tmpHome)

	// Keep overrides from the outer environment out of the test
	for _, key := range []string{
		"TASKMAN_STORAGE_FILE",
		"TASKMAN_STORAGE_FORMAT",
		"TASKMAN_LOG_LEVEL",
		"TASKMAN_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpProject); err != nil {
		t.Fatalf("Failed to change to project directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})

	return &TestEnv{
		Home:       tmpHome,
		ProjectDir: tmpProject,
		GlobalDir:  globalDir,
		t:          t,
	}
}

// CreateFile creates a file with the given content. Relative paths are
// resolved against the project directory.
func (e *TestEnv) CreateFile(path, content string) string {
	e.t.Helper()

	fullPath := e.resolve(path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateGlobalFile creates a file relative to the global .taskman directory.
func (e *TestEnv) CreateGlobalFile(relPath, content string) string {
	e.t.Helper()
	return e.CreateFile(filepath.Join(e.GlobalDir, relPath), content)
}

// ReadFile reads a file from the test environment.
func (e *TestEnv) ReadFile(path string) string {
	e.t.Helper()

	data, err := os.ReadFile(e.resolve(path))
	if err != nil {
		e.t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// FileExists checks if a file exists in the test environment.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()
	_, err := os.Stat(e.resolve(path))
	return err == nil
}

// TasksFile returns the default task file path in the project directory.
func (e *TestEnv) TasksFile() string {
	return filepath.Join(e.ProjectDir, "tasks.json")
}

func (e *TestEnv) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.ProjectDir, path)
}
