// Package testutil holds helpers shared by installer tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the
// provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteRecordingStub writes an executable shell stub that appends its argv to
// logPath, one invocation per line, then exits zero. Tests use the log to
// assert which external commands ran and in what order.
func WriteRecordingStub(t *testing.T, dir string, name string, logPath string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\necho \"%s $@\" >> %q\nexit 0\n", name, logPath))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write recording stub: %v", err)
	}
}

// LookPathIn returns a LookPath func that resolves names only inside dir.
// It keeps tests independent of whatever the host has on PATH.
func LookPathIn(dir string) func(string) (string, error) {
	return func(name string) (string, error) {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return "", fmt.Errorf("%s not found in %s", name, dir)
		}
		return path, nil
	}
}
