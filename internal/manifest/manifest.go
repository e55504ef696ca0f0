// Package manifest generates the pinned Python requirements file.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/aurelab/mgsetup/internal/fsutil"
	"github.com/aurelab/mgsetup/internal/messages"
)

// DefaultFileName is the manifest file written into the working directory.
const DefaultFileName = "requirements.txt"

// Pin is one pinned package entry.
type Pin struct {
	Name    string
	Version string
}

// Pins is the fixed package set the generator needs. The list and versions are
// part of the installer contract: the generated file is byte-identical across
// runs.
var Pins = []Pin{
	{Name: "numpy", Version: "1.24.3"},
	{Name: "scipy", Version: "1.10.1"},
	{Name: "soundfile", Version: "0.12.1"},
	{Name: "gtts", Version: "2.3.2"},
	{Name: "pydub", Version: "0.25.1"},
	{Name: "pyroomacoustics", Version: "0.7.3"},
	{Name: "librosa", Version: "0.10.1"},
	{Name: "python_speech_features", Version: "0.6"},
}

// Body returns the full manifest contents.
func Body() string {
	var b strings.Builder
	for _, pin := range Pins {
		b.WriteString(pin.Name)
		b.WriteString("==")
		b.WriteString(pin.Version)
		b.WriteString("\n")
	}
	return b.String()
}

// Write writes the manifest to path, replacing any previous file. The write is
// atomic so a failed run never leaves a truncated manifest behind.
func Write(path string) error {
	if err := fsutil.WriteFileAtomic(path, []byte(Body()), 0o644); err != nil {
		return fmt.Errorf(messages.ManifestWriteFailFmt, path, err)
	}
	return nil
}

// Current reports whether the file at path already matches the pinned set.
// A missing file is simply not current.
func Current(path string) bool {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return string(existing) == Body()
}
