package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBodyIsExactlyThePinnedSet(t *testing.T) {
	want := "numpy==1.24.3\n" +
		"scipy==1.10.1\n" +
		"soundfile==0.12.1\n" +
		"gtts==2.3.2\n" +
		"pydub==0.25.1\n" +
		"pyroomacoustics==0.7.3\n" +
		"librosa==0.10.1\n" +
		"python_speech_features==0.6\n"
	if got := Body(); got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}
}

func TestBodyIsStableAcrossCalls(t *testing.T) {
	if Body() != Body() {
		t.Error("Body() is not deterministic")
	}
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)

	// A prior failed run may have left anything here.
	if err := os.WriteFile(path, []byte("numpy==0.0.1\nleftover==9.9\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != Body() {
		t.Errorf("file = %q, want pinned body", got)
	}
}

func TestWriteByteIdenticalAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)

	if err := Write(path); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	first, _ := os.ReadFile(path)
	if err := Write(path); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	second, _ := os.ReadFile(path)
	if string(first) != string(second) {
		t.Error("manifest differs across runs")
	}
}

func TestCurrent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)

	if Current(path) {
		t.Error("missing file reported current")
	}
	if err := Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !Current(path) {
		t.Error("freshly written manifest reported stale")
	}
	if err := os.WriteFile(path, []byte("numpy==2.0.0\n"), 0o644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if Current(path) {
		t.Error("edited manifest reported current")
	}
}

func TestDiff(t *testing.T) {
	if Diff(Body()) != "" {
		t.Error("Diff of matching contents should be empty")
	}

	diff := Diff("numpy==1.24.3\nextra-package==1.0\n")
	if diff == "" {
		t.Fatal("Diff of differing contents should not be empty")
	}
	if !strings.Contains(diff, "extra-package") {
		t.Errorf("diff %q does not mention the removed entry", diff)
	}
	if !strings.Contains(diff, "librosa==0.10.1") {
		t.Errorf("diff %q does not mention an added pin", diff)
	}
}

func TestDiffTruncated(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("package-")
		b.WriteString(strings.Repeat("x", i%7))
		b.WriteString("==1.0\n")
	}
	diff := Diff(b.String())
	if !strings.HasSuffix(diff, "...") {
		t.Errorf("long diff should be truncated, got %d lines", len(strings.Split(diff, "\n")))
	}
}
