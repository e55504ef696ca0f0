package pkgmgr

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/aurelab/mgsetup/internal/testutil"
)

func lookPathAllowing(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func linuxManagers() []Manager {
	return []Manager{
		{Name: "apt-get", Bin: "apt-get", Install: []string{"apt-get", "install", "-y"}, Packages: []string{"ffmpeg"}},
		{Name: "dnf", Bin: "dnf", Install: []string{"dnf", "install", "-y"}, Packages: []string{"ffmpeg"}},
		{Name: "pacman", Bin: "pacman", Install: []string{"pacman", "-S"}, Packages: []string{"ffmpeg"}},
	}
}

func TestDetectPicksFirstAvailable(t *testing.T) {
	selected, err := Detect(linuxManagers(), lookPathAllowing("dnf", "pacman"))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if selected.Name != "dnf" {
		t.Errorf("selected %q, want dnf", selected.Name)
	}
}

func TestDetectHonorsPriority(t *testing.T) {
	selected, err := Detect(linuxManagers(), lookPathAllowing("pacman", "apt-get"))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if selected.Name != "apt-get" {
		t.Errorf("selected %q, want apt-get", selected.Name)
	}
}

func TestDetectWithStubBinaries(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	dir := t.TempDir()
	testutil.WriteStub(t, dir, "dnf")

	selected, err := Detect(linuxManagers(), testutil.LookPathIn(dir))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if selected.Name != "dnf" {
		t.Errorf("selected %q, want dnf", selected.Name)
	}
}

func TestDetectNoneAvailable(t *testing.T) {
	_, err := Detect(linuxManagers(), lookPathAllowing())
	if err == nil {
		t.Fatal("expected error")
	}
	var noMgr *NoManagerError
	if !errors.As(err, &noMgr) {
		t.Fatalf("error type %T, want *NoManagerError", err)
	}
	for _, bin := range []string{"apt-get", "dnf", "pacman"} {
		if !strings.Contains(err.Error(), bin) {
			t.Errorf("error %q does not mention %s", err, bin)
		}
	}
}
