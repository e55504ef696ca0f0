package pyenv

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
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

func TestFindInterpreterPrefersPython3(t *testing.T) {
	path, err := FindInterpreter("", lookPathAllowing("python3", "python"))
	if err != nil {
		t.Fatalf("FindInterpreter: %v", err)
	}
	if path != "/usr/bin/python3" {
		t.Errorf("path = %q, want /usr/bin/python3", path)
	}
}

func TestFindInterpreterFallsBackToPython(t *testing.T) {
	path, err := FindInterpreter("", lookPathAllowing("python"))
	if err != nil {
		t.Fatalf("FindInterpreter: %v", err)
	}
	if path != "/usr/bin/python" {
		t.Errorf("path = %q, want /usr/bin/python", path)
	}
}

func TestFindInterpreterHonorsOverride(t *testing.T) {
	path, err := FindInterpreter("python3.11", lookPathAllowing("python3", "python3.11"))
	if err != nil {
		t.Fatalf("FindInterpreter: %v", err)
	}
	if path != "/usr/bin/python3.11" {
		t.Errorf("path = %q, want /usr/bin/python3.11", path)
	}

	if _, err := FindInterpreter("python3.11", lookPathAllowing("python3")); err == nil {
		t.Error("override should not fall back to python3")
	}
}

func TestFindInterpreterMissing(t *testing.T) {
	_, err := FindInterpreter("", lookPathAllowing())
	if err == nil {
		t.Fatal("expected error")
	}
	var missing *NoInterpreterError
	if !errors.As(err, &missing) {
		t.Fatalf("error type %T, want *NoInterpreterError", err)
	}
	if !strings.Contains(err.Error(), "python3") {
		t.Errorf("error %q does not mention python3", err)
	}
}

func TestCreateCommand(t *testing.T) {
	got := CreateCommand("/usr/bin/python3", "/work/venv")
	want := []string{"/usr/bin/python3", "-m", "venv", "/work/venv"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CreateCommand = %v, want %v", got, want)
	}
}

func TestPipCommands(t *testing.T) {
	venv := filepath.Join("/work", "venv")
	pip := filepath.Join(venv, "bin", "pip")

	if got := UpgradePipCommand(venv); !reflect.DeepEqual(got, []string{pip, "install", "--upgrade", "pip"}) {
		t.Errorf("UpgradePipCommand = %v", got)
	}
	if got := InstallRequirementsCommand(venv, "/work/requirements.txt"); !reflect.DeepEqual(got, []string{pip, "install", "-r", "/work/requirements.txt"}) {
		t.Errorf("InstallRequirementsCommand = %v", got)
	}
}

func TestActivate(t *testing.T) {
	env := []string{"PATH=/usr/bin:/bin", "PYTHONHOME=/opt/python", "HOME=/home/u"}
	env = Activate(env, "/work/venv")

	if got, ok := GetEnv(env, "VIRTUAL_ENV"); !ok || got != "/work/venv" {
		t.Errorf("VIRTUAL_ENV = %q (present=%v), want /work/venv", got, ok)
	}
	if _, ok := GetEnv(env, "PYTHONHOME"); ok {
		t.Error("PYTHONHOME should be removed")
	}
	path, _ := GetEnv(env, "PATH")
	if !strings.HasPrefix(path, filepath.Join("/work/venv", "bin")+string(filepath.ListSeparator)) {
		t.Errorf("PATH = %q, want venv bin prefix", path)
	}
	if !strings.HasSuffix(path, "/usr/bin:/bin") {
		t.Errorf("PATH = %q lost the original entries", path)
	}
}

func TestActivateWithoutPath(t *testing.T) {
	env := Activate([]string{"HOME=/home/u"}, "/work/venv")
	path, ok := GetEnv(env, "PATH")
	if !ok || path != filepath.Join("/work/venv", "bin") {
		t.Errorf("PATH = %q, want venv bin only", path)
	}
}

func TestEnvHelpers(t *testing.T) {
	env := []string{"A=1", "B=2"}
	env = SetEnv(env, "A", "3")
	if got, _ := GetEnv(env, "A"); got != "3" {
		t.Errorf("A = %q, want 3", got)
	}
	env = SetEnv(env, "C", "4")
	if got, _ := GetEnv(env, "C"); got != "4" {
		t.Errorf("C = %q, want 4", got)
	}
	env = UnsetEnv(env, "B")
	if _, ok := GetEnv(env, "B"); ok {
		t.Error("B should be unset")
	}
	if got := UnsetEnv(env, ""); !reflect.DeepEqual(got, env) {
		t.Error("UnsetEnv with empty key should be a no-op")
	}
}
