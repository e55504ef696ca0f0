package pyenv

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Activate applies virtual-environment activation to an env slice: VIRTUAL_ENV
// is set, the environment's bin directory is prepended to PATH, and PYTHONHOME
// is dropped. This mirrors what bin/activate does inside a shell session and
// makes later pip invocations resolve inside the environment.
func Activate(env []string, venvDir string) []string {
	abs, err := filepath.Abs(venvDir)
	if err != nil {
		abs = venvDir
	}
	env = SetEnv(env, "VIRTUAL_ENV", abs)
	env = UnsetEnv(env, "PYTHONHOME")

	bin := BinDir(abs)
	if path, ok := GetEnv(env, "PATH"); ok {
		return SetEnv(env, "PATH", bin+string(filepath.ListSeparator)+path)
	}
	return SetEnv(env, "PATH", bin)
}

// GetEnv returns the value for the key from an env slice.
func GetEnv(env []string, key string) (string, bool) {
	for _, entry := range env {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) == 2 && parts[0] == key {
			return parts[1], true
		}
	}
	return "", false
}

// SetEnv sets or appends a key=value entry in an env slice.
func SetEnv(env []string, key string, value string) []string {
	entry := fmt.Sprintf("%s=%s", key, value)
	for i, existing := range env {
		if strings.HasPrefix(existing, key+"=") {
			env[i] = entry
			return env
		}
	}
	return append(env, entry)
}

// UnsetEnv removes all entries for the given key from an env slice.
func UnsetEnv(env []string, key string) []string {
	if key == "" {
		return env
	}
	prefix := key + "="
	result := make([]string, 0, len(env))
	for _, entry := range env {
		if !strings.HasPrefix(entry, prefix) {
			result = append(result, entry)
		}
	}
	return result
}
