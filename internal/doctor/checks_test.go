package doctor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurelab/mgsetup/internal/config"
	"github.com/aurelab/mgsetup/internal/manifest"
	"github.com/aurelab/mgsetup/internal/platform"
)

func envWith(osType string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if key == platform.EnvOSType && osType != "" {
			return osType, true
		}
		return "", false
	}
}

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

func TestCheckPlatform(t *testing.T) {
	result, kind := CheckPlatform(envWith("linux-gnu"))
	assert.Equal(t, StatusOK, result.Status)
	assert.Equal(t, platform.Linux, kind)

	result, kind = CheckPlatform(envWith("beos"))
	assert.Equal(t, StatusFail, result.Status)
	assert.Equal(t, platform.Unknown, kind)
	assert.NotEmpty(t, result.Recommendation)
}

func TestCheckPackageManager(t *testing.T) {
	result := CheckPackageManager(platform.Linux, lookPathAllowing("pacman"))
	assert.Equal(t, StatusOK, result.Status)
	assert.Contains(t, result.Message, "pacman")

	result = CheckPackageManager(platform.Linux, lookPathAllowing())
	assert.Equal(t, StatusFail, result.Status)
	assert.Contains(t, result.Message, "apt-get")

	result = CheckPackageManager(platform.Unknown, lookPathAllowing("apt-get"))
	assert.Equal(t, StatusWarn, result.Status)
}

func TestCheckInterpreter(t *testing.T) {
	cfg := config.Default()

	result := CheckInterpreter(cfg, lookPathAllowing("python3"))
	assert.Equal(t, StatusOK, result.Status)
	assert.Contains(t, result.Message, "python3")

	result = CheckInterpreter(cfg, lookPathAllowing())
	assert.Equal(t, StatusFail, result.Status)

	cfg.Python.Binary = "python3.11"
	result = CheckInterpreter(cfg, lookPathAllowing("python3.11"))
	assert.Equal(t, StatusOK, result.Status)
	assert.Contains(t, result.Message, "python3.11")
}

func TestCheckVenv(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	result := CheckVenv(dir, cfg)
	assert.Equal(t, StatusWarn, result.Status)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, cfg.Venv.Dir), 0o755))
	result = CheckVenv(dir, cfg)
	assert.Equal(t, StatusOK, result.Status)
}

func TestCheckVenvNotDir(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	require.NoError(t, os.WriteFile(filepath.Join(dir, cfg.Venv.Dir), []byte("x"), 0o644))

	result := CheckVenv(dir, cfg)
	assert.Equal(t, StatusFail, result.Status)
}

func TestCheckManifest(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	result := CheckManifest(dir, cfg)
	assert.Equal(t, StatusWarn, result.Status)
	assert.Contains(t, result.Message, "not written")

	path := filepath.Join(dir, cfg.Manifest.File)
	require.NoError(t, os.WriteFile(path, []byte("numpy==0.1\n"), 0o644))
	result = CheckManifest(dir, cfg)
	assert.Equal(t, StatusWarn, result.Status)
	assert.Contains(t, result.Message, "differs")

	require.NoError(t, manifest.Write(path))
	result = CheckManifest(dir, cfg)
	assert.Equal(t, StatusOK, result.Status)
}
