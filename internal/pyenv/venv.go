package pyenv

import "path/filepath"

// CreateCommand returns the argv that creates a virtual environment at dir
// using the given interpreter.
func CreateCommand(python string, dir string) []string {
	return []string{python, "-m", "venv", dir}
}

// BinDir returns the executable directory inside a virtual environment.
func BinDir(venvDir string) string {
	return filepath.Join(venvDir, "bin")
}

// Pip returns the path of the pip executable inside a virtual environment.
func Pip(venvDir string) string {
	return filepath.Join(BinDir(venvDir), "pip")
}

// UpgradePipCommand returns the argv that upgrades pip inside the environment.
func UpgradePipCommand(venvDir string) []string {
	return []string{Pip(venvDir), "install", "--upgrade", "pip"}
}

// InstallRequirementsCommand returns the argv that installs every entry of the
// manifest in one invocation.
func InstallRequirementsCommand(venvDir string, manifestPath string) []string {
	return []string{Pip(venvDir), "install", "-r", manifestPath}
}
