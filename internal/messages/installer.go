package messages

// Installer messages for stage reporting and errors.
const (
	// InstallerHeader opens the setup run output.
	InstallerHeader = "Meditation audio generator setup"

	StageDependenciesBegin = "Installing system dependencies..."
	StageVirtualEnvBegin   = "Setting up Python virtual environment..."
	StagePackagesBegin     = "Installing Python packages..."

	// UnsupportedPlatformFmt reports an OS identifier the installer cannot handle.
	UnsupportedPlatformFmt = "unsupported operating system %q"
	NoPackageManagerFmt    = "no supported package manager found (looked for %s)"
	PackageManagerUsingFmt = "Using %s to install audio libraries"
	PackageInstallFailFmt  = "%s failed: %w"

	// NoInterpreterFmt reports a missing Python interpreter.
	NoInterpreterFmt         = "Python interpreter not found (looked for %s); install Python 3 and re-run"
	VenvCreateFailFmt        = "create virtual environment %s: %w"
	VenvExistsPromptFmt      = "Virtual environment %s already exists. Recreate it?"
	VenvExistsNonInteractFmt = "virtual environment %s already exists; re-run with --force to recreate it"
	VenvRemoveFailFmt        = "remove existing virtual environment %s: %w"
	VenvKeepExisting         = "Keeping existing virtual environment"
	VenvNotDirFmt            = "%s exists and is not a directory"
	VenvCreatedFmt           = "Created virtual environment in %s"

	PipUpgradeFailFmt     = "upgrade pip: %w"
	ManifestWriteFailFmt  = "write %s: %w"
	ManifestDiffHeaderFmt = "Replacing %s (differs from the pinned set):"
	PipInstallFailFmt     = "install Python packages: %w"

	// StageFailedFmt is the red per-stage failure line.
	StageFailedFmt = "Error: %v"
	// AbortedFmt reports fail-fast termination.
	AbortedFmt = "Setup aborted during %s."

	// SuccessSummary closes a fully successful run.
	SuccessSummary = "Setup complete! All components installed successfully."
	// ActivateHintFmt tells the operator how to use the environment afterwards.
	ActivateHintFmt = "Activate the environment with: source %s/bin/activate"
	// FailureCountFmt is the defensive end-of-run counter report.
	FailureCountFmt = "setup finished with %d failed step(s)"

	StageNameDependencies = "system dependency installation"
	StageNameVirtualEnv   = "virtual environment setup"
	StageNamePackages     = "Python package installation"

	PromptRequired = "no prompt handler configured"
)
