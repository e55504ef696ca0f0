package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "mgsetup"
	// RootShort is the short description for the root command.
	RootShort = "Set up the meditation audio generator environment"
	RootLong  = "mgsetup installs the native audio libraries, creates a Python virtual environment,\nand installs the pinned Python packages the meditation audio generator needs.\nRun it with no arguments to perform the full setup."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Run the full environment setup"
	InstallLong  = "Install native audio libraries, provision the virtual environment, and install\nthe pinned Python packages. Identical to running mgsetup with no arguments."

	InstallFlagForce    = "Recreate an existing virtual environment and overwrite a differing requirements file without prompting"
	InstallFlagSkipDeps = "Skip the native system library stage"
	InstallFlagConfig   = "Path to an mgsetup.toml config file"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the host environment without changing anything"
)
