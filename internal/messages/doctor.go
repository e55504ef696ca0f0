package messages

// Doctor messages for health checks.
const (
	DoctorHeaderFmt = "Checking setup prerequisites in %s...\n\n"

	DoctorStatusOKLabel   = "[PASS]"
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	// DoctorResultLineFmt formats one check result line.
	DoctorResultLineFmt        = "%s %s: %s\n"
	DoctorRecommendationPrefix = "       -> "
	DoctorRecommendationIndent = "          "

	DoctorCheckNamePlatform       = "Platform"
	DoctorCheckNamePackageManager = "Package manager"
	DoctorCheckNameInterpreter    = "Python"
	DoctorCheckNameVenv           = "Virtual environment"
	DoctorCheckNameManifest       = "Requirements"

	DoctorPlatformOKFmt        = "recognized %s"
	DoctorPlatformUnsupported  = "unrecognized operating system"
	DoctorPlatformRecommend    = "mgsetup supports Linux (apt-get, dnf, pacman) and macOS (brew)."
	DoctorManagerFoundFmt      = "%s available"
	DoctorManagerMissingFmt    = "none of %s found on PATH"
	DoctorManagerRecommend     = "Install one of the supported package managers or install the audio libraries manually."
	DoctorManagerSkipped       = "skipped (platform unsupported)"
	DoctorInterpreterFoundFmt  = "%s resolves to %s"
	DoctorInterpreterMissing   = "no Python interpreter on PATH"
	DoctorInterpreterRecommend = "Install Python 3 and make sure python3 is on PATH."
	DoctorVenvPresentFmt       = "%s exists"
	DoctorVenvAbsentFmt        = "%s not created yet"
	DoctorVenvAbsentRecommend  = "Run mgsetup to create it."
	DoctorVenvNotDirFmt        = "%s exists but is not a directory"
	DoctorVenvNotDirRecommend  = "Remove it or point venv.dir somewhere else in mgsetup.toml."
	DoctorManifestCurrentFmt   = "%s matches the pinned package set"
	DoctorManifestStaleFmt     = "%s differs from the pinned package set"
	DoctorManifestStaleRec     = "Run mgsetup to regenerate it."
	DoctorManifestAbsentFmt    = "%s not written yet"
	DoctorManifestAbsentRec    = "Run mgsetup to generate it."

	DoctorFailureSummary = "Some checks failed."
	DoctorFailureError   = "doctor found problems"
	DoctorSuccessSummary = "All checks passed."
)
