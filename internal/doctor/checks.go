package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aurelab/mgsetup/internal/config"
	"github.com/aurelab/mgsetup/internal/manifest"
	"github.com/aurelab/mgsetup/internal/messages"
	"github.com/aurelab/mgsetup/internal/pkgmgr"
	"github.com/aurelab/mgsetup/internal/platform"
	"github.com/aurelab/mgsetup/internal/pyenv"
)

var loadCatalogFunc = pkgmgr.LoadCatalog

// CheckPlatform verifies the host OS is one the installer supports. The
// resolved kind is returned so later checks can branch on it.
func CheckPlatform(lookupEnv func(string) (string, bool)) (Result, platform.Kind) {
	kind := platform.Detect(lookupEnv)
	if kind == platform.Unknown {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePlatform,
			Message:        messages.DoctorPlatformUnsupported,
			Recommendation: messages.DoctorPlatformRecommend,
		}, kind
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePlatform,
		Message:   fmt.Sprintf(messages.DoctorPlatformOKFmt, kind),
	}, kind
}

// CheckPackageManager verifies one supported package manager resolves on PATH.
func CheckPackageManager(kind platform.Kind, lookPath func(string) (string, error)) Result {
	if kind == platform.Unknown {
		return Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNamePackageManager,
			Message:   messages.DoctorManagerSkipped,
		}
	}
	catalog, err := loadCatalogFunc()
	if err != nil {
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNamePackageManager,
			Message:   err.Error(),
		}
	}
	managers := catalog.ManagersFor(kind)
	selected, err := pkgmgr.Detect(managers, lookPath)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePackageManager,
			Message:        fmt.Sprintf(messages.DoctorManagerMissingFmt, strings.Join(pkgmgr.Names(managers), ", ")),
			Recommendation: messages.DoctorManagerRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePackageManager,
		Message:   fmt.Sprintf(messages.DoctorManagerFoundFmt, selected.Name),
	}
}

// CheckInterpreter verifies a Python interpreter resolves on PATH.
func CheckInterpreter(cfg *config.Config, lookPath func(string) (string, error)) Result {
	path, err := pyenv.FindInterpreter(cfg.Python.Binary, lookPath)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameInterpreter,
			Message:        messages.DoctorInterpreterMissing,
			Recommendation: messages.DoctorInterpreterRecommend,
		}
	}
	name := cfg.Python.Binary
	if strings.TrimSpace(name) == "" {
		name = pyenv.DefaultCandidates[0]
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameInterpreter,
		Message:   fmt.Sprintf(messages.DoctorInterpreterFoundFmt, name, path),
	}
}

// CheckVenv reports on the state of the virtual environment directory.
func CheckVenv(dir string, cfg *config.Config) Result {
	venvDir := cfg.Venv.Dir
	if !filepath.IsAbs(venvDir) {
		venvDir = filepath.Join(dir, venvDir)
	}
	info, err := os.Stat(venvDir)
	if err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameVenv,
			Message:        fmt.Sprintf(messages.DoctorVenvAbsentFmt, cfg.Venv.Dir),
			Recommendation: messages.DoctorVenvAbsentRecommend,
		}
	}
	if !info.IsDir() {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameVenv,
			Message:        fmt.Sprintf(messages.DoctorVenvNotDirFmt, cfg.Venv.Dir),
			Recommendation: messages.DoctorVenvNotDirRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameVenv,
		Message:   fmt.Sprintf(messages.DoctorVenvPresentFmt, cfg.Venv.Dir),
	}
}

// CheckManifest reports whether the requirements file matches the pinned set.
func CheckManifest(dir string, cfg *config.Config) Result {
	path := filepath.Join(dir, cfg.Manifest.File)
	if _, err := os.Stat(path); err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestAbsentFmt, cfg.Manifest.File),
			Recommendation: messages.DoctorManifestAbsentRec,
		}
	}
	if !manifest.Current(path) {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestStaleFmt, cfg.Manifest.File),
			Recommendation: messages.DoctorManifestStaleRec,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameManifest,
		Message:   fmt.Sprintf(messages.DoctorManifestCurrentFmt, cfg.Manifest.File),
	}
}
