// Package installer orchestrates the three setup stages: native system
// dependencies, the Python virtual environment, and the pinned Python
// packages. Stages run strictly in order and the first failure aborts the
// whole run.
package installer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/aurelab/mgsetup/internal/config"
	"github.com/aurelab/mgsetup/internal/manifest"
	"github.com/aurelab/mgsetup/internal/messages"
	"github.com/aurelab/mgsetup/internal/pkgmgr"
	"github.com/aurelab/mgsetup/internal/platform"
	"github.com/aurelab/mgsetup/internal/pyenv"
)

// ErrAborted signals that a stage failed and its error was already reported.
// Callers should exit nonzero without printing it again.
var ErrAborted = errors.New("setup aborted")

var loadCatalogFunc = pkgmgr.LoadCatalog

// Options configures one installer run.
type Options struct {
	// Dir is the working directory; the venv and manifest land here unless
	// the config points elsewhere.
	Dir string
	// Config holds the optional mgsetup.toml overrides; nil means defaults.
	Config *config.Config
	// Force recreates an existing venv without prompting.
	Force bool
	// SkipDeps skips the native dependency stage.
	SkipDeps bool
	// Prompter asks before recreating an existing venv. Leave nil when the
	// session is not interactive; the stage then fails with guidance instead
	// of hanging on a prompt.
	Prompter Prompter

	System    System
	Runner    CommandRunner
	LookPath  func(string) (string, error)
	LookupEnv func(string) (string, bool)
	Environ   func() []string
	Out       io.Writer
	Err       io.Writer
}

func (o Options) withDefaults() Options {
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.System == nil {
		o.System = RealSystem{}
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Runner == nil {
		o.Runner = ExecRunner{Dir: o.Dir, Stdout: o.Out, Stderr: o.Err}
	}
	if o.LookPath == nil {
		o.LookPath = exec.LookPath
	}
	if o.LookupEnv == nil {
		o.LookupEnv = os.LookupEnv
	}
	if o.Environ == nil {
		o.Environ = os.Environ
	}
	return o
}

type installer struct {
	opts Options
	rep  *reporter

	// failures counts reported stage errors. It only ever grows until the
	// final read; fail-fast means it never legitimately passes 1.
	failures int

	venvDir string
	env     []string
}

// Run executes the full pipeline and returns ErrAborted after the first stage
// failure. All reporting happens through the configured writers.
func Run(opts Options) error {
	inst := &installer{opts: opts.withDefaults()}
	inst.rep = newReporter(inst.opts.Out, inst.opts.Err)
	return inst.run()
}

func (inst *installer) run() error {
	inst.rep.statusf(messages.InstallerHeader)

	state := StateDependencies
	for !state.Terminal() {
		if err := inst.runStage(state); err != nil {
			inst.reportFailure(err)
			inst.rep.failf(messages.AbortedFmt, state.Name())
			return ErrAborted
		}
		state = state.Next()
	}

	// Not reachable under fail-fast, but the counter is the source of truth
	// for the final exit status.
	if inst.failures != 0 {
		return fmt.Errorf(messages.FailureCountFmt, inst.failures)
	}

	inst.rep.successf(messages.SuccessSummary)
	inst.rep.plainf(messages.ActivateHintFmt, inst.opts.Config.Venv.Dir)
	return nil
}

func (inst *installer) runStage(state State) error {
	switch state {
	case StateDependencies:
		return inst.installDependencies()
	case StateVirtualEnv:
		return inst.provisionVenv()
	case StatePackages:
		return inst.installPackages()
	default:
		return nil
	}
}

// reportFailure prints the red error line and bumps the failure counter.
func (inst *installer) reportFailure(err error) {
	inst.failures++
	inst.rep.failf(messages.StageFailedFmt, err)
}

// installDependencies selects the host package manager and installs the native
// audio libraries with a single install invocation.
func (inst *installer) installDependencies() error {
	if inst.opts.SkipDeps {
		return nil
	}
	inst.rep.statusf(messages.StageDependenciesBegin)

	kind := platform.Detect(inst.opts.LookupEnv)
	if kind == platform.Unknown {
		return fmt.Errorf(messages.UnsupportedPlatformFmt, platform.Identifier(inst.opts.LookupEnv))
	}

	catalog, err := loadCatalogFunc()
	if err != nil {
		return err
	}
	selected, err := pkgmgr.Detect(catalog.ManagersFor(kind), inst.opts.LookPath)
	if err != nil {
		return err
	}

	inst.rep.statusf(messages.PackageManagerUsingFmt, selected.Name)
	for _, argv := range selected.Commands(inst.opts.Config.Packages.Extra) {
		if err := inst.opts.Runner.Run(argv, nil); err != nil {
			return fmt.Errorf(messages.PackageInstallFailFmt, selected.Name, err)
		}
	}
	return nil
}

// provisionVenv resolves the interpreter, creates the virtual environment, and
// activates it in the process environment used by the package stage.
func (inst *installer) provisionVenv() error {
	inst.rep.statusf(messages.StageVirtualEnvBegin)

	python, err := pyenv.FindInterpreter(inst.opts.Config.Python.Binary, inst.opts.LookPath)
	if err != nil {
		return err
	}

	venvDir := inst.opts.Config.Venv.Dir
	if !filepath.IsAbs(venvDir) {
		venvDir = filepath.Join(inst.opts.Dir, venvDir)
	}

	if info, statErr := inst.opts.System.Stat(venvDir); statErr == nil {
		if !info.IsDir() {
			return fmt.Errorf(messages.VenvNotDirFmt, venvDir)
		}
		keep, err := inst.resolveExistingVenv(venvDir)
		if err != nil {
			return err
		}
		if keep {
			inst.rep.statusf(messages.VenvKeepExisting)
			inst.activate(venvDir)
			return nil
		}
		if err := inst.opts.System.RemoveAll(venvDir); err != nil {
			return fmt.Errorf(messages.VenvRemoveFailFmt, venvDir, err)
		}
	}

	if err := inst.opts.Runner.Run(pyenv.CreateCommand(python, venvDir), nil); err != nil {
		return fmt.Errorf(messages.VenvCreateFailFmt, venvDir, err)
	}
	inst.rep.statusf(messages.VenvCreatedFmt, inst.opts.Config.Venv.Dir)
	inst.activate(venvDir)
	return nil
}

// resolveExistingVenv decides whether to keep an already-present venv.
func (inst *installer) resolveExistingVenv(venvDir string) (keep bool, err error) {
	if inst.opts.Force {
		return false, nil
	}
	if inst.opts.Prompter == nil {
		return false, fmt.Errorf(messages.VenvExistsNonInteractFmt, venvDir)
	}
	recreate, err := inst.opts.Prompter.RecreateVenv(venvDir)
	if err != nil {
		return false, err
	}
	return !recreate, nil
}

func (inst *installer) activate(venvDir string) {
	inst.venvDir = venvDir
	inst.env = pyenv.Activate(inst.opts.Environ(), venvDir)
}

// installPackages upgrades pip, regenerates the manifest, and installs every
// pinned entry in one invocation.
func (inst *installer) installPackages() error {
	inst.rep.statusf(messages.StagePackagesBegin)

	if err := inst.opts.Runner.Run(pyenv.UpgradePipCommand(inst.venvDir), inst.env); err != nil {
		return fmt.Errorf(messages.PipUpgradeFailFmt, err)
	}

	manifestPath := filepath.Join(inst.opts.Dir, inst.opts.Config.Manifest.File)
	if existing, err := inst.opts.System.ReadFile(manifestPath); err == nil {
		if diff := manifest.Diff(string(existing)); diff != "" {
			inst.rep.warnf(messages.ManifestDiffHeaderFmt, inst.opts.Config.Manifest.File)
			inst.rep.plainf("%s", diff)
		}
	}
	if err := manifest.Write(manifestPath); err != nil {
		return err
	}

	if err := inst.opts.Runner.Run(pyenv.InstallRequirementsCommand(inst.venvDir, manifestPath), inst.env); err != nil {
		return fmt.Errorf(messages.PipInstallFailFmt, err)
	}
	return nil
}
