package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aurelab/mgsetup/internal/config"
	"github.com/aurelab/mgsetup/internal/installer"
	"github.com/aurelab/mgsetup/internal/messages"
	"github.com/aurelab/mgsetup/internal/terminal"
	"github.com/aurelab/mgsetup/internal/ui"
)

var installRun = installer.Run
var isTerminal = terminal.IsInteractive

type installFlags struct {
	force      bool
	skipDeps   bool
	configPath string
}

func newInstallCmd() *cobra.Command {
	var flags installFlags

	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Long:  messages.InstallLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, messages.InstallFlagForce)
	cmd.Flags().BoolVar(&flags.skipDeps, "skip-deps", false, messages.InstallFlagSkipDeps)
	cmd.Flags().StringVar(&flags.configPath, "config", "", messages.InstallFlagConfig)

	return cmd
}

// runInstall loads config and runs the installer pipeline. It is shared by the
// bare root invocation and the explicit install subcommand.
func runInstall(cmd *cobra.Command, flags installFlags) error {
	dir, err := getwd()
	if err != nil {
		return err
	}
	cfg, err := loadInstallConfig(dir, flags.configPath)
	if err != nil {
		return err
	}
	applyColorConfig(cfg)

	opts := installer.Options{
		Dir:      dir,
		Config:   cfg,
		Force:    flags.force,
		SkipDeps: flags.skipDeps,
		Out:      cmd.OutOrStdout(),
		Err:      cmd.ErrOrStderr(),
	}
	if isTerminal() {
		confirmer := ui.NewConfirmer()
		opts.Prompter = installer.PromptFuncs{
			RecreateVenvFunc: func(dir string) (bool, error) {
				return confirmer.Confirm(sprintfVenvPrompt(dir), false)
			},
		}
	}

	if err := installRun(opts); err != nil {
		if errors.Is(err, installer.ErrAborted) {
			return &SilentExitError{Code: 1}
		}
		return err
	}
	return nil
}

func sprintfVenvPrompt(dir string) string {
	return fmt.Sprintf(messages.VenvExistsPromptFmt, dir)
}

func loadInstallConfig(dir string, explicit string) (*config.Config, error) {
	path := explicit
	if path == "" {
		path = filepath.Join(dir, config.DefaultFileName)
	}
	return config.Load(path)
}

// applyColorConfig honors the output.color override from mgsetup.toml.
func applyColorConfig(cfg *config.Config) {
	if cfg.Output.Color != nil && !*cfg.Output.Color {
		color.NoColor = true
	}
}
