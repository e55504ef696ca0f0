package installer

import (
	"io"
	"os/exec"
)

// CommandRunner runs one external command to completion and reports its exit
// status as an error. Every stage waits for its command before moving on.
type CommandRunner interface {
	Run(argv []string, env []string) error
}

// ExecRunner runs commands with os/exec, streaming output to the attached
// writers. A nil env inherits the parent environment.
type ExecRunner struct {
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes argv[0] with the remaining arguments and waits for it to exit.
func (r ExecRunner) Run(argv []string, env []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if env != nil {
		cmd.Env = env
	}
	return cmd.Run()
}
