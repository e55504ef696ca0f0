package pkgmgr

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/aurelab/mgsetup/internal/messages"
)

// NoManagerError reports that none of the candidate package managers resolved
// on PATH.
type NoManagerError struct {
	Tried []string
}

func (e *NoManagerError) Error() string {
	return fmt.Sprintf(messages.NoPackageManagerFmt, strings.Join(e.Tried, ", "))
}

// Detect returns the first manager whose binary resolves on PATH. Exactly one
// manager is ever selected. lookPath defaults to exec.LookPath when nil.
func Detect(managers []Manager, lookPath func(string) (string, error)) (*Manager, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	tried := make([]string, 0, len(managers))
	for i := range managers {
		if _, err := lookPath(managers[i].Bin); err == nil {
			return &managers[i], nil
		}
		tried = append(tried, managers[i].Bin)
	}
	return nil, &NoManagerError{Tried: tried}
}

// Names returns the binary names of the given managers, for reporting.
func Names(managers []Manager) []string {
	names := make([]string, 0, len(managers))
	for _, m := range managers {
		names = append(names, m.Bin)
	}
	return names
}
