// Package platform identifies the host operating system for installer branching.
package platform

import (
	"os"
	"runtime"
	"strings"
)

// EnvOSType is the environment variable consulted before the Go runtime.
// Login shells export it with values like "linux-gnu" or "darwin23".
const EnvOSType = "OSTYPE"

// Kind is the resolved host platform family.
type Kind int

const (
	// Unknown means the host could not be identified as a supported platform.
	Unknown Kind = iota
	// Linux covers all Linux distributions.
	Linux
	// Darwin covers macOS.
	Darwin
)

// String returns the platform name used in user-facing output.
func (k Kind) String() string {
	switch k {
	case Linux:
		return "linux"
	case Darwin:
		return "macos"
	default:
		return "unknown"
	}
}

var runtimeGOOS = runtime.GOOS

// Detect resolves the host platform. The OSTYPE environment variable wins when
// set so the installer matches the shell it was launched from; otherwise the
// Go runtime decides. lookupEnv defaults to os.LookupEnv when nil.
func Detect(lookupEnv func(string) (string, bool)) Kind {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if osType, ok := lookupEnv(EnvOSType); ok && strings.TrimSpace(osType) != "" {
		return fromOSType(osType)
	}
	return fromGOOS(runtimeGOOS)
}

// Identifier returns the raw OS identifier used for detection, for reporting.
func Identifier(lookupEnv func(string) (string, bool)) string {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if osType, ok := lookupEnv(EnvOSType); ok && strings.TrimSpace(osType) != "" {
		return strings.TrimSpace(osType)
	}
	return runtimeGOOS
}

func fromOSType(osType string) Kind {
	normalized := strings.ToLower(strings.TrimSpace(osType))
	switch {
	case strings.HasPrefix(normalized, "linux"):
		return Linux
	case strings.HasPrefix(normalized, "darwin"):
		return Darwin
	default:
		return Unknown
	}
}

func fromGOOS(goos string) Kind {
	switch goos {
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	default:
		return Unknown
	}
}
