// Package pkgmgr selects the host package manager and builds its install
// invocations from an embedded catalog.
package pkgmgr

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aurelab/mgsetup/internal/platform"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Manager describes one supported package manager and the native libraries it
// installs.
type Manager struct {
	Name     string   `yaml:"name"`
	Bin      string   `yaml:"bin"`
	Platform string   `yaml:"platform"`
	Update   []string `yaml:"update,omitempty"`
	Install  []string `yaml:"install"`
	Packages []string `yaml:"packages"`
}

// Catalog is the full set of supported managers in priority order.
type Catalog struct {
	Managers []Manager `yaml:"managers"`
}

// LoadCatalog parses the embedded manager catalog.
func LoadCatalog() (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
		return nil, fmt.Errorf("parse package manager catalog: %w", err)
	}
	for _, m := range catalog.Managers {
		if m.Name == "" || m.Bin == "" || len(m.Install) == 0 || len(m.Packages) == 0 {
			return nil, fmt.Errorf("package manager catalog entry %q is incomplete", m.Name)
		}
	}
	return &catalog, nil
}

// ManagersFor returns the managers for the given platform, preserving catalog
// order as detection priority.
func (c *Catalog) ManagersFor(kind platform.Kind) []Manager {
	key := catalogKey(kind)
	if key == "" {
		return nil
	}
	var matched []Manager
	for _, m := range c.Managers {
		if m.Platform == key {
			matched = append(matched, m)
		}
	}
	return matched
}

// catalogKey maps a platform kind to the key used in catalog.yaml.
func catalogKey(kind platform.Kind) string {
	switch kind {
	case platform.Linux:
		return "linux"
	case platform.Darwin:
		return "darwin"
	default:
		return ""
	}
}

// Commands returns the argv sequences to run for this manager, in order. The
// optional update invocation comes first, then the single install invocation
// with the catalog packages plus any extras appended.
func (m Manager) Commands(extra []string) [][]string {
	var commands [][]string
	if len(m.Update) > 0 {
		commands = append(commands, append([]string(nil), m.Update...))
	}
	install := append([]string(nil), m.Install...)
	install = append(install, m.Packages...)
	install = append(install, extra...)
	commands = append(commands, install)
	return commands
}
