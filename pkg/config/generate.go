package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/nxj/pkg/errors"
	"github.com/arthur-debert/nxj/pkg/types"
)

// Starter holds the values written by `nxj init`
type Starter struct {
	MainClass     string
	BootClasspath string
	Dependencies  []types.Dependency
}

type starterFile struct {
	Link         starterLink         `toml:"link"`
	Dependencies []starterDependency `toml:"dependencies,omitempty"`
}

type starterLink struct {
	MainClass     string `toml:"main_class"`
	BootClasspath string `toml:"boot_classpath"`
	Endianness    string `toml:"endianness"`
}

type starterDependency struct {
	Group    string `toml:"group"`
	Artifact string `toml:"artifact"`
	Version  string `toml:"version"`
	Type     string `toml:"type,omitempty"`
	Scope    string `toml:"scope"`
}

const starterHeader = `# nxj project file. See "nxj help config" for every key.
`

// GenerateStarter renders a minimal nxj.toml for s
func GenerateStarter(s Starter) (string, error) {
	f := starterFile{
		Link: starterLink{
			MainClass:     s.MainClass,
			BootClasspath: s.BootClasspath,
			Endianness:    string(types.LittleEndian),
		},
	}
	for _, dep := range s.Dependencies {
		scope := dep.Scope
		if scope == "" {
			scope = types.ScopeCompile
		}
		f.Dependencies = append(f.Dependencies, starterDependency{
			Group:    dep.GroupID,
			Artifact: dep.ArtifactID,
			Version:  dep.Version,
			Type:     dep.Type,
			Scope:    scope,
		})
	}

	out, err := gotoml.Marshal(f)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render starter config")
	}
	return starterHeader + "\n" + string(out), nil
}

// GenerateConfigContent returns the defaults file with every line commented
// out, for users who want the full reference in their project file. Section
// headers are commented too so the text can follow an existing [link] table.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent(), true)
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string, sections bool) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [link], [upload]) unless asked otherwise
		if !sections && strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
