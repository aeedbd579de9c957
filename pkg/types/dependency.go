package types

import "strings"

const (
	// ScopeCompile marks a dependency needed at compile and link time
	ScopeCompile = "compile"

	// DefaultType is the artifact type assumed when a dependency declares none
	DefaultType = "jar"
)

// Dependency is one entry of the host build's already resolved dependency list.
// Values are never mutated after construction.
type Dependency struct {
	GroupID    string `koanf:"group" json:"group" yaml:"group" toml:"group"`
	ArtifactID string `koanf:"artifact" json:"artifact" yaml:"artifact" toml:"artifact"`
	Version    string `koanf:"version" json:"version" yaml:"version" toml:"version"`
	Type       string `koanf:"type" json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Scope      string `koanf:"scope" json:"scope,omitempty" yaml:"scope,omitempty" toml:"scope,omitempty"`
}

// NewDependency creates a compile scope jar dependency
func NewDependency(groupID, artifactID, version string) Dependency {
	return Dependency{
		GroupID:    groupID,
		ArtifactID: artifactID,
		Version:    version,
		Type:       DefaultType,
		Scope:      ScopeCompile,
	}
}

// WithType returns a copy of the dependency with the given artifact type
func (d Dependency) WithType(artifactType string) Dependency {
	d.Type = artifactType
	return d
}

// WithScope returns a copy of the dependency with the given scope
func (d Dependency) WithScope(scope string) Dependency {
	d.Scope = scope
	return d
}

// ArtifactType returns the declared type, or DefaultType when none is set
func (d Dependency) ArtifactType() string {
	if d.Type == "" {
		return DefaultType
	}
	return d.Type
}

// IsCompileScope reports whether the dependency contributes to the link classpath.
// The comparison ignores case; an empty scope is not compile scope.
func (d Dependency) IsCompileScope() bool {
	return strings.EqualFold(d.Scope, ScopeCompile)
}

// Coordinates returns the group:artifact:type:version form used in log output
func (d Dependency) Coordinates() string {
	return d.GroupID + ":" + d.ArtifactID + ":" + d.ArtifactType() + ":" + d.Version
}
