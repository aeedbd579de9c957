package config

import (
	"github.com/arthur-debert/nxj/pkg/errors"
	"github.com/arthur-debert/nxj/pkg/types"
)

// Config is the decoded nxj configuration
type Config struct {
	// Repository is the local artifact repository root
	Repository string `koanf:"repository" json:"repository" yaml:"repository"`

	// Pom is read for dependencies when Dependencies is empty
	Pom string `koanf:"pom" json:"pom" yaml:"pom"`

	Dependencies []types.Dependency `koanf:"dependencies" json:"dependencies" yaml:"dependencies"`

	Link   Link   `koanf:"link" json:"link" yaml:"link"`
	Upload Upload `koanf:"upload" json:"upload" yaml:"upload"`

	// Sources lists the files merged into this configuration, in load order
	Sources []string `koanf:"-" json:"-" yaml:"-"`
}

// Link configures the link step
type Link struct {
	Tool            string `koanf:"tool" json:"tool" yaml:"tool"`
	MainClass       string `koanf:"main_class" json:"mainClass" yaml:"mainClass"`
	ApplicationName string `koanf:"app_name" json:"appName" yaml:"appName"`
	BootClasspath   string `koanf:"boot_classpath" json:"bootClasspath" yaml:"bootClasspath"`
	Endianness      string `koanf:"endianness" json:"endianness" yaml:"endianness"`
	ClassesDir      string `koanf:"classes_dir" json:"classesDir" yaml:"classesDir"`
	OutputDir       string `koanf:"output_dir" json:"outputDir" yaml:"outputDir"`
}

// Upload configures the upload step
type Upload struct {
	Tool           string `koanf:"tool" json:"tool" yaml:"tool"`
	Executable     string `koanf:"executable" json:"executable" yaml:"executable"`
	Run            bool   `koanf:"run" json:"run" yaml:"run"`
	Transport      string `koanf:"transport" json:"transport" yaml:"transport"`
	DeviceName     string `koanf:"name" json:"name" yaml:"name"`
	DeviceAddress  string `koanf:"address" json:"address" yaml:"address"`
	RemoteFilename string `koanf:"remote_name" json:"remoteName" yaml:"remoteName"`
	Direct         bool   `koanf:"direct" json:"direct" yaml:"direct"`
}

// ParsedEndianness returns the parsed link.endianness
func (l Link) ParsedEndianness() (types.Endianness, error) {
	e, err := types.ParseEndianness(l.Endianness)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigValid, "invalid link.endianness").
			WithDetail("key", "link.endianness")
	}
	return e, nil
}

// ParsedTransport returns the parsed upload.transport
func (u Upload) ParsedTransport() (types.TransportKind, error) {
	t, err := types.ParseTransport(u.Transport)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigValid, "invalid upload.transport").
			WithDetail("key", "upload.transport")
	}
	return t, nil
}

// Validate checks values that are wrong whatever command runs. Missing values
// are left to the step that needs them.
func (c *Config) Validate() error {
	if _, err := c.Link.ParsedEndianness(); err != nil {
		return err
	}
	if _, err := c.Upload.ParsedTransport(); err != nil {
		return err
	}
	for i, dep := range c.Dependencies {
		if dep.GroupID == "" || dep.ArtifactID == "" || dep.Version == "" {
			return errors.Newf(errors.ErrConfigValid,
				"dependency %d needs group, artifact and version", i+1).
				WithDetail("key", "dependencies").
				WithDetail("dependency", dep.Coordinates())
		}
	}
	return nil
}
