package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/nxj/pkg/errors"
)

// Environment variable names
const (
	// EnvRepository overrides the local artifact repository root
	EnvRepository = "NXJ_REPOSITORY"

	// EnvProject points at the project directory and disables discovery
	EnvProject = "NXJ_PROJECT"

	// EnvConfigDir overrides the XDG config directory for nxj
	EnvConfigDir = "NXJ_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for nxj under the XDG base directories
	AppDirName = "nxj"

	// ProjectConfigFile is the TOML project descriptor
	ProjectConfigFile = "nxj.toml"

	// ProjectConfigFileYAML is the YAML project descriptor
	ProjectConfigFileYAML = "nxj.yaml"

	// PomFile is the Maven project descriptor
	PomFile = "pom.xml"

	// UserConfigFile is the per-user configuration under ConfigDir
	UserConfigFile = "config.toml"

	// BuildDirName is the build output directory relative to the project
	BuildDirName = "target"

	// ClassesDirName holds compiled classes inside the build directory
	ClassesDirName = "classes"

	// LogFileName is the name of the log file
	LogFileName = "nxj.log"
)

// projectMarkers are checked in order when looking for the project root
var projectMarkers = []string{ProjectConfigFile, ProjectConfigFileYAML, "nxj.yml", PomFile}

// Paths provides centralized path management for nxj
type Paths interface {
	ProjectDir() string
	UsedFallback() bool
	ProjectConfigPath() string
	PomPath() string
	BuildDir() string
	ClassesDir() string
	RepositoryRoot() string
	ConfigDir() string
	UserConfigPath() string
	StateDir() string
	LogFilePath() string
	Resolve(path string) string
}

type paths struct {
	projectDir string

	// usedFallback is set when no project marker was found and the working
	// directory was used instead
	usedFallback bool

	xdgConfig string
	xdgState  string
}

// New creates a Paths instance for projectDir. When projectDir is empty it
// comes from NXJ_PROJECT, or from walking up the working directory until a
// directory with a project descriptor is found.
func New(projectDir string) (Paths, error) {
	p := &paths{}

	if projectDir == "" {
		dir, usedFallback, err := findProjectDir()
		if err != nil {
			return nil, err
		}
		p.projectDir = dir
		p.usedFallback = usedFallback
	} else {
		p.projectDir = ExpandHome(projectDir)
	}

	abs, err := filepath.Abs(p.projectDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for project directory")
	}
	p.projectDir = abs

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// xdg reads XDG_STATE_HOME once at init; tests change it afterwards
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p, nil
}

// findProjectDir resolves the project directory:
// 1. NXJ_PROJECT (if set)
// 2. The nearest ancestor of the working directory holding a project marker
// 3. The working directory itself (fallback)
func findProjectDir() (string, bool, error) {
	if dir := os.Getenv(EnvProject); dir != "" {
		return ExpandHome(dir), false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrInternal, "failed to get current directory")
	}

	if dir, ok := FindProjectRoot(cwd); ok {
		return dir, false, nil
	}
	return cwd, true, nil
}

// FindProjectRoot walks up from start and returns the first directory that
// contains a project descriptor.
func FindProjectRoot(start string) (string, bool) {
	dir := filepath.Clean(start)
	for {
		if hasProjectMarker(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func hasProjectMarker(dir string) bool {
	for _, name := range projectMarkers {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}

// DefaultRepositoryRoot returns NXJ_REPOSITORY, or ~/.m2/repository
func DefaultRepositoryRoot() string {
	if root := os.Getenv(EnvRepository); root != "" {
		return ExpandHome(root)
	}
	return filepath.Join(homeDir(), ".m2", "repository")
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return xdg.Home
}

// ProjectDir returns the project root directory
func (p *paths) ProjectDir() string {
	return p.projectDir
}

// UsedFallback returns true if the working directory was used because no
// project descriptor was found
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// ProjectConfigPath returns the existing nxj.toml/nxj.yaml/nxj.yml of the
// project, or the nxj.toml path when none exists yet.
func (p *paths) ProjectConfigPath() string {
	for _, name := range []string{ProjectConfigFile, ProjectConfigFileYAML, "nxj.yml"} {
		path := filepath.Join(p.projectDir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(p.projectDir, ProjectConfigFile)
}

// PomPath returns the project's pom.xml path, whether or not it exists
func (p *paths) PomPath() string {
	return filepath.Join(p.projectDir, PomFile)
}

// BuildDir returns the build output directory
func (p *paths) BuildDir() string {
	return filepath.Join(p.projectDir, BuildDirName)
}

// ClassesDir returns the compiled classes directory
func (p *paths) ClassesDir() string {
	return filepath.Join(p.BuildDir(), ClassesDirName)
}

// RepositoryRoot returns the local artifact repository root
func (p *paths) RepositoryRoot() string {
	return DefaultRepositoryRoot()
}

// ConfigDir returns the XDG config directory for nxj
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// UserConfigPath returns the per-user configuration file
func (p *paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, UserConfigFile)
}

// StateDir returns the XDG state directory for nxj
func (p *paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// Resolve makes path absolute: ~ is expanded and relative paths are taken
// from the project directory. Empty stays empty.
func (p *paths) Resolve(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	path = ExpandHome(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.projectDir, path)
}
