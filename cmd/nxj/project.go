package nxj

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/nxj/pkg/config"
	"github.com/arthur-debert/nxj/pkg/errors"
	"github.com/arthur-debert/nxj/pkg/logging"
	"github.com/arthur-debert/nxj/pkg/paths"
	"github.com/arthur-debert/nxj/pkg/pom"
	"github.com/arthur-debert/nxj/pkg/types"
)

// project is the loaded state every build command starts from
type project struct {
	paths  paths.Paths
	config *config.Config

	dependencies []types.Dependency

	// dependencySource names where the dependencies came from
	dependencySource string
}

// overrides collects flag values into config keys. Only flags the user set
// are included, so unset flags never mask the file or the environment.
type overrides map[string]interface{}

func (o overrides) addString(cmd *cobra.Command, flag, key string) {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		o[key] = f.Value.String()
	}
}

func (o overrides) addBool(cmd *cobra.Command, flag, key string) {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		v, _ := cmd.Flags().GetBool(flag)
		o[key] = v
	}
}

func (g *globalOptions) initPaths(cmd *cobra.Command) (paths.Paths, error) {
	p, err := paths.New(g.projectDir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	if p.UsedFallback() {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning, p.ProjectDir())
	}
	return p, nil
}

// loadProject loads configuration (with the command's flag overrides) and
// the dependency list.
func (g *globalOptions) loadProject(cmd *cobra.Command, flags overrides) (*project, error) {
	p, err := g.initPaths(cmd)
	if err != nil {
		return nil, err
	}

	if g.repository != "" {
		flags["repository"] = g.repository
	}
	cfg, err := config.Load(p, config.Options{ConfigFile: g.configFile, Overrides: flags})
	if err != nil {
		return nil, err
	}

	proj := &project{paths: p, config: cfg}
	if err := proj.loadDependencies(); err != nil {
		return nil, err
	}
	return proj, nil
}

// loadDependencies uses the configured dependency list, or the pom file when
// the list is empty.
func (p *project) loadDependencies() error {
	logger := logging.GetLogger("cmd.project")

	if len(p.config.Dependencies) > 0 {
		p.dependencies = p.config.Dependencies
		p.dependencySource = "configuration"
		return nil
	}

	if _, err := os.Stat(p.config.Pom); err != nil {
		logger.Debug().Str("pom", p.config.Pom).Msg("No dependencies configured and no pom file")
		return nil
	}
	model, err := pom.Load(p.config.Pom)
	if err != nil {
		return err
	}
	p.dependencies = model.Dependencies
	p.dependencySource = p.config.Pom
	logger.Info().
		Str("pom", p.config.Pom).
		Int("dependencies", len(model.Dependencies)).
		Msg("Dependencies read from pom")
	return nil
}

// defaultExecutable is the link output for the current configuration
func (p *project) defaultExecutable() (string, error) {
	opts, err := p.linkOptions()
	if err != nil {
		return "", err
	}
	if opts.MainClass == "" && opts.ApplicationName == "" {
		return "", errors.New(errors.ErrConfigValid, MsgErrNoExecutable).
			WithDetail("key", "upload.executable")
	}
	return opts.OutputPath(), nil
}
