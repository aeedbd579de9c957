package nxj

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/nxj/pkg/config"
	"github.com/arthur-debert/nxj/pkg/errors"
	"github.com/arthur-debert/nxj/pkg/logging"
	"github.com/arthur-debert/nxj/pkg/paths"
	"github.com/arthur-debert/nxj/pkg/pom"
	"github.com/arthur-debert/nxj/pkg/ui"
)

type initOptions struct {
	mainClass     string
	bootClasspath string
	force         bool
	fromPom       bool
	full          bool
}

func newInitCmd(g *globalOptions) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "project",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := g.initProjectFile(cmd, opts)
			if err != nil {
				return err
			}
			renderer, err := ui.NewRenderer(ui.FormatAuto, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgInitCreated, target))
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.mainClass, "main-class", "", MsgFlagMainClass)
	f.StringVar(&opts.bootClasspath, "boot-classpath", "", MsgFlagBootClasspath)
	f.BoolVar(&opts.force, "force", false, MsgFlagForce)
	f.BoolVar(&opts.fromPom, "from-pom", false, MsgFlagFromPom)
	f.BoolVar(&opts.full, "full", false, MsgFlagFull)
	return cmd
}

// initProjectFile writes the starter file and returns its path
func (g *globalOptions) initProjectFile(cmd *cobra.Command, opts *initOptions) (string, error) {
	logger := logging.GetLogger("cmd.init")

	p, err := g.initPaths(cmd)
	if err != nil {
		return "", err
	}

	target := filepath.Join(p.ProjectDir(), paths.ProjectConfigFile)
	if g.configFile != "" {
		target = p.Resolve(g.configFile)
	}
	if _, err := os.Stat(target); err == nil && !opts.force {
		return "", errors.Newf(errors.ErrFileExists, MsgErrConfigExists, target).
			WithDetail("path", target)
	}

	starter := config.Starter{
		MainClass:     opts.mainClass,
		BootClasspath: opts.bootClasspath,
	}
	if opts.fromPom {
		model, err := pom.Load(p.PomPath())
		if err != nil {
			return "", err
		}
		starter.Dependencies = model.Dependencies
		logger.Info().Int("dependencies", len(model.Dependencies)).Msg("Copied dependencies from pom")
	}

	content, err := config.GenerateStarter(starter)
	if err != nil {
		return "", err
	}
	if opts.full {
		content += "\n" + config.GenerateConfigContent()
	}

	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target).
			WithDetail("path", target)
	}
	logger.Debug().Str("path", target).Bool("full", opts.full).Msg("Project file written")
	return target, nil
}
