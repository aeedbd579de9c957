package nxj

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/nxj/pkg/linker"
	"github.com/arthur-debert/nxj/pkg/ui"
)

// linkFlags registers the link flags on cmd
func linkFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("main-class", "", MsgFlagMainClass)
	f.String("app-name", "", MsgFlagAppName)
	f.String("boot-classpath", "", MsgFlagBootClasspath)
	f.String("endianness", "", MsgFlagEndianness)
}

func linkOverrides(cmd *cobra.Command, o overrides) {
	o.addString(cmd, "main-class", "link.main_class")
	o.addString(cmd, "app-name", "link.app_name")
	o.addString(cmd, "boot-classpath", "link.boot_classpath")
	o.addString(cmd, "endianness", "link.endianness")
}

// linkOptions maps the configuration onto linker options
func (p *project) linkOptions() (linker.Options, error) {
	endianness, err := p.config.Link.ParsedEndianness()
	if err != nil {
		return linker.Options{}, err
	}
	return linker.Options{
		RepositoryRoot:  p.config.Repository,
		Dependencies:    p.dependencies,
		ClassesDir:      p.config.Link.ClassesDir,
		OutputDir:       p.config.Link.OutputDir,
		BootClasspath:   p.config.Link.BootClasspath,
		MainClass:       p.config.Link.MainClass,
		ApplicationName: p.config.Link.ApplicationName,
		Endianness:      endianness,
	}, nil
}

func (g *globalOptions) link(cmd *cobra.Command, p *project) (*linker.Result, error) {
	opts, err := p.linkOptions()
	if err != nil {
		return nil, err
	}
	orchestrator := linker.NewOrchestrator(linker.NewToolLinker(p.config.Link.Tool, g.runner))
	return orchestrator.Link(cmd.Context(), opts)
}

func newLinkCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "link",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		GroupID: "build",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := overrides{}
			linkOverrides(cmd, o)
			p, err := g.loadProject(cmd, o)
			if err != nil {
				return err
			}

			result, err := g.link(cmd, p)
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(ui.FormatAuto, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgLinked, result.ApplicationName, result.OutputPath))
		},
	}
	linkFlags(cmd)
	return cmd
}
