package nxj

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/nxj/pkg/logging"
	"github.com/arthur-debert/nxj/pkg/ui"
)

func newDeployCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deploy",
		Short:   MsgDeployShort,
		Long:    MsgDeployLong,
		GroupID: "build",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.deploy")

			o := overrides{}
			linkOverrides(cmd, o)
			uploadOverrides(cmd, o)
			p, err := g.loadProject(cmd, o)
			if err != nil {
				return err
			}

			step := func(n int, format string, a ...interface{}) {
				msg := fmt.Sprintf("[%d/2] ", n) + fmt.Sprintf(format, a...)
				fmt.Fprintln(cmd.ErrOrStderr(), pterm.Info.Sprint(msg))
			}

			opts, err := p.linkOptions()
			if err != nil {
				return err
			}
			step(1, MsgStepLink, opts.OutputPath())
			result, err := g.link(cmd, p)
			if err != nil {
				return err
			}

			// the fresh link output wins over upload.executable
			step(2, MsgStepUpload, result.OutputPath)
			executable, err := g.upload(cmd, p, result.OutputPath)
			if err != nil {
				return err
			}
			logger.Info().Str("executable", executable).Msg("Deploy finished")

			renderer, err := ui.NewRenderer(ui.FormatAuto, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderMessage(uploadedMessage(p, executable))
		},
	}
	linkFlags(cmd)
	uploadFlags(cmd)
	return cmd
}
