package nxj

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/nxj/pkg/classpath"
)

func newClasspathCmd(g *globalOptions) *cobra.Command {
	var withClasses bool

	cmd := &cobra.Command{
		Use:     "classpath",
		Short:   MsgClasspathShort,
		Long:    MsgClasspathLong,
		GroupID: "project",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := g.loadProject(cmd, overrides{})
			if err != nil {
				return err
			}

			cp := classpath.Build(p.config.Repository, p.dependencies)
			if withClasses {
				cp = classpath.Join(p.config.Link.ClassesDir, cp)
			}
			// raw output, meant for $(nxj classpath)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cp)
			return err
		},
	}
	cmd.Flags().BoolVar(&withClasses, "with-classes", false, MsgFlagWithClasses)
	return cmd
}
