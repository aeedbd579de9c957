package nxj

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/nxj/pkg/classpath"
	"github.com/arthur-debert/nxj/pkg/types"
	"github.com/arthur-debert/nxj/pkg/ui"
)

// depEntry is one row of the deps listing
type depEntry struct {
	Coordinates string `json:"coordinates" yaml:"coordinates"`
	Scope       string `json:"scope" yaml:"scope"`
	Path        string `json:"path" yaml:"path"`
	Included    bool   `json:"included" yaml:"included"`
}

// depsReport lists dependencies with the repository path each resolves to
type depsReport struct {
	Source       string     `json:"source,omitempty" yaml:"source,omitempty"`
	Dependencies []depEntry `json:"dependencies" yaml:"dependencies"`
	Included     int        `json:"included" yaml:"included"`
	Total        int        `json:"total" yaml:"total"`
}

func newDepsReport(root, source string, deps []types.Dependency, all bool) *depsReport {
	r := &depsReport{Source: source, Dependencies: []depEntry{}, Total: len(deps)}
	for _, dep := range deps {
		included := dep.IsCompileScope()
		if included {
			r.Included++
		} else if !all {
			continue
		}
		r.Dependencies = append(r.Dependencies, depEntry{
			Coordinates: dep.Coordinates(),
			Scope:       dep.Scope,
			Path:        classpath.Resolve(root, dep),
			Included:    included,
		})
	}
	return r
}

func (r *depsReport) Header() []string {
	return []string{"Dependency", "Scope", "Path"}
}

func (r *depsReport) Rows() [][]string {
	rows := make([][]string, 0, len(r.Dependencies))
	for _, d := range r.Dependencies {
		scope := d.Scope
		if scope == "" {
			scope = "-"
		}
		rows = append(rows, []string{d.Coordinates, scope, d.Path})
	}
	return rows
}

func (r *depsReport) Summary() string {
	if r.Total == 0 {
		return MsgNoDependencies
	}
	return fmt.Sprintf(MsgDepsSummary, r.Included, r.Total)
}

func newDepsCmd(g *globalOptions) *cobra.Command {
	var (
		format string
		all    bool
	)

	cmd := &cobra.Command{
		Use:     "deps",
		Short:   MsgDepsShort,
		Long:    MsgDepsLong,
		GroupID: "project",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return fmt.Errorf(MsgErrFormat, err)
			}

			p, err := g.loadProject(cmd, overrides{})
			if err != nil {
				return err
			}

			report := newDepsReport(p.config.Repository, p.dependencySource, p.dependencies, all)
			renderer, err := ui.NewRenderer(f, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(report)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)
	return cmd
}
