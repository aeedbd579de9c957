package linker

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/nxj/pkg/logging"
	"github.com/arthur-debert/nxj/pkg/process"
)

// DefaultToolPath is the leJOS linker launcher looked up in PATH
const DefaultToolPath = "nxjlink"

// ToolLinker runs the nxjlink launcher as an external process
type ToolLinker struct {
	path   string
	runner process.Runner
	logger zerolog.Logger
}

// NewToolLinker creates a linker for the launcher at path (DefaultToolPath when empty)
func NewToolLinker(path string, runner process.Runner) *ToolLinker {
	if path == "" {
		path = DefaultToolPath
	}
	return &ToolLinker{
		path:   path,
		runner: runner,
		logger: logging.GetLogger("linker.tool"),
	}
}

// Link runs the launcher with args. Output goes to the log; when the linker
// fails after writing to its error stream, that text comes back as a *ToolError.
func (l *ToolLinker) Link(ctx context.Context, args []string) (int, error) {
	var diagnostics []string
	toolErrors := logging.ToolErrors(l.logger, l.path)

	result, err := l.runner.Run(ctx, process.Command{Path: l.path, Args: args}, process.Output{
		Stdout: logging.ToolOutput(l.logger, l.path),
		Stderr: func(line string) {
			diagnostics = append(diagnostics, line)
			toolErrors(line)
		},
	})
	if err != nil {
		return -1, err
	}
	if result.ExitCode != 0 && len(diagnostics) > 0 {
		return result.ExitCode, &ToolError{Message: strings.Join(diagnostics, "\n")}
	}
	return result.ExitCode, nil
}
