// Package linker links compiled classes into an NXJ executable.
//
// The Orchestrator builds the classpath, works out the output name and calls
// a Linker. ToolLinker is the Linker backed by the external nxjlink tool.
package linker

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/nxj/pkg/classpath"
	"github.com/arthur-debert/nxj/pkg/errors"
	"github.com/arthur-debert/nxj/pkg/logging"
	"github.com/arthur-debert/nxj/pkg/types"
)

// ExecutableExtension is appended to the application name of the output file
const ExecutableExtension = ".nxj"

// Linker invokes a linker with a complete argument list and returns its exit
// code. An error means the linker could not do its work at all; a *ToolError
// marks a failure the linker itself reported.
type Linker interface {
	Link(ctx context.Context, args []string) (int, error)
}

// ToolError is a link failure reported by the linker, as opposed to a failure
// to run it.
type ToolError struct {
	Message string
}

func (e *ToolError) Error() string {
	return e.Message
}

// Options configures one link
type Options struct {
	// RepositoryRoot is the local artifact repository holding dependencies
	RepositoryRoot string
	Dependencies   []types.Dependency

	// ClassesDir holds the project's own compiled classes; it leads the classpath
	ClassesDir string

	// OutputDir receives <ApplicationName>.nxj
	OutputDir string

	BootClasspath string
	MainClass     string

	// ApplicationName defaults to the simple name of MainClass
	ApplicationName string

	Endianness types.Endianness
}

// Result describes a successful link
type Result struct {
	ApplicationName string
	OutputPath      string
	Classpath       string
	Args            []string
}

// Orchestrator runs a link and translates the outcome into nxj errors
type Orchestrator struct {
	linker Linker
	logger zerolog.Logger
}

// NewOrchestrator creates an orchestrator around l
func NewOrchestrator(l Linker) *Orchestrator {
	return &Orchestrator{
		linker: l,
		logger: logging.GetLogger("linker"),
	}
}

// ApplicationName returns the part of mainClass after the last dot, or
// mainClass itself when it has no package.
func ApplicationName(mainClass string) string {
	if i := strings.LastIndex(mainClass, "."); i != -1 {
		return mainClass[i+1:]
	}
	return mainClass
}

// Classpath returns the full linker classpath: the classes directory followed
// by the compile scope dependencies.
func (o Options) Classpath() string {
	return classpath.Join(o.ClassesDir, classpath.Build(o.RepositoryRoot, o.Dependencies))
}

// OutputPath returns where the executable is written
func (o Options) OutputPath() string {
	name := o.ApplicationName
	if name == "" {
		name = ApplicationName(o.MainClass)
	}
	return filepath.Join(o.OutputDir, name+ExecutableExtension)
}

// Args returns the linker command line for these options
func (o Options) Args() []string {
	endianness := o.Endianness
	if endianness == "" {
		endianness = types.LittleEndian
	}
	return []string{
		"-bp", o.BootClasspath,
		"-cp", o.Classpath(),
		"-wo", string(endianness),
		"-o", o.OutputPath(),
		o.MainClass,
	}
}

// Validate checks the options needed before the linker can be invoked
func (o Options) Validate() error {
	if o.BootClasspath == "" {
		return errors.New(errors.ErrConfigValid, "boot classpath is required for linking").
			WithDetail("key", "link.boot_classpath")
	}
	if o.MainClass == "" {
		return errors.New(errors.ErrConfigValid, "main class is required for linking").
			WithDetail("key", "link.main_class")
	}
	switch o.Endianness {
	case "", types.LittleEndian, types.BigEndian:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown endianness %q (expected LE or BE)", o.Endianness).
			WithDetail("key", "link.endianness")
	}
	return nil
}

// Link links the project into <OutputDir>/<ApplicationName>.nxj.
// Partially written output is left in place when the link fails.
func (o *Orchestrator) Link(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.ApplicationName == "" {
		opts.ApplicationName = ApplicationName(opts.MainClass)
	}

	o.logger.Info().Str("application", opts.ApplicationName).Msg("Start linking")
	done := logging.LogOperationStart(o.logger, "link")
	defer done()

	result := &Result{
		ApplicationName: opts.ApplicationName,
		OutputPath:      opts.OutputPath(),
		Classpath:       opts.Classpath(),
		Args:            opts.Args(),
	}
	o.logger.Debug().Str("classpath", result.Classpath).Msg("Link with classpath")

	if dir := filepath.Dir(result.OutputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create output directory %s", dir)
		}
	}

	code, err := o.linker.Link(ctx, result.Args)
	if err != nil {
		var toolErr *ToolError
		if stderrors.As(err, &toolErr) {
			o.logger.Error().Err(err).Msg("Could not perform linking")
			return nil, errors.Wrap(err, errors.ErrLinkFailed, "the linker reported an error").
				WithDetail("application", result.ApplicationName)
		}
		o.logger.Error().Err(err).Msg("Could not perform linking")
		return nil, errors.Wrap(err, errors.ErrLinkIO, "I/O error while linking the nxj executable").
			WithDetail("application", result.ApplicationName)
	}
	if code != 0 {
		o.logger.Error().Int("exitCode", code).Msg("Error occurred in nxj linker")
		return nil, errors.Newf(errors.ErrLinkFailed, "could not link %s: linker exited with code %d",
			result.ApplicationName, code).
			WithDetail("exitCode", code).
			WithDetail("application", result.ApplicationName)
	}

	o.logger.Info().Str("output", result.OutputPath).Msg("Linked successfully")
	return result, nil
}
