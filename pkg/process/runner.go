package process

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/nxj/pkg/errors"
	"github.com/arthur-debert/nxj/pkg/logging"
)

// maxLineSize bounds a single line of tool output
const maxLineSize = 1024 * 1024

// waitDelay bounds how long Wait keeps copying output after a cancelled tool
// was killed, when a child of the tool still holds its streams open
const waitDelay = 2 * time.Second

// Command describes one invocation of an external tool
type Command struct {
	// Path is the executable, looked up in PATH when it has no separator
	Path string
	Args []string

	// Dir is the working directory; empty means the current directory
	Dir string

	// Env entries are added on top of the current environment
	Env map[string]string
}

// String renders the command line for messages
func (c Command) String() string {
	return logging.QuoteArgs(c.Path, c.Args)
}

// Output routes the tool's streams. A nil sink discards that stream.
type Output struct {
	Stdout logging.LineSink
	Stderr logging.LineSink
}

// Result is the outcome of a process that was started and waited on
type Result struct {
	ExitCode int
	Duration time.Duration
}

// Success reports a zero exit code
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner starts commands and waits for them
type Runner interface {
	Run(ctx context.Context, cmd Command, out Output) (Result, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	logger zerolog.Logger
}

// NewExecRunner creates a runner that logs under the process component
func NewExecRunner() *ExecRunner {
	return &ExecRunner{logger: logging.GetLogger("process")}
}

// Run starts cmd, streams its output into out and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, c Command, out Output) (Result, error) {
	if c.Path == "" {
		return Result{}, errors.New(errors.ErrInvalidInput, "command requires an executable path")
	}

	logging.LogCommand(c.Path, c.Args)

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.WaitDelay = waitDelay
	if len(c.Env) > 0 {
		cmd.Env = os.Environ()
		for key, value := range c.Env {
			cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, value))
		}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrProcessSpawn, "cannot capture output of %s", c.Path)
	}

	var stderr io.WriteCloser
	if out.Stderr != nil {
		stderr = logging.SinkWriter(out.Stderr)
		cmd.Stderr = stderr
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		closeQuietly(stderr)
		return Result{}, errors.Wrapf(err, errors.ErrProcessSpawn, "cannot start %s", c.Path).
			WithDetail("command", c.String())
	}

	// Wait closes the stdout pipe, so it normally runs once the reader has
	// seen EOF. On cancellation the tool is killed and Wait runs right away:
	// closing the pipe is what releases a reader blocked on output held open
	// by the tool's own children.
	readDone := make(chan struct{})
	var g errgroup.Group
	g.Go(func() error {
		defer close(readDone)
		r.drain(ctx, stdout, out.Stdout, c.Path)
		return nil
	})
	g.Go(func() error {
		select {
		case <-readDone:
		case <-ctx.Done():
		}
		return cmd.Wait()
	})
	waitErr := g.Wait()
	closeQuietly(stderr)

	result := Result{Duration: time.Since(start)}
	if waitErr == nil {
		r.logger.Debug().
			Str("command", c.Path).
			Dur("duration", result.Duration).
			Msg("Command exited successfully")
		return result, nil
	}

	if ctx.Err() != nil {
		return result, errors.Wrapf(ctx.Err(), errors.ErrProcessSpawn, "%s was interrupted", c.Path)
	}

	var exitErr *exec.ExitError
	if stderrors.As(waitErr, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		r.logger.Debug().
			Str("command", c.Path).
			Int("exitCode", result.ExitCode).
			Msg("Command exited with non-zero status")
		return result, nil
	}

	return result, errors.Wrapf(waitErr, errors.ErrProcessSpawn, "cannot wait for %s", c.Path)
}

// drain forwards each line of rd to sink until EOF. A read error is logged and
// the rest of the stream discarded so the process is never blocked on output.
// Once ctx is done the pipe is closed under the reader, which is not logged.
func (r *ExecRunner) drain(ctx context.Context, rd io.Reader, sink logging.LineSink, tool string) {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if sink != nil {
			sink(scanner.Text())
		}
	}
	if ctx.Err() != nil {
		return
	}
	if err := scanner.Err(); err != nil {
		r.logger.Warn().Err(err).Str("command", tool).Msg("Error reading tool output")
		_, _ = io.Copy(io.Discard, rd)
	}
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
