package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/nxj/pkg/process"
)

// FakeRunner is a process.Runner that never spawns anything. It records every
// command and replays the configured output lines and exit code.
type FakeRunner struct {
	// Lines are sent to the stdout sink in order
	Lines []string

	// ErrLines are sent to the stderr sink in order
	ErrLines []string

	ExitCode int
	Err      error

	// RunFunc replaces the scripted behaviour when set
	RunFunc func(ctx context.Context, cmd process.Command, out process.Output) (process.Result, error)

	mu       sync.Mutex
	commands []process.Command
}

// Run records cmd and replays the scripted result.
func (f *FakeRunner) Run(ctx context.Context, cmd process.Command, out process.Output) (process.Result, error) {
	f.mu.Lock()
	f.commands = append(f.commands, cmd)
	f.mu.Unlock()

	if f.RunFunc != nil {
		return f.RunFunc(ctx, cmd, out)
	}
	if f.Err != nil {
		return process.Result{}, f.Err
	}
	for _, line := range f.Lines {
		if out.Stdout != nil {
			out.Stdout(line)
		}
	}
	for _, line := range f.ErrLines {
		if out.Stderr != nil {
			out.Stderr(line)
		}
	}
	return process.Result{ExitCode: f.ExitCode}, nil
}

// Commands returns the commands run so far
func (f *FakeRunner) Commands() []process.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]process.Command(nil), f.commands...)
}

// LastCommand returns the most recent command, or the zero value
func (f *FakeRunner) LastCommand() process.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.commands) == 0 {
		return process.Command{}
	}
	return f.commands[len(f.commands)-1]
}

// LineRecorder collects lines from a logging.LineSink
type LineRecorder struct {
	mu    sync.Mutex
	lines []string
}

// Sink returns the recording function
func (r *LineRecorder) Sink() func(string) {
	return func(line string) {
		r.mu.Lock()
		r.lines = append(r.lines, line)
		r.mu.Unlock()
	}
}

// Lines returns the recorded lines in arrival order
func (r *LineRecorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}
