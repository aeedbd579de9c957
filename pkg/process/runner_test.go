package process_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/nxj/pkg/errors"
	"github.com/arthur-debert/nxj/pkg/process"
	"github.com/arthur-debert/nxj/pkg/testutil"
)

func TestExecRunner_StreamsLinesInOrder(t *testing.T) {
	script := testutil.WriteScript(t, t.TempDir(), "tool", `printf 'first\nsecond\nthird\n'`)

	var out testutil.LineRecorder
	result, err := process.NewExecRunner().Run(context.Background(),
		process.Command{Path: script}, process.Output{Stdout: out.Sink()})

	require.NoError(t, err)
	assert.True(t, result.Success())
	assert.Equal(t, []string{"first", "second", "third"}, out.Lines())
}

func TestExecRunner_UnterminatedLastLine(t *testing.T) {
	script := testutil.WriteScript(t, t.TempDir(), "tool", `printf 'done'`)

	var out testutil.LineRecorder
	_, err := process.NewExecRunner().Run(context.Background(),
		process.Command{Path: script}, process.Output{Stdout: out.Sink()})

	require.NoError(t, err)
	assert.Equal(t, []string{"done"}, out.Lines())
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	script := testutil.WriteScript(t, t.TempDir(), "tool", "echo failing\nexit 3")

	var out testutil.LineRecorder
	result, err := process.NewExecRunner().Run(context.Background(),
		process.Command{Path: script}, process.Output{Stdout: out.Sink()})

	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.False(t, result.Success())
	assert.Equal(t, []string{"failing"}, out.Lines())
}

func TestExecRunner_PassesArguments(t *testing.T) {
	script := testutil.WriteScript(t, t.TempDir(), "tool", `for a in "$@"; do echo "arg:$a"; done`)

	var out testutil.LineRecorder
	_, err := process.NewExecRunner().Run(context.Background(),
		process.Command{Path: script, Args: []string{"-u", "-r", "with space"}},
		process.Output{Stdout: out.Sink()})

	require.NoError(t, err)
	assert.Equal(t, []string{"arg:-u", "arg:-r", "arg:with space"}, out.Lines())
}

func TestExecRunner_StderrRoutedSeparately(t *testing.T) {
	script := testutil.WriteScript(t, t.TempDir(), "tool", "echo out\necho err >&2")

	var stdout, stderr testutil.LineRecorder
	_, err := process.NewExecRunner().Run(context.Background(),
		process.Command{Path: script},
		process.Output{Stdout: stdout.Sink(), Stderr: stderr.Sink()})

	require.NoError(t, err)
	assert.Equal(t, []string{"out"}, stdout.Lines())
	assert.Equal(t, []string{"err"}, stderr.Lines())
}

func TestExecRunner_EnvAndDir(t *testing.T) {
	dir := t.TempDir()
	script := testutil.WriteScript(t, dir, "tool", `echo "$NXJ_TEST_VALUE"; pwd`)

	var out testutil.LineRecorder
	_, err := process.NewExecRunner().Run(context.Background(),
		process.Command{Path: script, Dir: dir, Env: map[string]string{"NXJ_TEST_VALUE": "hello"}},
		process.Output{Stdout: out.Sink()})

	require.NoError(t, err)
	lines := out.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "hello", lines[0])
	assert.Equal(t, filepath.Base(dir), filepath.Base(lines[1]))
}

// A tool that writes far more than a pipe buffer holds must still complete.
func TestExecRunner_LargeOutputDoesNotDeadlock(t *testing.T) {
	script := testutil.WriteScript(t, t.TempDir(), "tool",
		`i=0; while [ $i -lt 20000 ]; do echo "line $i with some padding to fill the pipe"; i=$((i+1)); done`)

	count := 0
	result, err := process.NewExecRunner().Run(context.Background(),
		process.Command{Path: script}, process.Output{Stdout: func(string) { count++ }})

	require.NoError(t, err)
	assert.True(t, result.Success())
	assert.Equal(t, 20000, count)
}

func TestExecRunner_NilSinkDiscards(t *testing.T) {
	script := testutil.WriteScript(t, t.TempDir(), "tool", "echo ignored; echo ignored >&2")

	result, err := process.NewExecRunner().Run(context.Background(),
		process.Command{Path: script}, process.Output{})

	require.NoError(t, err)
	assert.True(t, result.Success())
}

func TestExecRunner_MissingExecutable(t *testing.T) {
	_, err := process.NewExecRunner().Run(context.Background(),
		process.Command{Path: "/nonexistent/nxjlink"}, process.Output{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrProcessSpawn), "got %v", err)
}

func TestExecRunner_EmptyPath(t *testing.T) {
	_, err := process.NewExecRunner().Run(context.Background(), process.Command{}, process.Output{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestExecRunner_Cancelled(t *testing.T) {
	script := testutil.WriteScript(t, t.TempDir(), "tool", "exec sleep 30")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := process.NewExecRunner().Run(ctx, process.Command{Path: script}, process.Output{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrProcessSpawn))
}

func TestExecRunner_CancelledWhileChildHoldsOutput(t *testing.T) {
	// the background sleep inherits stdout and outlives the killed script
	script := testutil.WriteScript(t, t.TempDir(), "tool", "echo started\nsleep 30 &\nsleep 30")

	ctx, cancel := context.WithCancel(context.Background())
	var out testutil.LineRecorder
	sink := out.Sink()
	started := make(chan struct{})
	var once sync.Once

	done := make(chan error, 1)
	go func() {
		_, err := process.NewExecRunner().Run(ctx, process.Command{Path: script}, process.Output{
			Stdout: func(line string) {
				sink(line)
				once.Do(func() { close(started) })
			},
		})
		done <- err
	}()

	select {
	case <-started:
	case <-time.After(10 * time.Second):
		t.Fatal("tool produced no output")
	}
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.IsErrorCode(err, errors.ErrProcessSpawn))
	case <-time.After(15 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Equal(t, []string{"started"}, out.Lines())
}

func TestCommand_String(t *testing.T) {
	c := process.Command{Path: "nxjupload", Args: []string{"-u", "My Robot.nxj"}}
	assert.Equal(t, fmt.Sprintf("nxjupload -u %q", "My Robot.nxj"), c.String())
}
