package upload

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/nxj/pkg/logging"
	"github.com/arthur-debert/nxj/pkg/process"
	"github.com/arthur-debert/nxj/pkg/types"
)

// ToolTransport implements Transport with the nxjupload launcher, passing the
// full request (transport, name, address, remote name) as options.
type ToolTransport struct {
	toolPath string
	runner   process.Runner
	logger   zerolog.Logger
}

// NewToolTransport creates a transport for the launcher at toolPath
// (DefaultToolPath when empty).
func NewToolTransport(toolPath string, runner process.Runner) *ToolTransport {
	if toolPath == "" {
		toolPath = DefaultToolPath
	}
	return &ToolTransport{
		toolPath: toolPath,
		runner:   runner,
		logger:   logging.GetLogger("upload.transport"),
	}
}

// Args returns the launcher options for req
func (t *ToolTransport) Args(req Request) []string {
	var args []string
	if req.Transport == types.TransportBluetooth {
		args = append(args, "-b")
	} else {
		args = append(args, "-u")
	}
	if req.DeviceName != "" {
		args = append(args, "-n", req.DeviceName)
	}
	if req.DeviceAddress != "" {
		args = append(args, "-d", req.DeviceAddress)
	}
	if req.RunImmediately {
		args = append(args, "-r")
	}
	args = append(args, req.Executable)
	if req.RemoteFilename != "" && req.RemoteFilename != filepath.Base(req.Executable) {
		args = append(args, "-o", req.RemoteFilename)
	}
	return args
}

// Upload runs the launcher. A failed run whose output says no brick was found
// is reported as ErrDeviceNotFound.
func (t *ToolTransport) Upload(ctx context.Context, req Request) error {
	var notFound atomic.Bool
	watch := func(sink logging.LineSink) logging.LineSink {
		return func(line string) {
			if isNotFoundMessage(line) {
				notFound.Store(true)
			}
			sink(line)
		}
	}

	result, err := t.runner.Run(ctx, process.Command{Path: t.toolPath, Args: t.Args(req)}, process.Output{
		Stdout: watch(logging.ToolOutput(t.logger, t.toolPath)),
		Stderr: watch(logging.ToolErrors(t.logger, t.toolPath)),
	})
	if err != nil {
		return err
	}
	if result.ExitCode == 0 {
		return nil
	}
	if notFound.Load() {
		return fmt.Errorf("%s: %w", t.toolPath, ErrDeviceNotFound)
	}
	return fmt.Errorf("%s exited with code %d", t.toolPath, result.ExitCode)
}

func isNotFoundMessage(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "no nxt found") || strings.Contains(lower, "nxt not found")
}
