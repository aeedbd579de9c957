package upload

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/nxj/pkg/errors"
	"github.com/arthur-debert/nxj/pkg/logging"
	"github.com/arthur-debert/nxj/pkg/process"
)

// DefaultToolPath is the leJOS upload launcher looked up in PATH
const DefaultToolPath = "nxjupload"

// CommandUploader uploads by spawning the nxjupload launcher
type CommandUploader struct {
	toolPath string
	runner   process.Runner
	logger   zerolog.Logger
}

// NewCommandUploader creates an uploader for the launcher at toolPath
// (DefaultToolPath when empty).
func NewCommandUploader(toolPath string, runner process.Runner) *CommandUploader {
	if toolPath == "" {
		toolPath = DefaultToolPath
	}
	return &CommandUploader{
		toolPath: toolPath,
		runner:   runner,
		logger:   logging.GetLogger("upload"),
	}
}

// CommandLine returns the launcher arguments: -u, then -r when the program
// should start right away, then the executable.
func CommandLine(executable string, runImmediately bool) []string {
	args := []string{"-u"}
	if runImmediately {
		args = append(args, "-r")
	}
	return append(args, executable)
}

// Upload sends executable to the brick and waits for the launcher to finish.
func (u *CommandUploader) Upload(ctx context.Context, executable string, runImmediately bool) error {
	if executable == "" {
		return errors.New(errors.ErrConfigValid, "executable is required for upload").
			WithDetail("key", "upload.executable")
	}

	u.logger.Info().Str("executable", executable).Msg("Start uploading to nxt")

	cmd := process.Command{Path: u.toolPath, Args: CommandLine(executable, runImmediately)}
	result, err := u.runner.Run(ctx, cmd, process.Output{
		Stdout: logging.ToolOutput(u.logger, u.toolPath),
		Stderr: logging.ToolErrors(u.logger, u.toolPath),
	})
	if err != nil {
		u.logger.Error().Err(err).Msg("Could not run upload tool")
		return errors.Wrapf(err, errors.ErrProcessSpawn,
			"could not upload %s because the upload tool could not be run", executable).
			WithDetail("command", cmd.String())
	}
	if result.ExitCode != 0 {
		u.logger.Error().Int("exitCode", result.ExitCode).Msg("Error at uploading")
		return errors.Newf(errors.ErrUploadFailed,
			"could not upload %s to the NXT brick: %s exited with code %d",
			executable, u.toolPath, result.ExitCode).
			WithDetail("exitCode", result.ExitCode).
			WithDetail("command", cmd.String())
	}

	u.logger.Info().Str("executable", executable).Msg("Uploaded successfully")
	return nil
}
