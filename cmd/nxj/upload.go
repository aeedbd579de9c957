package nxj

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/nxj/pkg/ui"
	"github.com/arthur-debert/nxj/pkg/upload"
)

// uploadFlags registers the upload flags on cmd
func uploadFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("executable", "", MsgFlagExecutable)
	f.BoolP("run", "r", false, MsgFlagRun)
	f.Bool("direct", false, MsgFlagDirect)
	f.String("transport", "", MsgFlagTransport)
	f.String("name", "", MsgFlagDeviceName)
	f.String("address", "", MsgFlagDeviceAddress)
	f.String("remote-name", "", MsgFlagRemoteName)
}

func uploadOverrides(cmd *cobra.Command, o overrides) {
	o.addString(cmd, "executable", "upload.executable")
	o.addBool(cmd, "run", "upload.run")
	o.addBool(cmd, "direct", "upload.direct")
	o.addString(cmd, "transport", "upload.transport")
	o.addString(cmd, "name", "upload.name")
	o.addString(cmd, "address", "upload.address")
	o.addString(cmd, "remote-name", "upload.remote_name")
}

// upload sends executable (the configured or linked one when empty) with the
// plain tool command, or through the transport when upload.direct is set.
func (g *globalOptions) upload(cmd *cobra.Command, p *project, executable string) (string, error) {
	cfg := p.config.Upload
	if executable == "" {
		executable = cfg.Executable
	}
	if executable == "" {
		var err error
		if executable, err = p.defaultExecutable(); err != nil {
			return "", err
		}
	}

	if !cfg.Direct {
		uploader := upload.NewCommandUploader(cfg.Tool, g.runner)
		return executable, uploader.Upload(cmd.Context(), executable, cfg.Run)
	}

	transport, err := cfg.ParsedTransport()
	if err != nil {
		return "", err
	}
	orchestrator := upload.NewOrchestrator(upload.NewToolTransport(cfg.Tool, g.runner))
	return executable, orchestrator.Upload(cmd.Context(), upload.Request{
		DeviceName:     cfg.DeviceName,
		DeviceAddress:  cfg.DeviceAddress,
		Transport:      transport,
		Executable:     executable,
		RemoteFilename: cfg.RemoteFilename,
		RunImmediately: cfg.Run,
	})
}

func uploadedMessage(p *project, executable string) string {
	if p.config.Upload.Run {
		return fmt.Sprintf(MsgUploadedStarted, filepath.Base(executable))
	}
	return fmt.Sprintf(MsgUploaded, filepath.Base(executable))
}

func newUploadCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "upload",
		Short:   MsgUploadShort,
		Long:    MsgUploadLong,
		Example: MsgUploadExample,
		GroupID: "build",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := overrides{}
			uploadOverrides(cmd, o)
			p, err := g.loadProject(cmd, o)
			if err != nil {
				return err
			}

			executable, err := g.upload(cmd, p, "")
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(ui.FormatAuto, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderMessage(uploadedMessage(p, executable))
		},
	}
	uploadFlags(cmd)
	return cmd
}
