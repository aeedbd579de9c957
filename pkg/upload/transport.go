package upload

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/nxj/pkg/errors"
	"github.com/arthur-debert/nxj/pkg/logging"
	"github.com/arthur-debert/nxj/pkg/types"
)

// ErrDeviceNotFound is returned by a Transport when no brick matches the request
var ErrDeviceNotFound = stderrors.New("no NXT brick found")

// Request describes one transfer to a brick
type Request struct {
	// DeviceName and DeviceAddress narrow the search; both may be empty
	DeviceName    string
	DeviceAddress string

	Transport types.TransportKind

	// Executable is the local .nxj file
	Executable string

	// RemoteFilename is the name on the brick; the executable's base name by default
	RemoteFilename string

	RunImmediately bool
}

// Transport sends a file to a brick. Implementations return an error wrapping
// ErrDeviceNotFound when no brick answers.
type Transport interface {
	Upload(ctx context.Context, req Request) error
}

// Orchestrator validates upload requests and maps transport failures
type Orchestrator struct {
	transport Transport
	logger    zerolog.Logger
}

// NewOrchestrator creates an orchestrator around t
func NewOrchestrator(t Transport) *Orchestrator {
	return &Orchestrator{
		transport: t,
		logger:    logging.GetLogger("upload"),
	}
}

// Upload checks req, fills in defaults and hands it to the transport.
func (o *Orchestrator) Upload(ctx context.Context, req Request) error {
	req, err := o.prepare(req)
	if err != nil {
		return err
	}

	o.logger.Info().
		Str("executable", req.Executable).
		Str("remote", req.RemoteFilename).
		Str("transport", string(req.Transport)).
		Str("device", req.DeviceName).
		Str("address", req.DeviceAddress).
		Msg("Start uploading to nxt")

	if err := o.transport.Upload(ctx, req); err != nil {
		if stderrors.Is(err, ErrDeviceNotFound) {
			o.logger.Error().Err(err).Msg("No NXT brick found")
			return errors.Wrap(err, errors.ErrDeviceNotFound, "could not find an NXT brick").
				WithDetail("transport", string(req.Transport)).
				WithDetail("device", req.DeviceName).
				WithDetail("address", req.DeviceAddress)
		}
		o.logger.Error().Err(err).Msg("I/O error at uploading")
		return errors.Wrapf(err, errors.ErrTransportIO,
			"could not upload %s because an I/O error occurred", req.Executable).
			WithDetail("transport", string(req.Transport))
	}

	o.logger.Info().Str("remote", req.RemoteFilename).Msg("Uploaded successfully")
	return nil
}

func (o *Orchestrator) prepare(req Request) (Request, error) {
	if req.Executable == "" {
		return req, errors.New(errors.ErrConfigValid, "executable is required for upload").
			WithDetail("key", "upload.executable")
	}
	info, err := os.Stat(req.Executable)
	if err != nil {
		return req, errors.Wrapf(err, errors.ErrFileNotFound, "executable %s is not readable", req.Executable)
	}
	if info.IsDir() {
		return req, errors.Newf(errors.ErrFileNotFound, "executable %s is a directory", req.Executable)
	}

	switch req.Transport {
	case "":
		req.Transport = types.TransportUSB
	case types.TransportUSB, types.TransportBluetooth:
	default:
		return req, errors.Newf(errors.ErrConfigValid, "unknown transport %q", req.Transport).
			WithDetail("key", "upload.transport")
	}

	if req.RemoteFilename == "" {
		req.RemoteFilename = filepath.Base(req.Executable)
	}
	return req, nil
}
