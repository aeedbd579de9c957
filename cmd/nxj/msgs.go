package nxj

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Link and upload Java programs for the LEGO NXT"
	MsgClasspathShort  = "Print the compile classpath"
	MsgDepsShort       = "List dependencies and their repository paths"
	MsgLinkShort       = "Link the project into an NXJ executable"
	MsgUploadShort     = "Upload an NXJ executable to the brick"
	MsgDeployShort     = "Link, then upload"
	MsgInitShort       = "Create a starter nxj.toml"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgLinked          = "Linked %s (%s)"
	MsgUploaded        = "Uploaded %s"
	MsgUploadedStarted = "Uploaded and started %s"
	MsgInitCreated     = "Created %s"
	MsgDepsSummary     = "%d of %d dependencies on the compile classpath"
	MsgStepLink        = "Linking %s"
	MsgStepUpload      = "Uploading %s"
	MsgNoDependencies  = "No dependencies declared"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths: %w"
	MsgErrNoExecutable = "no executable to upload: set upload.executable or link.main_class"
	MsgErrConfigExists = "%s already exists (use --force to overwrite)"
	MsgErrFormat       = "invalid --format: %w"

	// Global flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProject    = "Project directory (default: nearest directory with nxj.toml or pom.xml)"
	MsgFlagConfig     = "Configuration file to use instead of the project's nxj.toml"
	MsgFlagRepository = "Local artifact repository (default: $NXJ_REPOSITORY or ~/.m2/repository)"

	// Command flag descriptions
	MsgFlagWithClasses   = "Start the classpath with the project's classes directory"
	MsgFlagFormat        = "Output format: auto, term, text, json or yaml"
	MsgFlagAll           = "Include dependencies outside the compile scope"
	MsgFlagMainClass     = "Fully qualified class holding main()"
	MsgFlagAppName       = "Executable name (default: simple name of the main class)"
	MsgFlagBootClasspath = "leJOS runtime classes passed to the linker"
	MsgFlagEndianness    = "Byte order of the executable: LE or BE"
	MsgFlagExecutable    = "Executable to upload (default: the link output)"
	MsgFlagRun           = "Start the program once uploaded"
	MsgFlagDirect        = "Pass all connection options to the upload tool"
	MsgFlagTransport     = "Connection: usb or bluetooth (with --direct)"
	MsgFlagDeviceName    = "Brick name (with --direct)"
	MsgFlagDeviceAddress = "Brick address (with --direct)"
	MsgFlagRemoteName    = "File name on the brick (with --direct)"
	MsgFlagForce         = "Overwrite an existing nxj.toml"
	MsgFlagFromPom       = "Copy the dependencies of pom.xml"
	MsgFlagFull          = "Append every setting, commented out"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/link-long.txt
	msgLinkLongRaw string
	MsgLinkLong    = strings.TrimSpace(msgLinkLongRaw)

	//go:embed msgs/link-example.txt
	msgLinkExampleRaw string
	MsgLinkExample    = strings.TrimRight(msgLinkExampleRaw, "\n")

	//go:embed msgs/upload-long.txt
	msgUploadLongRaw string
	MsgUploadLong    = strings.TrimSpace(msgUploadLongRaw)

	//go:embed msgs/upload-example.txt
	msgUploadExampleRaw string
	MsgUploadExample    = strings.TrimRight(msgUploadExampleRaw, "\n")

	//go:embed msgs/deploy-long.txt
	msgDeployLongRaw string
	MsgDeployLong    = strings.TrimSpace(msgDeployLongRaw)

	//go:embed msgs/classpath-long.txt
	msgClasspathLongRaw string
	MsgClasspathLong    = strings.TrimSpace(msgClasspathLongRaw)

	//go:embed msgs/deps-long.txt
	msgDepsLongRaw string
	MsgDepsLong    = strings.TrimSpace(msgDepsLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw) + "\n"

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
