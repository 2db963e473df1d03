package wtlaunch

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Open Windows Terminal in a directory with a chosen profile"
	MsgProfilesShort   = "List the terminal profiles"
	MsgStatusShort     = "Show settings and shortcut state"
	MsgGenConfigShort  = "Generate the wtlaunch configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgInstalled        = "Installed %d shortcut(s) for %d profile(s)"
	MsgInstallSkipped   = "Skipped %s: a key with that name exists and was not created by wtlaunch"
	MsgUninstalled      = "Removed %d shortcut(s)"
	MsgRecovered        = "Restored terminal settings left by an interrupted run"
	MsgLaunched         = "Opened %s"
	MsgConfigWritten    = "Wrote %s"
	MsgNoProfiles       = "No profiles found."
	MsgNoShortcuts      = "No shortcuts installed."
	MsgVersionFormat    = "wtlaunch %s (commit %s, built %s)\n"
	MsgShortcutsMissing = "Shortcuts unavailable: %s"

	// Error messages
	MsgErrInstallAndUninstall  = "--install and --uninstall cannot be used together"
	MsgErrFormatWithoutInstall = "--format can only be used with --install"
	MsgErrDirectoryWithInstall = "--directory cannot be used with --install or --uninstall"
	MsgErrRestoreWithInstall   = "--restore cannot be used with --install or --uninstall"
	MsgErrManyProfiles         = "only one --profile can be given when opening the terminal"
	MsgErrProfileWithUninstall = "--profile cannot be used with --uninstall"
	MsgErrExecutable           = "cannot determine the wtlaunch executable path"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDirectory = "Directory to open the terminal in (a file opens its folder)"
	MsgFlagProfile   = "Profile name or id; repeat with --install to pick several"
	MsgFlagInstall   = "Install context menu shortcuts"
	MsgFlagUninstall = "Uninstall context menu shortcuts"
	MsgFlagFormat    = "Shortcut label, %P is replaced by the profile name"
	MsgFlagSettings  = "Use this terminal settings file instead of searching for it"
	MsgFlagRestore   = "Restore the previous default profile once the terminal is up"
	MsgFlagConfig    = "wtlaunch configuration file"
	MsgFlagOutput    = "Output format: table, json or yaml"
	MsgFlagAll       = "Include hidden profiles"
	MsgFlagWrite     = "Write the file instead of printing it"
	MsgFlagPath      = "Where to write the file (default: the user configuration path)"
	MsgFlagForce     = "Overwrite an existing file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
