package wtlaunch

import (
	"io"
	"os"

	"github.com/arthur-debert/wtlaunch/internal/version"
	"github.com/arthur-debert/wtlaunch/pkg/commands/settings"
	"github.com/arthur-debert/wtlaunch/pkg/config"
	"github.com/arthur-debert/wtlaunch/pkg/filesystem"
	"github.com/arthur-debert/wtlaunch/pkg/launcher"
	"github.com/arthur-debert/wtlaunch/pkg/logging"
	"github.com/arthur-debert/wtlaunch/pkg/output"
	"github.com/arthur-debert/wtlaunch/pkg/registry"
	"github.com/arthur-debert/wtlaunch/pkg/types"
	"github.com/arthur-debert/wtlaunch/pkg/wait"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Options connects the CLI to the system. Zero values use the real one.
type Options struct {
	FS           types.FS
	Store        func() (registry.Store, error)
	Spawner      launcher.Spawner
	Probe        launcher.Probe
	Clock        wait.Clock
	LocalAppData string
	Executable   func() (string, error)
	Getwd        func() (string, error)
}

func (o Options) withDefaults() Options {
	if o.FS == nil {
		o.FS = filesystem.NewOS()
	}
	if o.Store == nil {
		o.Store = registry.NewSystemStore
	}
	if o.Clock == nil {
		o.Clock = wait.RealClock{}
	}
	if o.Executable == nil {
		o.Executable = os.Executable
	}
	if o.Getwd == nil {
		o.Getwd = os.Getwd
	}
	return o
}

type rootFlags struct {
	verbosity  int
	configPath string

	directory string
	profiles  []string
	install   bool
	uninstall bool
	format    string
	settings  string
	restore   bool
}

// app carries the state shared by the commands of one invocation
type app struct {
	opts  Options
	flags rootFlags
	cfg   *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command against opts
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	a := &app{opts: opts.withDefaults()}

	rootCmd := &cobra.Command{
		Use:     "wtlaunch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(a.flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			overrides := map[string]interface{}{}
			if a.flags.restore {
				overrides["launch.restore"] = true
			}
			cfg, err := config.LoadWithOverrides(a.flags.configPath, overrides)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateModeFlags(a.flags, cmd.Flags().Changed("format"), cmd.Flags().Changed("directory")); err != nil {
				return err
			}
			switch {
			case a.flags.install:
				return a.runInstall(cmd)
			case a.flags.uninstall:
				return a.runUninstall(cmd)
			default:
				return a.runLaunch(cmd, cmd.Flags().Changed("directory"))
			}
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.flags.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.flags.settings, "settings", "", MsgFlagSettings)

	// Mode flags
	rootCmd.Flags().StringVarP(&a.flags.directory, "directory", "d", "", MsgFlagDirectory)
	rootCmd.Flags().StringArrayVarP(&a.flags.profiles, "profile", "p", nil, MsgFlagProfile)
	rootCmd.Flags().BoolVarP(&a.flags.install, "install", "i", false, MsgFlagInstall)
	rootCmd.Flags().BoolVarP(&a.flags.uninstall, "uninstall", "u", false, MsgFlagUninstall)
	rootCmd.Flags().StringVarP(&a.flags.format, "format", "f", "", MsgFlagFormat)
	rootCmd.Flags().BoolVar(&a.flags.restore, "restore", false, MsgFlagRestore)

	_ = rootCmd.RegisterFlagCompletionFunc("profile", a.profileCompletion)
	_ = rootCmd.MarkFlagDirname("directory")
	_ = rootCmd.MarkPersistentFlagFilename("settings", "json")

	rootCmd.AddCommand(a.newProfilesCmd())
	rootCmd.AddCommand(a.newStatusCmd())
	rootCmd.AddCommand(a.newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// source describes the terminal settings for this invocation
func (a *app) source() *settings.Source {
	return &settings.Source{
		FS:           a.opts.FS,
		Config:       a.cfg,
		Path:         a.flags.settings,
		LocalAppData: a.opts.LocalAppData,
		Clock:        a.opts.Clock,
	}
}

// newPrinter styles output for terminals and keeps it plain otherwise
func newPrinter(w io.Writer, format output.Format) *output.Printer {
	if f, ok := w.(*os.File); ok {
		format = format.Resolve(f)
	} else if format == output.FormatAuto {
		format = output.FormatText
	}
	return output.NewPrinter(w, format)
}

// validateModeFlags rejects flag combinations before anything runs
func validateModeFlags(f rootFlags, formatSet, directorySet bool) error {
	mutating := f.install || f.uninstall
	switch {
	case f.install && f.uninstall:
		return usageError(MsgErrInstallAndUninstall)
	case formatSet && !f.install:
		return usageError(MsgErrFormatWithoutInstall)
	case directorySet && mutating:
		return usageError(MsgErrDirectoryWithInstall)
	case f.restore && mutating:
		return usageError(MsgErrRestoreWithInstall)
	case f.uninstall && len(f.profiles) > 0:
		return usageError(MsgErrProfileWithUninstall)
	case !mutating && len(f.profiles) > 1:
		return usageError(MsgErrManyProfiles)
	}
	return nil
}
