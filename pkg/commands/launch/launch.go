package launch

import (
	"context"

	"github.com/arthur-debert/wtlaunch/pkg/commands/settings"
	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/launcher"
	"github.com/arthur-debert/wtlaunch/pkg/logging"
	"github.com/arthur-debert/wtlaunch/pkg/terminalconfig"
	"github.com/arthur-debert/wtlaunch/pkg/transaction"
	"github.com/arthur-debert/wtlaunch/pkg/wait"
)

// LaunchOptions holds options for the launch command
type LaunchOptions struct {
	Source *settings.Source

	Directory    string
	HasDirectory bool
	Profile      string

	// Restore reverts the settings once the terminal is up instead of
	// keeping the selected profile as the default
	Restore bool

	// Launcher defaults to one built from the configuration
	Launcher *launcher.Launcher
}

// LaunchResult describes a launch
type LaunchResult struct {
	SettingsPath string
	Directory    string
	Profile      *terminalconfig.Profile
	Committed    bool
	Recovered    bool
	Ready        bool

	// Warnings are problems that did not stop the launch
	Warnings []error
}

// Launch selects the profile in the terminal settings and starts the terminal
// in the requested directory
func Launch(ctx context.Context, opts LaunchOptions) (*LaunchResult, error) {
	logger := logging.GetLogger("commands.launch")
	defer logging.LogOperationStart(logger, "launch")()

	cfg := opts.Source.Config
	l := opts.Launcher
	if l == nil {
		waiter := wait.New(cfg.Launch.ReadyInterval, cfg.Launch.ReadyTimeout)
		if opts.Source.Clock != nil {
			waiter.Clock = opts.Source.Clock
		}
		l = launcher.New(launcher.Options{
			FS:         opts.Source.FS,
			Executable: cfg.Launch.Executable,
			Waiter:     waiter,
		})
	}

	req := launcher.Request{Directory: opts.Directory, HasDirectory: opts.HasDirectory}

	// a bad directory fails before the settings are touched
	dir, err := l.ResolveDirectory(req)
	if err != nil {
		return nil, err
	}
	req.Directory, req.HasDirectory = dir, true

	result := &LaunchResult{Directory: dir}
	loc, txRes, err := opts.Source.Run(ctx, func(s *transaction.Session) error {
		if opts.Profile != "" {
			p, ok := terminalconfig.FindProfile(s.Config, opts.Profile)
			if ok {
				p.StartingDirectory = cfg.Launch.StartingDirectory
				s.Config.SetDefaultProfile(p)
				req.ProfileID = p.Key()
				result.Profile = p
			} else {
				warning := errors.Newf(errors.ErrProfileNotSelected, "no profile matches %q, keeping the default", opts.Profile)
				logger.Warn().Str("profile", opts.Profile).Msg("No profile matches, keeping the default")
				result.Warnings = append(result.Warnings, warning)
			}
		}

		// the terminal reads its settings while starting
		if result.Profile != nil {
			if err := s.Apply(); err != nil {
				return err
			}
		}

		launched := l.Launch(ctx, req)
		if launched.Err != nil {
			return launched.Err
		}
		result.Ready = launched.Ready
		if !launched.Ready {
			result.Warnings = append(result.Warnings,
				errors.New(errors.ErrProcessLaunch, "the terminal did not report ready in time"))
		}

		if result.Profile != nil && !opts.Restore {
			return s.Commit()
		}
		return nil
	})

	result.SettingsPath = loc.Path
	result.Committed = txRes.Committed
	result.Recovered = txRes.Recovered
	if err != nil {
		return result, err
	}

	logger.Info().
		Str("directory", dir).
		Bool("committed", result.Committed).
		Bool("ready", result.Ready).
		Msg("Terminal launched")
	return result, nil
}
