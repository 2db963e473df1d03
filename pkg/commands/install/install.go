package install

import (
	"context"

	"github.com/arthur-debert/wtlaunch/pkg/commands/settings"
	"github.com/arthur-debert/wtlaunch/pkg/logging"
	"github.com/arthur-debert/wtlaunch/pkg/registry"
	"github.com/arthur-debert/wtlaunch/pkg/shortcuts"
	"github.com/arthur-debert/wtlaunch/pkg/terminalconfig"
	"github.com/arthur-debert/wtlaunch/pkg/transaction"
)

// InstallOptions holds options for the install command
type InstallOptions struct {
	Source *settings.Source
	Store  registry.Store

	// Executable is the program the shortcuts run
	Executable string

	// Format overrides the configured key template
	Format string

	// Profiles restricts the install to these profiles; empty means every
	// visible profile
	Profiles []string
}

// InstallResult describes an install
type InstallResult struct {
	SettingsPath string
	Created      []shortcuts.Entry
	Skipped      []shortcuts.Entry
}

// Install replaces the context menu shortcuts with one per profile
func Install(ctx context.Context, opts InstallOptions) (*InstallResult, error) {
	logger := logging.GetLogger("commands.install")
	defer logging.LogOperationStart(logger, "install")()

	format := opts.Format
	if format == "" {
		format = opts.Source.Config.Shortcuts.Format
	}
	reg := opts.Source.Shortcuts(opts.Store, opts.Executable)

	result := &InstallResult{}

	// bad input fails before the settings are marked
	if err := shortcuts.ValidateFormat(format); err != nil {
		return result, err
	}
	if len(opts.Profiles) > 0 {
		loc, err := opts.Source.Locate()
		if err != nil {
			return result, err
		}
		result.SettingsPath = loc.Path
		cfg, err := opts.Source.Read(loc)
		if err != nil {
			return result, err
		}
		if _, err := terminalconfig.SelectProfiles(cfg, opts.Profiles); err != nil {
			return result, err
		}
	}

	loc, _, err := opts.Source.Run(ctx, func(s *transaction.Session) error {
		var profiles []*terminalconfig.Profile
		if len(opts.Profiles) > 0 {
			selected, err := terminalconfig.SelectProfiles(s.Config, opts.Profiles)
			if err != nil {
				return err
			}
			profiles = selected
		}

		report, err := reg.Install(s.Config, format, profiles)
		result.Created, result.Skipped = report.Created, report.Skipped
		return err
	})
	result.SettingsPath = loc.Path
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("created", len(result.Created)).
		Int("skipped", len(result.Skipped)).
		Msg("Shortcuts installed")
	return result, nil
}
