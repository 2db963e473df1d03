package status

import (
	"github.com/arthur-debert/wtlaunch/pkg/commands/settings"
	"github.com/arthur-debert/wtlaunch/pkg/logging"
	"github.com/arthur-debert/wtlaunch/pkg/registry"
	"github.com/arthur-debert/wtlaunch/pkg/shortcuts"
	"github.com/arthur-debert/wtlaunch/pkg/terminalconfig"
)

// StatusOptions holds options for the status command
type StatusOptions struct {
	Source *settings.Source

	// Store may be nil where no registry is available
	Store registry.Store
}

// StatusResult describes the settings file and the installed shortcuts
type StatusResult struct {
	SettingsPath   string            `json:"settingsPath" yaml:"settingsPath"`
	PackageDir     string            `json:"packageDir" yaml:"packageDir"`
	BackupExists   bool              `json:"backupExists" yaml:"backupExists"`
	InFlight       bool              `json:"inFlight" yaml:"inFlight"`
	DefaultProfile string            `json:"defaultProfile,omitempty" yaml:"defaultProfile,omitempty"`
	Shortcuts      []shortcuts.Entry `json:"shortcuts" yaml:"shortcuts"`

	// ShortcutsError explains why shortcuts could not be listed
	ShortcutsError string `json:"shortcutsError,omitempty" yaml:"shortcutsError,omitempty"`
}

// Status reports without changing anything
func Status(opts StatusOptions) (*StatusResult, error) {
	logger := logging.GetLogger("commands.status")

	loc, err := opts.Source.Locate()
	if err != nil {
		return nil, err
	}
	cfg, err := opts.Source.Read(loc)
	if err != nil {
		return nil, err
	}

	result := &StatusResult{
		SettingsPath: loc.Path,
		PackageDir:   loc.PackageDir,
		InFlight:     cfg.InFlight(),
		Shortcuts:    []shortcuts.Entry{},
	}
	if _, err := opts.Source.FS.Stat(loc.BackupPath()); err == nil {
		result.BackupExists = true
	}
	if p, ok := terminalconfig.DefaultProfile(cfg); ok {
		result.DefaultProfile = p.Name
	} else {
		result.DefaultProfile = cfg.Globals.DefaultProfileID
	}

	if opts.Store == nil {
		result.ShortcutsError = "no registry on this platform"
		return result, nil
	}
	entries, err := opts.Source.Shortcuts(opts.Store, "").List()
	if err != nil {
		logger.Warn().Err(err).Msg("Cannot list shortcuts")
		result.ShortcutsError = err.Error()
		return result, nil
	}
	result.Shortcuts = append(result.Shortcuts, entries...)
	return result, nil
}
