package uninstall

import (
	"context"

	"github.com/arthur-debert/wtlaunch/pkg/commands/settings"
	"github.com/arthur-debert/wtlaunch/pkg/logging"
	"github.com/arthur-debert/wtlaunch/pkg/registry"
	"github.com/arthur-debert/wtlaunch/pkg/shortcuts"
	"github.com/arthur-debert/wtlaunch/pkg/transaction"
)

// UninstallOptions holds options for the uninstall command
type UninstallOptions struct {
	Source *settings.Source
	Store  registry.Store
}

// UninstallResult lists the removed shortcuts
type UninstallResult struct {
	SettingsPath string
	Removed      []shortcuts.Entry
}

// Uninstall removes every shortcut this tool installed
func Uninstall(ctx context.Context, opts UninstallOptions) (*UninstallResult, error) {
	logger := logging.GetLogger("commands.uninstall")
	defer logging.LogOperationStart(logger, "uninstall")()

	reg := opts.Source.Shortcuts(opts.Store, "")

	result := &UninstallResult{}
	loc, _, err := opts.Source.Run(ctx, func(*transaction.Session) error {
		removed, err := reg.Uninstall()
		result.Removed = removed
		return err
	})
	result.SettingsPath = loc.Path
	if err != nil {
		return result, err
	}

	logger.Info().Int("removed", len(result.Removed)).Msg("Shortcuts removed")
	return result, nil
}
