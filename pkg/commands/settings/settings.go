// Package settings connects the commands to the terminal's settings file:
// where it is, how to read it, and how to change it safely.
package settings

import (
	"context"

	"github.com/arthur-debert/wtlaunch/pkg/config"
	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/filesystem"
	"github.com/arthur-debert/wtlaunch/pkg/locator"
	"github.com/arthur-debert/wtlaunch/pkg/registry"
	"github.com/arthur-debert/wtlaunch/pkg/shortcuts"
	"github.com/arthur-debert/wtlaunch/pkg/terminalconfig"
	"github.com/arthur-debert/wtlaunch/pkg/transaction"
	"github.com/arthur-debert/wtlaunch/pkg/types"
	"github.com/arthur-debert/wtlaunch/pkg/wait"
)

// Source describes where the settings come from
type Source struct {
	FS     types.FS
	Config *config.Config

	// Path is an explicit settings file (--settings)
	Path string

	// LocalAppData overrides the package search root
	LocalAppData string

	// Clock drives waits and staleness; defaults to the real clock
	Clock wait.Clock
}

func (s *Source) fs() types.FS {
	if s.FS == nil {
		s.FS = filesystem.NewOS()
	}
	return s.FS
}

// Locate finds the settings file
func (s *Source) Locate() (locator.Location, error) {
	return locator.Locate(s.fs(), locator.Options{
		LocalAppData:  s.LocalAppData,
		PackagePrefix: s.Config.Locator.PackagePrefix,
		SettingsFiles: s.Config.Locator.SettingsFiles,
		SettingsPath:  s.Path,
	})
}

// Read parses the settings without taking part in the transaction protocol
func (s *Source) Read(loc locator.Location) (*terminalconfig.Configuration, error) {
	raw, err := s.fs().ReadFile(loc.Path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read settings")
	}
	cfg, err := terminalconfig.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", loc.Path)
	}
	return cfg, nil
}

// Transaction guards the settings file at loc
func (s *Source) Transaction(loc locator.Location) *transaction.Transaction {
	tc := s.Config.Transaction
	waiter := wait.New(tc.PollInterval, tc.ConflictTimeout)
	if s.Clock != nil {
		waiter.Clock = s.Clock
	}
	return &transaction.Transaction{
		FS:         s.fs(),
		Path:       loc.Path,
		Waiter:     waiter,
		StaleAfter: tc.StaleAfter,
		Watch:      tc.Watch,
	}
}

// Run locates the settings and runs action inside a transaction on them.
// Errors from the action come back as the returned error too, so callers
// that only need success or failure can ignore the Result.
func (s *Source) Run(ctx context.Context, action transaction.Action) (locator.Location, transaction.Result, error) {
	loc, err := s.Locate()
	if err != nil {
		return loc, transaction.Result{}, err
	}
	res, err := s.Transaction(loc).Run(ctx, action)
	if err != nil {
		return loc, res, err
	}
	return loc, res, res.ActionErr
}

// Shortcuts returns the shortcut registry configured for this source.
// executable is the program the shortcuts run, normally this binary.
func (s *Source) Shortcuts(store registry.Store, executable string) *shortcuts.Registry {
	sc := s.Config.Shortcuts
	return shortcuts.New(store, shortcuts.Options{
		Roots:           sc.Roots,
		Marker:          sc.Marker,
		Executable:      executable,
		Position:        sc.Position,
		Extended:        sc.Extended,
		ProfileArgument: sc.ProfileArgument,
	})
}
