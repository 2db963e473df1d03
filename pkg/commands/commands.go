// Package commands provides high-level command implementations for wtlaunch.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the core packages.
//
// Each command is implemented in its own subdirectory:
//   - launch/    - Launch command
//   - install/   - Install shortcuts
//   - uninstall/ - Uninstall shortcuts
//   - profiles/  - ListProfiles command
//   - status/    - Status command
//   - genconfig/ - GenConfig command
//   - settings/  - Shared access to the terminal settings file
//
// This file re-exports the command functions for the CLI.
package commands

import (
	"context"

	"github.com/arthur-debert/wtlaunch/pkg/commands/genconfig"
	"github.com/arthur-debert/wtlaunch/pkg/commands/install"
	"github.com/arthur-debert/wtlaunch/pkg/commands/launch"
	"github.com/arthur-debert/wtlaunch/pkg/commands/profiles"
	"github.com/arthur-debert/wtlaunch/pkg/commands/status"
	"github.com/arthur-debert/wtlaunch/pkg/commands/uninstall"
)

// Launch starts the terminal with the selected profile.
type LaunchOptions = launch.LaunchOptions
type LaunchResult = launch.LaunchResult

func Launch(ctx context.Context, opts LaunchOptions) (*LaunchResult, error) {
	return launch.Launch(ctx, opts)
}

// Install replaces the context menu shortcuts.
type InstallOptions = install.InstallOptions
type InstallResult = install.InstallResult

func Install(ctx context.Context, opts InstallOptions) (*InstallResult, error) {
	return install.Install(ctx, opts)
}

// Uninstall removes the context menu shortcuts.
type UninstallOptions = uninstall.UninstallOptions
type UninstallResult = uninstall.UninstallResult

func Uninstall(ctx context.Context, opts UninstallOptions) (*UninstallResult, error) {
	return uninstall.Uninstall(ctx, opts)
}

// ListProfiles lists the terminal profiles.
type ProfilesOptions = profiles.ProfilesOptions
type ProfilesResult = profiles.ProfilesResult

func ListProfiles(opts ProfilesOptions) (*ProfilesResult, error) {
	return profiles.ListProfiles(opts)
}

// Status reports the settings and shortcut state.
type StatusOptions = status.StatusOptions
type StatusResult = status.StatusResult

func Status(opts StatusOptions) (*StatusResult, error) {
	return status.Status(opts)
}

// GenConfig renders the tool configuration file.
type GenConfigOptions = genconfig.GenConfigOptions
type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
