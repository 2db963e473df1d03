// Package locator finds the Windows Terminal settings file.
package locator

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/logging"
	"github.com/arthur-debert/wtlaunch/pkg/types"
)

// EnvLocalAppData overrides the local application data root
const EnvLocalAppData = "WTLAUNCH_LOCAL_APP_DATA"

const (
	packagesDir   = "Packages"
	localStateDir = "LocalState"
)

// Options controls the search
type Options struct {
	// LocalAppData is the root holding Packages; defaults to LocalAppDataRoot()
	LocalAppData string

	// PackagePrefix is the package family name without the publisher suffix,
	// e.g. Microsoft.WindowsTerminal
	PackagePrefix string

	// SettingsFiles are the candidate file names, in order of preference
	SettingsFiles []string

	// SettingsPath skips the search and uses this file
	SettingsPath string
}

// Location is a resolved settings file
type Location struct {
	PackageDir string
	Path       string
}

// BackupPath is the recovery copy next to the settings file
func (l Location) BackupPath() string {
	return l.Path + ".bak"
}

// LocalAppDataRoot returns the per-user local application data directory.
// adrg/xdg resolves XDG_DATA_HOME to %LOCALAPPDATA% on Windows.
func LocalAppDataRoot() string {
	if override := os.Getenv(EnvLocalAppData); override != "" {
		return override
	}
	return xdg.DataHome
}

// Locate finds the settings file of the installed terminal package. It only
// reads the filesystem.
func Locate(fs types.FS, opts Options) (Location, error) {
	log := logging.GetLogger("locator")

	if opts.SettingsPath != "" {
		if err := requireFile(fs, opts.SettingsPath); err != nil {
			return Location{}, err
		}
		return Location{PackageDir: filepath.Dir(opts.SettingsPath), Path: opts.SettingsPath}, nil
	}

	root := opts.LocalAppData
	if root == "" {
		root = LocalAppDataRoot()
	}
	packages := filepath.Join(root, packagesDir)

	entries, err := fs.ReadDir(packages)
	if err != nil {
		return Location{}, errors.Wrapf(err, errors.ErrConfigNotFound, "cannot read %s", packages)
	}

	prefix := strings.ToLower(opts.PackagePrefix + "_")
	var matches []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(strings.ToLower(entry.Name()), prefix) {
			matches = append(matches, entry.Name())
		}
	}
	sort.Strings(matches)

	switch len(matches) {
	case 0:
		return Location{}, errors.Newf(errors.ErrConfigNotFound, "no %s package installed under %s", opts.PackagePrefix, packages)
	case 1:
	default:
		return Location{}, errors.Newf(errors.ErrConfigAmbiguous, "found %d %s packages, pass --settings to choose one", len(matches), opts.PackagePrefix).
			WithDetail("packages", matches)
	}

	pkgDir := filepath.Join(packages, matches[0])
	for _, name := range opts.SettingsFiles {
		candidate := filepath.Join(pkgDir, localStateDir, name)
		if info, err := fs.Stat(candidate); err == nil && !info.IsDir() {
			log.Debug().Str("path", candidate).Msg("Found terminal settings")
			return Location{PackageDir: pkgDir, Path: candidate}, nil
		}
	}

	return Location{}, errors.Newf(errors.ErrConfigNotFound, "no settings file (%s) in %s",
		strings.Join(opts.SettingsFiles, ", "), filepath.Join(pkgDir, localStateDir))
}

func requireFile(fs types.FS, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigNotFound, "settings file %s", path)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrConfigNotFound, "settings path %s is a directory", path)
	}
	return nil
}
