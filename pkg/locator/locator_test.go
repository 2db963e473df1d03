package locator

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/filesystem"
	"github.com/arthur-debert/wtlaunch/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/appdata/local"

func defaultOptions() Options {
	return Options{
		LocalAppData:  root,
		PackagePrefix: "Microsoft.WindowsTerminal",
		SettingsFiles: []string{"settings.json", "profiles.json"},
	}
}

func newFS(t *testing.T, files ...string) types.FS {
	t.Helper()
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll(filepath.Join(root, "Packages"), 0755))
	for _, f := range files {
		path := filepath.Join(root, "Packages", f)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fs.WriteFile(path, []byte("{}"), 0644))
	}
	return fs
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		wantPath string
		wantCode errors.ErrorCode
	}{
		{
			name:     "current settings file",
			files:    []string{"Microsoft.WindowsTerminal_8wekyb3d8bbwe/LocalState/settings.json"},
			wantPath: "Microsoft.WindowsTerminal_8wekyb3d8bbwe/LocalState/settings.json",
		},
		{
			name:     "legacy profiles file",
			files:    []string{"Microsoft.WindowsTerminal_8wekyb3d8bbwe/LocalState/profiles.json"},
			wantPath: "Microsoft.WindowsTerminal_8wekyb3d8bbwe/LocalState/profiles.json",
		},
		{
			name: "settings preferred over profiles",
			files: []string{
				"Microsoft.WindowsTerminal_8wekyb3d8bbwe/LocalState/profiles.json",
				"Microsoft.WindowsTerminal_8wekyb3d8bbwe/LocalState/settings.json",
			},
			wantPath: "Microsoft.WindowsTerminal_8wekyb3d8bbwe/LocalState/settings.json",
		},
		{
			name: "preview package is not a match",
			files: []string{
				"Microsoft.WindowsTerminal_8wekyb3d8bbwe/LocalState/settings.json",
				"Microsoft.WindowsTerminalPreview_8wekyb3d8bbwe/LocalState/settings.json",
			},
			wantPath: "Microsoft.WindowsTerminal_8wekyb3d8bbwe/LocalState/settings.json",
		},
		{
			name:     "package missing",
			files:    []string{"Microsoft.Other_123/LocalState/settings.json"},
			wantCode: errors.ErrConfigNotFound,
		},
		{
			name:     "settings file missing",
			files:    []string{"Microsoft.WindowsTerminal_8wekyb3d8bbwe/LocalState/state.json"},
			wantCode: errors.ErrConfigNotFound,
		},
		{
			name: "ambiguous packages",
			files: []string{
				"Microsoft.WindowsTerminal_8wekyb3d8bbwe/LocalState/settings.json",
				"Microsoft.WindowsTerminal_sideloaded/LocalState/settings.json",
			},
			wantCode: errors.ErrConfigAmbiguous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Locate(newFS(t, tt.files...), defaultOptions())
			if tt.wantCode != "" {
				assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(root, "Packages", tt.wantPath), loc.Path)
			assert.Equal(t, loc.Path+".bak", loc.BackupPath())
		})
	}
}

func TestLocate_NoPackagesDirectory(t *testing.T) {
	_, err := Locate(filesystem.NewMemory(), defaultOptions())
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
}

func TestLocate_ExplicitPath(t *testing.T) {
	fs := newFS(t, "Elsewhere/settings.json")
	opts := defaultOptions()

	opts.SettingsPath = filepath.Join(root, "Packages", "Elsewhere", "settings.json")
	loc, err := Locate(fs, opts)
	require.NoError(t, err)
	assert.Equal(t, opts.SettingsPath, loc.Path)

	opts.SettingsPath = filepath.Join(root, "Packages", "Elsewhere", "missing.json")
	_, err = Locate(fs, opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))

	opts.SettingsPath = filepath.Join(root, "Packages", "Elsewhere")
	_, err = Locate(fs, opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
}

func TestLocalAppDataRoot(t *testing.T) {
	t.Setenv(EnvLocalAppData, "/override")
	assert.Equal(t, "/override", LocalAppDataRoot())

	t.Setenv(EnvLocalAppData, "")
	assert.NotEmpty(t, LocalAppDataRoot())
}
