package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/wtlaunch/pkg/commands/settings"
	"github.com/arthur-debert/wtlaunch/pkg/config"
	"github.com/arthur-debert/wtlaunch/pkg/filesystem"
	"github.com/arthur-debert/wtlaunch/pkg/registry"
	"github.com/arthur-debert/wtlaunch/pkg/terminalconfig"
	"github.com/arthur-debert/wtlaunch/pkg/types"
	"github.com/arthur-debert/wtlaunch/pkg/wait"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// PackageName is the terminal package directory the environment creates
const PackageName = "Microsoft.WindowsTerminal_8wekyb3d8bbwe"

// TestEnvironment is an installed terminal with its settings file
type TestEnvironment struct {
	LocalAppData string
	SettingsPath string

	FS     types.FS
	Config *config.Config
	Clock  *wait.FakeClock
	Store  *registry.MemoryStore

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates the environment with SettingsJSON in place
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	cfg, err := config.Defaults()
	require.NoError(t, err)

	env := &TestEnvironment{
		Config: cfg,
		Clock:  wait.NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		Store:  registry.NewMemoryStore(),
		Type:   envType,
		t:      t,
	}

	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewMemory()
		env.LocalAppData = "/localappdata"
	case EnvIsolated:
		env.FS = filesystem.NewOS()
		env.LocalAppData = t.TempDir()
	}

	dir := filepath.Join(env.LocalAppData, "Packages", PackageName, "LocalState")
	require.NoError(t, env.FS.MkdirAll(dir, 0755))
	env.SettingsPath = filepath.Join(dir, "settings.json")
	env.WriteSettings(SettingsJSON)

	return env
}

// Source returns a settings source for the environment
func (e *TestEnvironment) Source() *settings.Source {
	return &settings.Source{
		FS:           e.FS,
		Config:       e.Config,
		LocalAppData: e.LocalAppData,
		Clock:        e.Clock,
	}
}

// WriteSettings replaces the settings file
func (e *TestEnvironment) WriteSettings(content string) {
	e.t.Helper()
	require.NoError(e.t, e.FS.WriteFile(e.SettingsPath, []byte(content), 0644))
}

// RawSettings reads the settings file
func (e *TestEnvironment) RawSettings() string {
	e.t.Helper()
	data, err := e.FS.ReadFile(e.SettingsPath)
	require.NoError(e.t, err)
	return string(data)
}

// Settings parses the settings file
func (e *TestEnvironment) Settings() *terminalconfig.Configuration {
	e.t.Helper()
	cfg, err := terminalconfig.Parse([]byte(e.RawSettings()))
	require.NoError(e.t, err)
	return cfg
}

// BackupExists reports whether a settings backup is present
func (e *TestEnvironment) BackupExists() bool {
	_, err := e.FS.Stat(e.SettingsPath + ".bak")
	return err == nil
}

// AssertClean fails unless the settings carry no marker and no backup is left
func (e *TestEnvironment) AssertClean() {
	e.t.Helper()
	require.False(e.t, e.BackupExists(), "settings backup left behind")
	require.False(e.t, e.Settings().InFlight(), "settings still marked in use")
}
