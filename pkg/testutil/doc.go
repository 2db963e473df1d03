// Package testutil provides utilities for testing wtlaunch commands.
//
// Key components:
//   - TestEnvironment: a terminal settings file inside a fake LocalAppData,
//     the tool configuration, a fake clock and an in-memory registry
//   - Settings fixtures: SettingsJSON and LegacyJSON
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Use EnvIsolated when real files are needed (fsnotify, cobra commands)
//   - Each test should be completely isolated with no shared state
package testutil
