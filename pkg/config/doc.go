// Package config loads the tool's own settings.
//
// Settings are layered, lowest first:
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/wtlaunch/config.toml
//  3. WTLAUNCH_* environment variables; a double underscore nests, so
//     WTLAUNCH_LAUNCH__READY_TIMEOUT=10s sets launch.ready_timeout
//
// These are not the terminal's settings; those are handled by terminalconfig.
package config
