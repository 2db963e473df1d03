package config

import (
	"bytes"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# wtlaunch configuration
# Generated by "wtlaunch genconfig". Remove a key to fall back to its default.

`

// Generate renders cfg as a user configuration file
func Generate(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(document(cfg)); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// document maps cfg to plain values; durations are written the way the
// loader reads them
func document(cfg *Config) map[string]interface{} {
	return map[string]interface{}{
		"locator": map[string]interface{}{
			"package_prefix": cfg.Locator.PackagePrefix,
			"settings_files": cfg.Locator.SettingsFiles,
		},
		"transaction": map[string]interface{}{
			"conflict_timeout": cfg.Transaction.ConflictTimeout.String(),
			"poll_interval":    cfg.Transaction.PollInterval.String(),
			"stale_after":      cfg.Transaction.StaleAfter.String(),
			"watch":            cfg.Transaction.Watch,
		},
		"shortcuts": map[string]interface{}{
			"format":           cfg.Shortcuts.Format,
			"roots":            cfg.Shortcuts.Roots,
			"marker":           cfg.Shortcuts.Marker,
			"position":         cfg.Shortcuts.Position,
			"extended":         cfg.Shortcuts.Extended,
			"profile_argument": cfg.Shortcuts.ProfileArgument,
		},
		"launch": map[string]interface{}{
			"executable":         cfg.Launch.Executable,
			"ready_timeout":      cfg.Launch.ReadyTimeout.String(),
			"ready_interval":     cfg.Launch.ReadyInterval.String(),
			"restore":            cfg.Launch.Restore,
			"starting_directory": cfg.Launch.StartingDirectory,
		},
	}
}
