package config

import (
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
)

// Config is the merged tool configuration
type Config struct {
	Locator     Locator     `koanf:"locator"`
	Transaction Transaction `koanf:"transaction"`
	Shortcuts   Shortcuts   `koanf:"shortcuts"`
	Launch      Launch      `koanf:"launch"`
}

// Locator controls where the terminal settings are searched
type Locator struct {
	PackagePrefix string   `koanf:"package_prefix"`
	SettingsFiles []string `koanf:"settings_files"`
}

// Transaction controls the settings file guard
type Transaction struct {
	ConflictTimeout time.Duration `koanf:"conflict_timeout"`
	PollInterval    time.Duration `koanf:"poll_interval"`
	StaleAfter      time.Duration `koanf:"stale_after"`
	Watch           bool          `koanf:"watch"`
}

// Shortcuts controls the context menu entries
type Shortcuts struct {
	Format          string   `koanf:"format"`
	Roots           []string `koanf:"roots"`
	Marker          string   `koanf:"marker"`
	Position        string   `koanf:"position"`
	Extended        bool     `koanf:"extended"`
	ProfileArgument string   `koanf:"profile_argument"`
}

// Launch controls how the terminal is started
type Launch struct {
	Executable        string        `koanf:"executable"`
	ReadyTimeout      time.Duration `koanf:"ready_timeout"`
	ReadyInterval     time.Duration `koanf:"ready_interval"`
	Restore           bool          `koanf:"restore"`
	StartingDirectory string        `koanf:"starting_directory"`
}

// Validate checks values the loader cannot type-check
func (c *Config) Validate() error {
	var problems []string
	if c.Locator.PackagePrefix == "" {
		problems = append(problems, "locator.package_prefix is empty")
	}
	if len(c.Locator.SettingsFiles) == 0 {
		problems = append(problems, "locator.settings_files is empty")
	}
	for key, d := range map[string]time.Duration{
		"transaction.conflict_timeout": c.Transaction.ConflictTimeout,
		"transaction.poll_interval":    c.Transaction.PollInterval,
		"transaction.stale_after":      c.Transaction.StaleAfter,
		"launch.ready_timeout":         c.Launch.ReadyTimeout,
		"launch.ready_interval":        c.Launch.ReadyInterval,
	} {
		if d <= 0 {
			problems = append(problems, key+" must be positive")
		}
	}
	// a crashed run's backup must age out before a waiting run gives up
	if tc := c.Transaction; tc.StaleAfter > 0 && tc.StaleAfter >= tc.ConflictTimeout {
		problems = append(problems, "transaction.stale_after must be shorter than transaction.conflict_timeout")
	}
	if !strings.Contains(c.Shortcuts.Format, "%P") {
		problems = append(problems, "shortcuts.format must contain %P")
	}
	if c.Shortcuts.Marker == "" {
		problems = append(problems, "shortcuts.marker is empty")
	}
	switch c.Shortcuts.ProfileArgument {
	case "id", "name":
	default:
		problems = append(problems, "shortcuts.profile_argument must be id or name")
	}
	if c.Launch.Executable == "" {
		problems = append(problems, "launch.executable is empty")
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return errors.Newf(errors.ErrConfigLoad, "invalid configuration: %s", strings.Join(problems, "; ")).
			WithDetail("problems", problems)
	}
	return nil
}
