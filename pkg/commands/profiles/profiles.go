package profiles

import (
	"github.com/arthur-debert/wtlaunch/pkg/commands/settings"
	"github.com/arthur-debert/wtlaunch/pkg/logging"
	"github.com/arthur-debert/wtlaunch/pkg/terminalconfig"
)

// ProfilesOptions holds options for the profiles command
type ProfilesOptions struct {
	Source *settings.Source

	// All includes hidden profiles
	All bool
}

// ProfileInfo is one listed profile
type ProfileInfo struct {
	ID                string `json:"id,omitempty" yaml:"id,omitempty"`
	Name              string `json:"name" yaml:"name"`
	Icon              string `json:"icon,omitempty" yaml:"icon,omitempty"`
	StartingDirectory string `json:"startingDirectory,omitempty" yaml:"startingDirectory,omitempty"`
	Hidden            bool   `json:"hidden" yaml:"hidden"`
	Default           bool   `json:"default" yaml:"default"`
}

// ProfilesResult lists the terminal profiles
type ProfilesResult struct {
	SettingsPath string        `json:"settingsPath" yaml:"settingsPath"`
	InFlight     bool          `json:"inFlight" yaml:"inFlight"`
	Profiles     []ProfileInfo `json:"profiles" yaml:"profiles"`
}

// ListProfiles reads the profiles from the settings file. It does not take
// part in the transaction protocol; InFlight tells whether another run is
// changing the settings right now.
func ListProfiles(opts ProfilesOptions) (*ProfilesResult, error) {
	logger := logging.GetLogger("commands.profiles")

	loc, err := opts.Source.Locate()
	if err != nil {
		return nil, err
	}
	cfg, err := opts.Source.Read(loc)
	if err != nil {
		return nil, err
	}

	def, _ := terminalconfig.DefaultProfile(cfg)
	result := &ProfilesResult{
		SettingsPath: loc.Path,
		InFlight:     cfg.InFlight(),
		Profiles:     []ProfileInfo{},
	}
	for _, p := range cfg.Profiles {
		if p.Hidden && !opts.All {
			continue
		}
		result.Profiles = append(result.Profiles, ProfileInfo{
			ID:                p.ID,
			Name:              p.Name,
			Icon:              p.Icon,
			StartingDirectory: p.StartingDirectory,
			Hidden:            p.Hidden,
			Default:           p == def,
		})
	}

	logger.Debug().Int("count", len(result.Profiles)).Msg("Listed profiles")
	return result, nil
}
