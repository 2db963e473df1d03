package shortcuts

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/logging"
	"github.com/arthur-debert/wtlaunch/pkg/registry"
	"github.com/arthur-debert/wtlaunch/pkg/terminalconfig"
)

const (
	// ProfilePlaceholder is replaced by the profile name in key templates
	ProfilePlaceholder = "%P"

	// DirectoryPlaceholder is expanded by Explorer to the clicked location
	DirectoryPlaceholder = "%V"

	commandSubKey = "command"
)

// Profile argument modes for the installed command line
const (
	ProfileArgumentID   = "id"
	ProfileArgumentName = "name"
)

// DefaultRoots are the HKCU shell roots shortcuts are installed under
var DefaultRoots = []string{
	`Software\Classes\*\shell`,
	`Software\Classes\Drive\shell`,
	`Software\Classes\Directory\shell`,
	`Software\Classes\Directory\Background\shell`,
}

// Entry is one context menu shortcut
type Entry struct {
	Root      string `json:"root" yaml:"root"`
	Key       string `json:"key" yaml:"key"`
	Command   string `json:"command" yaml:"command"`
	Icon      string `json:"icon,omitempty" yaml:"icon,omitempty"`
	ProfileID string `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// Path is the entry's key path below the store root
func (e Entry) Path() string {
	return registry.Join(e.Root, e.Key)
}

// InstallReport lists what Install did
type InstallReport struct {
	Created []Entry
	Skipped []Entry
}

// Options configures a Registry
type Options struct {
	Roots      []string
	Marker     string
	Executable string
	Position   string
	Extended   bool

	// ProfileArgument selects what the command passes to --profile
	ProfileArgument string
}

// Registry installs and removes owned shortcuts in a registry.Store
type Registry struct {
	store registry.Store
	opts  Options
}

// New creates a Registry. Empty options fall back to the default roots and
// marker.
func New(store registry.Store, opts Options) *Registry {
	if len(opts.Roots) == 0 {
		opts.Roots = DefaultRoots
	}
	if opts.Marker == "" {
		opts.Marker = "wtlaunch.owned"
	}
	if opts.ProfileArgument == "" {
		opts.ProfileArgument = ProfileArgumentID
	}
	return &Registry{store: store, opts: opts}
}

// ValidateFormat checks that a key template names the profile
func ValidateFormat(template string) error {
	if !strings.Contains(template, ProfilePlaceholder) {
		return errors.Newf(errors.ErrInvalidInput, "shortcut format %q must contain %s", template, ProfilePlaceholder).
			WithDetail("format", template)
	}
	return nil
}

// Install replaces the owned shortcuts with one entry per profile and root.
// A nil profile list installs every visible profile of cfg.
func (r *Registry) Install(cfg *terminalconfig.Configuration, template string, profiles []*terminalconfig.Profile) (InstallReport, error) {
	log := logging.GetLogger("shortcuts")
	var report InstallReport

	if err := ValidateFormat(template); err != nil {
		return report, err
	}
	if profiles == nil {
		profiles = terminalconfig.VisibleProfiles(cfg)
	}

	if _, err := r.Uninstall(); err != nil {
		return report, err
	}

	names := displayNames(template, profiles)
	for i, p := range profiles {
		for _, root := range r.opts.Roots {
			entry := Entry{
				Root:      root,
				Key:       names[i],
				Command:   r.command(p),
				Icon:      p.Icon,
				ProfileID: p.Key(),
			}

			exists, err := r.store.Exists(entry.Path())
			if err != nil {
				return report, err
			}
			if exists {
				// anything still present after Uninstall is not ours
				log.Warn().Str("key", entry.Path()).Msg("Skipping shortcut, key exists and is not owned")
				report.Skipped = append(report.Skipped, entry)
				continue
			}

			if err := r.create(entry); err != nil {
				return report, err
			}
			log.Debug().Str("key", entry.Path()).Str("profile", p.Name).Msg("Created shortcut")
			report.Created = append(report.Created, entry)
		}
	}

	log.Info().Int("created", len(report.Created)).Int("skipped", len(report.Skipped)).Msg("Installed shortcuts")
	return report, nil
}

// Uninstall deletes every owned entry under the configured roots
func (r *Registry) Uninstall() ([]Entry, error) {
	log := logging.GetLogger("shortcuts")

	owned, err := r.List()
	if err != nil {
		return nil, err
	}

	var removed []Entry
	for _, e := range owned {
		if err := r.store.DeleteTree(e.Path()); err != nil {
			return removed, errors.Wrapf(err, errors.ErrRegistry, "failed to remove shortcut %s", e.Path())
		}
		log.Debug().Str("key", e.Path()).Msg("Removed shortcut")
		removed = append(removed, e)
	}
	return removed, nil
}

// List returns the owned entries, root by root
func (r *Registry) List() ([]Entry, error) {
	var entries []Entry
	for _, root := range r.opts.Roots {
		keys, err := r.store.SubKeys(root)
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			e := Entry{Root: root, Key: key}
			owned, err := r.store.Exists(registry.Join(e.Path(), r.opts.Marker))
			if err != nil {
				return nil, err
			}
			if !owned {
				continue
			}
			if err := r.describe(&e); err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *Registry) describe(e *Entry) error {
	var err error
	if e.Command, _, err = r.store.GetString(registry.Join(e.Path(), commandSubKey), ""); err != nil {
		return err
	}
	if e.Icon, _, err = r.store.GetString(e.Path(), "Icon"); err != nil {
		return err
	}
	e.ProfileID, _, err = r.store.GetString(registry.Join(e.Path(), r.opts.Marker), "")
	return err
}

func (r *Registry) create(e Entry) error {
	path := e.Path()
	commandPath := registry.Join(path, commandSubKey)
	markerPath := registry.Join(path, r.opts.Marker)

	steps := []func() error{
		func() error { return r.store.CreateKey(path) },
		func() error { return r.store.SetString(path, "", e.Key) },
		func() error { return r.store.SetString(path, "Position", r.opts.Position) },
		func() error {
			if !r.opts.Extended {
				return nil
			}
			return r.store.SetString(path, "Extended", "")
		},
		func() error {
			if e.Icon == "" {
				return nil
			}
			return r.store.SetString(path, "Icon", e.Icon)
		},
		func() error { return r.store.CreateKey(commandPath) },
		func() error { return r.store.SetString(commandPath, "", e.Command) },
		func() error { return r.store.CreateKey(markerPath) },
		func() error { return r.store.SetString(markerPath, "", e.ProfileID) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return errors.Wrapf(err, errors.ErrRegistry, "failed to create shortcut %s", path)
		}
	}
	return nil
}

func (r *Registry) command(p *terminalconfig.Profile) string {
	arg := p.Key()
	if r.opts.ProfileArgument == ProfileArgumentName {
		arg = p.Name
	}
	return fmt.Sprintf(`"%s" --directory="%s" --profile="%s"`, r.opts.Executable, DirectoryPlaceholder, arg)
}

// displayNames formats the key name of every profile. Names that collide
// (ignoring case, as the registry does) get " (2)", " (3)" and so on.
func displayNames(template string, profiles []*terminalconfig.Profile) []string {
	names := make([]string, len(profiles))
	taken := make(map[string]bool)
	for i, p := range profiles {
		base := strings.ReplaceAll(template, ProfilePlaceholder, sanitize(p.Name))
		name := base
		for n := 2; taken[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s (%d)", base, n)
		}
		taken[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}

// sanitize drops the key path separator from profile names
func sanitize(name string) string {
	return strings.ReplaceAll(name, registry.Separator, "-")
}
