package terminalconfig

import (
	"fmt"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
)

// MarkerKey is the top-level key flagging a settings file that is in the
// middle of a wtlaunch transaction
const MarkerKey = "wintermRunnerModified"

// StartingDirectoryPlaceholder makes the terminal open a profile in the
// directory it was launched from
const StartingDirectoryPlaceholder = "%__CD__%"

// GlobalSettings holds the modeled global settings
type GlobalSettings struct {
	DefaultProfileID string
}

// Profile is one entry of the terminal's profile list
type Profile struct {
	ID                string
	Name              string
	Icon              string
	StartingDirectory string
	Hidden            bool

	// Index is the position in the profile list
	Index int

	original profileFields
}

type profileFields struct {
	name, icon, startingDirectory string
	hidden                        bool
}

// Key returns the value used to select the profile: its id, or its name for
// profiles that carry no id
func (p *Profile) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.Name
}

// Configuration is the parsed settings file. Only Globals and the modeled
// Profile fields may be changed; everything else is carried verbatim.
type Configuration struct {
	Globals  GlobalSettings
	Profiles []*Profile

	doc         *document
	defaultPath string
	listPath    string
	inFlight    bool
	original    struct {
		defaultProfileID string
	}
}

// Parse reads a settings document
func Parse(raw []byte) (*Configuration, error) {
	doc := newDocument(append([]byte(nil), raw...))
	if !doc.valid() {
		return nil, errors.New(errors.ErrConfigParse, "settings file is not a JSON object")
	}

	cfg := &Configuration{doc: doc}
	cfg.inFlight = doc.get(MarkerKey).Bool()

	switch {
	case doc.get("defaultProfile").Exists():
		cfg.defaultPath = "defaultProfile"
	case doc.get("globals.defaultProfile").Exists(), doc.get("globals").IsObject():
		cfg.defaultPath = "globals.defaultProfile"
	default:
		cfg.defaultPath = "defaultProfile"
	}
	if def := doc.get(cfg.defaultPath); def.Exists() {
		cfg.Globals.DefaultProfileID = def.String()
	}
	cfg.original.defaultProfileID = cfg.Globals.DefaultProfileID

	profiles := doc.get("profiles")
	switch {
	case profiles.IsArray():
		cfg.listPath = "profiles"
	case profiles.IsObject() && profiles.Get("list").IsArray():
		cfg.listPath = "profiles.list"
	case !profiles.Exists() || profiles.IsObject():
		return cfg, nil
	default:
		return nil, errors.New(errors.ErrConfigParse, "settings profiles must be a list or an object with a list")
	}

	for i, item := range doc.get(cfg.listPath).Array() {
		if !item.IsObject() {
			return nil, errors.Newf(errors.ErrConfigParse, "profile %d is not an object", i)
		}
		p := &Profile{
			ID:                item.Get("guid").String(),
			Name:              item.Get("name").String(),
			Icon:              item.Get("icon").String(),
			StartingDirectory: item.Get("startingDirectory").String(),
			Hidden:            item.Get("hidden").Bool(),
			Index:             i,
		}
		p.original = profileFields{
			name:              p.Name,
			icon:              p.Icon,
			startingDirectory: p.StartingDirectory,
			hidden:            p.Hidden,
		}
		cfg.Profiles = append(cfg.Profiles, p)
	}

	return cfg, nil
}

// InFlight reports whether the parsed document carried the transaction marker
func (c *Configuration) InFlight() bool {
	return c.inFlight
}

// SetDefaultProfile makes the profile the terminal's default
func (c *Configuration) SetDefaultProfile(p *Profile) {
	c.Globals.DefaultProfileID = p.Key()
}

// Marshal returns the document with all changes applied and the marker as
// it was parsed. An unchanged configuration yields the parsed bytes.
func (c *Configuration) Marshal() ([]byte, error) {
	return c.marshal(c.inFlight)
}

// MarshalInFlight is Marshal with the transaction marker set
func (c *Configuration) MarshalInFlight() ([]byte, error) {
	return c.marshal(true)
}

// MarshalCleared is Marshal with the transaction marker cleared
func (c *Configuration) MarshalCleared() ([]byte, error) {
	return c.marshal(false)
}

func (c *Configuration) marshal(inFlight bool) ([]byte, error) {
	doc := newDocument(append([]byte(nil), c.doc.text...))

	if c.Globals.DefaultProfileID != c.original.defaultProfileID {
		if err := doc.set(c.defaultPath, c.Globals.DefaultProfileID); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to write default profile")
		}
	}

	for _, p := range c.Profiles {
		if err := c.writeProfile(doc, p); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to write profile %q", p.Name)
		}
	}

	marker := doc.get(MarkerKey)
	if inFlight != marker.Bool() && (inFlight || marker.Exists()) {
		if err := doc.set(MarkerKey, inFlight); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to write transaction marker")
		}
	}

	return doc.text, nil
}

func (c *Configuration) writeProfile(doc *document, p *Profile) error {
	base := fmt.Sprintf("%s.%d.", c.listPath, p.Index)
	o := p.original

	if p.Name != o.name {
		if err := doc.set(base+"name", p.Name); err != nil {
			return err
		}
	}
	if p.Icon != o.icon {
		if err := doc.set(base+"icon", p.Icon); err != nil {
			return err
		}
	}
	if p.StartingDirectory != o.startingDirectory {
		if err := doc.set(base+"startingDirectory", p.StartingDirectory); err != nil {
			return err
		}
	}
	if p.Hidden != o.hidden {
		if err := doc.set(base+"hidden", p.Hidden); err != nil {
			return err
		}
	}
	return nil
}
