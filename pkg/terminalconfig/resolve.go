package terminalconfig

import (
	"strings"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/google/uuid"
)

// FindProfile returns the first profile whose id or name matches query.
// Matching ignores case, and ids that parse as GUIDs are compared as GUIDs so
// "{61c54bbd-...}" and "61C54BBD-..." select the same profile. No match is not
// an error; callers decide what a missing profile means.
func FindProfile(cfg *Configuration, query string) (*Profile, bool) {
	query = strings.TrimSpace(query)
	if cfg == nil || query == "" {
		return nil, false
	}

	queryID, queryIsGUID := parseGUID(query)
	for _, p := range cfg.Profiles {
		if p.ID != "" {
			if strings.EqualFold(p.ID, query) {
				return p, true
			}
			if id, ok := parseGUID(p.ID); ok && queryIsGUID && id == queryID {
				return p, true
			}
		}
		if strings.EqualFold(p.Name, query) {
			return p, true
		}
	}
	return nil, false
}

// VisibleProfiles returns the profiles that are not hidden, in list order
func VisibleProfiles(cfg *Configuration) []*Profile {
	var visible []*Profile
	for _, p := range cfg.Profiles {
		if !p.Hidden {
			visible = append(visible, p)
		}
	}
	return visible
}

// SelectProfiles resolves every query. An empty query list selects all
// visible profiles; otherwise every query must match.
func SelectProfiles(cfg *Configuration, queries []string) ([]*Profile, error) {
	if len(queries) == 0 {
		return VisibleProfiles(cfg), nil
	}

	var selected []*Profile
	seen := make(map[*Profile]bool)
	for _, q := range queries {
		p, ok := FindProfile(cfg, q)
		if !ok {
			return nil, errors.Newf(errors.ErrProfileNotFound, "no profile matches %q", q)
		}
		if !seen[p] {
			seen[p] = true
			selected = append(selected, p)
		}
	}
	return selected, nil
}

// DefaultProfile returns the profile the terminal currently opens by default
func DefaultProfile(cfg *Configuration) (*Profile, bool) {
	return FindProfile(cfg, cfg.Globals.DefaultProfileID)
}

func parseGUID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	return id, err == nil
}
