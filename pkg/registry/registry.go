package registry

import (
	"strings"
)

// Separator joins key path components
const Separator = `\`

// Store is a registry-like key/value tree
type Store interface {
	// SubKeys lists the direct children of path; a missing path has none
	SubKeys(path string) ([]string, error)

	// Exists reports whether the key exists
	Exists(path string) (bool, error)

	// CreateKey creates the key and any missing parents
	CreateKey(path string) error

	// SetString sets a string value on an existing key; "" is the default value
	SetString(path, name, value string) error

	// GetString reads a string value
	GetString(path, name string) (string, bool, error)

	// DeleteTree removes the key and everything below it
	DeleteTree(path string) error
}

// Join builds a key path
func Join(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p = strings.Trim(p, Separator); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, Separator)
}

func split(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, Separator) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
