package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
)

type node struct {
	name     string
	values   map[string]string
	children map[string]*node
}

func newNode(name string) *node {
	return &node{name: name, values: make(map[string]string), children: make(map[string]*node)}
}

// MemoryStore is a thread-safe in-memory Store
type MemoryStore struct {
	mu   sync.RWMutex
	root *node
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{root: newNode("")}
}

func (m *MemoryStore) lookup(path string) *node {
	n := m.root
	for _, part := range split(path) {
		child, ok := n.children[strings.ToLower(part)]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

func (m *MemoryStore) SubKeys(path string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := m.lookup(path)
	if n == nil {
		return nil, nil
	}
	names := make([]string, 0, len(n.children))
	for _, child := range n.children {
		names = append(names, child.name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Exists(path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookup(path) != nil, nil
}

func (m *MemoryStore) CreateKey(path string) error {
	parts := split(path)
	if len(parts) == 0 {
		return errors.New(errors.ErrInvalidInput, "registry key path cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.root
	for _, part := range parts {
		child, ok := n.children[strings.ToLower(part)]
		if !ok {
			child = newNode(part)
			n.children[strings.ToLower(part)] = child
		}
		n = child
	}
	return nil
}

func (m *MemoryStore) SetString(path, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.lookup(path)
	if n == nil {
		return errors.Newf(errors.ErrRegistry, "key %s does not exist", path)
	}
	n.values[name] = value
	return nil
}

func (m *MemoryStore) GetString(path, name string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := m.lookup(path)
	if n == nil {
		return "", false, nil
	}
	v, ok := n.values[name]
	return v, ok, nil
}

func (m *MemoryStore) DeleteTree(path string) error {
	parts := split(path)
	if len(parts) == 0 {
		return errors.New(errors.ErrInvalidInput, "refusing to delete the registry root")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	parent := m.lookup(strings.Join(parts[:len(parts)-1], Separator))
	if parent == nil {
		return nil
	}
	delete(parent.children, strings.ToLower(parts[len(parts)-1]))
	return nil
}
