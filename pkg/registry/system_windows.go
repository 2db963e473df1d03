//go:build windows

package registry

import (
	stderrors "errors"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"golang.org/x/sys/windows/registry"
)

type windowsStore struct {
	root registry.Key
}

// NewSystemStore opens HKEY_CURRENT_USER
func NewSystemStore() (Store, error) {
	return &windowsStore{root: registry.CURRENT_USER}, nil
}

func (s *windowsStore) SubKeys(path string) ([]string, error) {
	k, err := registry.OpenKey(s.root, path, registry.ENUMERATE_SUB_KEYS)
	if stderrors.Is(err, registry.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistry, "failed to open %s", path)
	}
	defer func() { _ = k.Close() }()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistry, "failed to list %s", path)
	}
	return names, nil
}

func (s *windowsStore) Exists(path string) (bool, error) {
	k, err := registry.OpenKey(s.root, path, registry.QUERY_VALUE)
	if stderrors.Is(err, registry.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrRegistry, "failed to open %s", path)
	}
	_ = k.Close()
	return true, nil
}

func (s *windowsStore) CreateKey(path string) error {
	k, _, err := registry.CreateKey(s.root, path, registry.ALL_ACCESS)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRegistry, "failed to create %s", path)
	}
	return k.Close()
}

func (s *windowsStore) SetString(path, name, value string) error {
	k, err := registry.OpenKey(s.root, path, registry.SET_VALUE)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRegistry, "failed to open %s", path)
	}
	defer func() { _ = k.Close() }()

	if err := k.SetStringValue(name, value); err != nil {
		return errors.Wrapf(err, errors.ErrRegistry, "failed to set %s on %s", name, path)
	}
	return nil
}

func (s *windowsStore) GetString(path, name string) (string, bool, error) {
	k, err := registry.OpenKey(s.root, path, registry.QUERY_VALUE)
	if stderrors.Is(err, registry.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrRegistry, "failed to open %s", path)
	}
	defer func() { _ = k.Close() }()

	v, _, err := k.GetStringValue(name)
	if stderrors.Is(err, registry.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrRegistry, "failed to read %s on %s", name, path)
	}
	return v, true, nil
}

// DeleteTree removes children first; RegDeleteKey refuses keys that still
// have subkeys
func (s *windowsStore) DeleteTree(path string) error {
	children, err := s.SubKeys(path)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := s.DeleteTree(Join(path, child)); err != nil {
			return err
		}
	}

	err = registry.DeleteKey(s.root, path)
	if err != nil && !stderrors.Is(err, registry.ErrNotExist) {
		return errors.Wrapf(err, errors.ErrRegistry, "failed to delete %s", path)
	}
	return nil
}
