//go:build !windows

package registry

import (
	"runtime"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
)

// NewSystemStore is only available on Windows
func NewSystemStore() (Store, error) {
	return nil, errors.Newf(errors.ErrUnsupported, "shell shortcuts need the Windows registry, not available on %s", runtime.GOOS)
}
