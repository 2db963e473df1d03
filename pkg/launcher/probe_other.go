//go:build !windows

package launcher

// NewProbe returns the platform readiness probe
func NewProbe() Probe {
	return processProbe{}
}
