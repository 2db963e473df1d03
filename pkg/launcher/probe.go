package launcher

// Probe detects when a launched terminal is ready for input
type Probe interface {
	// Prepare snapshots the state before the spawn
	Prepare() error

	// Ready reports whether the terminal started after Prepare is up
	Ready(proc Process) (bool, error)
}

// processProbe considers the terminal ready once its process exists
type processProbe struct{}

func (processProbe) Prepare() error { return nil }

func (processProbe) Ready(proc Process) (bool, error) {
	return proc != nil && proc.Pid() > 0, nil
}

// terminalWindow is one terminal top-level window
type terminalWindow struct {
	title   string
	visible bool
}

// windowSnapshot is the terminal windows at one moment, keyed by handle,
// with the foreground window
type windowSnapshot struct {
	windows    map[uintptr]terminalWindow
	foreground uintptr
}

// opened reports whether now shows the launch relative to s: a new visible
// window, or a new tab in an existing one, which retitles that window and
// brings it to the foreground.
func (s windowSnapshot) opened(now windowSnapshot) bool {
	for h, w := range now.windows {
		if !w.visible {
			continue
		}
		old, existed := s.windows[h]
		switch {
		case !existed:
			return true
		case w.title != old.title:
			return true
		case h == now.foreground && h != s.foreground:
			return true
		}
	}
	return false
}
