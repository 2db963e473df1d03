//go:build windows

package launcher

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// WindowClass is the class name of terminal top-level windows
const WindowClass = "CASCADIA_HOSTING_WINDOW_CLASS"

// windowProbe waits for the terminal to show the launch: a visible window
// that was not there before the spawn, or an existing window that took the
// new tab. wt.exe hands off to an already running terminal or to a new
// WindowsTerminal.exe, so the spawned pid is not the window owner.
type windowProbe struct {
	before *windowSnapshot
}

// NewProbe returns the platform readiness probe
func NewProbe() Probe {
	return &windowProbe{}
}

func (p *windowProbe) Prepare() error {
	p.before = nil
	snap, err := snapshotWindows()
	if err != nil {
		return err
	}
	p.before = &snap
	return nil
}

func (p *windowProbe) Ready(proc Process) (bool, error) {
	if p.before == nil {
		return processProbe{}.Ready(proc)
	}
	now, err := snapshotWindows()
	if err != nil {
		return false, err
	}
	return p.before.opened(now), nil
}

func snapshotWindows() (windowSnapshot, error) {
	handles, err := terminalWindows()
	if err != nil {
		return windowSnapshot{}, err
	}
	snap := windowSnapshot{
		windows:    make(map[uintptr]terminalWindow, len(handles)),
		foreground: uintptr(windows.GetForegroundWindow()),
	}
	for _, h := range handles {
		snap.windows[uintptr(h)] = terminalWindow{
			title:   windowTitle(h),
			visible: windows.IsWindowVisible(h),
		}
	}
	return snap, nil
}

var (
	enumMu       sync.Mutex
	enumFound    []windows.HWND
	enumCallback = windows.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
		if windowClass(hwnd) == WindowClass {
			enumFound = append(enumFound, hwnd)
		}
		return 1
	})
)

func terminalWindows() ([]windows.HWND, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumFound = nil
	if err := windows.EnumWindows(enumCallback, unsafe.Pointer(nil)); err != nil {
		return nil, err
	}
	found := enumFound
	enumFound = nil
	return found, nil
}

func windowClass(hwnd windows.HWND) string {
	buf := make([]uint16, 256)
	n, err := windows.GetClassName(hwnd, &buf[0], int32(len(buf)))
	if err != nil || n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func windowTitle(hwnd windows.HWND) string {
	buf := make([]uint16, 512)
	n, err := windows.GetWindowText(hwnd, &buf[0], int32(len(buf)))
	if err != nil || n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}
