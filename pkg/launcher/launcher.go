package launcher

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/filesystem"
	"github.com/arthur-debert/wtlaunch/pkg/logging"
	"github.com/arthur-debert/wtlaunch/pkg/types"
	"github.com/arthur-debert/wtlaunch/pkg/wait"
)

// DefaultExecutable is the terminal's command line entry point
const DefaultExecutable = "wt.exe"

// Request describes one launch
type Request struct {
	Directory    string
	HasDirectory bool

	// ProfileID is passed with -p when set
	ProfileID string
}

// Result describes a launch. Err is set when the terminal could not be
// started; a terminal that started but never reported ready is not an error.
type Result struct {
	Directory string
	Args      []string
	Pid       int
	Ready     bool
	Err       error
}

// Options configures a Launcher
type Options struct {
	FS         types.FS
	Executable string
	Spawner    Spawner
	Probe      Probe
	Waiter     *wait.Waiter

	// Getwd defaults to os.Getwd
	Getwd func() (string, error)
}

// Launcher starts the terminal
type Launcher struct {
	opts Options
}

// New creates a Launcher, filling in platform defaults for unset options
func New(opts Options) *Launcher {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Executable == "" {
		opts.Executable = DefaultExecutable
	}
	if opts.Spawner == nil {
		opts.Spawner = ExecSpawner{}
	}
	if opts.Probe == nil {
		opts.Probe = NewProbe()
	}
	if opts.Waiter == nil {
		opts.Waiter = wait.New(100*time.Millisecond, 5*time.Second)
	}
	if opts.Getwd == nil {
		opts.Getwd = os.Getwd
	}
	return &Launcher{opts: opts}
}

// Launch starts the terminal and waits, bounded, for it to become ready
func (l *Launcher) Launch(ctx context.Context, req Request) Result {
	log := logging.GetLogger("launcher")
	var res Result

	dir, err := l.ResolveDirectory(req)
	if err != nil {
		res.Err = err
		return res
	}
	res.Directory = dir
	res.Args = Args(dir, req.ProfileID)

	probe := l.opts.Probe
	if err := probe.Prepare(); err != nil {
		log.Warn().Err(err).Msg("Readiness probe unavailable, waiting for the process only")
		probe = processProbe{}
	}

	log.Info().Str("executable", l.opts.Executable).Strs("args", res.Args).Msg("Starting terminal")
	proc, err := l.opts.Spawner.Spawn(l.opts.Executable, res.Args, dir)
	if err != nil {
		res.Err = errors.Wrapf(err, errors.ErrProcessLaunch, "failed to start %s", l.opts.Executable)
		return res
	}
	res.Pid = proc.Pid()

	err = l.opts.Waiter.Until(ctx, func() (bool, error) {
		return probe.Ready(proc)
	})
	switch {
	case err == nil:
		res.Ready = true
		log.Debug().Int("pid", res.Pid).Msg("Terminal is ready")
	case stderrors.Is(err, wait.ErrTimeout):
		log.Warn().Dur("timeout", l.opts.Waiter.Timeout).Msg("Terminal did not report ready in time")
	default:
		log.Warn().Err(err).Msg("Stopped waiting for the terminal")
	}
	return res
}

// ResolveDirectory turns the requested directory into an existing directory.
// Explorer passes drive roots as `C:\"`, so a trailing quote is dropped; a
// file resolves to the directory that contains it.
func (l *Launcher) ResolveDirectory(req Request) (string, error) {
	if !req.HasDirectory {
		wd, err := l.opts.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "failed to read the working directory")
		}
		return wd, nil
	}

	dir := strings.TrimSuffix(strings.TrimSpace(req.Directory), `"`)
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", errors.New(errors.ErrInvalidInput, "directory cannot be empty")
	}

	info, err := l.opts.FS.Stat(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "directory %s does not exist", dir).
			WithDetail("directory", dir)
	}
	if !info.IsDir() {
		return filepath.Dir(dir), nil
	}
	return dir, nil
}

// Args builds the terminal command line
func Args(dir, profile string) []string {
	args := []string{"-d", dir}
	if profile != "" {
		args = append(args, "-p", profile)
	}
	return args
}
