package launcher

import (
	"os/exec"
)

// Process is a started terminal process
type Process interface {
	Pid() int
}

// Spawner starts a detached process
type Spawner interface {
	Spawn(name string, args []string, dir string) (Process, error)
}

// ExecSpawner starts processes with os/exec
type ExecSpawner struct{}

type execProcess struct {
	pid int
}

func (p execProcess) Pid() int { return p.pid }

// Spawn starts name and releases it; the terminal outlives this process
func (ExecSpawner) Spawn(name string, args []string, dir string) (Process, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return nil, err
	}
	return execProcess{pid: pid}, nil
}
