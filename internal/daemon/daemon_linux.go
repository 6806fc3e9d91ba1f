//go:build linux

package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// ProcessDaemonizer starts a copy of the current executable in a new session
// with all standard streams closed and terminates the foreground process.
type ProcessDaemonizer struct {
	executable func() (string, error)
	start      func(cmd *exec.Cmd) error
	exit       func(code int)
	umask      func(mask int) int
}

func NewDaemonizer() *ProcessDaemonizer {
	return &ProcessDaemonizer{
		executable: os.Executable,
		start: func(cmd *exec.Cmd) error {
			return cmd.Start()
		},
		exit:  os.Exit,
		umask: syscall.Umask,
	}
}

func (d *ProcessDaemonizer) Detach() error {
	if IsDetached() {
		d.umask(0)
		return nil
	}

	path, err := d.executable()
	if err != nil {
		return fmt.Errorf("unable to locate executable: %w", err)
	}

	cmd := exec.Command(path, os.Args[1:]...)
	cmd.Env = append(os.Environ(), DetachedEnv+"=1")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := d.start(cmd); err != nil {
		return fmt.Errorf("unable to start background process: %w", err)
	}

	d.exit(0)
	return nil
}
