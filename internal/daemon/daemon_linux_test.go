//go:build linux

package daemon

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	cmd      *exec.Cmd
	exitCode int
	exited   bool
	mask     int
	masked   bool
}

func createDaemonizer(r *recorder, startErr error) *ProcessDaemonizer {
	return &ProcessDaemonizer{
		executable: func() (string, error) {
			return "/usr/bin/fancontrol", nil
		},
		start: func(cmd *exec.Cmd) error {
			r.cmd = cmd
			return startErr
		},
		exit: func(code int) {
			r.exitCode = code
			r.exited = true
		},
		umask: func(mask int) int {
			r.mask = mask
			r.masked = true
			return 0o022
		},
	}
}

func TestDetachStartsBackgroundProcess(t *testing.T) {
	// GIVEN
	t.Setenv(DetachedEnv, "")
	r := &recorder{exitCode: -1}
	d := createDaemonizer(r, nil)

	// WHEN
	err := d.Detach()

	// THEN
	assert.NoError(t, err)
	assert.True(t, r.exited)
	assert.Equal(t, 0, r.exitCode)
	assert.False(t, r.masked)

	assert.Equal(t, "/usr/bin/fancontrol", r.cmd.Path)
	assert.Equal(t, append([]string{"/usr/bin/fancontrol"}, os.Args[1:]...), r.cmd.Args)
	assert.Contains(t, r.cmd.Env, DetachedEnv+"=1")
	assert.True(t, r.cmd.SysProcAttr.Setsid)
	assert.Nil(t, r.cmd.Stdin)
	assert.Nil(t, r.cmd.Stdout)
	assert.Nil(t, r.cmd.Stderr)
}

func TestDetachStartError(t *testing.T) {
	// GIVEN
	t.Setenv(DetachedEnv, "")
	cause := errors.New("exec format error")
	r := &recorder{}
	d := createDaemonizer(r, cause)

	// WHEN
	err := d.Detach()

	// THEN
	assert.ErrorIs(t, err, cause)
	assert.False(t, r.exited)
}

func TestDetachExecutableError(t *testing.T) {
	// GIVEN
	t.Setenv(DetachedEnv, "")
	r := &recorder{}
	d := createDaemonizer(r, nil)
	d.executable = func() (string, error) {
		return "", os.ErrNotExist
	}

	// WHEN
	err := d.Detach()

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, r.cmd)
	assert.False(t, r.exited)
}

func TestDetachInBackgroundProcess(t *testing.T) {
	// GIVEN
	t.Setenv(DetachedEnv, "1")
	r := &recorder{mask: -1}
	d := createDaemonizer(r, nil)

	// WHEN
	err := d.Detach()

	// THEN
	assert.NoError(t, err)
	assert.True(t, IsDetached())
	assert.Nil(t, r.cmd)
	assert.False(t, r.exited)
	assert.True(t, r.masked)
	assert.Equal(t, 0, r.mask)
}
