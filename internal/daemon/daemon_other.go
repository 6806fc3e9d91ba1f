//go:build !linux

package daemon

import "errors"

type ProcessDaemonizer struct{}

func NewDaemonizer() *ProcessDaemonizer {
	return &ProcessDaemonizer{}
}

func (d *ProcessDaemonizer) Detach() error {
	if IsDetached() {
		return nil
	}
	return errors.New("running in the background is not supported on this platform, use --no-daemon")
}
