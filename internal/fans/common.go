package fans

import (
	"errors"

	"github.com/simplefan/fancontrol/internal/configuration"
)

const (
	MaxPwmValue = 255
	MinPwmValue = 0
)

type Fan interface {
	GetId() string

	// GetPwm returns the value currently held by the fan output
	GetPwm() (int, error)
	// SetPwm overwrites the fan output with the given value
	SetPwm(pwm int) (err error)
}

// NewFan creates the speed sink described by the given configuration
func NewFan(config configuration.Configuration) (Fan, error) {
	if len(config.FanPath) <= 0 {
		return nil, errors.New("no fan path configured")
	}

	return &FileFan{
		Path:   config.FanPath,
		Atomic: config.AtomicWrite,
	}, nil
}
