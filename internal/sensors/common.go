package sensors

import (
	"errors"

	"github.com/simplefan/fancontrol/internal/configuration"
)

// ErrUnparsableReading is returned by a strict sensor when its content does not start with a number
var ErrUnparsableReading = errors.New("sensor content is not a number")

type Sensor interface {
	GetId() string

	// GetValue returns the current temperature of this sensor in °C
	GetValue() (float64, error)
}

// NewSensor creates the temperature source described by the given configuration
func NewSensor(config configuration.Configuration) (Sensor, error) {
	if len(config.CpuTempPath) <= 0 {
		return nil, errors.New("no temperature sensor path configured")
	}

	return &FileSensor{
		Path:   config.CpuTempPath,
		Strict: config.StrictSensorParsing,
	}, nil
}
