package sensors

import (
	"fmt"

	"github.com/simplefan/fancontrol/internal/ui"
	"github.com/simplefan/fancontrol/internal/util"
)

// readLength is the number of bytes read from the sensor file on every measurement
const readLength = 6

// FileSensor reads a millidegree value from a sysfs-style file, e.g. /sys/class/thermal/thermal_zone0/temp.
// The file is opened and closed again for every reading.
type FileSensor struct {
	Path string `json:"path"`
	// Strict turns content without leading digits into ErrUnparsableReading.
	// Otherwise such content is read as 0°C.
	Strict bool `json:"strict"`
}

func (sensor FileSensor) GetId() string {
	return sensor.Path
}

func (sensor FileSensor) GetValue() (float64, error) {
	data, err := util.ReadBytesFromFile(sensor.Path, readLength)
	if err != nil {
		return 0, err
	}

	milliDegrees, ok := ParseLeadingInt(data)
	if !ok {
		if sensor.Strict {
			return 0, fmt.Errorf("%s: %w: %q", sensor.Path, ErrUnparsableReading, data)
		}
		ui.Warning("Unable to parse temperature from %s: %q, assuming 0°C", sensor.Path, data)
	}

	return float64(milliDegrees) / 1000.0, nil
}
