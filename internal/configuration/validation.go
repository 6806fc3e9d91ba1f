package configuration

import (
	"errors"
	"fmt"

	"github.com/simplefan/fancontrol/internal/ui"
	"github.com/simplefan/fancontrol/internal/util"
)

// Sanitize returns a copy of the given configuration with every out-of-range
// numeric value replaced by its default. It never fails, each adjustment is logged.
func Sanitize(config Configuration) Configuration {
	if !util.InRange(config.Interval, MinInterval, MaxInterval) {
		warnReset("interval", config.Interval, DefaultInterval)
		config.Interval = DefaultInterval
	}

	if config.MinTemp <= 0 {
		warnReset("minTemp", config.MinTemp, DefaultMinTemp)
		config.MinTemp = DefaultMinTemp
	}

	if config.MinSpeed >= config.MaxSpeed {
		ui.Warning("minSpeed (%d) must be lower than maxSpeed (%d), widening the range by %d",
			config.MinSpeed, config.MaxSpeed, speedRangeWidening)
		config.MinSpeed -= speedRangeWidening
		config.MaxSpeed += speedRangeWidening
	}

	if !util.InRange(config.MinSpeed, 1, MaxSpeed) {
		warnReset("minSpeed", config.MinSpeed, DefaultMinSpeed)
		config.MinSpeed = DefaultMinSpeed
	}

	if !util.InRange(config.MaxSpeed, 1, MaxSpeed) {
		warnReset("maxSpeed", config.MaxSpeed, DefaultMaxSpeed)
		config.MaxSpeed = DefaultMaxSpeed
	}

	// widening followed by a range reset can still leave the range inverted
	if config.MinSpeed >= config.MaxSpeed {
		ui.Warning("minSpeed (%d) is still not lower than maxSpeed (%d), using defaults %d and %d",
			config.MinSpeed, config.MaxSpeed, DefaultMinSpeed, DefaultMaxSpeed)
		config.MinSpeed = DefaultMinSpeed
		config.MaxSpeed = DefaultMaxSpeed
	}

	if !util.InRange(config.TempStep, 1, MaxTempStep) {
		warnReset("tempStep", config.TempStep, DefaultTempStep)
		config.TempStep = DefaultTempStep
	}

	if !util.InRange(config.SpeedStep, 1, MaxSpeedStep) {
		warnReset("speedStep", config.SpeedStep, DefaultSpeedStep)
		config.SpeedStep = DefaultSpeedStep
	}

	if config.StatisticsWindowSize <= 0 {
		warnReset("statisticsWindowSize", config.StatisticsWindowSize, DefaultStatisticsWindowSize)
		config.StatisticsWindowSize = DefaultStatisticsWindowSize
	}

	if config.Statistics.Port <= 0 || config.Statistics.Port > 65535 {
		warnReset("statistics.port", config.Statistics.Port, DefaultStatisticsPort)
		config.Statistics.Port = DefaultStatisticsPort
	}

	return config
}

func warnReset(key string, value int, defaultValue int) {
	ui.Warning("Value %d of '%s' is out of range, using default: %d", value, key, defaultValue)
}

// Validate checks the settings which cannot be healed by falling back to a default.
func Validate(config Configuration) error {
	if len(config.CpuTempPath) <= 0 {
		return errors.New("missing temperature sensor path, use --cpu-temp-path")
	}
	if len(config.FanPath) <= 0 {
		return errors.New("missing fan path, use --fan-path")
	}

	if config.Mqtt.Enabled {
		if len(config.Mqtt.Broker) <= 0 {
			return errors.New("mqtt: missing broker address")
		}
		if len(config.Mqtt.Topic) <= 0 {
			return errors.New("mqtt: missing topic")
		}
	}

	if config.MinSpeed >= config.MaxSpeed {
		return fmt.Errorf("minSpeed (%d) must be lower than maxSpeed (%d)", config.MinSpeed, config.MaxSpeed)
	}

	return nil
}
