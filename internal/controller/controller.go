package controller

import (
	"context"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/simplefan/fancontrol/internal/configuration"
	"github.com/simplefan/fancontrol/internal/curves"
	"github.com/simplefan/fancontrol/internal/fans"
	"github.com/simplefan/fancontrol/internal/sensors"
	"github.com/simplefan/fancontrol/internal/ui"
	"github.com/simplefan/fancontrol/internal/util"
)

// SpeedListener is notified after a new speed has been written to the fan
type SpeedListener interface {
	OnSpeedChanged(temperature float64, speed int)
}

type FanController interface {
	// Run executes the control loop until ctx is cancelled or an I/O error occurs
	Run(ctx context.Context) error
	// UpdateFanSpeed executes a single iteration of the control loop
	UpdateFanSpeed() error

	GetFanId() string
	GetStatistics() FanControllerStatistics
}

// State is owned by the control loop and lives as long as the controller
type State struct {
	CurrentSpeed    int
	LastTemperature float64
}

type FanControllerStatistics struct {
	State
	// Iterations counts all executed control loop iterations
	Iterations int
	// SpeedUpdates counts the iterations that wrote a new speed
	SpeedUpdates int
	// TemperatureAvg is the average of the most recent readings
	TemperatureAvg float64
	// TemperatureMax is the highest of the most recent readings
	TemperatureMax float64
}

type DefaultFanController struct {
	config     configuration.Configuration
	sensor     sensors.Sensor
	fan        fans.Fan
	updateRate time.Duration
	listeners  []SpeedListener

	// guards state and statistics, which are read by metric collectors
	mu           sync.Mutex
	state        State
	iterations   int
	speedUpdates int
	window       *rolling.PointPolicy
	windowSize   int
}

func NewFanController(
	config configuration.Configuration,
	sensor sensors.Sensor,
	fan fans.Fan,
	updateRate time.Duration,
	listeners ...SpeedListener,
) *DefaultFanController {
	windowSize := config.StatisticsWindowSize
	if windowSize <= 0 {
		windowSize = configuration.DefaultStatisticsWindowSize
	}

	return &DefaultFanController{
		config:     config,
		sensor:     sensor,
		fan:        fan,
		updateRate: updateRate,
		listeners:  listeners,
		window:     util.CreateRollingWindow(windowSize),
		windowSize: windowSize,
	}
}

func (f *DefaultFanController) GetFanId() string {
	return f.fan.GetId()
}

func (f *DefaultFanController) Run(ctx context.Context) error {
	ui.Info("Starting controller loop for fan '%s' (interval: %s)", f.fan.GetId(), f.updateRate)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := f.UpdateFanSpeed(); err != nil {
			return err
		}

		// each sleep starts after the work of the previous iteration
		timer := time.NewTimer(f.updateRate)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

func (f *DefaultFanController) UpdateFanSpeed() error {
	temp, err := f.sensor.GetValue()
	if err != nil {
		return &SensorReadError{SensorId: f.sensor.GetId(), Err: err}
	}
	ui.Debug("Current temperature of %s: %.3f°C", f.sensor.GetId(), temp)

	f.mu.Lock()
	result := curves.ComputeNext(temp, f.state.LastTemperature, f.state.CurrentSpeed, f.config)
	f.state.LastTemperature = result.LastTemperature
	f.recordReading(temp)
	if result.Changed {
		f.state.CurrentSpeed = result.Speed
		f.speedUpdates++
	}
	f.mu.Unlock()

	if !result.Changed {
		return nil
	}

	err = f.fan.SetPwm(result.Speed)
	if err != nil {
		return &FanWriteError{FanId: f.fan.GetId(), Speed: result.Speed, Err: err}
	}
	ui.Debug("Set speed of %s to %d", f.fan.GetId(), result.Speed)

	for _, listener := range f.listeners {
		listener.OnSpeedChanged(temp, result.Speed)
	}
	return nil
}

// recordReading must be called with mu held
func (f *DefaultFanController) recordReading(temp float64) {
	if f.iterations == 0 {
		// avoid averaging against empty slots
		util.FillWindow(f.window, f.windowSize, temp)
	} else {
		f.window.Append(temp)
	}
	f.iterations++
}

func (f *DefaultFanController) GetState() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *DefaultFanController) GetStatistics() FanControllerStatistics {
	f.mu.Lock()
	defer f.mu.Unlock()

	stats := FanControllerStatistics{
		State:        f.state,
		Iterations:   f.iterations,
		SpeedUpdates: f.speedUpdates,
	}
	if f.iterations > 0 {
		stats.TemperatureAvg = util.GetWindowAvg(f.window)
		stats.TemperatureMax = util.GetWindowMax(f.window)
	}
	return stats
}
