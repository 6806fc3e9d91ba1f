package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/simplefan/fancontrol/internal/api"
	"github.com/simplefan/fancontrol/internal/configuration"
	"github.com/simplefan/fancontrol/internal/controller"
	"github.com/simplefan/fancontrol/internal/daemon"
	"github.com/simplefan/fancontrol/internal/fans"
	"github.com/simplefan/fancontrol/internal/mqtt"
	"github.com/simplefan/fancontrol/internal/sensors"
	"github.com/simplefan/fancontrol/internal/statistics"
	"github.com/simplefan/fancontrol/internal/ui"
)

const shutdownTimeout = 5 * time.Second

// RunDaemon runs the control loop until a signal is received or an I/O error occurs.
// Unless config.NoDaemon is set, the process is moved into the background first.
func RunDaemon(config configuration.Configuration, daemonizer daemon.Daemonizer) (err error) {
	printConfigSummary(config)

	if !config.NoDaemon {
		logFile, openErr := openLogFile(config.LogFile)
		if openErr != nil {
			return openErr
		}
		if logFile != nil {
			defer logFile.Close()
		}

		ui.Info("Detaching from terminal, logging to %s", config.LogFile)
		if err := daemonizer.Detach(); err != nil {
			return err
		}

		// only the background process gets here
		ui.DisableStyling()
		if logFile != nil {
			ui.SetOutput(logFile)
			// runs before the log file is closed, stdio is gone at this point
			defer func() {
				if err != nil {
					ui.Error("%v", err)
				}
				ui.SetOutput(os.Stdout)
			}()
		}
	}

	sensor, err := sensors.NewSensor(config)
	if err != nil {
		return err
	}
	fan, err := fans.NewFan(config)
	if err != nil {
		return err
	}

	var listeners []controller.SpeedListener
	var publisher *mqtt.Publisher
	if config.Mqtt.Enabled {
		publisher = mqtt.NewPublisher(config.Mqtt, fan.GetId())
		listeners = append(listeners, publisher)
	}

	fanController := controller.NewFanController(config, sensor, fan, config.IntervalDuration(), listeners...)

	registry := prometheus.NewRegistry()
	if err := statistics.Register(registry, statistics.NewControllerCollector(fanController)); err != nil {
		return err
	}

	return runGroup(config, fanController, registry, publisher)
}

func runGroup(
	config configuration.Configuration,
	fanController controller.FanController,
	registry *prometheus.Registry,
	publisher *mqtt.Publisher,
) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	if config.Statistics.Enabled {
		// === Statistics endpoint
		rest := api.CreateRestService(registry, fanController)
		addr := fmt.Sprintf(":%d", config.Statistics.Port)

		g.Add(func() error {
			ui.Info("Starting statistics endpoint on %s", addr)
			err := rest.Start(addr)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				ui.Error("Cannot start statistics endpoint (%v)", err)
				<-ctx.Done()
			}
			return nil
		}, func(err error) {
			cancel()
			timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer timeoutCancel()
			if err := rest.Shutdown(timeoutCtx); err != nil {
				ui.Warning("Error stopping statistics endpoint: %v", err)
			} else {
				ui.Info("Statistics endpoint stopped.")
			}
		})
	}
	if publisher != nil {
		// === MQTT state publishing
		g.Add(func() error {
			err := publisher.Connect(ctx)
			if err != nil && ctx.Err() == nil {
				ui.Warning("%v", err)
			}
			<-ctx.Done()
			return nil
		}, func(err error) {
			cancel()
			publisher.Close()
		})
	}
	{
		// === fan controller
		g.Add(func() error {
			err := fanController.Run(ctx)
			ui.Info("Fan controller for fan %s stopped.", fanController.GetFanId())
			return err
		}, func(err error) {
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case s := <-sig:
				ui.Info("Received %s signal, exiting...", s)
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	return g.Run()
}

// openLogFile returns nil if no log file is configured
func openLogFile(path string) (*os.File, error) {
	if len(path) <= 0 {
		return nil, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}
	return file, nil
}

func printConfigSummary(config configuration.Configuration) {
	ui.Info("Temperature sensor: %s", config.CpuTempPath)
	ui.Info("Fan: %s", config.FanPath)
	ui.Info("Interval: %ds", config.Interval)
	ui.Info("Min temperature: %d°C, temperature step: %d°C", config.MinTemp, config.TempStep)
	ui.Info("Speed range: %d-%d, speed step: %d", config.MinSpeed, config.MaxSpeed, config.SpeedStep)
	if config.Statistics.Enabled {
		ui.Info("Statistics endpoint port: %d", config.Statistics.Port)
	}
	if config.Mqtt.Enabled {
		ui.Info("MQTT broker: %s, topic: %s", config.Mqtt.Broker, config.Mqtt.Topic)
	}
}
