package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/simplefan/fancontrol/internal/controller"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	controllers []controller.FanController

	speed            *prometheus.Desc
	temperature      *prometheus.Desc
	temperatureAvg   *prometheus.Desc
	temperatureMax   *prometheus.Desc
	iterationCount   *prometheus.Desc
	speedUpdateCount *prometheus.Desc
}

func NewControllerCollector(controllers ...controller.FanController) *ControllerCollector {
	return &ControllerCollector{
		controllers: controllers,
		speed: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "speed"),
			"Last speed value written to the fan",
			[]string{"id"}, nil,
		),
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "temperature"),
			"Last temperature reading in degrees",
			[]string{"id"}, nil,
		),
		temperatureAvg: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "temperature_avg"),
			"Average temperature over the statistics window",
			[]string{"id"}, nil,
		),
		temperatureMax: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "temperature_max"),
			"Maximum temperature over the statistics window",
			[]string{"id"}, nil,
		),
		iterationCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "iteration_count"),
			"Counter for control loop iterations",
			[]string{"id"}, nil,
		),
		speedUpdateCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "speed_update_count"),
			"Counter for speed values written to the fan",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.speed
	ch <- collector.temperature
	ch <- collector.temperatureAvg
	ch <- collector.temperatureMax
	ch <- collector.iterationCount
	ch <- collector.speedUpdateCount
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	for _, contr := range collector.controllers {
		fanId := contr.GetFanId()
		stats := contr.GetStatistics()
		ch <- prometheus.MustNewConstMetric(collector.speed, prometheus.GaugeValue, float64(stats.CurrentSpeed), fanId)
		ch <- prometheus.MustNewConstMetric(collector.temperature, prometheus.GaugeValue, stats.LastTemperature, fanId)
		ch <- prometheus.MustNewConstMetric(collector.temperatureAvg, prometheus.GaugeValue, stats.TemperatureAvg, fanId)
		ch <- prometheus.MustNewConstMetric(collector.temperatureMax, prometheus.GaugeValue, stats.TemperatureMax, fanId)
		ch <- prometheus.MustNewConstMetric(collector.iterationCount, prometheus.CounterValue, float64(stats.Iterations), fanId)
		ch <- prometheus.MustNewConstMetric(collector.speedUpdateCount, prometheus.CounterValue, float64(stats.SpeedUpdates), fanId)
	}
}
