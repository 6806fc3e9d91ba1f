package statistics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "fancontrol"
)

func Register(registry prometheus.Registerer, collector prometheus.Collector) error {
	return registry.Register(collector)
}
