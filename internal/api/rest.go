package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/simplefan/fancontrol/internal/controller"
)

const (
	indentationChar = "  "

	EndpointPathAlive      = "/alive/"
	EndpointPathMetrics    = "/metrics/"
	EndpointPathController = "/controller/"
)

type (
	ControllerState struct {
		Id             string  `json:"id"`
		Speed          int     `json:"speed"`
		Temperature    float64 `json:"temperature"`
		TemperatureAvg float64 `json:"temperatureAvg"`
		TemperatureMax float64 `json:"temperatureMax"`
		Iterations     int     `json:"iterations"`
		SpeedUpdates   int     `json:"speedUpdates"`
	}
)

// CreateRestService exposes liveness, controller state and the metrics of registry
func CreateRestService(registry *prometheus.Registry, controllers ...controller.FanController) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true
	echoRest.HidePort = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())
	echoRest.Use(middleware.Recover())
	echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "fancontrol",
		Subsystem:  "http",
		Registerer: registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == EndpointPathMetrics
		},
	}))

	echoRest.GET(EndpointPathAlive, isAlive)
	echoRest.GET(EndpointPathMetrics, echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: registry,
	}))
	registerControllerEndpoints(echoRest, controllers)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
