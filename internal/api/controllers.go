package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/simplefan/fancontrol/internal/controller"
)

func registerControllerEndpoints(rest *echo.Echo, controllers []controller.FanController) {
	rest.GET(EndpointPathController, func(c echo.Context) error {
		result := make([]ControllerState, 0, len(controllers))
		for _, contr := range controllers {
			result = append(result, toControllerState(contr))
		}
		return c.JSONPretty(http.StatusOK, result, indentationChar)
	})
}

func toControllerState(contr controller.FanController) ControllerState {
	stats := contr.GetStatistics()
	return ControllerState{
		Id:             contr.GetFanId(),
		Speed:          stats.CurrentSpeed,
		Temperature:    stats.LastTemperature,
		TemperatureAvg: stats.TemperatureAvg,
		TemperatureMax: stats.TemperatureMax,
		Iterations:     stats.Iterations,
		SpeedUpdates:   stats.SpeedUpdates,
	}
}
