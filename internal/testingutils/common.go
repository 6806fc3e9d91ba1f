package testingutils

import (
	"context"

	"github.com/simplefan/fancontrol/internal/controller"
)

// MockController returns fixed statistics and never touches any hardware
type MockController struct {
	ID    string
	Stats controller.FanControllerStatistics
}

func (c MockController) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (c MockController) UpdateFanSpeed() error {
	return nil
}

func (c MockController) GetFanId() string {
	return c.ID
}

func (c MockController) GetStatistics() controller.FanControllerStatistics {
	return c.Stats
}

func CreateController(id string, speed int, temperature float64) MockController {
	return MockController{
		ID: id,
		Stats: controller.FanControllerStatistics{
			State: controller.State{
				CurrentSpeed:    speed,
				LastTemperature: temperature,
			},
		},
	}
}
