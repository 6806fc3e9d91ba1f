package curves

import (
	"github.com/simplefan/fancontrol/internal/configuration"
)

// Result is the outcome of a single ComputeNext evaluation
type Result struct {
	// Speed is the speed the fan should be set to
	Speed int
	// Changed indicates whether Speed has to be written to the fan
	Changed bool
	// LastTemperature has to be passed as lastTemp into the next evaluation
	LastTemperature float64
}

// ComputeNext maps a temperature reading to a fan speed.
//
// Temperatures below MinTemp turn the fan off. At and above MinTemp the speed
// starts at MinSpeed and increases by SpeedStep for every full TempStep,
// capped at MaxSpeed.
//
// A reading that is exactly equal to lastTemp is not evaluated at all, the
// current speed is kept and Changed is false. This also holds if currentSpeed
// does not match the speed that lastTemp would produce.
func ComputeNext(currentTemp float64, lastTemp float64, currentSpeed int, config configuration.Configuration) Result {
	if currentTemp == lastTemp {
		return Result{
			Speed:           currentSpeed,
			Changed:         false,
			LastTemperature: currentTemp,
		}
	}

	return Result{
		Speed:           SpeedForTemperature(currentTemp, config),
		Changed:         true,
		LastTemperature: currentTemp,
	}
}

// SpeedForTemperature returns the speed of the step curve at the given temperature
func SpeedForTemperature(temp float64, config configuration.Configuration) int {
	minTemp := float64(config.MinTemp)
	if temp < minTemp {
		return 0
	}

	// conversion truncates toward zero
	step := int((temp - minTemp) / float64(config.TempStep))
	speed := config.MinSpeed + step*config.SpeedStep
	if speed > config.MaxSpeed {
		speed = config.MaxSpeed
	}
	return speed
}

// Step is a single bracket of the step curve
type Step struct {
	// Temperature is the lowest temperature of this bracket
	Temperature int
	Speed       int
}

// Steps lists all brackets of the step curve, starting with the "off" bracket
// below MinTemp and ending with the first bracket that reaches MaxSpeed.
func Steps(config configuration.Configuration) []Step {
	steps := []Step{{Temperature: 0, Speed: 0}}
	for temp := config.MinTemp; ; temp += config.TempStep {
		speed := SpeedForTemperature(float64(temp), config)
		steps = append(steps, Step{Temperature: temp, Speed: speed})
		if speed >= config.MaxSpeed || config.TempStep <= 0 || config.SpeedStep <= 0 {
			break
		}
	}
	return steps
}
