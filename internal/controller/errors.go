package controller

import "fmt"

// SensorReadError is returned when the temperature could not be read. It ends the control loop.
type SensorReadError struct {
	SensorId string
	Err      error
}

func (e *SensorReadError) Error() string {
	return fmt.Sprintf("unable to read temperature from %s: %v", e.SensorId, e.Err)
}

func (e *SensorReadError) Unwrap() error {
	return e.Err
}

// FanWriteError is returned when a speed could not be written. It ends the control loop.
type FanWriteError struct {
	FanId string
	Speed int
	Err   error
}

func (e *FanWriteError) Error() string {
	return fmt.Sprintf("unable to set speed %d on %s: %v", e.Speed, e.FanId, e.Err)
}

func (e *FanWriteError) Unwrap() error {
	return e.Err
}
