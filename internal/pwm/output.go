package pwm

import (
	"github.com/markusressel/lednice/internal/configuration"
)

const (
	MaxDutyValue = 255
	MinDutyValue = 0
)

// Output is the PWM peripheral that drives the LEDs, one channel per LED index
type Output interface {
	GetId() string

	// SetDuty sets the compare value of the given channel
	SetDuty(channel int, duty uint8) error
	// GetDuty returns the compare value of the given channel as reported by the peripheral
	GetDuty(channel int) (uint8, error)
}

// NewOutput creates the Output selected by the given configuration,
// an in-memory output is used if no peripheral is configured.
func NewOutput(config configuration.PwmConfig) (Output, error) {
	if config.File != nil {
		return &FileOutput{
			Config: *config.File,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdOutput{
			Config: *config.Cmd,
		}, nil
	}

	return NewMemoryOutput(), nil
}

func coerceDuty(value int) uint8 {
	if value < MinDutyValue {
		return MinDutyValue
	}
	if value > MaxDutyValue {
		return MaxDutyValue
	}
	return uint8(value)
}
