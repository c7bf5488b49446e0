package protocol

import (
	"github.com/markusressel/lednice/internal/device"
)

// MaxDuty is the PWM compare value that turns the LED off
const MaxDuty = 255

// StateStore provides the LED catalog and the brightness registers
type StateStore interface {
	GetDeviceInfo() device.DeviceInfo
	GetLedInfo(index int) (device.LedInfo, bool)
	GetBrightness(index int) (uint8, bool)
	SetBrightness(index int, value uint8) error
}

// Peripheral drives the PWM output of a LED
type Peripheral interface {
	SetDuty(channel int, duty uint8) error
}

// Dispatcher executes vendor control requests against a StateStore.
// It does not lock, see SerializedHandler for concurrent callers.
type Dispatcher struct {
	store      StateStore
	peripheral Peripheral

	// limits written brightness values to the maxBrightness of the LED
	clamp bool
}

type Option func(d *Dispatcher)

// WithClamp enables limiting SET_LED_BRIGHTNESS values to the maxBrightness of the LED
func WithClamp(enabled bool) Option {
	return func(d *Dispatcher) {
		d.clamp = enabled
	}
}

func NewDispatcher(store StateStore, peripheral Peripheral, options ...Option) *Dispatcher {
	d := &Dispatcher{
		store:      store,
		peripheral: peripheral,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// DutyForBrightness maps a logical brightness (255 = brightest) to the PWM compare value.
// The output pin drives the LED active low.
func DutyForBrightness(brightness uint8) uint8 {
	return MaxDuty - brightness
}

func (d *Dispatcher) HandleRequest(request Request) Result {
	if !request.IsVendor() {
		return Ignored(ErrWrongRequestClass)
	}

	index := int(request.Index)

	switch request.Command() {
	case CommandGetInfo:
		info := d.store.GetDeviceInfo()
		return Replied(InfoReply{
			LedCount: uint16(info.LedCount),
			DevName:  info.Name,
		})
	case CommandGetLedInfo:
		info, ok := d.store.GetLedInfo(index)
		if !ok {
			return Ignored(ErrIndexOutOfRange)
		}
		return Replied(LedInfoReply{
			LedName:       info.Name,
			LedSubname:    info.Subname,
			MaxBrightness: info.MaxBrightness,
		})
	case CommandSetLedBrightness:
		// only the low byte of wValue carries the brightness
		return d.setBrightness(index, uint8(request.Value))
	case CommandGetLedBrightness:
		brightness, ok := d.store.GetBrightness(index)
		if !ok {
			return Ignored(ErrIndexOutOfRange)
		}
		return Replied(BrightnessReply{Brightness: brightness})
	}

	return Ignored(ErrUnrecognizedCommand)
}

func (d *Dispatcher) setBrightness(index int, value uint8) Result {
	if d.clamp {
		info, ok := d.store.GetLedInfo(index)
		if !ok {
			return Ignored(ErrIndexOutOfRange)
		}
		value = min(value, info.MaxBrightness)
	}

	if err := d.store.SetBrightness(index, value); err != nil {
		return Ignored(ErrIndexOutOfRange)
	}

	result := Empty()
	if err := d.peripheral.SetDuty(index, DutyForBrightness(value)); err != nil {
		result.Cause = err
	}
	return result
}
