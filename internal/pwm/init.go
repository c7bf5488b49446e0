package pwm

import (
	"fmt"

	"github.com/markusressel/lednice/internal/ui"
)

// SwitchOff drives every channel to MaxDutyValue, matching the brightness register
// of a freshly started device.
func SwitchOff(output Output, channels int) error {
	var failed []int
	for channel := 0; channel < channels; channel++ {
		if err := output.SetDuty(channel, MaxDutyValue); err != nil {
			ui.Warning("Unable to switch off channel %d of %s output: %v", channel, output.GetId(), err)
			failed = append(failed, channel)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("unable to switch off channels %v", failed)
	}
	return nil
}
