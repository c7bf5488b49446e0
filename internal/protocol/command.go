package protocol

import "fmt"

// Command is the bRequest code of a vendor control request
type Command uint8

const (
	// CommandGetInfo replies with the DeviceInfo, value and index are ignored
	CommandGetInfo Command = 0
	// CommandGetLedInfo replies with the LedInfo of the LED in index
	CommandGetLedInfo Command = 1
	// CommandSetLedBrightness sets the LED in index to the brightness in value, no reply
	CommandSetLedBrightness Command = 2
	// CommandGetLedBrightness replies with the brightness of the LED in index
	CommandGetLedBrightness Command = 3
)

var commandNames = map[Command]string{
	CommandGetInfo:          "get_info",
	CommandGetLedInfo:       "get_led_info",
	CommandSetLedBrightness: "set_led_brightness",
	CommandGetLedBrightness: "get_led_brightness",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(c))
}
