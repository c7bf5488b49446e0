package configuration

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(value int) *int {
	return &value
}

func createValidConfig() Configuration {
	return Configuration{
		Device: DeviceConfig{
			Name: "ds_simple",
			Leds: []LedConfig{
				{
					Name:          "led_1",
					MaxBrightness: intPtr(255),
				},
			},
		},
		Transport: TransportConfig{
			Enabled: true,
			Listen:  ListenAddress{Network: NetworkUnix, Address: "/tmp/control.sock"},
			Timeout: time.Second,
		},
	}
}

func TestValidateValidConfig(t *testing.T) {
	// GIVEN
	config := createValidConfig()

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.NoError(t, err)
}

func TestValidateNoLeds(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Device.Leds = nil

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "device: at least one led must be configured")
}

func TestValidateTooManyLeds(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Device.Leds = make([]LedConfig, 256)
	config.Pwm.File = nil

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "device: too many leds configured (256), at most 255 are supported")
}

func TestValidateDeviceNameTooLong(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Device.Name = strings.Repeat("x", 16)

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "device xxxxxxxxxxxxxxxx: name is longer than 15 bytes")
}

func TestValidateLedNameTooLong(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Device.Leds[0].Name = "a_very_long_led_name"

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "led a_very_long_led_name: name is longer than 15 bytes")
}

func TestValidateLedSubnameTooLong(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Device.Leds[0].Subname = strings.Repeat("s", 20)

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "led led_1: subname is longer than 15 bytes")
}

func TestValidateLedMaxBrightnessOutOfRange(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Device.Leds[0].Name = ""
	config.Device.Leds[0].MaxBrightness = intPtr(300)

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "led #0: maxBrightness must be in range [0..255]")
}

func TestLedConfig_GetMaxBrightnessDefault(t *testing.T) {
	// GIVEN
	config := LedConfig{Name: "led_1"}

	// WHEN
	result := config.GetMaxBrightness()

	// THEN
	assert.Equal(t, DefaultMaxBrightness, result)
}

func TestValidatePwmMultipleTypes(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Pwm = PwmConfig{
		File: &FilePwmConfig{Path: "/tmp/duty"},
		Cmd:  &CmdPwmConfig{SetDuty: &ExecConfig{Exec: "/usr/bin/pwm"}},
	}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "pwm: only one pwm type can be used, use one of: file | cmd")
}

func TestValidatePwmFilePathMissing(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Pwm.File = &FilePwmConfig{}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "pwm: file path is missing")
}

func TestValidatePwmFilePathWithoutChannelForMultipleLeds(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Device.Leds = append(config.Device.Leds, LedConfig{Name: "led_2"})
	config.Pwm.File = &FilePwmConfig{Path: "/sys/class/pwm/pwmchip0/pwm0/duty_cycle"}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "pwm: file path must contain %channel% when more than one led is configured")
}

func TestValidatePwmCmdSetDutyMissing(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Pwm.Cmd = &CmdPwmConfig{}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "pwm: cmd is missing a setDuty executable")
}

func TestValidateTransportUnsupportedNetwork(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Transport.Listen = ListenAddress{Network: "udp", Address: "localhost:1234"}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "transport: unsupported network 'udp', use one of: unix | tcp")
}

func TestValidateTransportDisabledIsNotChecked(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Transport = TransportConfig{Enabled: false}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.NoError(t, err)
}

func TestValidateApiInvalidPort(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Api = ApiConfig{Enabled: true, Host: "localhost", Port: 70000}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "api: invalid port 70000")
}

func TestValidateApiAndStatisticsSharePort(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Api = ApiConfig{Enabled: true, Host: "localhost", Port: 9000}
	config.Statistics = StatisticsConfig{Enabled: true, Port: 9000}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "api and statistics cannot share port 9000")
}

func TestValidateStatisticsHighestPort(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Statistics = StatisticsConfig{Enabled: true, Port: 65535}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.NoError(t, err)
	assert.True(t, IsValidPort(65535))
	assert.False(t, IsValidPort(65536))
}
