package configuration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/markusressel/lednice/internal/ui"
	"github.com/markusressel/lednice/internal/util"
	"golang.org/x/exp/slices"
)

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	err := validateDevice(config)
	if err != nil {
		return err
	}
	err = validatePwm(config)
	if err != nil {
		return err
	}
	err = validateTransport(config)
	if err != nil {
		return err
	}
	err = validateServers(config)
	if err != nil {
		return err
	}

	if config.Pwm.Cmd != nil && len(path) > 0 {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %s", path, err)
		}
	}

	return nil
}

func validateDevice(config *Configuration) error {
	device := config.Device

	if len(device.Name) > MaxNameLength {
		return fmt.Errorf("device %s: name is longer than %d bytes", device.Name, MaxNameLength)
	}

	if len(device.Leds) <= 0 {
		return errors.New("device: at least one led must be configured")
	}
	if len(device.Leds) > MaxLedCount {
		return fmt.Errorf("device: too many leds configured (%d), at most %d are supported", len(device.Leds), MaxLedCount)
	}

	var names []string
	for index, ledConfig := range device.Leds {
		label := ledConfig.Name
		if len(label) <= 0 {
			label = fmt.Sprintf("#%d", index)
		} else if slices.Contains(names, ledConfig.Name) {
			ui.Warning("Duplicate led name: %s", ledConfig.Name)
		}
		names = append(names, ledConfig.Name)

		if len(ledConfig.Name) > MaxNameLength {
			return fmt.Errorf("led %s: name is longer than %d bytes", label, MaxNameLength)
		}
		if len(ledConfig.Subname) > MaxNameLength {
			return fmt.Errorf("led %s: subname is longer than %d bytes", label, MaxNameLength)
		}

		maxBrightness := ledConfig.GetMaxBrightness()
		if maxBrightness < 0 || maxBrightness > 255 {
			return fmt.Errorf("led %s: maxBrightness must be in range [0..255]", label)
		}
	}

	return nil
}

func validatePwm(config *Configuration) error {
	pwm := config.Pwm

	if pwm.File != nil && pwm.Cmd != nil {
		return errors.New("pwm: only one pwm type can be used, use one of: file | cmd")
	}

	if pwm.File != nil {
		if len(pwm.File.Path) <= 0 {
			return errors.New("pwm: file path is missing")
		}
		if len(config.Device.Leds) > 1 && !strings.Contains(pwm.File.Path, ChannelPlaceholder) {
			return fmt.Errorf("pwm: file path must contain %s when more than one led is configured", ChannelPlaceholder)
		}
	}

	if pwm.Cmd != nil {
		if pwm.Cmd.SetDuty == nil || len(pwm.Cmd.SetDuty.Exec) <= 0 {
			return errors.New("pwm: cmd is missing a setDuty executable")
		}
		if pwm.Cmd.GetDuty != nil && len(pwm.Cmd.GetDuty.Exec) <= 0 {
			return errors.New("pwm: cmd getDuty is missing an executable")
		}
	}

	return nil
}

func validateTransport(config *Configuration) error {
	transport := config.Transport
	if !transport.Enabled {
		return nil
	}

	supportedNetworks := []string{NetworkUnix, NetworkTcp}
	if !slices.Contains(supportedNetworks, transport.Listen.Network) {
		return fmt.Errorf("transport: unsupported network '%s', use one of: %s", transport.Listen.Network, strings.Join(supportedNetworks, " | "))
	}
	if transport.Timeout < 0 {
		return errors.New("transport: timeout must not be negative")
	}

	return nil
}

func validateServers(config *Configuration) error {
	if config.Api.Enabled && !IsValidPort(config.Api.Port) {
		return fmt.Errorf("api: invalid port %d", config.Api.Port)
	}
	if config.Statistics.Enabled && !IsValidPort(config.Statistics.Port) {
		return fmt.Errorf("statistics: invalid port %d", config.Statistics.Port)
	}
	if config.Api.Enabled && config.Statistics.Enabled && config.Api.Port == config.Statistics.Port {
		return fmt.Errorf("api and statistics cannot share port %d", config.Api.Port)
	}
	return nil
}

// IsValidPort reports whether port can be listened on
func IsValidPort(port int) bool {
	return port > 0 && port < 65536
}
