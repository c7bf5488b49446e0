package configuration

const (
	// MaxNameLength is the longest name that fits a 16 byte, NUL terminated wire field
	MaxNameLength = 15

	MaxLedCount = 255

	DefaultMaxBrightness = 255
)

type DeviceConfig struct {
	Name string `json:"name"`
	// ClampBrightness limits written brightness values to the maxBrightness of the LED
	ClampBrightness bool        `json:"clampBrightness"`
	Leds            []LedConfig `json:"leds"`
}

type LedConfig struct {
	Name          string `json:"name"`
	Subname       string `json:"subname"`
	MaxBrightness *int   `json:"maxBrightness,omitempty"`
}

// GetMaxBrightness returns the configured maxBrightness, or DefaultMaxBrightness if it is missing
func (c LedConfig) GetMaxBrightness() int {
	if c.MaxBrightness == nil {
		return DefaultMaxBrightness
	}
	return *c.MaxBrightness
}
