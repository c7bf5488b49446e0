package device

import (
	"errors"
	"fmt"

	"github.com/markusressel/lednice/internal/configuration"
)

const (
	// BrightnessOff is the brightness every LED has after startup
	BrightnessOff = 0
	BrightnessMax = 255
)

var (
	ErrIndexOutOfRange = errors.New("led index out of range")
)

type DeviceInfo struct {
	LedCount uint8 `json:"ledCount"`
	Name     Name  `json:"name"`
}

type LedInfo struct {
	Name          Name  `json:"name"`
	Subname       Name  `json:"subname"`
	MaxBrightness uint8 `json:"maxBrightness"`
}

// Store holds the immutable LED catalog and the brightness register of every LED.
// It is not safe for concurrent use, callers serialize access.
type Store struct {
	info       DeviceInfo
	leds       []LedInfo
	brightness []uint8
}

// NewStore creates a Store for the given catalog, all LEDs start at BrightnessOff
func NewStore(name string, leds []LedInfo) (*Store, error) {
	if len(leds) <= 0 {
		return nil, errors.New("led catalog is empty")
	}
	if len(leds) > configuration.MaxLedCount {
		return nil, fmt.Errorf("led catalog has %d entries, at most %d are supported", len(leds), configuration.MaxLedCount)
	}

	catalog := make([]LedInfo, len(leds))
	copy(catalog, leds)

	return &Store{
		info: DeviceInfo{
			LedCount: uint8(len(catalog)),
			Name:     NewName(name),
		},
		leds:       catalog,
		brightness: make([]uint8, len(catalog)),
	}, nil
}

// NewStoreFromConfig creates a Store for the LED catalog of the given device configuration
func NewStoreFromConfig(config configuration.DeviceConfig) (*Store, error) {
	var leds []LedInfo
	for _, ledConfig := range config.Leds {
		leds = append(leds, LedInfo{
			Name:          NewName(ledConfig.Name),
			Subname:       NewName(ledConfig.Subname),
			MaxBrightness: uint8(ledConfig.GetMaxBrightness()),
		})
	}
	return NewStore(config.Name, leds)
}

func (s *Store) GetDeviceInfo() DeviceInfo {
	return s.info
}

// LedCount returns the number of LEDs in the catalog
func (s *Store) LedCount() int {
	return len(s.leds)
}

func (s *Store) GetLedInfo(index int) (LedInfo, bool) {
	if !s.isValidIndex(index) {
		return LedInfo{}, false
	}
	return s.leds[index], true
}

func (s *Store) GetBrightness(index int) (uint8, bool) {
	if !s.isValidIndex(index) {
		return 0, false
	}
	return s.brightness[index], true
}

func (s *Store) SetBrightness(index int, value uint8) error {
	if !s.isValidIndex(index) {
		return ErrIndexOutOfRange
	}
	s.brightness[index] = value
	return nil
}

func (s *Store) isValidIndex(index int) bool {
	return index >= 0 && index < len(s.leds)
}
