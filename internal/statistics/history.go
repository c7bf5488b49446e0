package statistics

import (
	"sync"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/lednice/internal/protocol"
	"github.com/markusressel/lednice/internal/util"
	"github.com/qdm12/reprint"
)

// History keeps the last brightness values written to every LED
type History struct {
	mu      sync.RWMutex
	size    int
	values  map[int][]float64
	windows map[int]*rolling.PointPolicy
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = 1
	}
	return &History{
		size:    size,
		values:  map[int][]float64{},
		windows: map[int]*rolling.PointPolicy{},
	}
}

// Listener returns a protocol.Listener that records every executed SET_LED_BRIGHTNESS
func (h *History) Listener(store protocol.StateStore) protocol.Listener {
	return func(request protocol.Request, result protocol.Result) {
		if request.Command() != protocol.CommandSetLedBrightness || result.Kind != protocol.ResultEmpty {
			return
		}
		index := int(request.Index)
		// read back the register, the dispatcher may have clamped the value
		brightness, ok := store.GetBrightness(index)
		if !ok {
			return
		}
		h.Append(index, brightness)
	}
}

func (h *History) Append(index int, brightness uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()

	values := append(h.values[index], float64(brightness))
	if len(values) > h.size {
		values = values[len(values)-h.size:]
	}
	h.values[index] = values

	window, ok := h.windows[index]
	if !ok {
		window = util.CreateRollingWindow(h.size)
		h.windows[index] = window
	}
	window.Append(float64(brightness))
}

// Values returns a copy of the recorded values of the given LED, oldest first
func (h *History) Values(index int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	values := h.values[index]
	if len(values) == 0 {
		return []float64{}
	}
	return reprint.This(values).([]float64)
}

// Avg returns the average of the recorded values of the given LED
func (h *History) Avg(index int) float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	window, ok := h.windows[index]
	if !ok {
		return 0
	}
	return util.WindowAvg(window, len(h.values[index]))
}
