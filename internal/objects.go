package internal

import (
	"github.com/markusressel/lednice/internal/configuration"
	"github.com/markusressel/lednice/internal/device"
	"github.com/markusressel/lednice/internal/protocol"
	"github.com/markusressel/lednice/internal/pwm"
	"github.com/markusressel/lednice/internal/statistics"
	"github.com/markusressel/lednice/internal/ui"
	"github.com/prometheus/client_golang/prometheus"
)

// Objects holds everything the daemon serves requests with
type Objects struct {
	Store    *device.Store
	Output   pwm.Output
	Handler  *protocol.SerializedHandler
	Dispatch *statistics.DispatchStatistics
	History  *statistics.History
}

// InitializeObjects builds the device from the given configuration, switches all LEDs off
// and registers the statistics collectors with registerer.
func InitializeObjects(config configuration.Configuration, registerer prometheus.Registerer) (*Objects, error) {
	store, err := device.NewStoreFromConfig(config.Device)
	if err != nil {
		return nil, err
	}

	output, err := pwm.NewOutput(config.Pwm)
	if err != nil {
		return nil, err
	}
	ui.Info("Using %s pwm output for %d led(s)", output.GetId(), store.LedCount())

	// the brightness register starts at 0, so the duty has to start at its maximum
	if err := pwm.SwitchOff(output, store.LedCount()); err != nil {
		ui.Warning("Not all leds could be switched off: %v", err)
	}

	dispatcher := protocol.NewDispatcher(store, output, protocol.WithClamp(config.Device.ClampBrightness))
	handler := protocol.NewSerializedHandler(dispatcher)

	dispatchStatistics := statistics.NewDispatchStatistics()
	handler.AddListener(dispatchStatistics.Listener())

	history := statistics.NewHistory(config.HistorySize)
	handler.AddListener(history.Listener(store))

	handler.AddListener(func(request protocol.Request, result protocol.Result) {
		if result.Cause != nil {
			ui.Debug("%s: %s (%v)", request, result.Kind, result.Cause)
		} else {
			ui.Debug("%s: %s", request, result.Kind)
		}
	})

	err = statistics.Register(registerer,
		statistics.NewDispatchCollector(dispatchStatistics),
		statistics.NewLedCollector(handler, output, store.LedCount(), history),
	)
	if err != nil {
		return nil, err
	}

	return &Objects{
		Store:    store,
		Output:   output,
		Handler:  handler,
		Dispatch: dispatchStatistics,
		History:  history,
	}, nil
}
