package global

import (
	"context"
	"time"

	"github.com/markusressel/lednice/internal/configuration"
	"github.com/markusressel/lednice/internal/transport"
	"github.com/markusressel/lednice/internal/ui"
)

const defaultTimeout = time.Second

// LoadConfig reads and validates the configuration, exits on failure
func LoadConfig() {
	configPath := configuration.DetectConfigFile()
	ui.Debug("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	if err := configuration.Validate(configPath); err != nil {
		ui.Fatal(err.Error())
	}
}

// Connect dials the control transport of the running daemon.
// The returned context carries the configured request timeout.
func Connect() (*transport.Client, context.Context, context.CancelFunc, error) {
	config := configuration.CurrentConfig.Transport
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	client, err := transport.Dial(ctx, config.Listen)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return client, ctx, cancel, nil
}
