package configuration

import "time"

type TransportConfig struct {
	Enabled bool          `json:"enabled"`
	Listen  ListenAddress `json:"listen"`
	// Timeout is the read deadline for a single setup packet
	Timeout time.Duration `json:"timeout"`
}
