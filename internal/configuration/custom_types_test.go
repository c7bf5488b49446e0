package configuration

import (
	"testing"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
)

func TestParseListenAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ListenAddress
		wantErr string
	}{
		{
			name:  "unix socket",
			input: "unix:///run/lednice/control.sock",
			want:  ListenAddress{Network: NetworkUnix, Address: "/run/lednice/control.sock"},
		},
		{
			name:  "tcp",
			input: "TCP://127.0.0.1:9002",
			want:  ListenAddress{Network: NetworkTcp, Address: "127.0.0.1:9002"},
		},
		{
			name:  "bare path",
			input: "/tmp/lednice.sock",
			want:  ListenAddress{Network: NetworkUnix, Address: "/tmp/lednice.sock"},
		},
		{
			name:    "empty",
			input:   "  ",
			wantErr: "listen address is empty",
		},
		{
			name:    "no scheme",
			input:   "localhost:9002",
			wantErr: "listen address 'localhost:9002' is missing a scheme, use one of: unix:// | tcp://",
		},
		{
			name:    "no address",
			input:   "tcp://",
			wantErr: "listen address 'tcp://' is missing an address",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// WHEN
			result, err := ParseListenAddress(tt.input)

			// THEN
			if len(tt.wantErr) > 0 {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, result)
			}
		})
	}
}

func TestListenAddress_String(t *testing.T) {
	// GIVEN
	address := ListenAddress{Network: NetworkTcp, Address: "localhost:9002"}

	// WHEN
	result := address.String()

	// THEN
	assert.Equal(t, "tcp://localhost:9002", result)
	assert.Equal(t, "", ListenAddress{}.String())
}

func TestListenAddressHookFunc(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"enabled": true,
		"listen":  "unix:///tmp/control.sock",
		"timeout": "250ms",
	}
	var result TransportConfig

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: decodeHooks(),
		Result:     &result,
	})
	assert.NoError(t, err)

	// WHEN
	err = decoder.Decode(input)

	// THEN
	assert.NoError(t, err)
	assert.True(t, result.Enabled)
	assert.Equal(t, ListenAddress{Network: NetworkUnix, Address: "/tmp/control.sock"}, result.Listen)
	assert.Equal(t, "250ms", result.Timeout.String())
}
