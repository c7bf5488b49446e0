package configuration

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const (
	NetworkUnix = "unix"
	NetworkTcp  = "tcp"
)

// ListenAddress is a network/address pair given as "unix:///path/to/socket" or "tcp://host:port"
type ListenAddress struct {
	Network string `json:"network"`
	Address string `json:"address"`
}

func (a ListenAddress) String() string {
	if len(a.Network) <= 0 {
		return ""
	}
	return a.Network + "://" + a.Address
}

// ParseListenAddress splits the given URL-like text into its network and address.
// A bare path without scheme is treated as a unix socket.
func ParseListenAddress(text string) (ListenAddress, error) {
	text = strings.TrimSpace(text)
	if len(text) <= 0 {
		return ListenAddress{}, fmt.Errorf("listen address is empty")
	}

	network, address, found := strings.Cut(text, "://")
	if !found {
		if strings.HasPrefix(text, "/") {
			return ListenAddress{Network: NetworkUnix, Address: text}, nil
		}
		return ListenAddress{}, fmt.Errorf("listen address '%s' is missing a scheme, use one of: unix:// | tcp://", text)
	}
	if len(address) <= 0 {
		return ListenAddress{}, fmt.Errorf("listen address '%s' is missing an address", text)
	}

	return ListenAddress{
		Network: strings.ToLower(network),
		Address: address,
	}, nil
}

// ListenAddressHookFunc returns a mapstructure decode hook that parses strings into a ListenAddress
func ListenAddressHookFunc() mapstructure.DecodeHookFuncType {
	listenAddressType := reflect.TypeOf(ListenAddress{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != listenAddressType {
			return data, nil
		}
		text, ok := data.(string)
		if !ok {
			return data, nil
		}
		return ParseListenAddress(text)
	}
}
