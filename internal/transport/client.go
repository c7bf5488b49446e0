package transport

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/markusressel/lednice/internal/configuration"
	"github.com/markusressel/lednice/internal/protocol"
)

// Client sends control requests to a Server, like a USB host would
type Client struct {
	conn net.Conn
}

func Dial(ctx context.Context, address configuration.ListenAddress) (*Client, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, address.Network, address.Address)
	if err != nil {
		return nil, err
	}
	return NewClient(conn), nil
}

func NewClient(conn net.Conn) *Client {
	return &Client{conn: conn}
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Control performs a single control transfer and returns the reply payload,
// which is empty for ignored requests and commands without a reply.
func (c *Client) Control(ctx context.Context, request protocol.Request) ([]byte, error) {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, err
	}

	if err := writeRequest(c.conn, request); err != nil {
		return nil, err
	}
	return readFrame(c.conn)
}

func (c *Client) GetInfo(ctx context.Context) (protocol.InfoReply, error) {
	payload, err := c.Control(ctx, protocol.NewVendorRequest(protocol.CommandGetInfo, 0, 0))
	if err != nil {
		return protocol.InfoReply{}, err
	}
	if len(payload) == 0 {
		return protocol.InfoReply{}, protocol.ErrNoReply
	}
	return protocol.UnmarshalInfoReply(payload)
}

func (c *Client) GetLedInfo(ctx context.Context, index uint16) (protocol.LedInfoReply, error) {
	payload, err := c.Control(ctx, protocol.NewVendorRequest(protocol.CommandGetLedInfo, 0, index))
	if err != nil {
		return protocol.LedInfoReply{}, err
	}
	if len(payload) == 0 {
		return protocol.LedInfoReply{}, protocol.ErrNoReply
	}
	return protocol.UnmarshalLedInfoReply(payload)
}

func (c *Client) GetLedBrightness(ctx context.Context, index uint16) (uint8, error) {
	payload, err := c.Control(ctx, protocol.NewVendorRequest(protocol.CommandGetLedBrightness, 0, index))
	if err != nil {
		return 0, err
	}
	if len(payload) == 0 {
		return 0, protocol.ErrNoReply
	}
	reply, err := protocol.UnmarshalBrightnessReply(payload)
	return reply.Brightness, err
}

// SetLedBrightness cannot tell an invalid index from success, the device answers both without payload
func (c *Client) SetLedBrightness(ctx context.Context, index uint16, brightness uint8) error {
	_, err := c.Control(ctx, protocol.NewVendorRequest(protocol.CommandSetLedBrightness, uint16(brightness), index))
	return err
}

// CheckLedIndex returns protocol.ErrIndexOutOfRange if the device has no LED with the given index.
// Use it before SetLedBrightness, which cannot report an invalid index.
func (c *Client) CheckLedIndex(ctx context.Context, index uint16) error {
	info, err := c.GetInfo(ctx)
	if err != nil {
		return err
	}
	if index >= info.LedCount {
		return fmt.Errorf("led %d: %w, the device has %d led(s)", index, protocol.ErrIndexOutOfRange, info.LedCount)
	}
	return nil
}
