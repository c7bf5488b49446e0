package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/markusressel/lednice/internal/configuration"
	"github.com/markusressel/lednice/internal/protocol"
	"github.com/markusressel/lednice/internal/ui"
)

// Server feeds setup packets received on a stream connection into a protocol.Handler
type Server struct {
	handler protocol.Handler
	// closes connections that stay idle for longer than this, 0 disables it
	idleTimeout time.Duration
}

func NewServer(handler protocol.Handler, idleTimeout time.Duration) *Server {
	return &Server{
		handler:     handler,
		idleTimeout: idleTimeout,
	}
}

// Listen opens a listener for the given address. A stale unix socket is removed first.
func Listen(address configuration.ListenAddress) (net.Listener, error) {
	if address.Network == configuration.NetworkUnix {
		parentDir := filepath.Dir(address.Address)
		if err := os.MkdirAll(parentDir, 0755); err != nil {
			return nil, err
		}
		if err := os.Remove(address.Address); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return net.Listen(address.Network, address.Address)
}

// Serve accepts connections until ctx is done, the listener is closed when Serve returns
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		ui.Debug("Control connection opened: %s", conn.RemoteAddr())
		go func() {
			err := s.ServeConn(ctx, conn)
			if err != nil {
				ui.Warning("Control connection closed: %v", err)
			} else {
				ui.Debug("Control connection closed: %s", conn.RemoteAddr())
			}
		}()
	}
}

// ServeConn answers setup packets on conn until the peer disconnects or ctx is done
func (s *Server) ServeConn(ctx context.Context, conn net.Conn) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()
	defer func() {
		_ = conn.Close()
	}()

	var request protocol.Request
	for {
		if s.idleTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(s.idleTimeout)); err != nil {
				return err
			}
		}

		err := readRequest(conn, &request)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				return nil
			}
			return err
		}

		result := s.handler.HandleRequest(request)
		payload := TruncateReply(result.Bytes(), request.Length)
		if err := writeFrame(conn, payload); err != nil {
			return err
		}
	}
}
