package transport

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/markusressel/lednice/internal/protocol"
)

// A control transfer on the stream is an 8 byte setup packet from the host,
// answered by a 2 byte little endian length and that many payload bytes.
const frameHeaderSize = 2

// TruncateReply limits payload to the number of bytes the host asked for in wLength
func TruncateReply(payload []byte, length uint16) []byte {
	if len(payload) > int(length) {
		return payload[:length]
	}
	return payload
}

func writeFrame(w io.Writer, payload []byte) error {
	buf := make([]byte, frameHeaderSize+len(payload))
	binary.LittleEndian.PutUint16(buf[0:frameHeaderSize], uint16(len(payload)))
	copy(buf[frameHeaderSize:], payload)
	_, err := w.Write(buf)
	return err
}

func readFrame(r io.Reader) ([]byte, error) {
	header := make([]byte, frameHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	length := binary.LittleEndian.Uint16(header)
	if length == 0 {
		return nil, nil
	}
	if int(length) > protocol.MaxReplySize {
		return nil, fmt.Errorf("reply length %d exceeds maximum of %d", length, protocol.MaxReplySize)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func writeRequest(w io.Writer, request protocol.Request) error {
	buf := make([]byte, protocol.SetupPacketSize)
	request.MarshalTo(buf)
	_, err := w.Write(buf)
	return err
}

func readRequest(r io.Reader, out *protocol.Request) error {
	buf := make([]byte, protocol.SetupPacketSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	return protocol.ParseRequest(buf, out)
}
