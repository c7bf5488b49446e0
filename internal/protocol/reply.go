package protocol

import (
	"encoding/binary"

	"github.com/markusressel/lednice/internal/device"
)

// Reply payload sizes, all fields are serialized positionally without padding
const (
	InfoReplySize       = 2 + device.NameSize
	LedInfoReplySize    = device.NameSize + device.NameSize + 1
	BrightnessReplySize = 1

	MaxReplySize = LedInfoReplySize
)

// Reply is the payload of a command that answers with data
type Reply interface {
	// Size returns the number of bytes MarshalTo writes
	Size() int
	// MarshalTo writes the wire layout of the reply to the start of buf,
	// it returns 0 if buf is smaller than Size.
	MarshalTo(buf []byte) int
}

// InfoReply answers CommandGetInfo
type InfoReply struct {
	LedCount uint16
	DevName  device.Name
}

func (r InfoReply) Size() int {
	return InfoReplySize
}

func (r InfoReply) MarshalTo(buf []byte) int {
	if len(buf) < InfoReplySize {
		return 0
	}
	binary.LittleEndian.PutUint16(buf[0:2], r.LedCount)
	copy(buf[2:InfoReplySize], r.DevName[:])
	return InfoReplySize
}

// LedInfoReply answers CommandGetLedInfo
type LedInfoReply struct {
	LedName       device.Name
	LedSubname    device.Name
	MaxBrightness uint8
}

func (r LedInfoReply) Size() int {
	return LedInfoReplySize
}

func (r LedInfoReply) MarshalTo(buf []byte) int {
	if len(buf) < LedInfoReplySize {
		return 0
	}
	copy(buf[0:device.NameSize], r.LedName[:])
	copy(buf[device.NameSize:2*device.NameSize], r.LedSubname[:])
	buf[2*device.NameSize] = r.MaxBrightness
	return LedInfoReplySize
}

// BrightnessReply answers CommandGetLedBrightness
type BrightnessReply struct {
	Brightness uint8
}

func (r BrightnessReply) Size() int {
	return BrightnessReplySize
}

func (r BrightnessReply) MarshalTo(buf []byte) int {
	if len(buf) < BrightnessReplySize {
		return 0
	}
	buf[0] = r.Brightness
	return BrightnessReplySize
}

// MarshalReply returns the wire bytes of reply in a freshly zeroed buffer
func MarshalReply(reply Reply) []byte {
	if reply == nil {
		return nil
	}
	buf := make([]byte, reply.Size())
	n := reply.MarshalTo(buf)
	return buf[:n]
}

// UnmarshalInfoReply decodes the payload of a CommandGetInfo reply
func UnmarshalInfoReply(data []byte) (InfoReply, error) {
	var reply InfoReply
	if len(data) < InfoReplySize {
		return reply, errShortReply(CommandGetInfo, len(data), InfoReplySize)
	}
	reply.LedCount = binary.LittleEndian.Uint16(data[0:2])
	copy(reply.DevName[:], data[2:InfoReplySize])
	return reply, nil
}

// UnmarshalLedInfoReply decodes the payload of a CommandGetLedInfo reply
func UnmarshalLedInfoReply(data []byte) (LedInfoReply, error) {
	var reply LedInfoReply
	if len(data) < LedInfoReplySize {
		return reply, errShortReply(CommandGetLedInfo, len(data), LedInfoReplySize)
	}
	copy(reply.LedName[:], data[0:device.NameSize])
	copy(reply.LedSubname[:], data[device.NameSize:2*device.NameSize])
	reply.MaxBrightness = data[2*device.NameSize]
	return reply, nil
}

// UnmarshalBrightnessReply decodes the payload of a CommandGetLedBrightness reply
func UnmarshalBrightnessReply(data []byte) (BrightnessReply, error) {
	if len(data) < BrightnessReplySize {
		return BrightnessReply{}, errShortReply(CommandGetLedBrightness, len(data), BrightnessReplySize)
	}
	return BrightnessReply{Brightness: data[0]}, nil
}
