package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// RequestTypeTypeMask selects the type bits of bmRequestType
const RequestTypeTypeMask = 0x60

const (
	RequestDirectionHostToDevice = 0x00
	RequestDirectionDeviceToHost = 0x80
)

const (
	RequestTypeStandard = 0x00
	RequestTypeClass    = 0x20
	RequestTypeVendor   = 0x40
)

const (
	RequestRecipientDevice = 0x00
)

// SetupPacketSize is the size of a control request on the wire
const SetupPacketSize = 8

var ErrSetupPacketTooShort = errors.New("setup packet too short")

// Request is a decoded USB setup packet
type Request struct {
	RequestType uint8  // bmRequestType: direction, type, recipient
	Request     uint8  // bRequest: command code
	Value       uint16 // wValue
	Index       uint16 // wIndex
	Length      uint16 // wLength: maximum number of reply bytes the host accepts
}

// NewVendorRequest creates a device-to-host vendor request for the given command
func NewVendorRequest(command Command, value uint16, index uint16) Request {
	return Request{
		RequestType: RequestDirectionDeviceToHost | RequestTypeVendor | RequestRecipientDevice,
		Request:     uint8(command),
		Value:       value,
		Index:       index,
		Length:      MaxReplySize,
	}
}

// ParseRequest decodes a setup packet from data into out
func ParseRequest(data []byte, out *Request) error {
	if len(data) < SetupPacketSize {
		return ErrSetupPacketTooShort
	}
	out.RequestType = data[0]
	out.Request = data[1]
	out.Value = binary.LittleEndian.Uint16(data[2:4])
	out.Index = binary.LittleEndian.Uint16(data[4:6])
	out.Length = binary.LittleEndian.Uint16(data[6:8])
	return nil
}

// MarshalTo writes the setup packet to buf and returns the number of bytes written,
// or 0 if buf is too small.
func (r Request) MarshalTo(buf []byte) int {
	if len(buf) < SetupPacketSize {
		return 0
	}
	buf[0] = r.RequestType
	buf[1] = r.Request
	binary.LittleEndian.PutUint16(buf[2:4], r.Value)
	binary.LittleEndian.PutUint16(buf[4:6], r.Index)
	binary.LittleEndian.PutUint16(buf[6:8], r.Length)
	return SetupPacketSize
}

func (r Request) Command() Command {
	return Command(r.Request)
}

// Type returns the request type bits (standard, class or vendor)
func (r Request) Type() uint8 {
	return r.RequestType & RequestTypeTypeMask
}

func (r Request) IsVendor() bool {
	return r.Type() == RequestTypeVendor
}

var requestTypeNames = map[uint8]string{
	RequestTypeStandard: "standard",
	RequestTypeClass:    "class",
	RequestTypeVendor:   "vendor",
}

func (r Request) String() string {
	typeName, ok := requestTypeNames[r.Type()]
	if !ok {
		typeName = "reserved"
	}
	return fmt.Sprintf("%s %s value=0x%04x index=%d length=%d", typeName, r.Command(), r.Value, r.Index, r.Length)
}
