package protocol

import (
	"errors"
	"fmt"
)

// Reasons for a ResultIgnored. They never reach the host, which only sees an empty response.
var (
	ErrWrongRequestClass   = errors.New("wrong request class")
	ErrUnrecognizedCommand = errors.New("unrecognized command")
	ErrIndexOutOfRange     = errors.New("index out of range")
)

// ErrNoReply is returned by clients when the device answered without payload
var ErrNoReply = errors.New("no reply")

func errShortReply(command Command, got int, want int) error {
	return fmt.Errorf("%s: reply has %d bytes, expected %d", command, got, want)
}
