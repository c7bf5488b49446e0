package device

import (
	"bytes"

	"github.com/markusressel/lednice/internal/configuration"
)

// NameSize is the capacity of a name field on the wire, including its NUL terminator
const NameSize = configuration.MaxNameLength + 1

// Name is a fixed size, NUL padded byte string
type Name [NameSize]byte

// NewName copies at most NameSize-1 bytes of text into a zeroed Name,
// longer input is truncated so the result is always NUL terminated.
func NewName(text string) Name {
	var name Name
	copy(name[:NameSize-1], text)
	return name
}

// String returns the text up to the first NUL byte
func (n Name) String() string {
	end := bytes.IndexByte(n[:], 0)
	if end < 0 {
		end = NameSize
	}
	return string(n[:end])
}

func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}
