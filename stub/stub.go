// Package stub implements the length-prefixed TCP control channel used to
// drive objects inside a test fixture from outside its process: each frame
// is a 4-byte big-endian length followed by that many bytes of payload,
// matching the classic struct.pack("!L", ...) network byte order header.
package stub

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DefaultPort is the control channel's default listening port.
const DefaultPort = 12345

// MaxFrameSize bounds a single frame's payload, guarding against a
// corrupt or hostile length header asking for an enormous allocation.
const MaxFrameSize = 16 << 20 // 16 MiB

// ReadFrame reads one length-prefixed frame from r.
func ReadFrame(r io.Reader) ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(header[:])
	if n > MaxFrameSize {
		return nil, fmt.Errorf("stub: frame of %d bytes exceeds MaxFrameSize", n)
	}
	payload := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

// WriteFrame writes payload to w as one length-prefixed frame.
func WriteFrame(w io.Writer, payload []byte) error {
	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	_, err := w.Write(payload)
	return err
}
