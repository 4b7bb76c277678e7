package wscore

import (
	"encoding/binary"
	"fmt"
	"math"

	"nhooyr.io/wscore/internal/errd"
)

// Header represents a WebSocket frame header.
// See https://tools.ietf.org/html/rfc6455#section-5.2
//
// It is a plain value: AppendHeader and ParseHeader translate between it
// and the wire layout, there is no partially encoded state to mutate.
type Header struct {
	Fin  bool
	RSV1 bool
	RSV2 bool
	RSV3 bool

	Opcode Opcode

	// PayloadLength is an int64 because the RFC mandates the most
	// significant bit cannot be set. So we cannot send or receive a frame
	// with negative length.
	PayloadLength int64

	Masked bool
	// MaskKey holds the key in wire order. The extended payload length and
	// the mask key are both big endian on the wire, the single network
	// byte order for every multi byte field of the header.
	MaskKey [4]byte
}

// First byte contains fin, rsv1, rsv2, rsv3 and the opcode.
// Second byte contains the mask flag and the payload length.
// Next 8 bytes are the maximum extended payload length.
// Last 4 bytes are the mask key.
const maxHeaderSize = 1 + 1 + 8 + 4

// maxControlPayload is the maximum length of a control frame payload.
// See https://tools.ietf.org/html/rfc6455#section-5.5
const maxControlPayload = 125

// size returns the number of bytes the header occupies on the wire,
// which is also the offset of the payload.
func (h Header) size() int {
	size := 2
	switch {
	case h.PayloadLength > math.MaxUint16:
		size += 8
	case h.PayloadLength > 125:
		size += 2
	}
	if h.Masked {
		size += 4
	}
	return size
}

// AppendHeader appends the wire encoding of h to b and returns the
// extended slice. It always selects the minimal payload length encoding,
// so a given header has exactly one byte representation.
// See https://tools.ietf.org/html/rfc6455#section-5.2
//
// It panics on headers that cannot exist on the wire: a negative payload
// length or an opcode wider than 4 bits.
func AppendHeader(b []byte, h Header) []byte {
	if h.PayloadLength < 0 {
		panic(fmt.Sprintf("wscore: invalid header: negative payload length: %v", h.PayloadLength))
	}
	if h.Opcode > 1<<4-1 {
		panic(fmt.Sprintf("wscore: invalid header: opcode greater than 0x0f: %#x", int(h.Opcode)))
	}

	var b0 byte
	if h.Fin {
		b0 |= 1 << 7
	}
	if h.RSV1 {
		b0 |= 1 << 6
	}
	if h.RSV2 {
		b0 |= 1 << 5
	}
	if h.RSV3 {
		b0 |= 1 << 4
	}
	b0 |= byte(h.Opcode)

	var b1 byte
	if h.Masked {
		b1 |= 1 << 7
	}

	switch {
	case h.PayloadLength > math.MaxUint16:
		b = append(b, b0, b1|127)
		b = binary.BigEndian.AppendUint64(b, uint64(h.PayloadLength))
	case h.PayloadLength > 125:
		b = append(b, b0, b1|126)
		b = binary.BigEndian.AppendUint16(b, uint16(h.PayloadLength))
	default:
		b = append(b, b0, b1|byte(h.PayloadLength))
	}

	if h.Masked {
		b = append(b, h.MaskKey[:]...)
	}

	return b
}

// Bytes returns the wire encoding of h.
func (h Header) Bytes() []byte {
	return AppendHeader(make([]byte, 0, maxHeaderSize), h)
}

// ParseHeader decodes a frame header from the beginning of b. It returns
// the header and its size on the wire, which is the offset of the payload
// within b.
//
// It fails with TruncatedHeaderError when b ends before the header does.
// Unknown opcodes and reserved bits pass through untouched; whether they
// fail the connection is policy for the layer above, see Header.Validate.
func ParseHeader(b []byte) (_ Header, _ int, err error) {
	defer errd.Wrap(&err, "failed to parse frame header")

	if len(b) < 2 {
		return Header{}, 0, TruncatedHeaderError{Need: 2, Have: len(b)}
	}

	var h Header
	h.Fin = b[0]&(1<<7) != 0
	h.RSV1 = b[0]&(1<<6) != 0
	h.RSV2 = b[0]&(1<<5) != 0
	h.RSV3 = b[0]&(1<<4) != 0
	h.Opcode = Opcode(b[0] & 0xf)
	h.Masked = b[1]&(1<<7) != 0

	size := 2
	payloadLength := b[1] &^ (1 << 7)
	switch {
	case payloadLength == 126:
		size += 2
	case payloadLength == 127:
		size += 8
	default:
		h.PayloadLength = int64(payloadLength)
	}
	if h.Masked {
		size += 4
	}

	if len(b) < size {
		return Header{}, 0, TruncatedHeaderError{Need: size, Have: len(b)}
	}

	switch payloadLength {
	case 126:
		h.PayloadLength = int64(binary.BigEndian.Uint16(b[2:]))
	case 127:
		h.PayloadLength = int64(binary.BigEndian.Uint64(b[2:]))
		if h.PayloadLength < 0 {
			return Header{}, 0, fmt.Errorf("header has negative payload length: %#x", uint64(h.PayloadLength))
		}
	}

	if h.Masked {
		copy(h.MaskKey[:], b[size-4:size])
	}

	return h, size, nil
}

// Validate reports the protocol violations that the parse path deliberately
// lets through: reserved bits set with no negotiated extension, an opcode
// outside the RFC's set, and control frames that are fragmented or carry
// more than 125 payload bytes. The RFC mandates failing the connection on
// any of these; taking that action belongs to the caller.
func (h Header) Validate() error {
	if h.RSV1 || h.RSV2 || h.RSV3 {
		return ReservedBitsError{RSV1: h.RSV1, RSV2: h.RSV2, RSV3: h.RSV3}
	}
	if !h.Opcode.Known() {
		return UnknownOpcodeError{Opcode: h.Opcode}
	}
	if h.Opcode.Control() {
		if h.PayloadLength > maxControlPayload {
			return fmt.Errorf("wscore: control frame payload of %v bytes exceeds %v", h.PayloadLength, maxControlPayload)
		}
		if !h.Fin {
			return fmt.Errorf("wscore: fragmented control frame")
		}
	}
	return nil
}
