package wscore

import (
	"nhooyr.io/wscore/internal/errd"
)

// Frame is a single wire unit: a header bound to its payload.
// See https://tools.ietf.org/html/rfc6455#section-5.2
//
// The payload is always held unmasked. Masking is applied while a frame is
// serialized and removed while one is parsed, so readers of Payload never
// see obfuscated bytes.
type Frame struct {
	Header  Header
	Payload []byte
}

// NewFrame constructs a frame for transmission from an in memory payload
// chunk. If maskKey is non-nil the frame serializes masked with that key.
// Generating a random key per frame is the caller's job, the RFC requires
// it of clients and forbids it of servers. The frame references payload
// rather than copying it, the caller must not mutate it until the frame
// has been serialized.
func NewFrame(fin bool, op Opcode, maskKey *[4]byte, payload []byte) Frame {
	h := Header{
		Fin:           fin,
		Opcode:        op,
		PayloadLength: int64(len(payload)),
	}
	if maskKey != nil {
		h.Masked = true
		h.MaskKey = *maskKey
	}
	return Frame{
		Header:  h,
		Payload: payload,
	}
}

// AppendFrame appends the wire encoding of f to b: header bytes followed by
// payload bytes. A masked frame's payload is XORed as it lands in b, f's
// own payload buffer is left untouched.
func AppendFrame(b []byte, f Frame) []byte {
	b = AppendHeader(b, f.Header)
	n := len(b)
	b = append(b, f.Payload...)
	if f.Header.Masked {
		Mask(f.Header.MaskKey, 0, b[n:])
	}
	return b
}

// Bytes returns the wire encoding of f.
func (f Frame) Bytes() []byte {
	return AppendFrame(make([]byte, 0, f.Header.size()+len(f.Payload)), f)
}

// ParseFrame decodes exactly one frame from b. The buffer must contain the
// whole frame and nothing else: it fails with TruncatedHeaderError when the
// header is cut short and with FrameFormatError when the bytes after the
// header do not match the declared payload length.
//
// The payload is sliced out of b and, when masked, unmasked in place, so
// ownership of b transfers to the returned frame.
func ParseFrame(b []byte) (_ Frame, err error) {
	defer errd.Wrap(&err, "failed to parse frame")

	h, n, err := ParseHeader(b)
	if err != nil {
		return Frame{}, err
	}

	if int64(len(b)-n) != h.PayloadLength {
		return Frame{}, FrameFormatError{
			Declared: h.PayloadLength,
			Actual:   int64(len(b) - n),
		}
	}

	payload := b[n:]
	if h.Masked {
		Mask(h.MaskKey, 0, payload)
	}

	return Frame{
		Header:  h,
		Payload: payload,
	}, nil
}
