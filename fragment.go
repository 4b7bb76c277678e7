package wscore

import (
	"nhooyr.io/wscore/internal/errd"
)

// DefaultFragmentSize is the maximum payload carried by a single frame when
// splitting a message, used by callers that have no reason to pick their
// own. It is not mandated by the RFC, any positive size is wire legal.
const DefaultFragmentSize = 4096

// Packetize splits payload into the ordered frame sequence that carries it
// as one message: every frame's payload is at most fragmentSize bytes, the
// first frame carries op, every later frame OpContinuation, and only the
// last has Fin set. An empty payload yields no frames.
//
// The frames reference payload's storage rather than copying it. They are
// produced unmasked, masking is a per frame transmission concern. It panics
// if fragmentSize is not positive.
func Packetize(payload []byte, op Opcode, fragmentSize int) []Frame {
	if fragmentSize <= 0 {
		panic("wscore: fragmentSize must be positive")
	}
	if len(payload) == 0 {
		return nil
	}

	frames := make([]Frame, 0, (len(payload)+fragmentSize-1)/fragmentSize)
	for len(payload) > fragmentSize {
		frames = append(frames, NewFrame(false, op, nil, payload[:fragmentSize]))
		payload = payload[fragmentSize:]
		op = OpContinuation
	}
	return append(frames, NewFrame(true, op, nil, payload))
}

// Unpacketize reassembles an ordered frame sequence into one contiguous
// payload, allocated once at the exact total size. Each frame's payload
// lands at the cumulative offset of everything before it, so a short final
// fragment reassembles correctly.
//
// It verifies that every frame's declared length matches its payload but
// not the fin/continuation chain: the connection reader that delivered the
// frames in receipt order owns chain validity. An empty sequence yields an
// empty payload.
func Unpacketize(frames []Frame) (_ []byte, err error) {
	defer errd.Wrap(&err, "failed to reassemble message")

	var total int64
	for _, f := range frames {
		if f.Header.PayloadLength != int64(len(f.Payload)) {
			return nil, FrameFormatError{
				Declared: f.Header.PayloadLength,
				Actual:   int64(len(f.Payload)),
			}
		}
		total += f.Header.PayloadLength
	}

	payload := make([]byte, 0, total)
	for _, f := range frames {
		payload = append(payload, f.Payload...)
	}
	return payload, nil
}
