package wscore

import "encoding/binary"

// Mask applies the WebSocket masking algorithm to b with the given key,
// where pos is the position in the key of the first byte of b. It operates
// in place and returns the key position of the byte after b, so a payload
// split across buffers can be masked incrementally. XOR is self inverse,
// the same call unmasks. Key bytes are applied in wire order.
// See https://tools.ietf.org/html/rfc6455#section-5.3
//
// Masking a word at a time is far faster than a byte at a time.
// Optimization from https://github.com/golang/go/issues/31586#issuecomment-485530859
func Mask(key [4]byte, pos int, b []byte) int {
	if len(b) >= 16 {
		// An 8 byte key aligned on pos lets us xor 8 payload bytes per op.
		// 8 is two full key periods so pos mod 4 is unchanged by the word
		// loops below.
		var alignedKey [8]byte
		for i := range alignedKey {
			alignedKey[i] = key[(i+pos)&3]
		}
		k := binary.LittleEndian.Uint64(alignedKey[:])

		for len(b) >= 32 {
			v := binary.LittleEndian.Uint64(b)
			binary.LittleEndian.PutUint64(b, v^k)
			v = binary.LittleEndian.Uint64(b[8:])
			binary.LittleEndian.PutUint64(b[8:], v^k)
			v = binary.LittleEndian.Uint64(b[16:])
			binary.LittleEndian.PutUint64(b[16:], v^k)
			v = binary.LittleEndian.Uint64(b[24:])
			binary.LittleEndian.PutUint64(b[24:], v^k)
			b = b[32:]
		}

		for len(b) >= 8 {
			v := binary.LittleEndian.Uint64(b)
			binary.LittleEndian.PutUint64(b, v^k)
			b = b[8:]
		}
	}

	// xor remaining bytes.
	for i := range b {
		b[i] ^= key[pos&3]
		pos++
	}
	return pos & 3
}
