package wscore

import (
	"bytes"
	"strconv"
	"testing"
	_ "unsafe"

	"github.com/gobwas/ws"
	_ "github.com/gorilla/websocket"

	"nhooyr.io/wscore/internal/test/assert"
	"nhooyr.io/wscore/internal/test/xrand"
)

func TestMask(t *testing.T) {
	t.Parallel()

	t.Run("known", func(t *testing.T) {
		t.Parallel()

		key := [4]byte{0xa, 0xb, 0xc, 0xff}
		p := []byte{0xa, 0xb, 0xc, 0xf2, 0xc}
		pos := Mask(key, 0, p)

		assert.Equal(t, "masked bytes", []byte{0, 0, 0, 0x0d, 0x6}, p)
		assert.Equal(t, "next key position", 1, pos)
	})

	t.Run("selfInverse", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{0, 1, 2, 3, 4, 7, 8, 15, 16, 31, 32, 69, 128, 4096} {
			n := n
			t.Run(strconv.Itoa(n), func(t *testing.T) {
				t.Parallel()

				key := xrand.Key()
				p := xrand.Bytes(n)
				orig := append([]byte(nil), p...)

				pos := Mask(key, 0, p)
				assert.Equal(t, "next key position", n%4, pos)
				if n >= 4 && bytes.Equal(orig, p) {
					t.Fatal("masking left the payload unchanged")
				}

				Mask(key, 0, p)
				assert.Equal(t, "unmasked bytes", orig, p)
			})
		}
	})

	t.Run("matchesBasic", func(t *testing.T) {
		t.Parallel()

		for i := 0; i < 100; i++ {
			key := xrand.Key()
			pos := xrand.Int(4)
			p1 := xrand.Bytes(xrand.Int(512))
			p2 := append([]byte(nil), p1...)

			pos1 := Mask(key, pos, p1)
			pos2 := basicMask(key, pos, p2)
			assert.Equal(t, "masked bytes", p2, p1)
			assert.Equal(t, "next key position", pos2, pos1)
		}
	})

	t.Run("positionThreading", func(t *testing.T) {
		t.Parallel()

		key := xrand.Key()
		whole := xrand.Bytes(777)
		split := append([]byte(nil), whole...)

		Mask(key, 0, whole)

		pos := 0
		for prev := 0; prev < len(split); {
			cut := prev + 1 + xrand.Int(129)
			if cut > len(split) {
				cut = len(split)
			}
			pos = Mask(key, pos, split[prev:cut])
			prev = cut
		}

		assert.Equal(t, "incrementally masked bytes", whole, split)
	})
}

func basicMask(key [4]byte, pos int, b []byte) int {
	for i := range b {
		b[i] ^= key[pos&3]
		pos++
	}
	return pos & 3
}

//go:linkname gorillaMaskBytes github.com/gorilla/websocket.maskBytes
func gorillaMaskBytes(key [4]byte, pos int, b []byte) int

func Benchmark_mask(b *testing.B) {
	sizes := []int{
		2,
		3,
		4,
		8,
		16,
		32,
		128,
		512,
		4096,
		16384,
	}

	fns := []struct {
		name string
		fn   func(b *testing.B, key [4]byte, p []byte)
	}{
		{
			name: "basic",
			fn: func(b *testing.B, key [4]byte, p []byte) {
				for i := 0; i < b.N; i++ {
					basicMask(key, 0, p)
				}
			},
		},
		{
			name: "wscore",
			fn: func(b *testing.B, key [4]byte, p []byte) {
				for i := 0; i < b.N; i++ {
					Mask(key, 0, p)
				}
			},
		},
		{
			name: "gorilla",
			fn: func(b *testing.B, key [4]byte, p []byte) {
				for i := 0; i < b.N; i++ {
					gorillaMaskBytes(key, 0, p)
				}
			},
		},
		{
			name: "gobwas",
			fn: func(b *testing.B, key [4]byte, p []byte) {
				for i := 0; i < b.N; i++ {
					ws.Cipher(p, key, 0)
				}
			},
		},
	}

	key := [4]byte{1, 2, 3, 4}

	for _, size := range sizes {
		p := make([]byte, size)

		b.Run(strconv.Itoa(size), func(b *testing.B) {
			for _, fn := range fns {
				b.Run(fn.name, func(b *testing.B) {
					b.SetBytes(int64(size))

					fn.fn(b, key, p)
				})
			}
		})
	}
}
