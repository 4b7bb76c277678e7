// Package wscore implements the WebSocket frame layer of RFC 6455 section 5:
// the frame header codec, payload masking and message fragmentation.
//
// It is a pure transformation between payload bytes and wire bytes, consumed
// by a connection layer. Nothing here performs I/O, negotiates the opening
// handshake or tracks connection state. Callers hand in fully formed byte
// buffers and receive frames, or hand in frames and receive wire bytes.
//
// Protocol violations that the RFC answers with a connection failure, like
// unknown opcodes or reserved bits set without a negotiated extension, are
// surfaced through Header.Validate rather than rejected on the parse path,
// since failing the connection is the caller's action to take.
package wscore // import "nhooyr.io/wscore"
