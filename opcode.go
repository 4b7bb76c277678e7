package wscore

import "fmt"

// Opcode represents a WebSocket opcode.
// This is how the WebSocket RFC capitalizes it.
type Opcode int

// Opcode constants from https://tools.ietf.org/html/rfc6455#section-11.8.
const (
	OpContinuation Opcode = iota
	OpText
	OpBinary
	// 3 - 7 are reserved for further non-control frames.
	_
	_
	_
	_
	_
	OpClose
	OpPing
	OpPong
	// 11-16 are reserved for further control frames.
)

// Control reports whether op is a control opcode.
func (op Opcode) Control() bool {
	switch op {
	case OpClose, OpPing, OpPong:
		return true
	}
	return false
}

// Data reports whether op is a data opcode.
func (op Opcode) Data() bool {
	switch op {
	case OpText, OpBinary:
		return true
	}
	return false
}

// Known reports whether op is one of the six opcodes defined by the RFC.
// Any other nibble read off the wire is preserved as is so that the caller
// can fail the connection per the RFC.
func (op Opcode) Known() bool {
	return op == OpContinuation || op.Data() || op.Control()
}

func (op Opcode) String() string {
	switch op {
	case OpContinuation:
		return "OpContinuation"
	case OpText:
		return "OpText"
	case OpBinary:
		return "OpBinary"
	case OpClose:
		return "OpClose"
	case OpPing:
		return "OpPing"
	case OpPong:
		return "OpPong"
	}
	return fmt.Sprintf("Opcode(%#x)", int(op))
}
