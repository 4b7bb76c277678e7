package wscore

import "fmt"

// TruncatedHeaderError is returned when a buffer ends before the frame
// header it declares is complete: fewer than the 2 fixed bytes, or the
// extended payload length or mask key bytes the fixed bytes announce are
// absent.
type TruncatedHeaderError struct {
	// Need is the size of the header in bytes, as far as it could be
	// determined from what was read.
	Need int
	// Have is the number of bytes available.
	Have int
}

func (e TruncatedHeaderError) Error() string {
	return fmt.Sprintf("wscore: truncated frame header: need %d bytes but have %d", e.Need, e.Have)
}

// FrameFormatError is returned when a frame's declared payload length does
// not match the bytes actually present.
type FrameFormatError struct {
	Declared int64
	Actual   int64
}

func (e FrameFormatError) Error() string {
	return fmt.Sprintf("wscore: frame declares %d payload bytes but has %d", e.Declared, e.Actual)
}

// UnknownOpcodeError reports an opcode nibble outside the six defined by
// the RFC. The RFC requires failing the connection; that is the caller's
// decision, so parsing does not return this. See Header.Validate.
type UnknownOpcodeError struct {
	Opcode Opcode
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("wscore: unknown opcode %#x", int(e.Opcode))
}

// ReservedBitsError reports rsv bits set on a frame with no negotiated
// extension. Like UnknownOpcodeError it is surfaced by Header.Validate,
// never by the parse path.
type ReservedBitsError struct {
	RSV1 bool
	RSV2 bool
	RSV3 bool
}

func (e ReservedBitsError) Error() string {
	return fmt.Sprintf("wscore: reserved bits set without extension: rsv1=%v rsv2=%v rsv3=%v", e.RSV1, e.RSV2, e.RSV3)
}
