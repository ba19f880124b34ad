package emu

// ParserState names the byte-interpretation mode an Emulator is in. The
// set is deliberately small next to a full VTE state machine: no DCS, no
// SOS/PM/APC, no UTF-8 continuation tracking, because none of those are in
// scope for a monochrome ASCII terminal. CursorAddressArg1/Arg2 exist only
// for VT05's direct cursor addressing (0x0E <row> <col>), which takes its
// two argument bytes literally rather than as a parsed numeric parameter.
type ParserState int

const (
	Normal ParserState = iota
	Escape
	CSI
	Private
	OSC
	CursorAddressArg1
	CursorAddressArg2
)

func (s ParserState) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Escape:
		return "Escape"
	case CSI:
		return "CSI"
	case Private:
		return "Private"
	case OSC:
		return "OSC"
	case CursorAddressArg1:
		return "CursorAddressArg1"
	case CursorAddressArg2:
		return "CursorAddressArg2"
	default:
		return "Unknown"
	}
}
