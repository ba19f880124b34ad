package emu

import (
	"strconv"
	"strings"
)

// NewTypical builds the richest profile: everything VT100 offers plus
// OSC string handling. "Typical" names the common xterm-compatible subset
// programs actually rely on in practice -- window title and a handful of
// other OSC commands -- rather than any single terminal's full OSC set.
func NewTypical(rows, cols int) *Emulator {
	e := newBaseEmulator("typical", rows, cols)
	e.AutoWrap = false

	e.normalTable = dumbNormalTable().clone()
	e.normalTable.set(0x1b, func(e *Emulator, b byte) { e.State = Escape })

	e.escapeTable = vt100EscapeTable().clone()
	e.escapeTable.set(']', func(e *Emulator, b byte) {
		e.oscBuf = e.oscBuf[:0]
		e.State = OSC
	})

	e.csiTable = vt100CSITable().clone()
	e.privateTable = vt100PrivateTable().clone()
	e.oscDispatch = dispatchOSC
	e.dumpCellFn = sgrDumpCell
	return e
}

// dispatchOSC implements the "N;ARG" OSC grammar: N=0 sets
// both Title and IconName, N=1 sets IconName alone, N=2 sets Title alone.
// Any other N is logged and otherwise ignored.
func dispatchOSC(e *Emulator, payload []byte) {
	parts := strings.SplitN(string(payload), ";", 2)
	num, err := strconv.Atoi(parts[0])
	if err != nil {
		e.debugf("malformed OSC payload %q", payload)
		return
	}
	if len(parts) != 2 {
		return
	}
	switch num {
	case 0:
		e.Title = parts[1]
		e.IconName = parts[1]
	case 1:
		e.IconName = parts[1]
	case 2:
		e.Title = parts[1]
	default:
		e.debugf("unsupported OSC command %d", num)
	}
}
