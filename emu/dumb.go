package emu

// NewDumb builds the base profile: printable ASCII plus the handful of C0
// controls a teletype-era terminal understood (CR, LF, BS, TAB, BEL). It
// recognizes no escape sequences at all -- an ESC byte is simply absorbed,
// along with anything else outside 0x20-0x7e and the controls below.
//
// Every other profile is built by cloning this one's Normal table and
// adding to it, so a byte DumbTerminal already handles keeps behaving the
// same way under VT05/VT100/Typical unless that profile explicitly
// overrides it.
func NewDumb(rows, cols int) *Emulator {
	e := newBaseEmulator("dumb", rows, cols)
	e.AutoWrap = true
	e.normalTable = dumbNormalTable()
	e.escapeTable = newHandlerTable() // no escapes recognized; all absorbed
	e.csiTable = newHandlerTable()
	e.privateTable = newHandlerTable()
	return e
}

func dumbNormalTable() *handlerTable {
	t := newHandlerTable()
	t.setRange(0x20, 0x7e, func(e *Emulator, b byte) {
		e.PutChar(rune(b))
	})
	t.set('\r', func(e *Emulator, b byte) { e.CarriageReturn() })
	t.set('\n', func(e *Emulator, b byte) {
		e.LineFeed()
		if e.LinefeedMode {
			e.CarriageReturn()
		}
	})
	t.set('\b', func(e *Emulator, b byte) { e.Backspace() })
	t.set('\t', func(e *Emulator, b byte) { e.Tab() })
	t.set(0x07, func(e *Emulator, b byte) { /* BEL: no bell to ring */ })
	// Everything else (other C0 controls, 0x80-0xff) is absorbed silently;
	// defaultFn stays nil.
	return t
}
