package emu

// NewVT05 builds the VT05 profile: DumbTerminal plus a handful of
// single-byte control codes for cursor motion, direct cursor addressing,
// and line/screen erase. Unlike VT100, none of this arrives via ESC --
// VT05 hardware dedicated whole C0 control codes to these functions, and
// VT05 has no CSI vocabulary at all.
func NewVT05(rows, cols int) *Emulator {
	e := newBaseEmulator("vt05", rows, cols)
	e.AutoWrap = false

	e.normalTable = dumbNormalTable().clone()
	e.normalTable.set(0x18, func(e *Emulator, b byte) { e.CursorForward(1) })
	e.normalTable.set(0x0b, func(e *Emulator, b byte) { e.CursorDown(1) })
	e.normalTable.set(0x1a, func(e *Emulator, b byte) { e.CursorUp(1) })
	e.normalTable.set(0x1d, func(e *Emulator, b byte) { e.SetCursorAbs(0, 0) })
	e.normalTable.set(0x1e, func(e *Emulator, b byte) { e.EraseInLine(EraseToEnd) })
	e.normalTable.set(0x1f, func(e *Emulator, b byte) { e.EraseInDisplay(EraseToEnd) })
	e.normalTable.set(0x0e, func(e *Emulator, b byte) { e.State = CursorAddressArg1 })
	e.normalTable.set('\t', vt05Tab)

	e.escapeTable = newHandlerTable()
	e.csiTable = newHandlerTable()
	e.privateTable = newHandlerTable()
	return e
}

// vt05Tab implements VT05's own tab-stop table, distinct from the fixed
// every-8-columns rule the Dumb/VT100 profiles use: fixed stops at every
// multiple of 8 up to column 64, then single-column steps from 64 up to
// the last column, 71. A tab glyph is written into the cell the cursor is
// leaving, unless that cell is the last column.
func vt05Tab(e *Emulator, b byte) {
	col := e.CursorCol
	if col < e.FB.Cols-1 {
		e.FB.Set(e.CursorRow, col, Cell{Ch: '\t', Set: true, Attrs: e.CurAttrs})
	}
	switch {
	case col < 64:
		for _, stop := range [...]int{0, 8, 16, 24, 32, 40, 48, 56, 64} {
			if col < stop {
				e.CursorCol = stop
				return
			}
		}
	case col == e.FB.Cols-1:
		// already at the last column; stay put
	default:
		e.CursorCol = col + 1
	}
}
