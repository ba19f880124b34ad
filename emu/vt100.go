package emu

// NewVT100 builds the VT100 profile: ANSI escape/CSI sequences, a scrolling
// region, SGR monochrome attributes, and the private mode bytes (CSI ?7h
// for auto-wrap, CSI ?6h for origin mode). VT100 is a sibling of VT05 under
// Dumb, not a descendant of it -- VT05's single-byte motion escapes and
// direct addressing are not part of VT100's vocabulary, matching how the
// two diverged historically.
func NewVT100(rows, cols int) *Emulator {
	e := newBaseEmulator("vt100", rows, cols)
	e.AutoWrap = false // off until CSI ?7h, unlike the dumb profile

	e.normalTable = dumbNormalTable().clone()
	e.normalTable.set(0x1b, func(e *Emulator, b byte) { e.State = Escape })

	e.escapeTable = vt100EscapeTable()
	e.csiTable = vt100CSITable()
	e.privateTable = vt100PrivateTable()
	e.dumpCellFn = sgrDumpCell
	return e
}

func vt100EscapeTable() *handlerTable {
	t := newHandlerTable()
	t.set('[', func(e *Emulator, b byte) {
		e.Params.Reset()
		e.State = CSI
	})
	t.set('#', func(e *Emulator, b byte) { e.State = Private })
	t.set('D', func(e *Emulator, b byte) { e.LineFeed() })
	t.set('M', func(e *Emulator, b byte) { e.ReverseLineFeed() })
	t.set('E', func(e *Emulator, b byte) { e.CarriageReturn(); e.LineFeed() })
	t.set('H', func(e *Emulator, b byte) { e.SetTabStop() })
	t.set('7', func(e *Emulator, b byte) { e.SaveCursor() })
	t.set('8', func(e *Emulator, b byte) { e.RestoreCursor() })
	t.set('c', func(e *Emulator, b byte) { e.fullReset() })
	return t
}

func vt100PrivateTable() *handlerTable {
	t := newHandlerTable()
	// DECALN: fill the entire screen with 'E', used to test margins/wrap.
	t.set('8', func(e *Emulator, b byte) {
		for r := 0; r < e.FB.Rows; r++ {
			for c := 0; c < e.FB.Cols; c++ {
				e.FB.Set(r, c, Cell{Ch: 'E', Set: true})
			}
		}
	})
	return t
}

func (e *Emulator) fullReset() {
	e.FB.ClearAll()
	e.CursorRow, e.CursorCol = 0, 0
	e.CurAttrs = 0
	e.ResetMargins()
	e.OriginMode = false
	e.AutoWrap = false
	e.LinefeedMode = false
	e.Saved = SavedCursor{}
	for i := range e.TabStops {
		e.TabStops[i] = false
	}
	for c := defaultTabWidth; c < len(e.TabStops); c += defaultTabWidth {
		e.TabStops[c] = true
	}
}

func vt100CSITable() *handlerTable {
	t := newHandlerTable()

	cursorTo := func(e *Emulator, b byte) {
		row := e.Params.Get(0, 1) - 1
		col := e.Params.Get(1, 1) - 1
		e.CursorPosition(row, col)
	}
	t.set('H', cursorTo)
	t.set('f', cursorTo)

	t.set('A', func(e *Emulator, b byte) { e.CursorUp(e.Params.Get(0, 1)) })
	t.set('B', func(e *Emulator, b byte) { e.CursorDown(e.Params.Get(0, 1)) })
	t.set('C', func(e *Emulator, b byte) { e.CursorForward(e.Params.Get(0, 1)) })
	t.set('D', func(e *Emulator, b byte) { e.CursorBack(e.Params.Get(0, 1)) })

	t.set('G', func(e *Emulator, b byte) { e.SetCursorAbs(e.CursorRow, e.Params.Get(0, 1)-1) })
	t.set('d', func(e *Emulator, b byte) { e.SetCursorAbs(e.Params.Get(0, 1)-1, e.CursorCol) })

	t.set('J', func(e *Emulator, b byte) { e.EraseInDisplay(EraseMode(e.Params.Get(0, 0))) })
	t.set('K', func(e *Emulator, b byte) { e.EraseInLine(EraseMode(e.Params.Get(0, 0))) })

	t.set('r', func(e *Emulator, b byte) {
		// In origin-relative mode the parameters count from the current
		// region's top line, and the default bottom is the region's last
		// line rather than the last line of the screen.
		top := e.Params.Get(0, 1) - 1
		var bottom int
		if e.OriginMode {
			bottom = e.Params.Get(1, e.MarginBottom-e.MarginTop+1) - 1
			top += e.MarginTop
			bottom += e.MarginTop
		} else {
			bottom = e.Params.Get(1, e.FB.Rows) - 1
		}
		if e.SetMargins(top, bottom) {
			e.moveToOrigin()
		}
	})

	t.set('S', func(e *Emulator, b byte) { e.FB.ScrollUp(e.MarginTop, e.MarginBottom, e.Params.Get(0, 1)) })
	t.set('T', func(e *Emulator, b byte) { e.FB.ScrollDown(e.MarginTop, e.MarginBottom, e.Params.Get(0, 1)) })

	t.set('s', func(e *Emulator, b byte) { e.SaveCursor() })
	t.set('u', func(e *Emulator, b byte) { e.RestoreCursor() })

	t.set('g', func(e *Emulator, b byte) {
		switch e.Params.Get(0, 0) {
		case 0:
			e.ClearTabStop()
		case 3:
			e.ClearAllTabStops()
		}
	})

	t.set('m', func(e *Emulator, b byte) { applySGR(e) })

	t.set('h', func(e *Emulator, b byte) { applyPrivateMode(e, true) })
	t.set('l', func(e *Emulator, b byte) { applyPrivateMode(e, false) })

	return t
}

func applySGR(e *Emulator) {
	params := e.Params.All()
	if len(params) == 0 {
		params = []int{0}
	}
	for _, p := range params {
		switch p {
		case 0:
			e.CurAttrs = 0
		case 1:
			e.CurAttrs = e.CurAttrs.Set(Bold)
		case 4:
			e.CurAttrs = e.CurAttrs.Set(Underscore)
		case 5:
			e.CurAttrs = e.CurAttrs.Set(Blink)
		case 7:
			e.CurAttrs = e.CurAttrs.Set(Reverse)
		case 22:
			e.CurAttrs = e.CurAttrs.Clear(Bold)
		case 24:
			e.CurAttrs = e.CurAttrs.Clear(Underscore)
		case 25:
			e.CurAttrs = e.CurAttrs.Clear(Blink)
		case 27:
			e.CurAttrs = e.CurAttrs.Clear(Reverse)
		default:
			e.debugf("unsupported SGR code %d", p)
		}
	}
}

// applyPrivateMode implements CSI h/l: code 6 (origin-relative, a DEC
// private mode conventionally written "CSI ?6h") and 7 (auto-wrap) are
// only meaningful with the '?' prefix; code 20 (linefeed mode, ANSI LNM)
// is a public mode and arrives without it. This package doesn't otherwise
// distinguish the two mode spaces -- any recognised code takes effect
// regardless of the '?' prefix having been seen.
func applyPrivateMode(e *Emulator, on bool) {
	for _, p := range e.Params.All() {
		switch p {
		case 6:
			e.OriginMode = on
			e.moveToOrigin()
		case 7:
			e.AutoWrap = on
		case 20:
			e.LinefeedMode = on
		default:
			e.debugf("unsupported mode %d", p)
		}
	}
}
