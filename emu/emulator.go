package emu

import "log"

// SavedCursor is the single-slot cursor save used by ESC 7 / ESC 8 (and the
// VT100 DECSC/DECRC pair). Unlike some terminals this is not a stack: a
// second save simply overwrites the first.
type SavedCursor struct {
	Valid      bool
	Row, Col   int
	Attrs      Attribute
	OriginMode bool
}

// Emulator interprets a byte stream against a virtual Framebuffer. A given
// instance is produced by one of the profile constructors (NewDumb, NewVT05,
// NewVT100, NewTypical), each of which wires up the handler tables that
// give the profile its behaviour; Emulator itself only holds state and
// drives dispatch.
type Emulator struct {
	Name string

	FB *Framebuffer

	CursorRow, CursorCol int
	CurAttrs             Attribute

	MarginTop, MarginBottom int
	OriginMode              bool
	AutoWrap                bool
	AutoScroll              bool
	LinefeedMode            bool

	TabStops []bool

	Saved SavedCursor

	State  ParserState
	cadRow int // captured row from a VT05 direct cursor-address sequence

	Params   Params
	oscBuf   []byte
	Title    string
	IconName string

	Debug    bool
	DebugLog *log.Logger

	normalTable  *handlerTable
	escapeTable  *handlerTable
	csiTable     *handlerTable
	privateTable *handlerTable
	oscDispatch  func(e *Emulator, payload []byte)

	// dumpCellFn overrides how Dump/DumpTo render a single cell; nil means
	// plain text. Only VT100 and Typical set this (to sgrDumpCell), and
	// even then it is only consulted when the sink is a TTY.
	dumpCellFn func(Cell) string
}

const defaultTabWidth = 8

func newBaseEmulator(name string, rows, cols int) *Emulator {
	e := &Emulator{
		Name:         name,
		FB:           NewFramebuffer(rows, cols),
		MarginTop:    0,
		MarginBottom: rows - 1,
		AutoScroll:   true,
		TabStops:     make([]bool, cols),
		DebugLog:     log.Default(),
	}
	for c := defaultTabWidth; c < cols; c += defaultTabWidth {
		e.TabStops[c] = true
	}
	return e
}

func (e *Emulator) debugf(format string, args ...interface{}) {
	if e.Debug && e.DebugLog != nil {
		e.DebugLog.Printf("[DEBUG] "+format, args...)
	}
}

// Interpret feeds one byte to the emulator and runs the post-step
// auto-wrap/auto-scroll rule. It never returns an error: malformed or
// unexpected bytes are absorbed the way a real terminal absorbs them,
// never surfaced as a failure to the caller.
func (e *Emulator) Interpret(b byte) {
	switch e.State {
	case Normal:
		e.normalTable.dispatch(e, b)
	case Escape:
		before := e.State
		e.escapeTable.dispatch(e, b)
		if e.State == before {
			// Most escape sequences are exactly ESC + one byte; a handler
			// that needs more bytes (CSI, private, OSC) moves e.State
			// itself and that move is left alone here.
			e.State = Normal
		}
	case CSI:
		e.stepCSI(b)
	case Private:
		e.privateTable.dispatch(e, b)
		e.State = Normal
	case OSC:
		e.stepOSC(b)
	case CursorAddressArg1:
		// VT05 direct cursor addressing: each argument byte is the 0-based
		// coordinate offset by 0x20. An out-of-range byte is discarded and
		// the state persists, waiting for a valid retry of the same arg.
		if row := int(b) - 0x20; row >= 0 && row < e.FB.Rows {
			e.cadRow = row
			e.State = CursorAddressArg2
		}
	case CursorAddressArg2:
		if col := int(b) - 0x20; col >= 0 && col < e.FB.Cols {
			e.CursorRow, e.CursorCol = e.cadRow, col
			e.State = Normal
		}
	}
	e.postStep()
}

// InterpretBytes feeds an entire chunk through Interpret.
func (e *Emulator) InterpretBytes(p []byte) {
	for _, b := range p {
		e.Interpret(b)
	}
}

func (e *Emulator) stepCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		e.Params.Digit(b)
	case b == ';':
		e.Params.Separator()
	case b == '?' && e.Params.Len() == 0:
		// Swallow the DEC private-mode marker; this package doesn't track
		// separate public/private mode spaces, so the byte has no other
		// effect than not being parsed as a parameter digit.
	default:
		// Any other byte in the 0x40-0x7e range is a final byte.
		e.csiTable.dispatch(e, b)
		e.Params.Reset()
		e.State = Normal
	}
}

func (e *Emulator) stepOSC(b byte) {
	switch b {
	case 0x07: // BEL terminates an OSC string
		e.finishOSC()
	case 0x1b:
		// Treated as the start of ST (ESC \): the OSC string ends here and
		// the parser returns to Normal, so the byte after the ESC is handled
		// as ordinary Normal-state input. A lone ESC mid-OSC in this profile
		// always means string terminator, never a nested escape.
		e.finishOSC()
		e.State = Normal
	default:
		e.oscBuf = append(e.oscBuf, b)
	}
}

func (e *Emulator) finishOSC() {
	if e.oscDispatch != nil {
		e.oscDispatch(e, e.oscBuf)
	} else {
		e.debugf("unhandled OSC payload %q", e.oscBuf)
	}
	e.oscBuf = e.oscBuf[:0]
	e.State = Normal
}

// postStep applies the auto-wrap/auto-scroll rule after every interpreted
// byte: a cursor pushed past the last column wraps to the next line (or
// clamps, if auto-wrap is off), and a cursor pushed past the bottom margin
// scrolls the margin region up (or clamps, if auto-scroll is off).
func (e *Emulator) postStep() {
	if e.CursorCol >= e.FB.Cols {
		if e.AutoWrap {
			e.CursorCol = 0
			e.CursorRow++
		} else {
			e.CursorCol = e.FB.Cols - 1
		}
	}
	// The scroll fires only on the exact one-past-the-margin row. A cursor
	// parked below the region (placed there by CSI H while a narrower
	// region is active) moves freely without dragging the region along.
	if e.CursorRow == e.MarginBottom+1 {
		if e.AutoScroll {
			e.FB.ScrollUp(e.MarginTop, e.MarginBottom, 1)
		}
		e.CursorRow--
	}
	if e.CursorRow >= e.FB.Rows {
		e.CursorRow = e.FB.Rows - 1
	}
}

// PutChar writes r at the current cursor position with the current
// attributes and advances the cursor one column. It does not itself wrap
// or scroll: that's left to the post-step rule run by Interpret.
func (e *Emulator) PutChar(r rune) {
	e.FB.Set(e.CursorRow, e.CursorCol, Cell{Ch: r, Set: true, Attrs: e.CurAttrs})
	e.CursorCol++
}

func (e *Emulator) CarriageReturn() {
	e.CursorCol = 0
}

// LineFeed moves the cursor down one line, scrolling the margin region if
// already at the bottom margin. It never touches the column -- that's
// linefeed_mode's concern (see the Normal-state '\n' handler), not
// Index/NEL's, which share this same row motion.
func (e *Emulator) LineFeed() {
	if e.CursorRow == e.MarginBottom {
		e.FB.ScrollUp(e.MarginTop, e.MarginBottom, 1)
		return
	}
	if e.CursorRow < e.FB.Rows-1 {
		e.CursorRow++
	}
}

// ReverseLineFeed moves the cursor up one line (ESC M); at the top margin
// it scrolls the region down instead and pins the cursor at the margin.
func (e *Emulator) ReverseLineFeed() {
	if e.CursorRow == e.MarginTop {
		e.FB.ScrollDown(e.MarginTop, e.MarginBottom, 1)
		e.CursorRow = e.MarginTop
		return
	}
	if e.CursorRow > 0 {
		e.CursorRow--
	}
}

func (e *Emulator) Backspace() {
	if e.CursorCol > 0 {
		e.CursorCol--
	}
}

// Tab advances to the next tab stop, filling the cells it skips over with
// a plain space glyph -- but never the stop cell itself, which is left
// for whatever gets written there next. If no stop remains it clamps to
// the last column, again without writing that final cell.
func (e *Emulator) Tab() {
	start := e.CursorCol
	stop := e.FB.Cols - 1
	for c := start + 1; c < e.FB.Cols; c++ {
		if e.TabStops[c] {
			stop = c
			break
		}
	}
	for c := start; c < stop; c++ {
		e.FB.Set(e.CursorRow, c, Cell{Ch: ' ', Set: true})
	}
	e.CursorCol = stop
}

func (e *Emulator) SetTabStop() {
	if e.CursorCol >= 0 && e.CursorCol < len(e.TabStops) {
		e.TabStops[e.CursorCol] = true
	}
}

func (e *Emulator) ClearTabStop() {
	if e.CursorCol >= 0 && e.CursorCol < len(e.TabStops) {
		e.TabStops[e.CursorCol] = false
	}
}

func (e *Emulator) ClearAllTabStops() {
	for i := range e.TabStops {
		e.TabStops[i] = false
	}
}

// CursorUp and CursorDown clamp to the scroll region (margin_top/
// margin_bottom), not to the full screen, so CSI A/B inside a region
// narrower than the screen keep the cursor inside it.
func (e *Emulator) CursorUp(n int)   { e.moveCursorRow(-n) }
func (e *Emulator) CursorDown(n int) { e.moveCursorRow(n) }

// CursorForward and CursorBack clamp to the full row, per CSI C/D.
func (e *Emulator) CursorForward(n int) { e.moveCursorCol(n) }
func (e *Emulator) CursorBack(n int)    { e.moveCursorCol(-n) }

func (e *Emulator) moveCursorRow(d int) {
	row := e.CursorRow + d
	if row < e.MarginTop {
		row = e.MarginTop
	}
	if row > e.MarginBottom {
		row = e.MarginBottom
	}
	e.CursorRow = row
}

func (e *Emulator) moveCursorCol(d int) {
	col := e.CursorCol + d
	if col < 0 {
		col = 0
	}
	if col >= e.FB.Cols {
		col = e.FB.Cols - 1
	}
	e.CursorCol = col
}

// SetCursorAbs moves the cursor to an absolute (row, col), 0-indexed,
// clamped to the framebuffer. Unlike CursorPosition it never applies
// origin-mode translation: callers that already have an absolute target
// (VT05 home, CSI G/d, DECSTBM's cursor-home, mode toggles) use this
// directly.
func (e *Emulator) SetCursorAbs(row, col int) {
	if row < 0 {
		row = 0
	}
	if row >= e.FB.Rows {
		row = e.FB.Rows - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= e.FB.Cols {
		col = e.FB.Cols - 1
	}
	e.CursorRow, e.CursorCol = row, col
}

// CursorPosition implements CSI H/f placement: row and col are 0-indexed
// already. In origin-relative mode, row is taken relative to margin_top
// and a resulting row outside the scrolling region is ignored entirely --
// no cursor motion at all -- rather than clamped.
func (e *Emulator) CursorPosition(row, col int) {
	if e.OriginMode {
		row += e.MarginTop
		if row < e.MarginTop || row > e.MarginBottom {
			return
		}
	}
	e.SetCursorAbs(row, col)
}

// moveToOrigin places the cursor at the logical origin: (margin_top, 0)
// in origin-relative mode, (0, 0) otherwise. Used after DECSTBM and after
// toggling origin mode, both of which relocate the cursor to wherever the
// origin now is.
func (e *Emulator) moveToOrigin() {
	if e.OriginMode {
		e.SetCursorAbs(e.MarginTop, 0)
		return
	}
	e.SetCursorAbs(0, 0)
}

func (e *Emulator) SaveCursor() {
	e.Saved = SavedCursor{
		Valid: true, Row: e.CursorRow, Col: e.CursorCol,
		Attrs: e.CurAttrs, OriginMode: e.OriginMode,
	}
}

func (e *Emulator) RestoreCursor() {
	if !e.Saved.Valid {
		e.CursorRow, e.CursorCol = 0, 0
		return
	}
	e.CursorRow, e.CursorCol = e.Saved.Row, e.Saved.Col
	e.CurAttrs = e.Saved.Attrs
	e.OriginMode = e.Saved.OriginMode
}

// EraseMode mirrors the usual CSI J/K argument: 0 = cursor to end, 1 =
// start to cursor, 2 = everything.
type EraseMode int

const (
	EraseToEnd EraseMode = iota
	EraseToStart
	EraseAll
)

func (e *Emulator) EraseInLine(mode EraseMode) {
	switch mode {
	case EraseToEnd:
		e.FB.ClearRange(e.CursorRow, e.CursorCol, e.FB.Cols-1)
	case EraseToStart:
		e.FB.ClearRange(e.CursorRow, 0, e.CursorCol)
	case EraseAll:
		e.FB.ClearRow(e.CursorRow)
	}
}

func (e *Emulator) EraseInDisplay(mode EraseMode) {
	switch mode {
	case EraseToEnd:
		e.FB.ClearRange(e.CursorRow, e.CursorCol, e.FB.Cols-1)
		for r := e.CursorRow + 1; r < e.FB.Rows; r++ {
			e.FB.ClearRow(r)
		}
	case EraseToStart:
		for r := 0; r < e.CursorRow; r++ {
			e.FB.ClearRow(r)
		}
		e.FB.ClearRange(e.CursorRow, 0, e.CursorCol)
	case EraseAll:
		e.FB.ClearAll()
	}
}

// SetMargins sets the scrolling region, 0-indexed inclusive. An
// out-of-range top/bottom or bottom <= top is rejected outright, leaving
// the region (and cursor) exactly as they were, rather than clamped into
// range and applied anyway.
func (e *Emulator) SetMargins(top, bottom int) bool {
	if top < 0 || bottom >= e.FB.Rows || top >= bottom {
		return false
	}
	e.MarginTop, e.MarginBottom = top, bottom
	return true
}

func (e *Emulator) ResetMargins() {
	e.MarginTop, e.MarginBottom = 0, e.FB.Rows-1
}
