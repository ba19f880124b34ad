package emu

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Dump renders the framebuffer as a bordered grid with column tens/ones
// header and a two-character row label, for pasting into a failing test's
// output. The exact layout (tens row printed only every ten columns, a
// "+---+"-style rule, row % 10 as the row label except on every tenth
// row, which shows row % 100) follows the debug dump
// convention this library has always used.
func (e *Emulator) Dump() string {
	var b strings.Builder
	writeDump(&b, e.FB, e.dumpCell(false))
	return b.String()
}

// DumpTo writes the same dump to w. On a profile with an SGR-aware dumpCell
// hook (VT100 and Typical), cells are wrapped in SGR escapes reflecting
// their attributes when w is a terminal; other profiles and non-terminal
// sinks always render plain text.
func (e *Emulator) DumpTo(w io.Writer) {
	isTTY := false
	if f, ok := w.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	var b strings.Builder
	writeDump(&b, e.FB, e.dumpCell(isTTY))
	io.WriteString(w, b.String())
}

// dumpCell returns the per-cell renderer for this profile: plain text
// unless dumpCellFn was overridden (VT100/Typical), in which case it is
// only consulted when the sink is a TTY.
func (e *Emulator) dumpCell(isTTY bool) func(Cell) string {
	if isTTY && e.dumpCellFn != nil {
		return e.dumpCellFn
	}
	return plainDumpCell
}

func plainDumpCell(c Cell) string {
	if !c.Set || c.Ch == '\t' {
		return " "
	}
	return string(c.Ch)
}

// sgrDumpCell wraps a cell's glyph in SGR escapes reflecting its
// attributes, the way a VT100/Typical dump highlights bold/underscore/
// blink/reverse text instead of rendering it indistinguishably from plain
// text.
func sgrDumpCell(c Cell) string {
	glyph := plainDumpCell(c)
	if c.Attrs == 0 {
		return glyph
	}
	var codes []string
	if c.Attrs.Has(Bold) {
		codes = append(codes, "1")
	}
	if c.Attrs.Has(Underscore) {
		codes = append(codes, "4")
	}
	if c.Attrs.Has(Blink) {
		codes = append(codes, "5")
	}
	if c.Attrs.Has(Reverse) {
		codes = append(codes, "7")
	}
	if len(codes) == 0 {
		return glyph
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + glyph + "\x1b[0m"
}

// Dump renders the framebuffer plainly, with no attribute styling -- used
// directly by tests and by any caller without an Emulator (and thus no
// profile-specific dumpCell hook) to hand.
func (fb *Framebuffer) Dump() string {
	var b strings.Builder
	writeDump(&b, fb, plainDumpCell)
	return b.String()
}

func writeDump(b *strings.Builder, fb *Framebuffer, renderCell func(Cell) string) {
	writeColumnRuler(b, fb.Cols)

	rule := "  +" + strings.Repeat("-", fb.Cols) + "+\n"
	b.WriteString(rule)

	for r := 0; r < fb.Rows; r++ {
		label := rowLabel(r)
		b.WriteString(label)
		b.WriteByte('|')
		for c := 0; c < fb.Cols; c++ {
			b.WriteString(renderCell(fb.Get(r, c)))
		}
		b.WriteByte('|')
		b.WriteString(label)
		b.WriteByte('\n')
	}

	b.WriteString(rule)
	writeColumnRuler(b, fb.Cols)
}

// rowLabel is two characters wide: the last digit of the row number,
// except every tenth row where both digits appear as a visual anchor.
func rowLabel(r int) string {
	if r%10 == 0 && r != 0 {
		return fmt.Sprintf("%2d", r%100)
	}
	return fmt.Sprintf(" %d", r%10)
}

// writeColumnRuler writes the two-line column header/footer: a tens digit
// above every tenth column, then the ones digit of every column.
func writeColumnRuler(b *strings.Builder, cols int) {
	b.WriteString("   ")
	for c := 0; c < cols; c++ {
		if c%10 == 0 && c > 0 {
			fmt.Fprintf(b, "%d", (c/10)%10)
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('\n')

	b.WriteString("   ")
	for c := 0; c < cols; c++ {
		fmt.Fprintf(b, "%d", c%10)
	}
	b.WriteByte('\n')
}
