// Package vtty is the facade tests actually construct: pick an emulation
// by name, feed it bytes, assert on what the screen looks like.
package vtty

import (
	"fmt"
	"io"
	"log"

	"github.com/travisbca/lousy-go/emu"
)

// ErrUnsupportedEmulation is wrapped with the offending name and returned
// by New when asked for an emulation this library doesn't implement.
var ErrUnsupportedEmulation = fmt.Errorf("unsupported emulation")

// ByteSource is anything that wants to observe a stream of output bytes as
// they arrive -- the Go shape of "any object with an append(bytes)
// operation". A process.Process mirrors a child's stdout into one of
// these every time it reads a chunk.
type ByteSource interface {
	Append(p []byte)
}

// Vtty wraps an emu.Emulator behind the name a test configured it with.
// It implements ByteSource so a process.Process (or anything else with
// bytes to mirror) can be pointed at it directly.
type Vtty struct {
	Emulation string
	emulator  *emu.Emulator
}

type constructor func(rows, cols int) *emu.Emulator

var supported = map[string]constructor{
	"dumb":    emu.NewDumb,
	"vt05":    emu.NewVT05,
	"vt100":   emu.NewVT100,
	"typical": emu.NewTypical,
}

// New builds a Vtty running the named emulation at the given geometry.
// The name "true" is accepted as an alias for "vt100", a convenience
// carried over from this library's earliest callers.
func New(emulation string, rows, cols int) (*Vtty, error) {
	if emulation == "true" {
		emulation = "vt100"
	}
	ctor, ok := supported[emulation]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEmulation, emulation)
	}
	return &Vtty{Emulation: emulation, emulator: ctor(rows, cols)}, nil
}

// SetDebug turns on per-unknown-sequence debug logging, written to logger
// (or the standard logger if nil).
func (v *Vtty) SetDebug(on bool, logger *log.Logger) {
	v.emulator.Debug = on
	if logger != nil {
		v.emulator.DebugLog = logger
	}
}

// Append feeds p to the underlying emulator. It satisfies the ByteSource
// interface so a process.Process can mirror its child's output straight
// into this Vtty.
func (v *Vtty) Append(p []byte) {
	v.emulator.InterpretBytes(p)
}

func (v *Vtty) Rows() int { return v.emulator.FB.Rows }
func (v *Vtty) Cols() int { return v.emulator.FB.Cols }

// Title returns the window title most recently set by an OSC 0/2 sequence
// (Typical only; always empty on profiles that don't parse OSC strings).
func (v *Vtty) Title() string { return v.emulator.Title }

// IconName returns the icon name most recently set by an OSC 0/1 sequence
// (Typical only; always empty on profiles that don't parse OSC strings).
func (v *Vtty) IconName() string { return v.emulator.IconName }

// Cell returns the cell at (row, col).
func (v *Vtty) Cell(row, col int) emu.Cell {
	return v.emulator.FB.Get(row, col)
}

// RowString returns row's visible characters, blanks rendered as spaces.
func (v *Vtty) RowString(row int) string {
	return v.emulator.FB.RowString(row)
}

// String returns size characters starting at (row, col) reading
// rightwards, stopping at the right edge without wrapping. Blank cells
// contribute nothing to the result.
func (v *Vtty) String(row, col, size int) string {
	return v.emulator.FB.String(row, col, size)
}

// CursorPosition returns the 0-indexed (row, col) of the cursor.
func (v *Vtty) CursorPosition() (int, int) {
	return v.emulator.CursorRow, v.emulator.CursorCol
}

// SnapshotScreen returns a deep copy of the current framebuffer contents,
// safe to hold across further writes, for building a fixture to compare
// against later.
func (v *Vtty) SnapshotScreen() [][]emu.Cell {
	return v.emulator.FB.Snapshot()
}

// Equal compares this Vtty's current screen to another's, strictly
// (blank != space).
func (v *Vtty) Equal(other *Vtty) (bool, *emu.FramebufferMismatch) {
	return v.emulator.FB.Equal(other.emulator.FB)
}

// EqualLoose compares this Vtty's current screen to another's, treating a
// blank cell as equivalent to a space.
func (v *Vtty) EqualLoose(other *Vtty) (bool, *emu.FramebufferMismatch) {
	return v.emulator.FB.EqualLoose(other.emulator.FB)
}

// Dump renders the current screen for debug output.
func (v *Vtty) Dump() string {
	return v.emulator.Dump()
}

// DumpTo renders the current screen to w, the same as Dump, except cells
// carrying attributes are wrapped in SGR escapes when w is a terminal.
func (v *Vtty) DumpTo(w io.Writer) {
	v.emulator.DumpTo(w)
}
