package emu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVT05CursorMotionControlBytes(t *testing.T) {
	e := NewVT05(5, 5)
	e.SetCursorAbs(2, 2)
	e.Interpret(0x1a) // cursor up
	assert.Equal(t, 1, e.CursorRow)
	e.Interpret(0x0b) // cursor down
	assert.Equal(t, 2, e.CursorRow)
	e.Interpret(0x18) // cursor right
	assert.Equal(t, 3, e.CursorCol)
}

func TestVT05CursorRightScenario(t *testing.T) {
	// "a" + cursor-right + "b" on a fresh VT05:
	// 'a' lands at (0,0) and advances the cursor to (0,1); cursor-right
	// then steps to (0,2), so 'b' lands at (0,2).
	e := NewVT05(20, 72)
	e.InterpretBytes([]byte{'a', 0x18, 'b'})
	assert.Equal(t, byte('a'), byte(e.FB.Get(0, 0).Ch))
	assert.Equal(t, byte('b'), byte(e.FB.Get(0, 2).Ch))
	assert.Equal(t, 0, e.CursorRow)
	assert.Equal(t, 3, e.CursorCol)
}

func TestVT05CursorMotionClampsAtEdges(t *testing.T) {
	e := NewVT05(5, 5)
	e.Interpret(0x1a) // up, already at row 0
	assert.Equal(t, 0, e.CursorRow)
	e.SetCursorAbs(0, 4)
	e.Interpret(0x18) // right, already at last column
	assert.Equal(t, 4, e.CursorCol)
}

func TestVT05DirectCursorAddressing(t *testing.T) {
	e := NewVT05(10, 10)
	// 0x0e enters direct addressing; each following byte is row/col + 0x20.
	e.InterpretBytes([]byte{0x0e, byte(3 + 0x20), byte(4 + 0x20)})
	assert.Equal(t, 3, e.CursorRow)
	assert.Equal(t, 4, e.CursorCol)
	assert.Equal(t, Normal, e.State)
}

func TestVT05DirectCursorAddressingRetriesOnOutOfRangeByte(t *testing.T) {
	e := NewVT05(5, 5)
	e.Interpret(0x0e)
	e.Interpret(byte(9 + 0x20)) // row 9 is out of range for a 5-row screen
	assert.Equal(t, CursorAddressArg1, e.State, "an out-of-range row byte is discarded and the state persists")
	e.Interpret(byte(2 + 0x20)) // retry with a valid row
	assert.Equal(t, CursorAddressArg2, e.State)
	e.Interpret(byte(9 + 0x20)) // now an out-of-range column byte
	assert.Equal(t, CursorAddressArg2, e.State)
	e.Interpret(byte(3 + 0x20))
	assert.Equal(t, Normal, e.State)
	assert.Equal(t, 2, e.CursorRow)
	assert.Equal(t, 3, e.CursorCol)
}

func TestVT05HomeAndErase(t *testing.T) {
	e := NewVT05(3, 3)
	e.InterpretBytes([]byte("abc"))
	e.Interpret(0x1d) // home
	assert.Equal(t, 0, e.CursorRow)
	assert.Equal(t, 0, e.CursorCol)
	e.Interpret(0x1e) // erase to end of line
	assert.Equal(t, "   ", e.FB.RowString(0))
}

func TestVT05EraseScreenClearsCurrentLineAndBelow(t *testing.T) {
	e := NewVT05(3, 3)
	e.InterpretBytes([]byte("abc\r\ndef"))
	e.SetCursorAbs(0, 1)
	e.Interpret(0x1f) // erase from cursor to end of screen
	assert.Equal(t, "a  ", e.FB.RowString(0))
	assert.Equal(t, "   ", e.FB.RowString(1))
}

func TestVT05TabStopTable(t *testing.T) {
	e := NewVT05(1, 72)
	e.Interpret('\t')
	assert.Equal(t, 8, e.CursorCol)
	assert.Equal(t, byte('\t'), byte(e.FB.Get(0, 0).Ch))

	e.SetCursorAbs(0, 60)
	e.Interpret('\t')
	assert.Equal(t, 64, e.CursorCol)

	e.SetCursorAbs(0, 64)
	e.Interpret('\t')
	assert.Equal(t, 65, e.CursorCol)

	e.SetCursorAbs(0, 71)
	e.Interpret('\t')
	assert.Equal(t, 71, e.CursorCol, "no stop past the last column")
	assert.False(t, e.FB.Get(0, 71).Set, "a tab at the last column does not overwrite it")
}

func TestVT05InheritsDumbPrintableAndControlBytes(t *testing.T) {
	e := NewVT05(2, 5)
	e.InterpretBytes([]byte("ab\r\ncd"))
	assert.Equal(t, "ab   ", e.FB.RowString(0))
	assert.Equal(t, "cd   ", e.FB.RowString(1))
}
