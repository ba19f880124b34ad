package emu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumbPrintableChars(t *testing.T) {
	e := NewDumb(5, 10)
	e.InterpretBytes([]byte("hi"))
	assert.Equal(t, "hi        "[:10], e.FB.RowString(0))
	assert.Equal(t, 2, e.CursorCol)
}

func TestDumbCarriageReturnLineFeed(t *testing.T) {
	e := NewDumb(3, 5)
	e.InterpretBytes([]byte("ab\r\ncd"))
	assert.Equal(t, "ab   ", e.FB.RowString(0))
	assert.Equal(t, "cd   ", e.FB.RowString(1))
	assert.Equal(t, 1, e.CursorRow)
	assert.Equal(t, 2, e.CursorCol)
}

func TestDumbBackspace(t *testing.T) {
	e := NewDumb(1, 5)
	e.InterpretBytes([]byte("ab\b"))
	assert.Equal(t, 1, e.CursorCol)
}

func TestDumbTabStopsAtEvery8Columns(t *testing.T) {
	e := NewDumb(1, 20)
	e.Interpret('\t')
	assert.Equal(t, 8, e.CursorCol)
	e.Interpret('\t')
	assert.Equal(t, 16, e.CursorCol)
}

func TestDumbTabClampsAtLastColumnWithoutWriting(t *testing.T) {
	e := NewDumb(1, 10)
	e.CursorCol = 9
	e.Interpret('\t')
	assert.Equal(t, 9, e.CursorCol)
	assert.False(t, e.FB.Get(0, 9).Set, "clamped tab must not write a space into the final cell")
}

func TestDumbIgnoresEscapeBytes(t *testing.T) {
	e := NewDumb(1, 5)
	e.InterpretBytes([]byte{0x1b, '[', '2', 'J'})
	e.Interpret('x')
	assert.Equal(t, "[2Jx ", e.FB.RowString(0), "dumb terminal absorbs ESC and prints the bytes after it as ordinary characters, not a sequence")
}

func TestDumbScrollsAtBottomOfScreen(t *testing.T) {
	e := NewDumb(2, 3)
	e.InterpretBytes([]byte("ab\r\ncd\r\nef"))
	assert.Equal(t, "cd ", e.FB.RowString(0))
	assert.Equal(t, "ef ", e.FB.RowString(1))
}

func TestDumbAutoWrapsOntoNextRowByDefault(t *testing.T) {
	e := NewDumb(2, 3)
	e.InterpretBytes([]byte("abcd"))
	// Auto-wrap defaults on for the dumb profile: the fourth character
	// spills onto the next row instead of clamping onto the last column.
	assert.Equal(t, "abc", e.FB.RowString(0))
	assert.Equal(t, "d  ", e.FB.RowString(1))
	assert.Equal(t, 1, e.CursorRow)
	assert.Equal(t, 1, e.CursorCol)
}

func TestDumbFillRowThenWrapScenario(t *testing.T) {
	// 80 'x' fill row 0 of a 24x80 screen exactly, and the 81st byte
	// ('y') spills onto row 1.
	e := NewDumb(24, 80)
	e.InterpretBytes(bytesOf('x', 80))
	e.Interpret('y')
	assert.Equal(t, byte('x'), byte(e.FB.Get(0, 79).Ch))
	assert.Equal(t, byte('y'), byte(e.FB.Get(1, 0).Ch))
	assert.Equal(t, 1, e.CursorRow)
	assert.Equal(t, 1, e.CursorCol)
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
