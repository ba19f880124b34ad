package emu

// Cell is one position in a Framebuffer. Set distinguishes a blank cell
// (never written, or cleared) from a cell holding an actual space
// character: the two render identically but are not the same thing, and
// FramebufferMismatch reports them as distinct unless EqualLoose is used.
type Cell struct {
	Ch    rune
	Set   bool
	Attrs Attribute
}

// Blank is the zero-value cell: unset, no character, no attributes.
var Blank = Cell{}

// WithChar returns a copy of the cell holding r, marked as set.
func (c Cell) WithChar(r rune) Cell {
	c.Ch = r
	c.Set = true
	return c
}

// EqualStrict compares both the character/set state and attributes.
func (c Cell) EqualStrict(o Cell) bool {
	return c.Set == o.Set && c.Ch == o.Ch && c.Attrs == o.Attrs
}

// EqualLoose compares two cells treating an unset cell as equivalent to a
// cell holding a plain space with no attributes.
func (c Cell) EqualLoose(o Cell) bool {
	return c.normalize() == o.normalize()
}

func (c Cell) normalize() Cell {
	if !c.Set {
		return Cell{Ch: ' ', Set: true}
	}
	return c
}
