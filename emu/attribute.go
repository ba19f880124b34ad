package emu

// Attribute is a bitmask of the monochrome character attributes this
// package supports. Colour is out of scope: a real terminal's SGR table
// has dozens of codes, but a test harness only needs to assert on the
// handful that change how a character reads on a monochrome screen.
type Attribute uint8

const (
	Bold Attribute = 1 << iota
	Underscore
	Blink
	Reverse
)

// Has reports whether all bits in want are set in a.
func (a Attribute) Has(want Attribute) bool {
	return a&want == want
}

// Set returns a with want's bits set.
func (a Attribute) Set(want Attribute) Attribute {
	return a | want
}

// Clear returns a with want's bits cleared.
func (a Attribute) Clear(want Attribute) Attribute {
	return a &^ want
}

func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	s := ""
	add := func(name string, bit Attribute) {
		if a.Has(bit) {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	add("bold", Bold)
	add("underscore", Underscore)
	add("blink", Blink)
	add("reverse", Reverse)
	return s
}
