package emu

// MaxParams bounds how many numeric CSI parameters a single escape sequence
// may accumulate, guarding against an adversarial or runaway byte stream
// growing the slice without limit.
const MaxParams = 32

// Params accumulates the semicolon-separated numeric parameters of a CSI
// sequence (e.g. "1;30;47" in "ESC [ 1;30;47 m"). Unlike the full VTE
// grammar this package's CSI syntax has no colon-separated subparameters,
// so each parameter is a single int rather than a group.
type Params struct {
	values [MaxParams]int
	len    int
	// building is true while digits for the current parameter are being
	// accumulated; it makes the first digit after Reset or Separator open a
	// new parameter slot rather than extend the previous parameter.
	building bool
}

// Reset clears all accumulated parameters.
func (p *Params) Reset() {
	p.len = 0
	p.building = false
	for i := range p.values {
		p.values[i] = 0
	}
}

// Len returns the number of accumulated parameters.
func (p *Params) Len() int {
	return p.len
}

// IsFull reports whether another parameter would overflow MaxParams.
func (p *Params) IsFull() bool {
	return p.len >= MaxParams
}

// Digit folds a decimal digit byte into the current parameter, starting a
// new parameter slot the first time it's called after Reset or Separator.
func (p *Params) Digit(d byte) {
	if !p.building {
		if p.IsFull() {
			return
		}
		p.len++
		p.building = true
	}
	idx := p.len - 1
	// Clamp rather than overflow int on a pathologically long digit run.
	if p.values[idx] > (1<<31)/10 {
		return
	}
	p.values[idx] = p.values[idx]*10 + int(d-'0')
}

// Separator ends the current parameter (even if no digits were seen, which
// leaves it defaulted to zero) and makes room for the next one.
func (p *Params) Separator() {
	if !p.building {
		if p.IsFull() {
			return
		}
		p.len++
	}
	p.building = false
}

// Get returns the i'th parameter, or def if it was omitted (not present or
// left blank between separators, per the usual terminal convention that a
// blank CSI parameter means "use the default").
func (p *Params) Get(i int, def int) int {
	if i < 0 || i >= p.len {
		return def
	}
	if p.values[i] == 0 {
		return def
	}
	return p.values[i]
}

// GetRaw returns the i'th parameter with no default substitution, and
// whether it was present at all.
func (p *Params) GetRaw(i int) (int, bool) {
	if i < 0 || i >= p.len {
		return 0, false
	}
	return p.values[i], true
}

// All returns a copy of the accumulated parameters.
func (p *Params) All() []int {
	out := make([]int, p.len)
	copy(out, p.values[:p.len])
	return out
}
