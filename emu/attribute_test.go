package emu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeSetClearHas(t *testing.T) {
	var a Attribute
	a = a.Set(Bold).Set(Underscore)
	assert.True(t, a.Has(Bold))
	assert.True(t, a.Has(Underscore))
	assert.False(t, a.Has(Blink))

	a = a.Clear(Bold)
	assert.False(t, a.Has(Bold))
	assert.True(t, a.Has(Underscore))
}

func TestAttributeString(t *testing.T) {
	assert.Equal(t, "none", Attribute(0).String())
	assert.Equal(t, "bold|reverse", (Bold | Reverse).String())
}
