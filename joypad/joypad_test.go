package joypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStateIsAllReleased(t *testing.T) {
	j := New()
	j.Store(0, 0x20) // select direction row
	assert.Equal(t, byte(0x2F), j.Load(0))
}

func TestPressClearsActiveLowBit(t *testing.T) {
	j := New()
	j.Store(0, 0x20)
	j.Press(Right)
	assert.Equal(t, byte(0x2E), j.Load(0))
}

func TestReleaseRestoresBit(t *testing.T) {
	j := New()
	j.Store(0, 0x20)
	j.Press(Right)
	j.Release(Right)
	assert.Equal(t, byte(0x2F), j.Load(0))
}

func TestButtonRowIndependentOfDirectionRow(t *testing.T) {
	j := New()
	j.Press(A)
	j.Store(0, 0x20)
	assert.Equal(t, byte(0x2F), j.Load(0)) // direction row unaffected by A

	j.Store(0, 0x10)
	assert.Equal(t, byte(0x1E), j.Load(0)) // button row shows A pressed
}

func TestNoRowSelectedReadsAllOnes(t *testing.T) {
	j := New()
	j.Press(Start)
	j.Store(0, 0x30)
	assert.Equal(t, byte(0x3F), j.Load(0))
}
