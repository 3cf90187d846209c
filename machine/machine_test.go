package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/gone/bus"
	"github.com/hejops/gone/cpu"
	"github.com/hejops/gone/joypad"
)

func TestNewMachineResetsToCartridgeEntryPoint(t *testing.T) {
	m := New(make([]byte, 0x8000))
	assert.Equal(t, uint16(0x0100), m.CPU.PC)
}

func TestAdvanceFrameStopsExactlyOnVBlank(t *testing.T) {
	cart := make([]byte, 0x8000)
	m := New(cart) // ROM is all zero -> all NOPs, 4 cycles each

	_, err := m.AdvanceFrame()

	assert.NoError(t, err)
	assert.True(t, m.Bus.IF&bus.VBlankBit != 0)
	// the PPU's own scanline FSM, not a fixed cycle counter, decides when
	// the frame ends: from reset the first VBlank comes after the 144
	// visible lines (144*456 = 65664 cycles), and whichever instruction
	// straddles the VBlank boundary can overshoot it.
	assert.InDelta(t, 144*456, m.CPU.Cycles, 8)
}

func TestAdvanceFrameStaysInLockstepAcrossRepeatedCalls(t *testing.T) {
	cart := make([]byte, 0x8000)
	m := New(cart)

	// the first call from reset ends at the first VBlank, 144 lines in;
	// every call after that spans one full 154-line frame.
	_, err := m.AdvanceFrame()
	assert.NoError(t, err)

	for i := 0; i < 5; i++ {
		before := m.CPU.Cycles
		_, err := m.AdvanceFrame()
		assert.NoError(t, err)
		assert.InDelta(t, CyclesPerFrame, m.CPU.Cycles-before, 8)
	}
}

func TestAdvanceFrameStopsOnDecodeError(t *testing.T) {
	cart := make([]byte, 0x8000)
	cart[0x0100] = 0xD3 // illegal opcode, no table entry
	m := New(cart)

	_, err := m.AdvanceFrame()

	assert.ErrorIs(t, err, cpu.ErrDecode)
}

func TestPressRaisesJoypadInterruptFlag(t *testing.T) {
	m := New(make([]byte, 0x8000))
	m.Press(joypad.Right)
	assert.NotEqual(t, byte(0), m.Bus.IF&bus.JoypadBit)
}
