package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/gone/bus"
)

func newTestCpu(program map[uint16]byte) *Cpu {
	cart := make([]byte, 0x8000)
	for addr, b := range program {
		cart[addr] = b
	}
	b := bus.New(cart)
	return New(b)
}

func TestADDHalfCarry(t *testing.T) {
	c := newTestCpu(map[uint16]byte{0x0100: 0xC6, 0x0101: 0x01}) // ADD A,d8
	c.Regs.A = 0x0F
	c.PC = 0x0100

	_, err := c.Step()

	assert.NoError(t, err)
	assert.Equal(t, byte(0x10), c.Regs.A)
	assert.True(t, c.Regs.F.HalfCarry)
	assert.False(t, c.Regs.F.Carry)
	assert.False(t, c.Regs.F.Zero)
}

func TestSubBorrow(t *testing.T) {
	c := newTestCpu(map[uint16]byte{0x0100: 0xD6, 0x0101: 0x01}) // SUB d8
	c.Regs.A = 0x00
	c.PC = 0x0100

	_, err := c.Step()

	assert.NoError(t, err)
	assert.Equal(t, byte(0xFF), c.Regs.A)
	assert.True(t, c.Regs.F.Carry)
	assert.True(t, c.Regs.F.Subtract)
}

func TestCPEqualSetsZero(t *testing.T) {
	c := newTestCpu(map[uint16]byte{0x0100: 0xFE, 0x0101: 0x42}) // CP d8
	c.Regs.A = 0x42
	c.PC = 0x0100

	_, err := c.Step()

	assert.NoError(t, err)
	assert.True(t, c.Regs.F.Zero)
	assert.Equal(t, byte(0x42), c.Regs.A) // CP never modifies A
}

func TestJRForward(t *testing.T) {
	c := newTestCpu(map[uint16]byte{0x0200: 0x18, 0x0201: 0x05}) // JR 0x05
	c.PC = 0x0200

	_, err := c.Step()

	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0207), c.PC)
}

func TestCallRetRoundTrip(t *testing.T) {
	c := newTestCpu(map[uint16]byte{
		0x0100: 0xCD, 0x0101: 0x34, 0x0102: 0x12, // CALL 0x1234
		0x1234: 0xC9, // RET
	})
	c.PC = 0x0100
	c.SP = 0xFFFE

	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), c.PC)
	assert.Equal(t, uint16(0xFFFC), c.SP)

	_, err = c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0103), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
}

func TestVBlankInterruptDispatch(t *testing.T) {
	c := newTestCpu(map[uint16]byte{0x0100: 0x00}) // NOP, never reached
	c.PC = 0x0100
	c.SP = 0xFFFE

	// force a well-defined applyPendingIME by enabling directly
	c.ime = Enabled
	c.Bus.IE = bus.VBlankBit
	c.Bus.IF = bus.VBlankBit

	cycles, err := c.Step()

	assert.NoError(t, err)
	assert.Equal(t, 20, cycles)
	assert.Equal(t, uint16(0x0040), c.PC)
	assert.Equal(t, Disabled, c.ime)
	assert.Equal(t, byte(0), c.Bus.IF&bus.VBlankBit)
	assert.Equal(t, uint16(0x0100), c.Bus.Load16(c.SP))
}

func TestEIThenDILeavesIMEDisabled(t *testing.T) {
	c := newTestCpu(map[uint16]byte{0x0100: 0xFB, 0x0101: 0xF3}) // EI ; DI
	c.PC = 0x0100

	c.Step() // EI
	c.Step() // DI
	c.Step() // settle pending

	assert.Equal(t, Disabled, c.ime)
}

func TestIncDecPreserveCarry(t *testing.T) {
	c := newTestCpu(map[uint16]byte{0x0100: 0x04}) // INC B
	c.PC = 0x0100
	c.Regs.B = 0xFF
	c.Regs.F.Carry = true

	_, err := c.Step()

	assert.NoError(t, err)
	assert.Equal(t, byte(0), c.Regs.B)
	assert.True(t, c.Regs.F.Zero)
	assert.True(t, c.Regs.F.Carry) // untouched by INC
}

func TestIllegalOpcodeReturnsErrDecode(t *testing.T) {
	c := newTestCpu(map[uint16]byte{0x0100: 0xD3}) // no table entry
	c.PC = 0x0100

	cycles, err := c.Step()

	assert.ErrorIs(t, err, ErrDecode)
	assert.Equal(t, 4, cycles) // still charged as a soft no-op
	assert.Equal(t, "???", c.LastName)
}

func TestCBBitTest(t *testing.T) {
	c := newTestCpu(map[uint16]byte{0x0100: 0xCB, 0x0101: 0x7F}) // BIT 7,A
	c.PC = 0x0100
	c.Regs.A = 0x7F // bit 7 clear

	_, err := c.Step()

	assert.NoError(t, err)
	assert.True(t, c.Regs.F.Zero)
	assert.True(t, c.Regs.F.HalfCarry)
	assert.False(t, c.Regs.F.Subtract)
}
