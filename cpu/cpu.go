// Package cpu implements the LR35902 instruction decoder and executor:
// registers, flags, the primary and CB-prefixed opcode tables, and the
// interrupt service pipeline.
//
// Structurally this keeps the teacher's shape (a Cpu struct wired to a
// bus, a map[byte]Opcode decode table, per-mnemonic exec funcs) from
// hejops-gone/cpu, but every register, flag, opcode and timing value below
// is LR35902, not 6502. The teacher's debugger lives in package debug.
package cpu

import (
	"errors"
	"fmt"

	"github.com/hejops/gone/bus"
	"github.com/hejops/gone/logging"
	"github.com/hejops/gone/mask"
)

// ErrDecode is the sentinel for an opcode byte with no table entry. Step
// charges such a byte as a 4-cycle no-op, logs it at error level, and
// returns it wrapped with the opcode and address; the caller decides
// whether to stop.
var ErrDecode = errors.New("cpu: illegal opcode")

// ErrInvalidOperand is reserved for an executor encountering an operand
// shape it can't handle -- an invariant violation in the decode tables
// rather than anything a ROM can trigger. No opcode table entry in this
// package currently produces it.
var ErrInvalidOperand = errors.New("cpu: invalid operand")

// Flags holds the four condition flags packed into the high nibble of F
// (Z=bit 7, N=bit 6, H=bit 5, C=bit 4); the low nibble is always zero.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

func flagsFromByte(b byte) Flags {
	return Flags{
		Zero:      mask.IsSet(b, mask.I1),
		Subtract:  mask.IsSet(b, mask.I2),
		HalfCarry: mask.IsSet(b, mask.I3),
		Carry:     mask.IsSet(b, mask.I4),
	}
}

func (f Flags) Byte() byte {
	var b byte
	if f.Zero {
		b = mask.Set(b, mask.I1, 1)
	}
	if f.Subtract {
		b = mask.Set(b, mask.I2, 1)
	}
	if f.HalfCarry {
		b = mask.Set(b, mask.I3, 1)
	}
	if f.Carry {
		b = mask.Set(b, mask.I4, 1)
	}
	return b
}

// IMEState models the interrupt-master-enable, including the one
// instruction of latency EI/DI each carry before taking effect.
type IMEState int

const (
	Disabled IMEState = iota
	Enabled
	EnableAfterNext
	DisableAfterNext
)

// Registers holds the eight 8-bit registers, exposed through the standard
// AF/BC/DE/HL pair accessors.
type Registers struct {
	A, B, C, D, E, H, L byte
	F                   Flags
}

func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F.Byte()) }
func (r *Registers) SetAF(v uint16) {
	r.A = byte(v >> 8)
	r.F = flagsFromByte(byte(v))
}

func (r *Registers) BC() uint16     { return uint16(r.B)<<8 | uint16(r.C) }
func (r *Registers) SetBC(v uint16) { r.B = byte(v >> 8); r.C = byte(v) }

func (r *Registers) DE() uint16     { return uint16(r.D)<<8 | uint16(r.E) }
func (r *Registers) SetDE(v uint16) { r.D = byte(v >> 8); r.E = byte(v) }

func (r *Registers) HL() uint16     { return uint16(r.H)<<8 | uint16(r.L) }
func (r *Registers) SetHL(v uint16) { r.H = byte(v >> 8); r.L = byte(v) }

// Cpu is the decode/execute engine, wired to a bus.Bus the same way the
// teacher's Cpu wires to a mem.Bus.
type Cpu struct {
	Bus *bus.Bus

	Regs Registers
	SP   uint16
	PC   uint16

	ime IMEState

	Halted  bool
	Stopped bool

	// LastOpcode/LastName record the most recently decoded instruction,
	// for the debugger and Trace().
	LastOpcode byte
	LastName   string
	Cycles     int
}

// New returns a Cpu ready to run from the cartridge entry point (0x0100),
// with the post-boot-ROM register and stack state real hardware leaves
// behind.
func New(b *bus.Bus) *Cpu {
	c := &Cpu{Bus: b}
	c.Regs.SetAF(0x01B0)
	c.Regs.SetBC(0x0013)
	c.Regs.SetDE(0x00D8)
	c.Regs.SetHL(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.ime = Disabled
	return c
}

// interrupt source table, in priority order, with vector and IF/IE bit.
type interruptSource struct {
	bit    byte
	vector uint16
	name   string
}

var interruptSources = []interruptSource{
	{bus.VBlankBit, 0x0040, "VBlank"},
	{bus.LCDStatBit, 0x0048, "LCDStat"},
	{bus.TimerBit, 0x0050, "Timer"},
	{bus.SerialBit, 0x0058, "Serial"},
	{bus.JoypadBit, 0x0060, "Joypad"},
}

// serviceInterrupt checks for a pending, enabled interrupt and, if found,
// pushes PC, jumps to its vector, clears the IF bit and disables IME. It
// returns the number of cycles consumed (20) and whether it serviced one.
//
// A pending interrupt always wakes the CPU from HALT, even with IME
// disabled; it is only dispatched (IF cleared, PC redirected) when IME is
// enabled.
func (c *Cpu) serviceInterrupt() (int, bool) {
	pending := c.Bus.IF & c.Bus.IE & 0x1F
	if pending != 0 {
		c.Halted = false
	}
	if c.ime != Enabled || pending == 0 {
		return 0, false
	}

	for _, src := range interruptSources {
		if pending&src.bit == 0 {
			continue
		}
		c.ime = Disabled
		c.Bus.IF &^= src.bit
		c.pushStack(c.PC)
		c.PC = src.vector
		return 20, true
	}
	return 0, false
}

func (c *Cpu) pushStack(v uint16) {
	c.SP -= 2
	c.Bus.Store16(c.SP, v)
}

func (c *Cpu) popStack() uint16 {
	v := c.Bus.Load16(c.SP)
	c.SP += 2
	return v
}

// applyPendingIME resolves a one-instruction-delayed EI/DI transition
// queued by the previous instruction.
func (c *Cpu) applyPendingIME() {
	switch c.ime {
	case EnableAfterNext:
		c.ime = Enabled
	case DisableAfterNext:
		c.ime = Disabled
	}
}

// Step executes exactly one instruction (or services one interrupt, or
// idles one tick while halted) and returns the number of T-cycles it
// consumed. It returns a non-nil error, wrapping ErrDecode, when the
// fetched byte has no table entry; the caller decides whether to keep
// running or terminate.
func (c *Cpu) Step() (int, error) {
	if cycles, serviced := c.serviceInterrupt(); serviced {
		return cycles, nil
	}

	c.applyPendingIME()

	if c.Halted {
		return 4, nil
	}

	pc0 := c.PC
	opByte := c.Bus.Load8(pc0)

	var op Opcode
	var consumed uint16
	if opByte == 0xCB {
		cbByte := c.Bus.Load8(pc0 + 1)
		op = cbOpcodes[cbByte]
		consumed = 2
		c.LastOpcode = cbByte
	} else {
		op = opcodes[opByte]
		consumed = 1
		c.LastOpcode = opByte
	}
	c.LastName = op.Name
	c.PC = pc0 + consumed

	if op.Exec == nil {
		c.LastName = "???"
		err := fmt.Errorf("%w: 0x%02x at 0x%04x", ErrDecode, c.LastOpcode, pc0)
		logging.Logger().Error().Err(err).Msg("cpu: decode failed")
		return 4, err
	}

	extra, jumped := op.Exec(c)
	if !jumped {
		remaining := uint16(op.Length) - consumed
		c.PC += remaining
	}

	c.Cycles += int(op.Cycles) + extra
	return int(op.Cycles) + extra, nil
}

// Trace formats the current CPU state the way the Rust original's
// Cpu::dump did: registers, flags, stack pointer and the last decoded
// mnemonic.
func (c *Cpu) Trace() string {
	return fmt.Sprintf(
		"PC:%04X OP:%s AF:%04X BC:%04X DE:%04X HL:%04X SP:%04X Z:%v N:%v H:%v C:%v IME:%v",
		c.PC, c.LastName,
		c.Regs.AF(), c.Regs.BC(), c.Regs.DE(), c.Regs.HL(), c.SP,
		c.Regs.F.Zero, c.Regs.F.Subtract, c.Regs.F.HalfCarry, c.Regs.F.Carry,
		c.ime,
	)
}
