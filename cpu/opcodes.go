package cpu

import "fmt"

// Opcode describes one decoded instruction: its display Name (for the
// debugger and Trace()), its total byte Length (including the opcode byte
// itself, and the CB prefix byte for cbOpcodes), its base Cycles, and the
// Exec func that performs it.
//
// Exec reads any operand bytes itself, via the Cpu's Bus at the Cpu's
// current PC (which Step leaves pointing at the first operand byte, if
// any). It returns the number of extra T-cycles consumed (e.g. a taken
// branch) and whether it redirected PC itself (a jump/call/ret/rst), in
// which case Step does not perform its own generic PC advance.
type Opcode struct {
	Name    string
	Length  byte
	Cycles  byte
	Exec    func(c *Cpu) (extra int, jumped bool)
}

var opcodes = map[byte]Opcode{}
var cbOpcodes = map[byte]Opcode{}

var regOrder = [8]reg8{regB, regC, regD, regE, regH, regL, regHLInd, regA}
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

var pairOrder = [4]reg16{pairBC, pairDE, pairHL, pairSP}
var pairNames = [4]string{"BC", "DE", "HL", "SP"}

var stackOrder = [4]stackPair{stackBC, stackDE, stackHL, stackAF}
var stackNames = [4]string{"BC", "DE", "HL", "AF"}

type condition int

const (
	condNZ condition = iota
	condZ
	condNC
	condC
)

var condNames = [4]string{"NZ", "Z", "NC", "C"}

func condTaken(c *Cpu, cc condition) bool {
	switch cc {
	case condNZ:
		return !c.Regs.F.Zero
	case condZ:
		return c.Regs.F.Zero
	case condNC:
		return !c.Regs.F.Carry
	case condC:
		return c.Regs.F.Carry
	}
	return false
}

func init() {
	buildLoadGrid()
	buildALUGrid()
	buildIncDecGrid()
	buildImmediateLoadGrid()
	build16BitGrid()
	buildStackGrid()
	buildBranchGrid()
	buildRSTGrid()
	buildIrregular()
	buildCBTable()
}

// buildLoadGrid covers the LD r,r' family at 0x40-0x7F, excluding 0x76
// (HALT, which occupies the LD (HL),(HL) slot).
func buildLoadGrid() {
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			opcode := byte(0x40 + dst*8 + src)
			if dst == 6 && src == 6 {
				continue // HALT
			}
			d, s := regOrder[dst], regOrder[src]
			cycles := byte(4)
			if d == regHLInd || s == regHLInd {
				cycles = 8
			}
			opcodes[opcode] = Opcode{
				Name:   "LD " + regNames[dst] + "," + regNames[src],
				Length: 1,
				Cycles: cycles,
				Exec: func(c *Cpu) (int, bool) {
					set8(c, d, get8(c, s))
					return 0, false
				},
			}
		}
	}
}

// buildALUGrid covers the 8-op ALU-against-register family at 0x80-0xBF.
func buildALUGrid() {
	ops := []struct {
		name string
		fn   func(c *Cpu, v byte)
	}{
		{"ADD A,", aluAdd}, {"ADC A,", aluAdc}, {"SUB ", aluSub}, {"SBC A,", aluSbc},
		{"AND ", aluAnd}, {"XOR ", aluXor}, {"OR ", aluOr}, {"CP ", aluCp},
	}
	for opIdx, op := range ops {
		for r := 0; r < 8; r++ {
			opcode := byte(0x80 + opIdx*8 + r)
			src := regOrder[r]
			fn := op.fn
			cycles := byte(4)
			if src == regHLInd {
				cycles = 8
			}
			opcodes[opcode] = Opcode{
				Name:   op.name + regNames[r],
				Length: 1,
				Cycles: cycles,
				Exec: func(c *Cpu) (int, bool) {
					fn(c, get8(c, src))
					return 0, false
				},
			}
		}
	}
}

// buildIncDecGrid covers INC r / DEC r at 0x04/0x05 + 8*r.
func buildIncDecGrid() {
	for r := 0; r < 8; r++ {
		reg := regOrder[r]
		cycles := byte(4)
		if reg == regHLInd {
			cycles = 12
		}
		opcodes[byte(0x04+8*r)] = Opcode{
			Name: "INC " + regNames[r], Length: 1, Cycles: cycles,
			Exec: func(c *Cpu) (int, bool) { inc8(c, reg); return 0, false },
		}
		opcodes[byte(0x05+8*r)] = Opcode{
			Name: "DEC " + regNames[r], Length: 1, Cycles: cycles,
			Exec: func(c *Cpu) (int, bool) { dec8(c, reg); return 0, false },
		}
	}
}

// buildImmediateLoadGrid covers LD r,d8 (0x06+8*r) and the immediate ALU
// family (0xC6+8*opIdx).
func buildImmediateLoadGrid() {
	for r := 0; r < 8; r++ {
		reg := regOrder[r]
		cycles := byte(8)
		if reg == regHLInd {
			cycles = 12
		}
		opcodes[byte(0x06+8*r)] = Opcode{
			Name: "LD " + regNames[r] + ",d8", Length: 2, Cycles: cycles,
			Exec: func(c *Cpu) (int, bool) {
				set8(c, reg, c.Bus.Load8(c.PC))
				return 0, false
			},
		}
	}

	ops := []struct {
		name string
		fn   func(c *Cpu, v byte)
	}{
		{"ADD A,d8", aluAdd}, {"ADC A,d8", aluAdc}, {"SUB d8", aluSub}, {"SBC A,d8", aluSbc},
		{"AND d8", aluAnd}, {"XOR d8", aluXor}, {"OR d8", aluOr}, {"CP d8", aluCp},
	}
	for i, op := range ops {
		fn := op.fn
		opcodes[byte(0xC6+8*i)] = Opcode{
			Name: op.name, Length: 2, Cycles: 8,
			Exec: func(c *Cpu) (int, bool) {
				fn(c, c.Bus.Load8(c.PC))
				return 0, false
			},
		}
	}
}

// build16BitGrid covers LD rr,d16 / INC rr / DEC rr / ADD HL,rr, each at a
// 0x10-step over BC,DE,HL,SP.
func build16BitGrid() {
	for i := 0; i < 4; i++ {
		pair := pairOrder[i]
		name := pairNames[i]
		base := byte(0x10 * i)

		opcodes[0x01+base] = Opcode{
			Name: "LD " + name + ",d16", Length: 3, Cycles: 12,
			Exec: func(c *Cpu) (int, bool) {
				set16(c, pair, c.Bus.Load16(c.PC))
				return 0, false
			},
		}
		opcodes[0x03+base] = Opcode{
			Name: "INC " + name, Length: 1, Cycles: 8,
			Exec: func(c *Cpu) (int, bool) { set16(c, pair, get16(c, pair)+1); return 0, false },
		}
		opcodes[0x0B+base] = Opcode{
			Name: "DEC " + name, Length: 1, Cycles: 8,
			Exec: func(c *Cpu) (int, bool) { set16(c, pair, get16(c, pair)-1); return 0, false },
		}
		opcodes[0x09+base] = Opcode{
			Name: "ADD HL," + name, Length: 1, Cycles: 8,
			Exec: func(c *Cpu) (int, bool) {
				hl := c.Regs.HL()
				v := get16(c, pair)
				sum := uint32(hl) + uint32(v)
				c.Regs.F.HalfCarry = (hl&0xFFF)+(v&0xFFF) > 0xFFF
				c.Regs.F.Carry = sum > 0xFFFF
				c.Regs.F.Subtract = false
				c.Regs.SetHL(uint16(sum))
				return 0, false
			},
		}
	}
}

// buildStackGrid covers PUSH rr (0xC5+16*i) and POP rr (0xC1+16*i), over
// BC,DE,HL,AF.
func buildStackGrid() {
	for i := 0; i < 4; i++ {
		pair := stackOrder[i]
		name := stackNames[i]
		base := byte(0x10 * i)

		opcodes[0xC5+base] = Opcode{
			Name: "PUSH " + name, Length: 1, Cycles: 16,
			Exec: func(c *Cpu) (int, bool) {
				c.pushStack(getStackPair(c, pair))
				return 0, false
			},
		}
		opcodes[0xC1+base] = Opcode{
			Name: "POP " + name, Length: 1, Cycles: 12,
			Exec: func(c *Cpu) (int, bool) {
				setStackPair(c, pair, c.popStack())
				return 0, false
			},
		}
	}
}

// buildBranchGrid covers JR/JP/CALL/RET, both conditional (over
// NZ,Z,NC,C) and unconditional.
func buildBranchGrid() {
	conds := [4]condition{condNZ, condZ, condNC, condC}

	opcodes[0x18] = Opcode{
		Name: "JR r8", Length: 2, Cycles: 12,
		Exec: func(c *Cpu) (int, bool) {
			off := int8(c.Bus.Load8(c.PC))
			c.PC = uint16(int32(c.PC) + 1 + int32(off))
			return 0, true
		},
	}
	for i, cc := range conds {
		cc := cc
		opcodes[byte(0x20+8*i)] = Opcode{
			Name: "JR " + condNames[i] + ",r8", Length: 2, Cycles: 8,
			Exec: func(c *Cpu) (int, bool) {
				off := int8(c.Bus.Load8(c.PC))
				if condTaken(c, cc) {
					c.PC = uint16(int32(c.PC) + 1 + int32(off))
					return 4, true
				}
				return 0, false
			},
		}
	}

	opcodes[0xC3] = Opcode{
		Name: "JP a16", Length: 3, Cycles: 16,
		Exec: func(c *Cpu) (int, bool) {
			c.PC = c.Bus.Load16(c.PC)
			return 0, true
		},
	}
	opcodes[0xE9] = Opcode{
		Name: "JP (HL)", Length: 1, Cycles: 4,
		Exec: func(c *Cpu) (int, bool) { c.PC = c.Regs.HL(); return 0, true },
	}
	for i, cc := range conds {
		cc := cc
		opcodes[byte(0xC2+8*i)] = Opcode{
			Name: "JP " + condNames[i] + ",a16", Length: 3, Cycles: 12,
			Exec: func(c *Cpu) (int, bool) {
				target := c.Bus.Load16(c.PC)
				if condTaken(c, cc) {
					c.PC = target
					return 4, true
				}
				return 0, false
			},
		}
	}

	opcodes[0xCD] = Opcode{
		Name: "CALL a16", Length: 3, Cycles: 24,
		Exec: func(c *Cpu) (int, bool) {
			target := c.Bus.Load16(c.PC)
			c.pushStack(c.PC + 2)
			c.PC = target
			return 0, true
		},
	}
	for i, cc := range conds {
		cc := cc
		opcodes[byte(0xC4+8*i)] = Opcode{
			Name: "CALL " + condNames[i] + ",a16", Length: 3, Cycles: 12,
			Exec: func(c *Cpu) (int, bool) {
				target := c.Bus.Load16(c.PC)
				if condTaken(c, cc) {
					c.pushStack(c.PC + 2)
					c.PC = target
					return 12, true
				}
				return 0, false
			},
		}
	}

	opcodes[0xC9] = Opcode{
		Name: "RET", Length: 1, Cycles: 16,
		Exec: func(c *Cpu) (int, bool) { c.PC = c.popStack(); return 0, true },
	}
	opcodes[0xD9] = Opcode{
		Name: "RETI", Length: 1, Cycles: 16,
		Exec: func(c *Cpu) (int, bool) {
			c.PC = c.popStack()
			c.ime = Enabled
			return 0, true
		},
	}
	for i, cc := range conds {
		cc := cc
		opcodes[byte(0xC0+8*i)] = Opcode{
			Name: "RET " + condNames[i], Length: 1, Cycles: 8,
			Exec: func(c *Cpu) (int, bool) {
				if condTaken(c, cc) {
					c.PC = c.popStack()
					return 12, true
				}
				return 0, false
			},
		}
	}
}

// buildRSTGrid covers RST n at 0xC7+8*n.
func buildRSTGrid() {
	for n := 0; n < 8; n++ {
		target := uint16(n * 8)
		opcodes[byte(0xC7+8*n)] = Opcode{
			Name: fmt.Sprintf("RST %02XH", target), Length: 1, Cycles: 16,
			Exec: func(c *Cpu) (int, bool) {
				c.pushStack(c.PC)
				c.PC = target
				return 0, true
			},
		}
	}
}

// buildIrregular fills in every primary opcode that doesn't belong to one
// of the regular families above: misc control, the indirect-register A
// loads, the 0xFFxx I/O shorthand forms, and 16-bit stack-pointer
// arithmetic. Illegal opcodes (D3,DB,DD,E3,E4,EB,EC,ED,F4,FC,FD) are left
// unset; Step charges a missing entry as a 4-cycle no-op and returns an
// error wrapping ErrDecode.
func buildIrregular() {
	opcodes[0x00] = Opcode{Name: "NOP", Length: 1, Cycles: 4, Exec: func(c *Cpu) (int, bool) { return 0, false }}
	opcodes[0x10] = Opcode{Name: "STOP", Length: 2, Cycles: 4, Exec: func(c *Cpu) (int, bool) { c.Stopped = true; return 0, false }}
	opcodes[0x76] = Opcode{Name: "HALT", Length: 1, Cycles: 4, Exec: func(c *Cpu) (int, bool) { c.Halted = true; return 0, false }}
	opcodes[0xF3] = Opcode{Name: "DI", Length: 1, Cycles: 4, Exec: func(c *Cpu) (int, bool) { c.ime = DisableAfterNext; return 0, false }}
	opcodes[0xFB] = Opcode{Name: "EI", Length: 1, Cycles: 4, Exec: func(c *Cpu) (int, bool) { c.ime = EnableAfterNext; return 0, false }}

	opcodes[0x27] = Opcode{Name: "DAA", Length: 1, Cycles: 4, Exec: execDAA}
	opcodes[0x2F] = Opcode{Name: "CPL", Length: 1, Cycles: 4, Exec: func(c *Cpu) (int, bool) {
		c.Regs.A = ^c.Regs.A
		c.Regs.F.Subtract = true
		c.Regs.F.HalfCarry = true
		return 0, false
	}}
	opcodes[0x37] = Opcode{Name: "SCF", Length: 1, Cycles: 4, Exec: func(c *Cpu) (int, bool) {
		c.Regs.F.Carry = true
		c.Regs.F.Subtract = false
		c.Regs.F.HalfCarry = false
		return 0, false
	}}
	opcodes[0x3F] = Opcode{Name: "CCF", Length: 1, Cycles: 4, Exec: func(c *Cpu) (int, bool) {
		c.Regs.F.Carry = !c.Regs.F.Carry
		c.Regs.F.Subtract = false
		c.Regs.F.HalfCarry = false
		return 0, false
	}}

	opcodes[0x07] = Opcode{Name: "RLCA", Length: 1, Cycles: 4, Exec: func(c *Cpu) (int, bool) {
		c.Regs.A = rlc(c, c.Regs.A)
		c.Regs.F.Zero = false
		return 0, false
	}}
	opcodes[0x0F] = Opcode{Name: "RRCA", Length: 1, Cycles: 4, Exec: func(c *Cpu) (int, bool) {
		c.Regs.A = rrc(c, c.Regs.A)
		c.Regs.F.Zero = false
		return 0, false
	}}
	opcodes[0x17] = Opcode{Name: "RLA", Length: 1, Cycles: 4, Exec: func(c *Cpu) (int, bool) {
		c.Regs.A = rl(c, c.Regs.A)
		c.Regs.F.Zero = false
		return 0, false
	}}
	opcodes[0x1F] = Opcode{Name: "RRA", Length: 1, Cycles: 4, Exec: func(c *Cpu) (int, bool) {
		c.Regs.A = rr(c, c.Regs.A)
		c.Regs.F.Zero = false
		return 0, false
	}}

	// indirect-register A loads
	opcodes[0x02] = Opcode{Name: "LD (BC),A", Length: 1, Cycles: 8, Exec: func(c *Cpu) (int, bool) {
		c.Bus.Store8(c.Regs.BC(), c.Regs.A)
		return 0, false
	}}
	opcodes[0x12] = Opcode{Name: "LD (DE),A", Length: 1, Cycles: 8, Exec: func(c *Cpu) (int, bool) {
		c.Bus.Store8(c.Regs.DE(), c.Regs.A)
		return 0, false
	}}
	opcodes[0x22] = Opcode{Name: "LD (HL+),A", Length: 1, Cycles: 8, Exec: func(c *Cpu) (int, bool) {
		hl := c.Regs.HL()
		c.Bus.Store8(hl, c.Regs.A)
		c.Regs.SetHL(hl + 1)
		return 0, false
	}}
	opcodes[0x32] = Opcode{Name: "LD (HL-),A", Length: 1, Cycles: 8, Exec: func(c *Cpu) (int, bool) {
		hl := c.Regs.HL()
		c.Bus.Store8(hl, c.Regs.A)
		c.Regs.SetHL(hl - 1)
		return 0, false
	}}
	opcodes[0x0A] = Opcode{Name: "LD A,(BC)", Length: 1, Cycles: 8, Exec: func(c *Cpu) (int, bool) {
		c.Regs.A = c.Bus.Load8(c.Regs.BC())
		return 0, false
	}}
	opcodes[0x1A] = Opcode{Name: "LD A,(DE)", Length: 1, Cycles: 8, Exec: func(c *Cpu) (int, bool) {
		c.Regs.A = c.Bus.Load8(c.Regs.DE())
		return 0, false
	}}
	opcodes[0x2A] = Opcode{Name: "LD A,(HL+)", Length: 1, Cycles: 8, Exec: func(c *Cpu) (int, bool) {
		hl := c.Regs.HL()
		c.Regs.A = c.Bus.Load8(hl)
		c.Regs.SetHL(hl + 1)
		return 0, false
	}}
	opcodes[0x3A] = Opcode{Name: "LD A,(HL-)", Length: 1, Cycles: 8, Exec: func(c *Cpu) (int, bool) {
		hl := c.Regs.HL()
		c.Regs.A = c.Bus.Load8(hl)
		c.Regs.SetHL(hl - 1)
		return 0, false
	}}

	// absolute-address loads and the 0xFFxx I/O shorthand
	opcodes[0x08] = Opcode{Name: "LD (a16),SP", Length: 3, Cycles: 20, Exec: func(c *Cpu) (int, bool) {
		c.Bus.Store16(c.Bus.Load16(c.PC), c.SP)
		return 0, false
	}}
	opcodes[0xE0] = Opcode{Name: "LDH (a8),A", Length: 2, Cycles: 12, Exec: func(c *Cpu) (int, bool) {
		c.Bus.Store8(0xFF00+uint16(c.Bus.Load8(c.PC)), c.Regs.A)
		return 0, false
	}}
	opcodes[0xF0] = Opcode{Name: "LDH A,(a8)", Length: 2, Cycles: 12, Exec: func(c *Cpu) (int, bool) {
		c.Regs.A = c.Bus.Load8(0xFF00 + uint16(c.Bus.Load8(c.PC)))
		return 0, false
	}}
	opcodes[0xE2] = Opcode{Name: "LD (C),A", Length: 1, Cycles: 8, Exec: func(c *Cpu) (int, bool) {
		c.Bus.Store8(0xFF00+uint16(c.Regs.C), c.Regs.A)
		return 0, false
	}}
	opcodes[0xF2] = Opcode{Name: "LD A,(C)", Length: 1, Cycles: 8, Exec: func(c *Cpu) (int, bool) {
		c.Regs.A = c.Bus.Load8(0xFF00 + uint16(c.Regs.C))
		return 0, false
	}}
	opcodes[0xEA] = Opcode{Name: "LD (a16),A", Length: 3, Cycles: 16, Exec: func(c *Cpu) (int, bool) {
		c.Bus.Store8(c.Bus.Load16(c.PC), c.Regs.A)
		return 0, false
	}}
	opcodes[0xFA] = Opcode{Name: "LD A,(a16)", Length: 3, Cycles: 16, Exec: func(c *Cpu) (int, bool) {
		c.Regs.A = c.Bus.Load8(c.Bus.Load16(c.PC))
		return 0, false
	}}

	// stack pointer arithmetic
	opcodes[0xE8] = Opcode{Name: "ADD SP,r8", Length: 2, Cycles: 16, Exec: func(c *Cpu) (int, bool) {
		c.SP = addSPOffset(c, c.SP)
		return 0, false
	}}
	opcodes[0xF8] = Opcode{Name: "LD HL,SP+r8", Length: 2, Cycles: 12, Exec: func(c *Cpu) (int, bool) {
		c.Regs.SetHL(addSPOffset(c, c.SP))
		return 0, false
	}}
	opcodes[0xF9] = Opcode{Name: "LD SP,HL", Length: 1, Cycles: 8, Exec: func(c *Cpu) (int, bool) {
		c.SP = c.Regs.HL()
		return 0, false
	}}
}

// addSPOffset implements the shared ADD SP,r8 / LD HL,SP+r8 arithmetic:
// the 8-bit signed displacement is added to base, with H/C computed as an
// unsigned 8-bit addition (the documented LR35902 quirk) and Z/N always
// cleared.
func addSPOffset(c *Cpu, base uint16) uint16 {
	off := int8(c.Bus.Load8(c.PC))
	result := uint16(int32(base) + int32(off))
	c.Regs.F.HalfCarry = (base&0xF)+(uint16(byte(off))&0xF) > 0xF
	c.Regs.F.Carry = (base&0xFF)+(uint16(byte(off))&0xFF) > 0xFF
	c.Regs.F.Zero = false
	c.Regs.F.Subtract = false
	return result
}

// execDAA adjusts A to valid BCD after an 8-bit ALU op, following the
// standard correction table keyed on N/H/C.
func execDAA(c *Cpu) (int, bool) {
	a := c.Regs.A
	adjust := byte(0)
	carry := c.Regs.F.Carry

	if c.Regs.F.Subtract {
		if c.Regs.F.HalfCarry {
			adjust += 0x06
		}
		if c.Regs.F.Carry {
			adjust += 0x60
		}
		a -= adjust
	} else {
		if c.Regs.F.HalfCarry || a&0xF > 0x9 {
			adjust += 0x06
		}
		if c.Regs.F.Carry || a > 0x99 {
			adjust += 0x60
			carry = true
		}
		a += adjust
	}

	c.Regs.A = a
	c.Regs.F.Zero = a == 0
	c.Regs.F.HalfCarry = false
	c.Regs.F.Carry = carry
	return 0, false
}

// buildCBTable covers the 256 CB-prefixed opcodes: rotate/shift (0x00-0x3F),
// BIT (0x40-0x7F), RES (0x80-0xBF) and SET (0xC0-0xFF), each spanning the
// eight registers in regOrder.
func buildCBTable() {
	shiftOps := []struct {
		name string
		fn   func(c *Cpu, v byte) byte
	}{
		{"RLC", rlc}, {"RRC", rrc}, {"RL", rl}, {"RR", rr},
		{"SLA", sla}, {"SRA", sra}, {"SWAP", swap}, {"SRL", srl},
	}
	for opIdx, op := range shiftOps {
		for r := 0; r < 8; r++ {
			opcode := byte(opIdx*8 + r)
			reg := regOrder[r]
			fn := op.fn
			cycles := byte(8)
			if reg == regHLInd {
				cycles = 16
			}
			cbOpcodes[opcode] = Opcode{
				Name: op.name + " " + regNames[r], Length: 2, Cycles: cycles,
				Exec: func(c *Cpu) (int, bool) {
					set8(c, reg, fn(c, get8(c, reg)))
					return 0, false
				},
			}
		}
	}

	for bitN := 0; bitN < 8; bitN++ {
		for r := 0; r < 8; r++ {
			reg := regOrder[r]
			bit := bitN

			bitCycles := byte(8)
			rwCycles := byte(8)
			if reg == regHLInd {
				bitCycles = 12
				rwCycles = 16
			}

			cbOpcodes[byte(0x40+bitN*8+r)] = Opcode{
				Name: fmt.Sprintf("BIT %d,%s", bit, regNames[r]), Length: 2, Cycles: bitCycles,
				Exec: func(c *Cpu) (int, bool) { bitTest(c, get8(c, reg), bit); return 0, false },
			}
			cbOpcodes[byte(0x80+bitN*8+r)] = Opcode{
				Name: fmt.Sprintf("RES %d,%s", bit, regNames[r]), Length: 2, Cycles: rwCycles,
				Exec: func(c *Cpu) (int, bool) { set8(c, reg, resBit(get8(c, reg), bit)); return 0, false },
			}
			cbOpcodes[byte(0xC0+bitN*8+r)] = Opcode{
				Name: fmt.Sprintf("SET %d,%s", bit, regNames[r]), Length: 2, Cycles: rwCycles,
				Exec: func(c *Cpu) (int, bool) { set8(c, reg, setBit(get8(c, reg), bit)); return 0, false },
			}
		}
	}
}
