// Package machine assembles the cpu, bus, ppu, timer and joypad packages
// into a runnable console: cartridge loading, the main Step/AdvanceFrame
// driver loop, and key input.
package machine

import (
	"github.com/hejops/gone/bus"
	"github.com/hejops/gone/cpu"
	"github.com/hejops/gone/joypad"
	"github.com/hejops/gone/logging"
	"github.com/hejops/gone/ppu"
)

// CyclesPerFrame is the fixed T-cycle budget of one 59.7Hz video frame:
// 154 scanlines * 456 cycles.
const CyclesPerFrame = 154 * 456

// Machine owns the whole emulated console: CPU, bus (and, through it, the
// PPU/timer/joypad devices).
type Machine struct {
	CPU *cpu.Cpu
	Bus *bus.Bus
}

// New builds a Machine with cartridge loaded into ROM and every device at
// its post-boot-ROM reset state.
func New(cartridge []byte) *Machine {
	b := bus.New(cartridge)
	c := cpu.New(b)
	return &Machine{CPU: c, Bus: b}
}

// Step executes exactly one CPU instruction (or interrupt service, or
// HALT idle tick) and advances the PPU/timer by the same number of
// T-cycles, returning that count. A non-nil error (wrapping
// cpu.ErrDecode) means the fetched opcode had no table entry; the
// caller decides whether to keep running or terminate.
func (m *Machine) Step() (int, error) {
	cycles, err := m.CPU.Step()
	m.Bus.Step(cycles)
	return cycles, err
}

// AdvanceFrame runs Step in a loop until the PPU raises its VBlank
// interrupt, then returns the completed frame buffer. It does not loop a
// fixed cycle budget: the PPU's own scanline FSM is the source of truth
// for when a frame ends, so AdvanceFrame tracks its VBlank edge
// (bus.Bus.LastVBlank) rather than CyclesPerFrame, which only
// approximates the budget and would drift out of lock-step with the PPU
// over a long run. It stops early and returns the decode error if Step
// ever fails.
func (m *Machine) AdvanceFrame() (*[ppu.ScreenWidth * ppu.ScreenHeight]uint32, error) {
	for {
		_, err := m.Step()
		if err != nil {
			return &m.Bus.PPU.FrameBuffer, err
		}
		if m.Bus.LastVBlank {
			return &m.Bus.PPU.FrameBuffer, nil
		}
	}
}

// Press forwards a key-down event to the joypad, and raises the joypad
// interrupt flag the way real hardware does on any button's active-low
// transition.
func (m *Machine) Press(k joypad.Key) {
	m.Bus.Joypad.Press(k)
	m.Bus.IF |= bus.JoypadBit
}

// Release forwards a key-up event to the joypad.
func (m *Machine) Release(k joypad.Key) {
	m.Bus.Joypad.Release(k)
}

// Trace returns the current CPU state line, for headless diagnostic
// logging.
func (m *Machine) Trace() string {
	return m.CPU.Trace()
}

// Run drives the machine for the given number of frames, terminating
// early and returning the decode error if Step ever fetches an
// undecodable opcode.
func (m *Machine) Run(frames int) error {
	log := logging.Logger()
	for f := 0; f < frames; f++ {
		if _, err := m.AdvanceFrame(); err != nil {
			log.Error().Str("trace", m.Trace()).Err(err).Msg("machine: terminating run on decode error")
			return err
		}
	}
	return nil
}
