// Package debug provides an interactive bubbletea step-debugger over a
// machine.Machine, generalized from the teacher's cpu/debugger.go (which
// stepped a 6502 Cpu directly against its flat FakeRam).
package debug

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/hejops/gone/machine"
)

type model struct {
	m       *machine.Machine
	prevPC  uint16
	steps   int
	lastErr error
}

// New returns a bubbletea model wrapping m, ready for tea.NewProgram.
func New(m *machine.Machine) tea.Model {
	return model{m: m}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.m.CPU.PC
			_, m.lastErr = m.m.Step()
			m.steps++
		case "f":
			_, m.lastErr = m.m.AdvanceFrame()
			m.steps++
		}
	}
	return m, nil
}

// renderPage renders 16 bytes of ROM/RAM starting at start, highlighting
// the byte at the current PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.m.Bus.Load8(start + i)
		if start+i == m.m.CPU.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	r := m.m.CPU.Regs
	errLine := ""
	if m.lastErr != nil {
		errLine = fmt.Sprintf("\n! %v", m.lastErr)
	}
	return fmt.Sprintf(`
PC: %04x (was %04x)
SP: %04x
AF: %04x  BC: %04x
DE: %04x  HL: %04x
Z:%v N:%v H:%v C:%v
steps: %d%s
`,
		m.m.CPU.PC, m.prevPC,
		m.m.CPU.SP,
		r.AF(), r.BC(),
		r.DE(), r.HL(),
		r.F.Zero, r.F.Subtract, r.F.HalfCarry, r.F.Carry,
		m.steps, errLine,
	)
}

func (m model) pageTable() string {
	header := "addr | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pc := m.m.CPU.PC
	base := pc &^ 0xF
	rows := []string{header}
	for i := -2; i <= 2; i++ {
		rows = append(rows, m.renderPage(base+uint16(i*16)))
	}
	return strings.Join(rows, "\n")
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(m.m.CPU.LastName),
		"space/j: step   f: advance frame   q: quit",
	)
}

// Run starts the interactive TUI over m, blocking until the user quits.
func Run(m *machine.Machine) error {
	_, err := tea.NewProgram(New(m)).Run()
	return err
}
