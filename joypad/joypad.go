// Package joypad implements the row-selected active-low 4-bit key matrix
// at 0xFF00.
//
// Grounded on original_source/src/joypad.rs for the P14/P15 row-select
// shape, but that original never actually tracks key press/release (store
// only updates the row-select mask); Press/Release below add real state.
package joypad

const RegJOYP = 0xFF00

// Key identifies one of the eight buttons, matching the bit position
// within its row (P14 = direction pad, P15 = buttons).
type Key int

const (
	Right Key = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// Joypad holds the two active-low 4-bit rows and the currently selected
// row mask written to 0xFF00.
type Joypad struct {
	p14 byte // direction: Right,Left,Up,Down in bits 0-3
	p15 byte // buttons: A,B,Select,Start in bits 0-3

	selectMask byte
}

func New() *Joypad {
	return &Joypad{p14: 0x0F, p15: 0x0F, selectMask: 0x30}
}

func bit(k Key) byte {
	switch k {
	case Right, A:
		return 0x01
	case Left, B:
		return 0x02
	case Up, Select:
		return 0x04
	case Down, Start:
		return 0x08
	}
	return 0
}

func isDirection(k Key) bool { return k == Right || k == Left || k == Up || k == Down }

// Press clears the active-low bit for k (pressed = 0).
func (j *Joypad) Press(k Key) {
	if isDirection(k) {
		j.p14 &^= bit(k)
	} else {
		j.p15 &^= bit(k)
	}
}

// Release sets the active-low bit for k (released = 1).
func (j *Joypad) Release(k Key) {
	if isDirection(k) {
		j.p14 |= bit(k)
	} else {
		j.p15 |= bit(k)
	}
}

func (j *Joypad) Load(addr uint16) byte {
	switch j.selectMask {
	case 0x20:
		return j.p14 | j.selectMask
	case 0x10:
		return j.p15 | j.selectMask
	default:
		return 0x0F | j.selectMask
	}
}

func (j *Joypad) Store(addr uint16, v byte) {
	j.selectMask = v & 0x30
}
