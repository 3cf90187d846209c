package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLCDCRoundTrip(t *testing.T) {
	p := New()
	p.StoreReg(RegLCDC, 0x91)
	l := p.LCDCReg
	assert.True(t, l.Operation)
	assert.False(t, l.WindowTileMap)
	assert.False(t, l.WindowEnable)
	assert.True(t, l.BGTileDataSelect)
	assert.False(t, l.BGTileMapSelect)
	assert.False(t, l.ObjSize16)
	assert.False(t, l.ObjEnable)
	assert.True(t, l.BGEnable)
	assert.Equal(t, byte(0x91), p.LoadReg(RegLCDC))
}

func TestScanlineFSMTransitions(t *testing.T) {
	p := New()
	assert.Equal(t, ScanlineOAM, p.Mode)

	p.Update(80)
	assert.Equal(t, ScanlineVRAM, p.Mode)

	p.Update(172)
	assert.Equal(t, HBlank, p.Mode)
}

func TestVBlankRaisedOnceEnteringLine144(t *testing.T) {
	p := New()
	// drive through all 144 visible lines
	for line := 0; line < 144; line++ {
		p.Update(80)
		p.Update(172)
		p.Update(204)
	}
	assert.Equal(t, VBlank, p.Mode)
	assert.True(t, p.VBlankRequested)
}

func TestFrameBudgetIs70224Cycles(t *testing.T) {
	p := New()
	total := 0
	for p.LY != 0 || total == 0 {
		p.Update(4)
		total += 4
		if total > 80000 {
			t.Fatal("frame did not complete within expected cycle budget")
		}
	}
	assert.InDelta(t, 70224, total, 8)
}

func TestOAMWriteUpdatesSpriteCache(t *testing.T) {
	p := New()
	p.StoreOAM(OAMStart+0, 20)   // Y
	p.StoreOAM(OAMStart+1, 30)   // X
	p.StoreOAM(OAMStart+2, 0x05) // tile
	p.StoreOAM(OAMStart+3, 0x80) // priority bit set

	s := p.sprites[0]
	assert.Equal(t, int16(4), s.Y)  // 20-16
	assert.Equal(t, int16(22), s.X) // 30-8
	assert.Equal(t, byte(0x05), s.TileIndex)
	assert.True(t, s.Priority)
}
