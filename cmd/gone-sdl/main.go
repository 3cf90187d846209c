// Command gone-sdl is the windowed host driver: it opens an SDL2 window,
// blits each completed frame buffer to it, and maps keyboard scancodes to
// joypad presses, in the style of the go-sdl2 driver loop used by the
// adrichey-go-chip8 reference.
package main

import (
	"flag"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hejops/gone/joypad"
	"github.com/hejops/gone/logging"
	"github.com/hejops/gone/machine"
	"github.com/hejops/gone/ppu"
)

const scale = 4

var keymap = map[sdl.Scancode]joypad.Key{
	sdl.SCANCODE_RIGHT:  joypad.Right,
	sdl.SCANCODE_LEFT:   joypad.Left,
	sdl.SCANCODE_UP:     joypad.Up,
	sdl.SCANCODE_DOWN:   joypad.Down,
	sdl.SCANCODE_Z:      joypad.A,
	sdl.SCANCODE_X:      joypad.B,
	sdl.SCANCODE_RSHIFT: joypad.Select,
	sdl.SCANCODE_RETURN: joypad.Start,
}

func main() {
	romPath := flag.String("rom", "", "path to a cartridge ROM image")
	flag.Parse()

	log := logging.Logger()
	if *romPath == "" {
		log.Fatal().Msg("gone-sdl: -rom is required")
	}

	cart, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatal().Err(err).Str("rom", *romPath).Msg("gone-sdl: failed to read cartridge")
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatal().Err(err).Msg("gone-sdl: sdl.Init failed")
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"gone",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		ppu.ScreenWidth*scale, ppu.ScreenHeight*scale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("gone-sdl: CreateWindow failed")
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		log.Fatal().Err(err).Msg("gone-sdl: CreateRenderer failed")
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		ppu.ScreenWidth, ppu.ScreenHeight,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("gone-sdl: CreateTexture failed")
	}
	defer texture.Destroy()

	m := machine.New(cart)

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				key, ok := keymap[e.Keysym.Scancode]
				if !ok {
					continue
				}
				if e.State == sdl.PRESSED {
					m.Press(key)
				} else {
					m.Release(key)
				}
			}
		}

		frame, err := m.AdvanceFrame()
		if err != nil {
			log.Error().Err(err).Str("trace", m.Trace()).Msg("gone-sdl: stopping on decode error")
			running = false
			continue
		}
		if err := texture.Update(nil, argbBytes(frame[:]), ppu.ScreenWidth*4); err != nil {
			log.Error().Err(err).Msg("gone-sdl: texture update failed")
		}

		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()
	}
}

// argbBytes reinterprets a row-major ARGB8888 pixel slice as the raw byte
// slice SDL's streaming texture update expects.
func argbBytes(px []uint32) []byte {
	out := make([]byte, len(px)*4)
	for i, p := range px {
		out[i*4+0] = byte(p)
		out[i*4+1] = byte(p >> 8)
		out[i*4+2] = byte(p >> 16)
		out[i*4+3] = byte(p >> 24)
	}
	return out
}
