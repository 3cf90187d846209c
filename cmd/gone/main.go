// Command gone is the headless driver: it loads a cartridge, runs the
// machine for a fixed number of frames (or drops into the interactive
// debugger with -debug), and logs status via zerolog.
package main

import (
	"flag"
	"os"

	"github.com/hejops/gone/debug"
	"github.com/hejops/gone/logging"
	"github.com/hejops/gone/machine"
)

func main() {
	romPath := flag.String("rom", "", "path to a cartridge ROM image")
	frames := flag.Int("frames", 600, "number of frames to run in headless mode")
	debugMode := flag.Bool("debug", false, "launch the interactive step-debugger instead of running headless")
	flag.Parse()

	log := logging.Logger()

	if *romPath == "" {
		log.Fatal().Msg("gone: -rom is required")
	}

	cart, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatal().Err(err).Str("rom", *romPath).Msg("gone: failed to read cartridge")
	}

	m := machine.New(cart)

	if *debugMode {
		if err := debug.Run(m); err != nil {
			log.Fatal().Err(err).Msg("gone: debugger exited with error")
		}
		return
	}

	log.Info().Str("rom", *romPath).Int("frames", *frames).Msg("gone: starting headless run")
	if err := m.Run(*frames); err != nil {
		log.Fatal().Err(err).Str("trace", m.Trace()).Msg("gone: run terminated on decode error")
	}
	log.Info().Str("trace", m.Trace()).Msg("gone: run complete")
}
