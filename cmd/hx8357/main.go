// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// hx8357 draws a demo scene on a HX8357 TFT panel.
//
// With -sim, the panel is emulated in memory and the result is printed on the
// terminal, and optionally served as PNG/JPEG snapshots over HTTP.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/tft/hx8357"
	"github.com/GermanBionicSystems/tft/hx8357/hx8357sim"
)

func mainImpl() error {
	spiName := flag.String("spi", "", "SPI port to use, empty for the first one")
	dcName := flag.String("dc", "GPIO25", "GPIO pin driving the D/C line")
	rotation := flag.Int("rotation", 0, "rotation in quarter turns, 0 to 3")
	sim := flag.Bool("sim", false, "draw on an emulated panel instead of hardware")
	httpAddr := flag.String("http", "", "with -sim, serve snapshots on this address, e.g. :8080")
	cols := flag.Int("cols", hx8357sim.DefaultTerminalOpts.Cols, "with -sim, terminal columns used for the rendering")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

	var t hx8357.Transport
	var panel *hx8357sim.Panel
	if *sim {
		panel = hx8357sim.New()
		t = panel
	} else {
		if _, err := host.Init(); err != nil {
			return err
		}
		s, err := hx8357.OpenSPITransport(*spiName, *dcName, nil)
		if err != nil {
			return err
		}
		defer s.Close()
		t = s
	}
	log.Debug().Str("transport", fmt.Sprint(t)).Msg("transport opened")

	d := hx8357.New(t, &hx8357.Opts{Rotation: *rotation})
	start := time.Now()
	if err := d.Begin(); err != nil {
		return err
	}
	log.Info().Stringer("dev", d).Dur("took", time.Since(start)).Msg("panel initialized")

	start = time.Now()
	if err := drawDemo(d); err != nil {
		return err
	}
	log.Info().Dur("took", time.Since(start)).Msg("demo drawn")
	if err := d.Halt(); err != nil {
		return err
	}

	if panel == nil {
		return nil
	}
	log.Debug().Int("commands", len(panel.Commands())).Msg("simulator decoded the stream")
	term, err := hx8357sim.NewTerminal(&hx8357sim.TerminalOpts{Cols: *cols})
	if err != nil {
		return err
	}
	if err := term.Render(panel.Image()); err != nil {
		return err
	}
	if err := term.Halt(); err != nil {
		return err
	}
	if *httpAddr == "" {
		return nil
	}
	log.Info().Str("addr", *httpAddr).Msg("serving snapshots")
	return http.ListenAndServe(*httpAddr, panel)
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatal().Err(err).Msg("hx8357")
	}
}
