// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hx8357sim

import (
	"bytes"
	"errors"
	"image"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"golang.org/x/image/draw"
)

// TerminalOpts represents the options available for the terminal renderer.
type TerminalOpts struct {
	// Cols is the number of character cells per line. Each cell is one
	// downscaled pixel.
	Cols    int
	Palette *ansi256.Palette
	// W defaults to stdout.
	W io.Writer

	_ struct{}
}

// DefaultTerminalOpts fits a portrait panel in a 80 columns terminal.
var DefaultTerminalOpts = TerminalOpts{Cols: 40}

// Terminal renders images to a terminal using ANSI 256 colors.
type Terminal struct {
	w       io.Writer
	cols    int
	palette ansi256.Palette

	buf bytes.Buffer
}

// NewTerminal returns a Terminal. opts can be nil to use DefaultTerminalOpts.
func NewTerminal(opts *TerminalOpts) (*Terminal, error) {
	if opts == nil {
		opts = &DefaultTerminalOpts
	}
	if opts.Cols <= 0 {
		return nil, errors.New("hx8357sim: Cols must be positive")
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Terminal{w: w, cols: opts.Cols, palette: *p}, nil
}

// Render downscales img to the terminal width and prints it.
//
// Every cell is two characters wide so pixels stay roughly square.
func (t *Terminal) Render(img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	rows := (t.cols*b.Dy() + b.Dx() - 1) / b.Dx()
	small := image.NewNRGBA(image.Rect(0, 0, t.cols, rows))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, draw.Src, nil)

	// This code is designed to minimize the amount of memory allocated per call.
	t.buf.Reset()
	for y := 0; y < rows; y++ {
		_, _ = t.buf.WriteString("\r\033[0m")
		for x := 0; x < t.cols; x++ {
			_, _ = io.WriteString(&t.buf, t.palette.Block(small.NRGBAAt(x, y)))
		}
		_, _ = t.buf.WriteString("\033[0m\n")
	}
	_, err := t.buf.WriteTo(t.w)
	return err
}

// Halt resets the terminal attributes.
func (t *Terminal) Halt() error {
	_, err := t.w.Write([]byte("\033[0m"))
	return err
}
