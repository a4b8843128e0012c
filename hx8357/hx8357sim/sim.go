// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hx8357sim

import (
	"fmt"
	"image"
	"sync"

	"github.com/GermanBionicSystems/tft/hx8357"
	"github.com/GermanBionicSystems/tft/hx8357/image565"
)

// Record is one decoded command.
type Record struct {
	Cmd hx8357.Command
	// Params holds the parameter bytes. It is nil for RAMWR.
	Params []byte
	// Pixels is the number of color words streamed after RAMWR.
	Pixels int
}

func (r Record) String() string {
	if r.Cmd == hx8357.RAMWR {
		return fmt.Sprintf("%s %d pixels", r.Cmd, r.Pixels)
	}
	return fmt.Sprintf("%s % X", r.Cmd, r.Params)
}

// State is the controller state visible from outside the GRAM.
type State struct {
	Sleeping  bool
	DisplayOn bool
	Inverted  bool
	Madctl    byte
	Colmod    byte
}

// Panel is an in-memory HX8357. It implements hx8357.Transport by decoding
// the byte stream the way the controller does.
//
// Panel is safe for concurrent use, so it can be snapshot by a HTTP handler
// while being drawn to.
type Panel struct {
	mu sync.Mutex

	gram    *image565.Image
	state   State
	records []Record

	command bool
	// Current command being decoded, or -1 before the first command.
	cur     int
	params  []byte
	hi      byte
	hasHi   bool
	x0, x1  int
	y0, y1  int
	cx, cy  int
	writing bool
}

// New returns a Panel as it is right after power on: black, sleeping, display
// off.
func New() *Panel {
	p := &Panel{gram: image565.NewImage(image.Rect(0, 0, hx8357.NativeWidth, hx8357.NativeHeight))}
	p.reset()
	p.cur = -1
	return p
}

func (p *Panel) String() string {
	return "hx8357sim"
}

// SetCommandMode implements hx8357.Transport.
func (p *Panel) SetCommandMode() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.command = true
	return nil
}

// SetDataMode implements hx8357.Transport.
func (p *Panel) SetDataMode() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.command = false
	return nil
}

// Flush implements hx8357.Transport.
func (p *Panel) Flush() error {
	return nil
}

// WriteByte implements hx8357.Transport.
func (p *Panel) WriteByte(b byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.command {
		p.startCommand(hx8357.Command(b))
		return nil
	}
	if p.cur < 0 {
		// Data before any command is dropped by the controller.
		return nil
	}
	if p.writing {
		p.pixelByte(b)
		return nil
	}
	p.params = append(p.params, b)
	if r := p.last(); r != nil {
		r.Params = p.params
	}
	p.applyParams()
	return nil
}

// Commands returns a copy of the commands decoded so far.
func (p *Panel) Commands() []Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Record, len(p.records))
	for i, r := range p.records {
		out[i] = r
		if r.Params != nil {
			out[i].Params = append([]byte(nil), r.Params...)
		}
	}
	return out
}

// ClearCommands empties the command log.
func (p *Panel) ClearCommands() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = nil
	p.params = nil
}

// State returns the current controller state.
func (p *Panel) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// GRAM returns a copy of the graphics memory in native layout, 320x480.
func (p *Panel) GRAM() *image565.Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	g := image565.NewImage(p.gram.Rect)
	copy(g.Pix, p.gram.Pix)
	return g
}

// Image returns what the glass shows, upright for rotation 0.
//
// It is black while the panel sleeps or the display is off, and the colors
// are inverted while INVON is active.
func (p *Panel) Image() *image565.Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	img := image565.NewImage(p.gram.Rect)
	if p.state.Sleeping || !p.state.DisplayOn {
		return img
	}
	w, h := hx8357.NativeWidth, hx8357.NativeHeight
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := p.gram.RGB565At(w-1-x, h-1-y)
			if p.state.Inverted {
				c = ^c
			}
			img.SetRGB565(x, y, c)
		}
	}
	return img
}

func (p *Panel) reset() {
	for i := range p.gram.Pix {
		p.gram.Pix[i] = 0
	}
	p.state = State{Sleeping: true}
	p.x0, p.x1 = 0, hx8357.NativeWidth-1
	p.y0, p.y1 = 0, hx8357.NativeHeight-1
	p.writing = false
	p.hasHi = false
}

func (p *Panel) startCommand(c hx8357.Command) {
	p.cur = int(c)
	p.params = nil
	p.hasHi = false
	p.writing = false
	p.records = append(p.records, Record{Cmd: c})
	switch c {
	case hx8357.SWRESET:
		p.reset()
	case hx8357.SLPIN:
		p.state.Sleeping = true
	case hx8357.SLPOUT:
		p.state.Sleeping = false
	case hx8357.DISPOFF:
		p.state.DisplayOn = false
	case hx8357.DISPON:
		p.state.DisplayOn = true
	case hx8357.INVOFF:
		p.state.Inverted = false
	case hx8357.INVON:
		p.state.Inverted = true
	case hx8357.RAMWR:
		p.writing = true
		p.cx, p.cy = p.x0, p.y0
	}
}

// last returns the record of the command being decoded. It is nil after
// ClearCommands until the next command.
func (p *Panel) last() *Record {
	if len(p.records) == 0 {
		return nil
	}
	return &p.records[len(p.records)-1]
}

func (p *Panel) applyParams() {
	switch hx8357.Command(p.cur) {
	case hx8357.CASET:
		if len(p.params) == 4 {
			p.x0, p.x1 = word(p.params[0:2]), word(p.params[2:4])
		}
	case hx8357.PASET:
		if len(p.params) == 4 {
			p.y0, p.y1 = word(p.params[0:2]), word(p.params[2:4])
		}
	case hx8357.MADCTL:
		if len(p.params) == 1 {
			p.state.Madctl = p.params[0]
		}
	case hx8357.COLMOD:
		if len(p.params) == 1 {
			p.state.Colmod = p.params[0]
		}
	}
}

func (p *Panel) pixelByte(b byte) {
	if !p.hasHi {
		p.hi, p.hasHi = b, true
		return
	}
	p.hasHi = false
	if r := p.last(); r != nil {
		r.Pixels++
	}
	if p.x1 < p.x0 || p.y1 < p.y0 {
		return
	}
	c := image565.Color(uint16(p.hi)<<8 | uint16(b))
	if x, y, ok := p.toGRAM(p.cx, p.cy); ok {
		p.gram.SetRGB565(x, y, c)
	}
	if p.cx++; p.cx > p.x1 {
		p.cx = p.x0
		if p.cy++; p.cy > p.y1 {
			p.cy = p.y0
		}
	}
}

// toGRAM maps a column/page address to the GRAM location selected by MADCTL.
func (p *Panel) toGRAM(col, page int) (int, int, bool) {
	m := p.state.Madctl
	x, y := col, page
	if m&hx8357.MadctlMV != 0 {
		x, y = page, col
	}
	if m&hx8357.MadctlMX != 0 {
		x = hx8357.NativeWidth - 1 - x
	}
	if m&hx8357.MadctlMY != 0 {
		y = hx8357.NativeHeight - 1 - y
	}
	if x < 0 || y < 0 || x >= hx8357.NativeWidth || y >= hx8357.NativeHeight {
		return 0, 0, false
	}
	return x, y, true
}

func word(b []byte) int {
	return int(b[0])<<8 | int(b[1])
}

var _ hx8357.Transport = &Panel{}
