// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hx8357

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"

	"github.com/GermanBionicSystems/tft/hx8357/image565"
)

// Opts defines the options for the device.
type Opts struct {
	// Rotation applied at the end of Begin, in quarter turns.
	Rotation int
	// Clock times the settle delays of Begin. nil means the real clock.
	Clock clockwork.Clock
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{}

// Dev is a handle to a HX8357-D TFT controller.
//
// Dev is not safe for concurrent use; callers sharing a panel must serialize
// all calls.
type Dev struct {
	t     Transport
	clock clockwork.Clock
	opts  Opts

	// Logical size, after rotation.
	w, h     int
	rotation int
	started  bool
}

// New returns a Dev talking through t. The panel is not touched until Begin
// is called.
//
// opts can be nil to use DefaultOpts.
func New(t Transport, opts *Opts) *Dev {
	if opts == nil {
		opts = &DefaultOpts
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Dev{
		t:     t,
		clock: clock,
		opts:  *opts,
		w:     NativeWidth,
		h:     NativeHeight,
	}
}

// NewSPI connects to a HX8357 over SPI, with dc as the data/command line, and
// runs Begin.
//
// The SPI port is configured at 30MHz in mode 0.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	t, err := NewSPITransport(p, dc, nil)
	if err != nil {
		return nil, err
	}
	d := New(t, opts)
	if err := d.Begin(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	if s, ok := d.t.(fmt.Stringer); ok {
		return fmt.Sprintf("hx8357.Dev{%s, %dx%d}", s, d.w, d.h)
	}
	return fmt.Sprintf("hx8357.Dev{%dx%d}", d.w, d.h)
}

// Begin runs the power-up sequence.
//
// It blocks for about 500ms. Calling it again replays the whole sequence and
// resets the rotation to Opts.Rotation. On failure the Dev is unusable until a
// later Begin succeeds.
func (d *Dev) Begin() error {
	d.started = false
	eh := errorHandler{t: d.t}
	for _, s := range initSequence {
		eh.command(s.cmd)
		if len(s.data) != 0 {
			eh.data(s.data...)
		}
		if s.delay != 0 {
			eh.sleep(d.clock, s.delay)
		}
	}
	if err := eh.result(); err != nil {
		return err
	}
	d.started = true
	d.rotation = 0
	d.w, d.h = orientations[0].w, orientations[0].h
	if normalizeRotation(d.opts.Rotation) != 0 {
		if err := d.SetRotation(d.opts.Rotation); err != nil {
			d.started = false
			return err
		}
	}
	return nil
}

// Width returns the logical width for the current rotation.
func (d *Dev) Width() int {
	return d.w
}

// Height returns the logical height for the current rotation.
func (d *Dev) Height() int {
	return d.h
}

// SetAddrWindow sets the inclusive window written by the following pixel
// data and switches the panel to memory write.
func (d *Dev) SetAddrWindow(x0, y0, x1, y1 int) error {
	if !d.started {
		return ErrNotStarted
	}
	eh := errorHandler{t: d.t}
	eh.addrWindow(x0, y0, x1, y1)
	return eh.result()
}

func (eh *errorHandler) addrWindow(x0, y0, x1, y1 int) {
	eh.command(CASET)
	eh.data(byte(x0>>8), byte(x0), byte(x1>>8), byte(x1))
	eh.command(PASET)
	eh.data(byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
	eh.command(RAMWR)
}

// DrawPixel sets the pixel at x, y. Coordinates outside the display are
// ignored.
func (d *Dev) DrawPixel(x, y int, c uint16) error {
	if !d.started {
		return ErrNotStarted
	}
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return nil
	}
	eh := errorHandler{t: d.t}
	eh.addrWindow(x, y, x+1, y+1)
	eh.color(c, 1)
	return eh.result()
}

// FillRect fills the w×h rectangle at x, y. The rectangle is clipped to the
// display.
func (d *Dev) FillRect(x, y, w, h int, c uint16) error {
	if !d.started {
		return ErrNotStarted
	}
	if x >= d.w || y >= d.h || w <= 0 || h <= 0 {
		return nil
	}
	// w and h are positive here, so adding a negative origin can't overflow.
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	// Compare without adding so lengths up to math.MaxInt clamp too.
	if w > d.w-x {
		w = d.w - x
	}
	if h > d.h-y {
		h = d.h - y
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	eh := errorHandler{t: d.t}
	eh.addrWindow(x, y, x+w-1, y+h-1)
	eh.color(c, w*h)
	return eh.result()
}

// FillScreen fills the whole display.
func (d *Dev) FillScreen(c uint16) error {
	return d.FillRect(0, 0, d.w, d.h, c)
}

// DrawFastHLine draws a horizontal line of w pixels starting at x, y.
func (d *Dev) DrawFastHLine(x, y, w int, c uint16) error {
	return d.FillRect(x, y, w, 1, c)
}

// DrawFastVLine draws a vertical line of h pixels starting at x, y.
func (d *Dev) DrawFastVLine(x, y, h int, c uint16) error {
	return d.FillRect(x, y, 1, h, c)
}

// PushColor sends raw color words into the window set by the last
// SetAddrWindow.
func (d *Dev) PushColor(colors ...uint16) error {
	if !d.started {
		return ErrNotStarted
	}
	eh := errorHandler{t: d.t}
	for _, c := range colors {
		eh.color(c, 1)
	}
	return eh.result()
}

// InvertDisplay inverts the display colors.
func (d *Dev) InvertDisplay(invert bool) error {
	if !d.started {
		return ErrNotStarted
	}
	eh := errorHandler{t: d.t}
	if invert {
		eh.command(INVON)
	} else {
		eh.command(INVOFF)
	}
	return eh.result()
}

// Color565 packs 8 bits channels into a RGB565 word, truncating the low bits.
func Color565(r, g, b uint8) uint16 {
	return uint16(image565.New(r, g, b))
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image565.Model
}

// Bounds implements display.Drawer. Min is always {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.w, d.h)
}

// Draw implements display.Drawer.
//
// The pixels are streamed to the panel through a single address window; no
// frame is kept in memory, so each call must cover every pixel it wants
// changed.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if !d.started {
		return ErrNotStarted
	}
	orig := r
	r = r.Intersect(d.Bounds())
	sp = sp.Add(r.Min.Sub(orig.Min))
	sr := image.Rectangle{Min: sp, Max: sp.Add(r.Size())}.Intersect(src.Bounds())
	if sr.Empty() {
		return nil
	}
	r = image.Rectangle{Min: r.Min.Add(sr.Min.Sub(sp)), Max: r.Min.Add(sr.Max.Sub(sp))}

	eh := errorHandler{t: d.t}
	eh.addrWindow(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1)
	if img, ok := src.(*image565.Image); ok {
		// Fast path: Pix is already in wire order.
		for y := sr.Min.Y; y < sr.Max.Y; y++ {
			i := img.PixOffset(sr.Min.X, y)
			eh.data(img.Pix[i : i+2*sr.Dx()]...)
		}
		return eh.result()
	}
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		for x := sr.Min.X; x < sr.Max.X; x++ {
			eh.color(uint16(image565.Convert(src.At(x, y))), 1)
		}
	}
	return eh.result()
}

// Halt implements conn.Resource.
//
// It sends any buffered byte. The panel keeps showing its content.
func (d *Dev) Halt() error {
	if err := d.t.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrTransmit, err)
	}
	return nil
}

var _ display.Drawer = &Dev{}
