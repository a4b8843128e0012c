// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hx8357

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// Transport carries bytes to the panel.
//
// The D/C line framing is explicit: SetCommandMode before a command byte,
// SetDataMode before parameter or pixel bytes. Implementations may buffer
// bytes but must keep their order and framing, and must have sent everything
// when Flush returns.
type Transport interface {
	io.ByteWriter
	SetCommandMode() error
	SetDataMode() error
	Flush() error
}

// SPIOpts configures the SPI connection of a SPITransport.
type SPIOpts struct {
	Freq physic.Frequency
	Mode spi.Mode
}

// DefaultSPIOpts is the recommended SPI configuration: 30MHz, mode 0.
var DefaultSPIOpts = SPIOpts{
	Freq: 30 * physic.MegaHertz,
	Mode: spi.Mode0,
}

// SPITransport is a Transport over a 4-wire SPI port and a D/C GPIO pin.
//
// Consecutive bytes sent in the same mode are coalesced in a single Tx(),
// split at the connection MaxTxSize().
type SPITransport struct {
	c      spi.Conn
	dc     gpio.PinOut
	closer io.Closer

	level     gpio.Level
	buf       []byte
	maxTxSize int
}

// NewSPITransport connects to the SPI port p and uses dc as the data/command
// line.
//
// opts can be nil to use DefaultSPIOpts.
func NewSPITransport(p spi.Port, dc gpio.PinOut, opts *SPIOpts) (*SPITransport, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, fmt.Errorf("%w: a D/C pin is required", ErrTransportUnavailable)
	}
	if opts == nil {
		opts = &DefaultSPIOpts
	}
	if err := dc.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransportUnavailable, err)
	}
	c, err := p.Connect(opts.Freq, opts.Mode, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransportUnavailable, err)
	}
	maxTxSize := 0
	if l, ok := c.(conn.Limits); ok {
		maxTxSize = l.MaxTxSize()
	}
	if maxTxSize == 0 {
		maxTxSize = 4096
	}
	return &SPITransport{
		c:         c,
		dc:        dc,
		level:     gpio.High,
		buf:       make([]byte, 0, maxTxSize),
		maxTxSize: maxTxSize,
	}, nil
}

// OpenSPITransport opens the SPI port and the D/C pin by name through the
// periph registries.
//
// Use "" for bus to select the first available SPI port. host.Init() must have
// been called first.
func OpenSPITransport(bus, dcName string, opts *SPIOpts) (*SPITransport, error) {
	dc := gpioreg.ByName(dcName)
	if dc == nil {
		return nil, fmt.Errorf("%w: no GPIO pin named %q", ErrTransportUnavailable, dcName)
	}
	p, err := spireg.Open(bus)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransportUnavailable, err)
	}
	t, err := NewSPITransport(p, dc, opts)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	t.closer = p
	return t, nil
}

func (s *SPITransport) String() string {
	return fmt.Sprintf("%s, %s", s.c, s.dc)
}

// SetCommandMode implements Transport.
func (s *SPITransport) SetCommandMode() error {
	return s.setLevel(gpio.Low)
}

// SetDataMode implements Transport.
func (s *SPITransport) SetDataMode() error {
	return s.setLevel(gpio.High)
}

// WriteByte implements Transport.
func (s *SPITransport) WriteByte(b byte) error {
	s.buf = append(s.buf, b)
	if len(s.buf) >= s.maxTxSize {
		return s.Flush()
	}
	return nil
}

// Flush implements Transport.
func (s *SPITransport) Flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	err := s.c.Tx(s.buf, nil)
	s.buf = s.buf[:0]
	return err
}

// Close releases the SPI port if it was opened by OpenSPITransport.
func (s *SPITransport) Close() error {
	err := s.Flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
		s.closer = nil
	}
	return err
}

// setLevel drives the D/C line, sending the bytes buffered under the previous
// level first.
func (s *SPITransport) setLevel(l gpio.Level) error {
	if l == s.level {
		return nil
	}
	if err := s.Flush(); err != nil {
		return err
	}
	if err := s.dc.Out(l); err != nil {
		return err
	}
	s.level = l
	return nil
}

var _ Transport = &SPITransport{}
