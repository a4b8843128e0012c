// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hx8357

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/conn/v3/spi/spitest"
)

// tx is one SPI transaction with the D/C level it was sent under.
type tx struct {
	DC gpio.Level
	W  []byte
}

// logPort is a spi.Port whose connection logs every Tx with the level of dc.
type logPort struct {
	dc      *gpiotest.Pin
	limit   int
	txs     []tx
	freq    physic.Frequency
	mode    spi.Mode
	bits    int
	failing bool
}

func (p *logPort) String() string {
	return "logport"
}

func (p *logPort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	p.freq, p.mode, p.bits = f, mode, bits
	return &logConn{p}, nil
}

type logConn struct {
	p *logPort
}

func (c *logConn) String() string {
	return "logconn"
}

func (c *logConn) Tx(w, r []byte) error {
	if c.p.failing {
		return errFake
	}
	c.p.txs = append(c.p.txs, tx{DC: c.p.dc.Read(), W: append([]byte(nil), w...)})
	return nil
}

func (c *logConn) Duplex() conn.Duplex {
	return conn.Half
}

func (c *logConn) TxPackets(p []spi.Packet) error {
	return errors.New("not implemented")
}

func (c *logConn) MaxTxSize() int {
	return c.p.limit
}

func TestNewSPITransport(t *testing.T) {
	dc := &gpiotest.Pin{N: "DC", L: gpio.Low}
	p := &logPort{dc: dc}
	s, err := NewSPITransport(p, dc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.freq != 30*physic.MegaHertz || p.mode != spi.Mode0 || p.bits != 8 {
		t.Errorf("Connect(%s, %s, %d)", p.freq, p.mode, p.bits)
	}
	if dc.Read() != gpio.High {
		t.Error("D/C must idle high")
	}
	if got, want := s.String(), "logconn, DC(0)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewSPITransportErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		p    spi.Port
		dc   gpio.PinOut
	}{
		{"nil dc", &spitest.Record{}, nil},
		{"invalid dc", &spitest.Record{}, gpio.INVALID},
		{"connect fails", &spitest.Record{Initialized: true}, &gpiotest.Pin{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSPITransport(tc.p, tc.dc, nil); !errors.Is(err, ErrTransportUnavailable) {
				t.Errorf("NewSPITransport() = %v, want ErrTransportUnavailable", err)
			}
		})
	}
}

func TestSPITransportFraming(t *testing.T) {
	dc := &gpiotest.Pin{N: "DC"}
	p := &logPort{dc: dc, limit: 4}
	s, err := NewSPITransport(p, dc, nil)
	if err != nil {
		t.Fatal(err)
	}
	d := New(s, &Opts{Clock: &sleepClock{}})
	d.started = true
	if err := d.FillRect(1, 2, 3, 1, 0xABCD); err != nil {
		t.Fatal(err)
	}
	want := []tx{
		{DC: gpio.Low, W: []byte{byte(CASET)}},
		{DC: gpio.High, W: []byte{0x00, 0x01, 0x00, 0x03}},
		{DC: gpio.Low, W: []byte{byte(PASET)}},
		{DC: gpio.High, W: []byte{0x00, 0x02, 0x00, 0x02}},
		{DC: gpio.Low, W: []byte{byte(RAMWR)}},
		// Split at MaxTxSize.
		{DC: gpio.High, W: []byte{0xAB, 0xCD, 0xAB, 0xCD}},
		{DC: gpio.High, W: []byte{0xAB, 0xCD}},
	}
	if diff := cmp.Diff(p.txs, want); diff != "" {
		t.Errorf("Tx difference (-got +want):\n%s", diff)
	}
}

func TestSPITransportFailure(t *testing.T) {
	dc := &gpiotest.Pin{N: "DC"}
	p := &logPort{dc: dc}
	s, err := NewSPITransport(p, dc, nil)
	if err != nil {
		t.Fatal(err)
	}
	d := New(s, nil)
	d.started = true
	p.failing = true
	if err := d.DrawPixel(0, 0, 0); !errors.Is(err, ErrTransmit) || !errors.Is(err, errFake) {
		t.Errorf("DrawPixel() = %v", err)
	}
}

func TestNewSPIRecord(t *testing.T) {
	r := &spitest.Record{}
	dc := &gpiotest.Pin{N: "DC"}
	d, err := NewSPI(r, dc, &Opts{Clock: &sleepClock{}})
	if err != nil {
		t.Fatal(err)
	}
	var got, want []byte
	for _, op := range r.Ops {
		got = append(got, op.W...)
	}
	for _, s := range wantInit {
		want = append(want, byte(s.cmd))
		want = append(want, s.data...)
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("init bytes difference (-got +want):\n%s", diff)
	}
	if got, want := d.String(), "hx8357.Dev{record, DC(0), 320x480}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewSPIPlaybackFailure(t *testing.T) {
	p := &spitest.Playback{Playback: conntest.Playback{DontPanic: true}}
	_, err := NewSPI(p, &gpiotest.Pin{N: "DC"}, &Opts{Clock: &sleepClock{}})
	if !errors.Is(err, ErrTransmit) {
		t.Errorf("NewSPI() = %v, want ErrTransmit", err)
	}
}

func TestOpenSPITransport(t *testing.T) {
	if _, err := OpenSPITransport("", "HX8357_NO_SUCH_PIN", nil); !errors.Is(err, ErrTransportUnavailable) {
		t.Errorf("OpenSPITransport() unknown pin = %v", err)
	}

	dc := &gpiotest.Pin{N: "HX8357_TEST_DC", Num: -1}
	if err := gpioreg.Register(dc); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = gpioreg.Unregister(dc.N) })

	if _, err := OpenSPITransport("HX8357_NO_SUCH_BUS", dc.N, nil); !errors.Is(err, ErrTransportUnavailable) {
		t.Errorf("OpenSPITransport() unknown bus = %v", err)
	}

	opener := func() (spi.PortCloser, error) {
		return &spitest.Record{}, nil
	}
	if err := spireg.Register("HX8357_TEST_SPI", nil, -1, opener); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = spireg.Unregister("HX8357_TEST_SPI") })

	s, err := OpenSPITransport("HX8357_TEST_SPI", dc.N, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetCommandMode(); err != nil {
		t.Fatal(err)
	}
	if dc.Read() != gpio.Low {
		t.Error("SetCommandMode() did not drive D/C low")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
