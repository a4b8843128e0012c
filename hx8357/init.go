// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hx8357

import "time"

// step is one entry of the power-up table: a command, its parameters and the
// time the panel needs before it accepts the next command.
type step struct {
	cmd   Command
	data  []byte
	delay time.Duration
}

// Settle delays mandated by the HX8357-D data sheet.
const (
	unlockDelay = 300 * time.Millisecond
	sleepDelay  = 150 * time.Millisecond
	dispDelay   = 50 * time.Millisecond
)

// initSequence is the HX8357-D power-up sequence. The bytes come from the
// panel vendor and must not be altered.
var initSequence = []step{
	{cmd: SWRESET},
	// Enable extension commands.
	{cmd: SETC, data: []byte{0xFF, 0x83, 0x57}, delay: unlockDelay},
	// RGB interface, enables SDO.
	{cmd: SETRGB, data: []byte{0x80, 0x00, 0x06, 0x06}},
	// VCOM -1.52V.
	{cmd: SETCOM, data: []byte{0x25}},
	// Normal mode 70Hz, idle mode 55Hz.
	{cmd: SETOSC, data: []byte{0x68}},
	// BGR, gate direction swapped.
	{cmd: SETPANEL, data: []byte{0x05}},
	// Not deep standby, BT, VSPR, VSNR, AP, FS.
	{cmd: SETPWR1, data: []byte{0x00, 0x15, 0x1C, 0x1C, 0x83, 0xAA}},
	// OPON normal, OPON idle, STBA x3, GEN.
	{cmd: SETSTBA, data: []byte{0x50, 0x50, 0x01, 0x3C, 0x1E, 0x08}},
	// NW, RTN, DIV, DUM, DUM, GDON, GDOFF.
	{cmd: SETCYC, data: []byte{0x02, 0x40, 0x00, 0x2A, 0x2A, 0x0D, 0x78}},
	{cmd: SETGAMMA, data: []byte{
		0x02, 0x0A, 0x11, 0x1D, 0x23, 0x35, 0x41, 0x4B, 0x4B, 0x42, 0x3A, 0x27,
		0x1B, 0x08, 0x09, 0x03, 0x02, 0x0A, 0x11, 0x1D, 0x23, 0x35, 0x41, 0x4B,
		0x4B, 0x42, 0x3A, 0x27, 0x1B, 0x08, 0x09, 0x03, 0x00, 0x01,
	}},
	// 16 bits per pixel.
	{cmd: COLMOD, data: []byte{0x55}},
	{cmd: MADCTL, data: []byte{MadctlMX | MadctlMY | MadctlRGB}},
	// Tearing effect output off.
	{cmd: TEON, data: []byte{0x00}},
	{cmd: TEARLINE, data: []byte{0x00, 0x02}},
	{cmd: SLPOUT, delay: sleepDelay},
	{cmd: DISPON, delay: dispDelay},
}
