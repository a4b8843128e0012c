// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hx8357

import "fmt"

// Command is an instruction byte of the HX8357 command set.
//
// It is sent with the D/C line low; its parameters follow with D/C high.
type Command byte

// HX8357 standard commands.
const (
	NOP       Command = 0x00
	SWRESET   Command = 0x01
	RDDID     Command = 0x04
	RDDST     Command = 0x09
	RDPOWMODE Command = 0x0A
	RDMADCTL  Command = 0x0B
	RDCOLMOD  Command = 0x0C
	RDDIM     Command = 0x0D
	RDDSDR    Command = 0x0F
	SLPIN     Command = 0x10
	SLPOUT    Command = 0x11
	INVOFF    Command = 0x20
	INVON     Command = 0x21
	DISPOFF   Command = 0x28
	DISPON    Command = 0x29
	CASET     Command = 0x2A
	PASET     Command = 0x2B
	RAMWR     Command = 0x2C
	RAMRD     Command = 0x2E
	TEON      Command = 0x35
	MADCTL    Command = 0x36
	COLMOD    Command = 0x3A
	TEARLINE  Command = 0x44
)

// HX8357-D extended commands. SETC must unlock them first.
const (
	SETOSC   Command = 0xB0
	SETPWR1  Command = 0xB1
	SETRGB   Command = 0xB3
	SETCYC   Command = 0xB4
	SETCOM   Command = 0xB6
	SETC     Command = 0xB9
	SETSTBA  Command = 0xC0
	SETPANEL Command = 0xCC
	SETGAMMA Command = 0xE0
)

// MADCTL parameter bits.
const (
	MadctlMY  byte = 0x80 // Row address order.
	MadctlMX  byte = 0x40 // Column address order.
	MadctlMV  byte = 0x20 // Row/column exchange.
	MadctlML  byte = 0x10 // Vertical refresh order.
	MadctlRGB byte = 0x00
	MadctlBGR byte = 0x08
	MadctlMH  byte = 0x04 // Horizontal refresh order.
)

var commandNames = map[Command]string{
	NOP:       "NOP",
	SWRESET:   "SWRESET",
	RDDID:     "RDDID",
	RDDST:     "RDDST",
	RDPOWMODE: "RDPOWMODE",
	RDMADCTL:  "RDMADCTL",
	RDCOLMOD:  "RDCOLMOD",
	RDDIM:     "RDDIM",
	RDDSDR:    "RDDSDR",
	SLPIN:     "SLPIN",
	SLPOUT:    "SLPOUT",
	INVOFF:    "INVOFF",
	INVON:     "INVON",
	DISPOFF:   "DISPOFF",
	DISPON:    "DISPON",
	CASET:     "CASET",
	PASET:     "PASET",
	RAMWR:     "RAMWR",
	RAMRD:     "RAMRD",
	TEON:      "TEON",
	MADCTL:    "MADCTL",
	COLMOD:    "COLMOD",
	TEARLINE:  "TEARLINE",
	SETOSC:    "SETOSC",
	SETPWR1:   "SETPWR1",
	SETRGB:    "SETRGB",
	SETCYC:    "SETCYC",
	SETCOM:    "SETCOM",
	SETC:      "SETC",
	SETSTBA:   "SETSTBA",
	SETPANEL:  "SETPANEL",
	SETGAMMA:  "SETGAMMA",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Command(0x%02X)", byte(c))
}
