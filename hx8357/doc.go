// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hx8357 controls a 320x480 color TFT panel driven by a Himax HX8357
// controller, as found on the Adafruit 3.5" TFT breakouts.
//
// The controller is driven over 4-wire SPI plus a D/C (data/command) GPIO
// line: a byte is interpreted as a command opcode while D/C is Low and as a
// parameter or pixel data while D/C is High. Pixels are 16 bits RGB565 sent
// big-endian.
//
// The driver keeps no framebuffer. Every drawing operation selects an address
// window on the controller and streams the pixels for it, so a single pixel
// costs 13 bytes on the wire while a large rectangle is mostly payload.
//
// Dev implements display.Drawer so it can be used with the standard image/draw
// package and anything producing an image.Image. Drawing an *image565.Image is
// a straight copy of its bytes.
//
// # Wiring
//
// The RST line of the breakout can be left pulled up; Begin issues a software
// reset. The panel must be configured in SPI mode (IM jumpers), the default on
// most breakouts.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/HX8357-D_DS_April2012.pdf
package hx8357
