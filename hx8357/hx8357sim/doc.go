// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hx8357sim emulates a HX8357 panel in memory.
//
// A Panel decodes the command and pixel stream produced by hx8357.Dev into a
// simulated graphics RAM, honoring the address window and the MADCTL memory
// access control. The result can be printed on a terminal with Terminal or
// served as PNG/JPEG snapshots over HTTP.
//
// Useful to develop a user interface before the panel comes by mail, and to
// test drawing code without hardware.
package hx8357sim
