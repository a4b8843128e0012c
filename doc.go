// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tft is a container for color TFT panel drivers.
//
// See hx8357 for the Himax HX8357 driver and hx8357/hx8357sim for its
// in-memory emulator.
package tft
