// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hx8357

// Native panel size, in rotation 0.
const (
	NativeWidth  = 320
	NativeHeight = 480
)

// orientation is the MADCTL value and logical size of one rotation.
type orientation struct {
	madctl byte
	w, h   int
}

// orientations is indexed by rotation, in 90° clockwise steps.
var orientations = [4]orientation{
	{madctl: MadctlMX | MadctlMY | MadctlRGB, w: NativeWidth, h: NativeHeight},
	{madctl: MadctlMV | MadctlMY | MadctlRGB, w: NativeHeight, h: NativeWidth},
	{madctl: MadctlRGB, w: NativeWidth, h: NativeHeight},
	{madctl: MadctlMX | MadctlMV | MadctlRGB, w: NativeHeight, h: NativeWidth},
}

// normalizeRotation maps any integer to 0..3.
func normalizeRotation(m int) int {
	m %= 4
	if m < 0 {
		m += 4
	}
	return m
}

// SetRotation rotates the logical coordinate system by m quarter turns.
//
// m is taken modulo 4. Width and Height are swapped for odd rotations.
func (d *Dev) SetRotation(m int) error {
	if !d.started {
		return ErrNotStarted
	}
	r := normalizeRotation(m)
	o := orientations[r]
	eh := errorHandler{t: d.t}
	eh.command(MADCTL)
	eh.data(o.madctl)
	if err := eh.result(); err != nil {
		return err
	}
	d.rotation = r
	d.w, d.h = o.w, o.h
	return nil
}

// Rotation returns the current rotation, 0 to 3.
func (d *Dev) Rotation() int {
	return d.rotation
}
