// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/GermanBionicSystems/tft/hx8357"
	"github.com/GermanBionicSystems/tft/hx8357/image565"
)

const (
	titleHeight  = 64
	statusHeight = 16
)

var barColors = []image565.Color{
	image565.Red,
	image565.Green,
	image565.Blue,
	image565.Cyan,
	image565.Magenta,
	image565.Yellow,
	image565.White,
}

// drawDemo draws a title, color bars, a cross-hair and a status line.
func drawDemo(d *hx8357.Dev) error {
	w, h := d.Width(), d.Height()
	if err := d.FillScreen(uint16(image565.Black)); err != nil {
		return err
	}

	title, err := renderTitle(w, titleHeight, "HX8357")
	if err != nil {
		return err
	}
	if err := d.Draw(title.Bounds(), title, image.Point{}); err != nil {
		return err
	}

	// Color bars fill the middle band.
	barW := w / len(barColors)
	top := titleHeight + 8
	barH := (h - top - statusHeight) / 2
	for i, c := range barColors {
		if err := d.FillRect(i*barW, top, barW, barH, uint16(c)); err != nil {
			return err
		}
	}

	// Cross-hair in the lower band.
	cy := top + barH + (h-top-barH-statusHeight)/2
	if err := d.DrawFastHLine(0, cy, w, uint16(image565.White)); err != nil {
		return err
	}
	if err := d.DrawFastVLine(w/2, top+barH, h-top-barH-statusHeight, uint16(image565.White)); err != nil {
		return err
	}

	status := renderStatus(w, fmt.Sprintf("%dx%d rotation %d", w, h, d.Rotation()))
	r := status.Bounds().Add(image.Pt(0, h-statusHeight))
	return d.Draw(r, status, image.Point{})
}

// renderTitle renders text centered in a w×h dark blue band with Go Regular.
func renderTitle(w, h int, text string) (image.Image, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0.4)
	dc.Clear()
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: float64(h) / 2}))
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(text, float64(w)/2, float64(h)/2, 0.5, 0.5)
	return dc.Image(), nil
}

// renderStatus renders a yellow line of text with the 7x13 bitmap font.
func renderStatus(w int, text string) *image565.Image {
	img := image565.NewImage(image.Rect(0, 0, w, statusHeight))
	f := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image565.Yellow},
		Face: f,
		Dot:  fixed.P(2, statusHeight-1-f.Descent),
	}
	drawer.DrawString(text)
	return img
}
