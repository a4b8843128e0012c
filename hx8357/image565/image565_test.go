// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image565

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g++ {
			for b := 0; b < 256; b++ {
				c := uint16(New(uint8(r), uint8(g), uint8(b)))
				if got := int(c >> 11); got != r>>3 {
					t.Fatalf("New(%d, %d, %d) red = %d, want %d", r, g, b, got, r>>3)
				}
				if got := int(c>>5) & 0x3F; got != g>>2 {
					t.Fatalf("New(%d, %d, %d) green = %d, want %d", r, g, b, got, g>>2)
				}
				if got := int(c) & 0x1F; got != b>>3 {
					t.Fatalf("New(%d, %d, %d) blue = %d, want %d", r, g, b, got, b>>3)
				}
			}
		}
	}
}

func TestNamedColors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"black", 0, 0, 0, Black},
		{"white", 255, 255, 255, White},
		{"red", 255, 0, 0, Red},
		{"green", 0, 255, 0, Green},
		{"blue", 0, 0, 255, Blue},
		{"yellow", 255, 255, 0, Yellow},
		{"cyan", 0, 255, 255, Cyan},
		{"magenta", 255, 0, 255, Magenta},
		{"truncated", 0x07, 0x03, 0x07, Black},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := New(tc.r, tc.g, tc.b); got != tc.want {
				t.Errorf("New() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := White.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("White.RGBA() = %x %x %x %x", r, g, b, a)
	}
	r, g, b, a = Black.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("Black.RGBA() = %x %x %x %x", r, g, b, a)
	}
	// Round trip is exact for every representable color.
	for c := 0; c < 0x10000; c++ {
		if got := Convert(color.RGBA64Model.Convert(Color(c))); got != Color(c) {
			t.Fatalf("Convert(%s) = %s", Color(c), got)
		}
	}
}

func TestConvert(t *testing.T) {
	if got := Convert(color.NRGBA{R: 0xFF, G: 0x80, B: 0x10, A: 0xFF}); got != New(0xFF, 0x80, 0x10) {
		t.Errorf("Convert() = %s", got)
	}
	if got := Model.Convert(Red); got != Red {
		t.Errorf("Model.Convert(Red) = %v", got)
	}
}

func TestImage(t *testing.T) {
	img := NewImage(image.Rect(1, 2, 4, 4))
	if diff := cmp.Diff(img.Bounds(), image.Rect(1, 2, 4, 4)); diff != "" {
		t.Errorf("Bounds() difference (-got +want):\n%s", diff)
	}
	if len(img.Pix) != 12 || img.Stride != 6 {
		t.Fatalf("len(Pix) = %d, Stride = %d", len(img.Pix), img.Stride)
	}
	img.SetRGB565(2, 3, 0x1234)
	img.Set(3, 2, color.White)
	img.SetRGB565(10, 10, Red)
	want := []byte{
		0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF,
		0x00, 0x00, 0x12, 0x34, 0x00, 0x00,
	}
	if diff := cmp.Diff(img.Pix, want); diff != "" {
		t.Errorf("Pix difference (-got +want):\n%s", diff)
	}
	if got := img.RGB565At(2, 3); got != 0x1234 {
		t.Errorf("RGB565At() = %s", got)
	}
	if got := img.RGB565At(0, 0); got != Black {
		t.Errorf("RGB565At() out of bounds = %s", got)
	}
	if !img.Opaque() {
		t.Error("Opaque() = false")
	}
}

func TestImageFillAndSubImage(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 3))
	img.Fill(image.Rect(1, 1, 10, 2), Green)
	for x := 0; x < 4; x++ {
		want := Black
		if x >= 1 {
			want = Green
		}
		if got := img.RGB565At(x, 1); got != want {
			t.Errorf("RGB565At(%d, 1) = %s, want %s", x, got, want)
		}
	}
	sub := img.SubImage(image.Rect(2, 1, 4, 3)).(*Image)
	if got := sub.RGB565At(2, 1); got != Green {
		t.Errorf("sub RGB565At(2, 1) = %s", got)
	}
	sub.SetRGB565(3, 2, Blue)
	if got := img.RGB565At(3, 2); got != Blue {
		t.Errorf("SubImage does not share pixels: %s", got)
	}
	if empty := img.SubImage(image.Rect(5, 5, 6, 6)); !empty.Bounds().Empty() {
		t.Errorf("SubImage() outside = %v", empty.Bounds())
	}
}

func TestImageDraw(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 2))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 0xFF, A: 0xFF}}, image.Point{}, draw.Src)
	for _, p := range []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if got := img.RGB565At(p.X, p.Y); got != Red {
			t.Errorf("RGB565At(%v) = %s", p, got)
		}
	}
}
