// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hx8357sim

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"sync"
)

// snapshotFormat is one encoding ServeHTTP can reply with.
type snapshotFormat struct {
	mimeType string
	encode   func(w io.Writer, img image.Image) error
}

// pngBuffers lets concurrent requests reuse the PNG encoder scratch buffers.
type pngBuffers struct {
	pool sync.Pool
}

func (p *pngBuffers) Get() *png.EncoderBuffer {
	b, _ := p.pool.Get().(*png.EncoderBuffer)
	return b
}

func (p *pngBuffers) Put(b *png.EncoderBuffer) {
	p.pool.Put(b)
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed, BufferPool: &pngBuffers{}}

var (
	pngFormat  = snapshotFormat{mimeType: "image/png", encode: pngEncoder.Encode}
	jpegFormat = snapshotFormat{
		mimeType: "image/jpeg",
		encode: func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
		},
	}
)

// formatFromQuery maps the "format" URL parameter to an encoding. An empty
// value selects PNG.
func formatFromQuery(value string) (snapshotFormat, error) {
	switch value {
	case "", "png":
		return pngFormat, nil
	case "jpg", "jpeg":
		return jpegFormat, nil
	}
	return snapshotFormat{}, fmt.Errorf("unrecognized image format %q", value)
}
