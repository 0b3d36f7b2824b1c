// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package imageio converts between 8-bit bitmaps and normalized float32
// tensors at the host boundary.
//
// Encoding always yields a batch of one. The channel count follows the
// bitmap: opaque bitmaps become 3-channel (RGB) tensors, bitmaps with an
// alpha component become 4-channel (RGBA). Decoding clamps every value into
// [0,1] before scaling to [0,255] and rounding half away from zero; values
// below 0 or above 1 are clamped, never wrapped.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // webp decode support

	"github.com/fluxgraph/fluxnodes/tensor"
)

// Codec errors at the bitmap/tensor boundary.
var (
	ErrDecode = errors.New("image decode failed")
	ErrEncode = errors.New("image encode failed")
)

// Decode reads and decodes a bitmap from r. PNG, JPEG, GIF, BMP, TIFF and
// WebP are supported.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// ToTensor converts a decoded bitmap into a normalized float32 tensor of
// shape (1, height, width, channels) with values in [0,1].
//
// Opaque bitmaps (JPEG, palette and truecolor PNG without alpha, grayscale)
// produce 3 channels; anything carrying alpha produces 4. The bitmap's own
// color conversion is used, so YCbCr sources go through the standard
// JPEG-to-RGB transform.
func ToTensor(img image.Image) (*tensor.Tensor, error) {
	channels := 4
	if op, ok := img.(interface{ Opaque() bool }); ok && op.Opaque() {
		channels = 3
	}

	nrgba := imaging.Clone(img)
	width := nrgba.Rect.Dx()
	height := nrgba.Rect.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d bitmap", ErrEncode, width, height)
	}

	data := make([]float32, width*height*channels)
	for p := 0; p < width*height; p++ {
		for c := 0; c < channels; c++ {
			data[p*channels+c] = float32(nrgba.Pix[p*4+c]) / 255
		}
	}
	return tensor.New(data, tensor.Image.ShapeFor(1, width, height, channels))
}

// ToImage converts one image's worth of normalized float32 data back into
// an 8-bit bitmap. channels must be 3 or 4; 3-channel data gets an opaque
// alpha. len(data) must equal width*height*channels.
func ToImage(data []float32, width, height, channels int) (image.Image, error) {
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: %d channels, want 3 or 4",
			tensor.ErrUnsupportedChannels, channels)
	}
	if len(data) != width*height*channels {
		return nil, fmt.Errorf("%w: %d values for %dx%dx%d",
			tensor.ErrShape, len(data), width, height, channels)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: empty %dx%d bitmap", ErrDecode, width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for p := 0; p < width*height; p++ {
		for c := 0; c < channels; c++ {
			img.Pix[p*4+c] = quantize(data[p*channels+c])
		}
		if channels == 3 {
			img.Pix[p*4+3] = 0xff
		}
	}
	return img, nil
}

// ToImageAt extracts batch element index from a rank-4 image tensor and
// converts it to a bitmap.
func ToImageAt(t *tensor.Tensor, index int) (image.Image, error) {
	_, height, width, channels, err := t.Dims4()
	if err != nil {
		return nil, err
	}
	slice, err := t.Element(index)
	if err != nil {
		return nil, err
	}
	return ToImage(slice, width, height, channels)
}

// quantize maps a normalized value to 8 bits: clamp to [0,1], scale to 255,
// round half away from zero.
func quantize(v float32) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(math.Round(float64(v) * 255))
}
