// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package imageio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxgraph/fluxnodes/imageio"
	"github.com/fluxgraph/fluxnodes/tensor"
)

func TestToTensorOpaqueIsThreeChannels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(40 * x), G: uint8(90 * y), B: 200, A: 255})
		}
	}

	tt, err := imageio.ToTensor(img)
	require.NoError(t, err)
	assert.True(t, tensor.Shape{1, 2, 3, 3}.Equal(tt.Shape()), "got %v", tt.Shape())

	// Values normalized to [0,1].
	for _, v := range tt.Data() {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestToTensorAlphaIsFourChannels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	img.SetNRGBA(1, 1, color.NRGBA{R: 0, G: 255, B: 0, A: 64})

	tt, err := imageio.ToTensor(img)
	require.NoError(t, err)
	assert.True(t, tensor.Shape{1, 2, 2, 4}.Equal(tt.Shape()), "got %v", tt.Shape())
}

func TestRoundTripWithinOneLevel(t *testing.T) {
	cases := map[string]image.Image{}

	rgb := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			rgb.SetRGBA(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 80), B: uint8(x*y + 17), A: 255})
		}
	}
	cases["rgb"] = rgb

	rgba := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			rgba.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 50), G: uint8(y * 70), B: 99, A: uint8(255 - x*30)})
		}
	}
	cases["rgba"] = rgba

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			tt, err := imageio.ToTensor(src)
			require.NoError(t, err)

			_, h, w, c, err := tt.Dims4()
			require.NoError(t, err)

			back, err := imageio.ToImage(tt.Data(), w, h, c)
			require.NoError(t, err)

			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					wr, wg, wb, wa := color.NRGBAModel.Convert(src.At(x, y)).RGBA()
					gr, gg, gb, ga := color.NRGBAModel.Convert(back.At(x, y)).RGBA()
					assert.InDelta(t, wr>>8, gr>>8, 1, "red at %d,%d", x, y)
					assert.InDelta(t, wg>>8, gg>>8, 1, "green at %d,%d", x, y)
					assert.InDelta(t, wb>>8, gb>>8, 1, "blue at %d,%d", x, y)
					if c == 4 {
						assert.InDelta(t, wa>>8, ga>>8, 1, "alpha at %d,%d", x, y)
					}
				}
			}
		})
	}
}

func TestToImageClampsOutOfRange(t *testing.T) {
	// Overshoot values clamp to the extremes, never wrap.
	data := []float32{-0.5, 1.5, 0.5}

	img, err := imageio.ToImage(data, 1, 1, 3)
	require.NoError(t, err)

	nrgba, ok := img.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, uint8(0), nrgba.Pix[0], "-0.5 clamps to 0")
	assert.Equal(t, uint8(255), nrgba.Pix[1], "1.5 clamps to 255")
	assert.Equal(t, uint8(128), nrgba.Pix[2], "0.5 rounds to 128")
	assert.Equal(t, uint8(255), nrgba.Pix[3], "3-channel data gets opaque alpha")
}

func TestToImageValidation(t *testing.T) {
	_, err := imageio.ToImage(make([]float32, 2*2*2), 2, 2, 2)
	require.ErrorIs(t, err, tensor.ErrUnsupportedChannels)

	_, err = imageio.ToImage(make([]float32, 5), 2, 2, 3)
	require.ErrorIs(t, err, tensor.ErrShape)
}

func TestToImageAt(t *testing.T) {
	// Two batch elements with different constant colors.
	data := make([]float32, 2*1*1*3)
	copy(data[0:3], []float32{1, 0, 0})
	copy(data[3:6], []float32{0, 1, 0})
	tt, err := tensor.New(data, tensor.Shape{2, 1, 1, 3})
	require.NoError(t, err)

	img, err := imageio.ToImageAt(tt, 1)
	require.NoError(t, err)

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), r>>8)
	assert.Equal(t, uint32(255), g>>8)
	assert.Equal(t, uint32(0), b>>8)

	_, err = imageio.ToImageAt(tt, 2)
	require.Error(t, err)
}

func TestDecodePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := imageio.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	_, err = imageio.Decode(bytes.NewReader([]byte("not an image")))
	require.ErrorIs(t, err, imageio.ErrDecode)
}
