// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxgraph/fluxnodes/tensor"
)

// onePixelPNG is a base64-encoded 1x1 opaque truecolor PNG.
const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAIAAACQd1PeAAAAD0lEQVR4AQEEAPv/AP8AAAMBAQCNHeWCAAAAAElFTkSuQmCC"

func TestBase64ToImageWithHeader(t *testing.T) {
	out, err := Base64ToImage{}.Execute(NewContext(""), Base64ToImageInput{
		Image: "data:image/png;base64," + onePixelPNG,
	})
	require.NoError(t, err)
	assert.True(t, tensor.Shape{1, 1, 1, 3}.Equal(out.Image.Shape()),
		"got %v", out.Image.Shape())
}

func TestBase64ToImageWithoutHeader(t *testing.T) {
	out, err := Base64ToImage{}.Execute(NewContext(""), Base64ToImageInput{
		Image: onePixelPNG,
	})
	require.NoError(t, err)
	assert.True(t, tensor.Shape{1, 1, 1, 3}.Equal(out.Image.Shape()))
}

func TestBase64ToImageInvalid(t *testing.T) {
	_, err := Base64ToImage{}.Execute(NewContext(""), Base64ToImageInput{
		Image: "invalid",
	})
	require.Error(t, err)
}

func TestStripDataURLPrefix(t *testing.T) {
	assert.Equal(t, "abc", stripDataURLPrefix("data:image/png;base64,abc"))
	assert.Equal(t, "abc", stripDataURLPrefix("abc"), "no comma means raw base64")
	assert.Equal(t, "b,c", stripDataURLPrefix("a,b,c"), "only the first comma delimits")
	assert.Equal(t, "", stripDataURLPrefix("data:,"))
}
