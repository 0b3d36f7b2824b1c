// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nodes

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/fluxgraph/fluxnodes/imageio"
	"github.com/fluxgraph/fluxnodes/tensor"
)

func init() {
	register(Info{
		Name:        "ImageToBase64",
		Category:    "Flux Nodes / Image",
		Description: "Encode the first batch element of an image tensor as a base64 string.",
	})
}

// encodings maps host-facing format names to the encoder and MIME type.
// WebP is absent: the Go image ecosystem decodes webp but does not encode it.
var encodings = map[string]struct {
	format imaging.Format
	mime   string
}{
	"png":  {imaging.PNG, "image/png"},
	"jpeg": {imaging.JPEG, "image/jpeg"},
	"gif":  {imaging.GIF, "image/gif"},
	"bmp":  {imaging.BMP, "image/bmp"},
	"tiff": {imaging.TIFF, "image/tiff"},
}

// ImageToBase64Input is the host-supplied request for ImageToBase64.
type ImageToBase64Input struct {
	// Image is a rank-4 image tensor; element 0 is encoded.
	Image *tensor.Tensor

	// IncludeHeader prepends a "data:<mime>;base64," header when true.
	IncludeHeader bool

	// Format is one of png, jpeg, gif, bmp, tiff. Empty selects png.
	Format string
}

// ImageToBase64Output carries the encoded string.
type ImageToBase64Output struct {
	Base64 string
}

// ImageToBase64 serializes an image tensor back to an 8-bit bitmap and
// base64-encodes it.
type ImageToBase64 struct{}

// Execute converts batch element 0 to a bitmap, encodes it in the requested
// format and returns the base64 text, optionally with a data-URL header.
func (ImageToBase64) Execute(_ Context, in ImageToBase64Input) (ImageToBase64Output, error) {
	name := in.Format
	if name == "" {
		name = "png"
	}
	enc, ok := encodings[name]
	if !ok {
		return ImageToBase64Output{}, fmt.Errorf("%w: unknown format %q", imageio.ErrEncode, name)
	}

	img, err := imageio.ToImageAt(in.Image, 0)
	if err != nil {
		return ImageToBase64Output{}, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, enc.format); err != nil {
		return ImageToBase64Output{}, fmt.Errorf("%w: %v", imageio.ErrEncode, err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	if in.IncludeHeader {
		encoded = fmt.Sprintf("data:%s;base64,%s", enc.mime, encoded)
	}
	return ImageToBase64Output{Base64: encoded}, nil
}
