// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nodes

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/fluxgraph/fluxnodes/imageio"
	"github.com/fluxgraph/fluxnodes/tensor"
)

func init() {
	register(Info{
		Name:        "Base64ToImage",
		Category:    "Flux Nodes / Image",
		Description: "Convert a base64-encoded string into an image tensor.",
	})
}

// Base64ToImageInput is the host-supplied request for Base64ToImage.
type Base64ToImageInput struct {
	// Image is base64-encoded bitmap data, with or without a leading
	// "data:<mime>;base64," header.
	Image string
}

// Base64ToImageOutput carries the decoded image tensor.
type Base64ToImageOutput struct {
	Image *tensor.Tensor
}

// Base64ToImage decodes a base64 string into an image tensor of batch one.
type Base64ToImage struct{}

// Execute strips an optional data-URL prefix, decodes the base64 payload
// and converts the bitmap into a normalized tensor.
func (Base64ToImage) Execute(_ Context, in Base64ToImageInput) (Base64ToImageOutput, error) {
	raw, err := base64.StdEncoding.DecodeString(stripDataURLPrefix(in.Image))
	if err != nil {
		return Base64ToImageOutput{}, fmt.Errorf("could not decode the base64 string, is it valid? %w", err)
	}

	img, err := imageio.Decode(bytes.NewReader(raw))
	if err != nil {
		return Base64ToImageOutput{}, err
	}

	t, err := imageio.ToTensor(img)
	if err != nil {
		return Base64ToImageOutput{}, err
	}
	return Base64ToImageOutput{Image: t}, nil
}

// stripDataURLPrefix drops the typical "data:<mime>;base64," prefix:
// everything up to and including the first comma. A string without a comma
// is treated as raw base64.
func stripDataURLPrefix(data string) string {
	if i := strings.IndexByte(data, ','); i >= 0 {
		return data[i+1:]
	}
	return data
}
