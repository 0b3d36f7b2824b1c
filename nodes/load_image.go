// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nodes

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fluxgraph/fluxnodes/imageio"
	"github.com/fluxgraph/fluxnodes/tensor"
)

func init() {
	register(Info{
		Name:        "LoadImageFromPath",
		Category:    "Flux Nodes / Image",
		Description: "Load an image from a file path relative to the working directory.",
	})
}

// LoadImageFromPathInput is the host-supplied request for LoadImageFromPath.
type LoadImageFromPathInput struct {
	// Filename is the image path, resolved against the context's WorkDir
	// unless absolute.
	Filename string
}

// LoadImageFromPathOutput carries the loaded image tensor.
type LoadImageFromPathOutput struct {
	Image *tensor.Tensor
}

// LoadImageFromPath reads and decodes an image file into a tensor.
type LoadImageFromPath struct{}

// Execute reads the file, decodes the bitmap and converts it to a tensor.
func (LoadImageFromPath) Execute(ctx Context, in LoadImageFromPathInput) (LoadImageFromPathOutput, error) {
	path := in.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(ctx.WorkDir, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return LoadImageFromPathOutput{}, fmt.Errorf("read image: %w", err)
	}

	img, err := imageio.Decode(bytes.NewReader(raw))
	if err != nil {
		return LoadImageFromPathOutput{}, fmt.Errorf("%s: %w", path, err)
	}

	t, err := imageio.ToTensor(img)
	if err != nil {
		return LoadImageFromPathOutput{}, err
	}
	return LoadImageFromPathOutput{Image: t}, nil
}
