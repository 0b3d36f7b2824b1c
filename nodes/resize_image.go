// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nodes

import (
	"github.com/fluxgraph/fluxnodes/resize"
	"github.com/fluxgraph/fluxnodes/tensor"
)

func init() {
	register(Info{
		Name:        "ResizeImage",
		Category:    "Flux Nodes / Image",
		Description: "Resize a batched image, and an optional mask, under a selectable interpolation kernel.",
	})
}

// ResizeImageInput is the host-supplied request for ResizeImage.
type ResizeImageInput struct {
	Width  int
	Height int
	Image  *tensor.Tensor
	Mask   *tensor.Tensor

	// Interpolation is one of lanczos3, point, triangle, catrom, mitchell,
	// bspline, gaussian. Empty selects lanczos3.
	Interpolation string
}

// ResizeImageOutput carries the resized tensors and echoes the target size.
type ResizeImageOutput struct {
	Image  *tensor.Tensor
	Mask   *tensor.Tensor
	Width  int
	Height int
}

// ResizeImage resizes every element of a batched image tensor, and of an
// optional mask tensor, to new dimensions.
type ResizeImage struct{}

// Execute runs the resize.
func (ResizeImage) Execute(_ Context, in ResizeImageInput) (ResizeImageOutput, error) {
	kernel, err := resize.ParseKernel(in.Interpolation)
	if err != nil {
		return ResizeImageOutput{}, err
	}

	res, err := resize.New().Resize(resize.Request{
		Image:  in.Image,
		Mask:   in.Mask,
		Width:  in.Width,
		Height: in.Height,
		Kernel: kernel,
	})
	if err != nil {
		return ResizeImageOutput{}, err
	}

	return ResizeImageOutput{
		Image:  res.Image,
		Mask:   res.Mask,
		Width:  res.Width,
		Height: res.Height,
	}, nil
}
