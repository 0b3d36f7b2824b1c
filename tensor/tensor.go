// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the pixel tensors flowing
// between pipeline nodes.
//
// A Tensor is an immutable-by-convention, row-major, contiguous float32
// array with a fixed-rank shape:
//   - images are rank-4 (batch, height, width, channels), channels 3 or 4
//   - masks are rank-3 (batch, height, width), one implicit channel
//
// Values are normalized to [0,1] at the host boundary; resampling kernels
// with negative lobes may push individual values outside that range.
//
// Example:
//
//	data := []float32{0, 0.25, 0.5, 0.75}
//	t, err := tensor.FromSlice(data, tensor.Shape{1, 2, 2})
package tensor

import (
	"github.com/fluxgraph/fluxnodes/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{1, 32, 32, 3} is a single 32×32 RGB image.
type Shape = tensor.Shape

// Tensor is a dense row-major float32 tensor.
type Tensor = tensor.Tensor

// Kind selects the tensor layout for a pipeline entity (image or mask).
type Kind = tensor.Kind

// Entity kinds.
const (
	Image Kind = tensor.Image
	Mask  Kind = tensor.Mask
)

// Validation errors.
var (
	ErrDimension           = tensor.ErrDimension
	ErrUnsupportedChannels = tensor.ErrUnsupportedChannels
	ErrShape               = tensor.ErrShape
)

// New wraps data in a tensor of the given shape.
// The slice is adopted, not copied; the caller hands over ownership.
func New(data []float32, shape Shape) (*Tensor, error) {
	return tensor.New(data, shape)
}

// FromSlice copies data into a new tensor of the given shape.
//
// Example:
//
//	t, err := tensor.FromSlice(pixels, tensor.Shape{1, h, w, 3})
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}
