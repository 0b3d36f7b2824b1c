// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package resize implements batched image and mask resizing.
//
// An Engine resizes every element of a batched tensor independently over a
// fixed worker pool, then reassembles the results in the original batch
// order. One resampling core serves both rank-4 image tensors and rank-3
// mask tensors; the output shape is derived from the entity kind.
//
// A call is synchronous and pure: it blocks until all elements complete or
// a failure is observed, never mutates its inputs, and retains no state
// between calls.
//
// Example:
//
//	res, err := resize.New().Resize(resize.Request{
//	    Image:  img,
//	    Width:  512,
//	    Height: 512,
//	    Kernel: resize.Lanczos3,
//	})
package resize

import (
	"errors"
	"fmt"

	"github.com/fluxgraph/fluxnodes/internal/parallel"
	"github.com/fluxgraph/fluxnodes/internal/resample"
	"github.com/fluxgraph/fluxnodes/tensor"
)

// ErrResize reports a resampling failure, including non-positive target
// dimensions.
var ErrResize = errors.New("resize failed")

// Kernel selects the interpolation filter.
type Kernel = resample.Kernel

// Supported kernels. Lanczos3 is the default.
const (
	Lanczos3 Kernel = resample.Lanczos3
	Point    Kernel = resample.Point
	Triangle Kernel = resample.Triangle
	Catrom   Kernel = resample.Catrom
	Mitchell Kernel = resample.Mitchell
	BSpline  Kernel = resample.BSpline
	Gaussian Kernel = resample.Gaussian
)

// ParseKernel maps a host-supplied kernel name ("lanczos3", "point",
// "triangle", "catrom", "mitchell", "bspline", "gaussian") to a Kernel.
// The empty string selects Lanczos3.
func ParseKernel(name string) (Kernel, error) {
	return resample.Parse(name)
}

// Request describes one batched resize operation.
type Request struct {
	// Image is the rank-4 (batch, height, width, channels) tensor to
	// resize. Channels must be 3 or 4.
	Image *tensor.Tensor

	// Mask optionally carries a rank-3 (batch, height, width) tensor
	// resized alongside the image. Its batch count must match the image's.
	Mask *tensor.Tensor

	// Width and Height are the target dimensions, both strictly positive.
	Width  int
	Height int

	// Kernel selects the interpolation filter.
	Kernel Kernel
}

// Result carries the resized tensors and echoes the target dimensions.
type Result struct {
	Image  *tensor.Tensor
	Mask   *tensor.Tensor
	Width  int
	Height int
}

// Engine resizes batched tensors over a fixed worker pool.
type Engine struct {
	pool parallel.Config
}

// New returns an engine with one worker per CPU core.
func New() *Engine {
	return &Engine{pool: parallel.DefaultConfig()}
}

// NewWithWorkers returns an engine with an explicit pool size.
// n <= 1 runs batch elements sequentially.
func NewWithWorkers(n int) *Engine {
	return &Engine{pool: parallel.WithWorkers(n)}
}

// Resize resizes every batch element of the request's image, and of its
// mask when present, to the target dimensions.
//
// Batch elements are processed concurrently; each task reads a disjoint
// input slice and writes a disjoint region of a pre-sized output buffer, so
// the output batch order always matches the input order regardless of
// completion order. If several elements fail concurrently, which error is
// surfaced is unspecified; this implementation reports the failure with the
// lowest batch index.
func (e *Engine) Resize(req Request) (*Result, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("%w: target dimensions %dx%d must be positive",
			ErrResize, req.Width, req.Height)
	}
	if req.Image == nil {
		return nil, fmt.Errorf("%w: missing image tensor", tensor.ErrDimension)
	}

	batch, srcH, srcW, channels, err := req.Image.Dims4()
	if err != nil {
		return nil, err
	}
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: image has %d channels, want 3 or 4",
			tensor.ErrUnsupportedChannels, channels)
	}

	out := &Result{Width: req.Width, Height: req.Height}

	if req.Mask != nil {
		maskBatch, maskH, maskW, err := req.Mask.Dims3()
		if err != nil {
			return nil, err
		}
		if maskBatch != batch {
			return nil, fmt.Errorf("%w: mask batch %d does not match image batch %d",
				tensor.ErrDimension, maskBatch, batch)
		}
		out.Mask, err = e.resizeBatch(req.Mask.Data(), tensor.Mask,
			maskBatch, maskW, maskH, 1, req.Width, req.Height, req.Kernel)
		if err != nil {
			return nil, err
		}
	}

	out.Image, err = e.resizeBatch(req.Image.Data(), tensor.Image,
		batch, srcW, srcH, channels, req.Width, req.Height, req.Kernel)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// resizeBatch fans one tensor's batch elements out over the worker pool and
// reassembles the per-element buffers keyed by batch index.
func (e *Engine) resizeBatch(src []float32, kind tensor.Kind,
	batch, srcW, srcH, channels, dstW, dstH int, k Kernel) (*tensor.Tensor, error) {

	perIn := srcW * srcH * channels
	perOut := dstW * dstH * channels
	data := make([]float32, batch*perOut)
	errs := make([]error, batch)

	parallel.For(batch, func(b int) {
		buf, err := resample.Resample(src[b*perIn:(b+1)*perIn],
			srcW, srcH, channels, dstW, dstH, k)
		if err != nil {
			errs[b] = fmt.Errorf("batch element %d: %w", b, err)
			return
		}
		copy(data[b*perOut:(b+1)*perOut], buf)
	}, e.pool)

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrResize, err)
		}
	}

	shape := kind.ShapeFor(batch, dstW, dstH, channels)
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: reassembled %d values for shape %v",
			tensor.ErrShape, len(data), shape)
	}
	return tensor.New(data, shape)
}
