// Package resample implements separable 2D resampling of flat float32 pixel
// buffers under a selectable interpolation kernel.
package resample

import (
	"fmt"
	"math"
)

// contrib lists the weighted source samples feeding one destination sample
// along a single axis.
type contrib struct {
	start   int
	weights []float64
}

// pointWeight is shared by all zero-support contributions.
var pointWeight = []float64{1}

// Resample resizes a channel-interleaved float32 pixel buffer from
// srcW x srcH to dstW x dstH using kernel k. It is pure: src is never
// written, and the result is a freshly allocated buffer of length
// dstW*dstH*channels.
//
// The same routine serves single-channel masks and 3/4-channel images;
// channels is the interleave stride, not a compile-time property. The
// resize is separable: a horizontal pass into a dstW x srcH intermediate,
// then a vertical pass.
//
// Border policy: sampling past an edge reuses the edge pixel
// (clamp-to-edge), uniformly for every kernel. This is observable at image
// borders. No output clamping is applied; kernels with negative lobes may
// overshoot the source value range.
func Resample(src []float32, srcW, srcH, channels, dstW, dstH int, k Kernel) ([]float32, error) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return nil, fmt.Errorf("unsupported size %dx%d -> %dx%d", srcW, srcH, dstW, dstH)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("invalid channel count %d", channels)
	}
	if len(src) != srcW*srcH*channels {
		return nil, fmt.Errorf("source buffer has %d values, want %d (%dx%dx%d)",
			len(src), srcW*srcH*channels, srcW, srcH, channels)
	}

	xc := contributions(srcW, dstW, k)
	yc := contributions(srcH, dstH, k)

	// Horizontal pass.
	tmp := make([]float32, dstW*srcH*channels)
	for y := 0; y < srcH; y++ {
		row := src[y*srcW*channels:]
		out := tmp[y*dstW*channels:]
		for x := 0; x < dstW; x++ {
			cb := xc[x]
			for c := 0; c < channels; c++ {
				var sum float64
				for i, w := range cb.weights {
					xi := clampIndex(cb.start+i, srcW)
					sum += w * float64(row[xi*channels+c])
				}
				out[x*channels+c] = float32(sum)
			}
		}
	}

	// Vertical pass.
	dst := make([]float32, dstW*dstH*channels)
	for y := 0; y < dstH; y++ {
		cb := yc[y]
		out := dst[y*dstW*channels:]
		for x := 0; x < dstW; x++ {
			for c := 0; c < channels; c++ {
				var sum float64
				for i, w := range cb.weights {
					yi := clampIndex(cb.start+i, srcH)
					sum += w * float64(tmp[(yi*dstW+x)*channels+c])
				}
				out[x*channels+c] = float32(sum)
			}
		}
	}
	return dst, nil
}

// contributions precomputes, for every destination coordinate along one
// axis, the window of source samples and normalized kernel weights. When
// minifying, the kernel is stretched by the scale factor so every source
// sample inside the widened support still contributes.
func contributions(srcN, dstN int, k Kernel) []contrib {
	scale := float64(srcN) / float64(dstN)

	if k.Support() == 0 {
		// Zero support: nearest source sample, no weighting.
		cs := make([]contrib, dstN)
		for i := range cs {
			xi := int((float64(i) + 0.5) * scale)
			if xi > srcN-1 {
				xi = srcN - 1
			}
			cs[i] = contrib{start: xi, weights: pointWeight}
		}
		return cs
	}

	fscale := math.Max(scale, 1)
	radius := math.Ceil(k.Support() * fscale)
	cs := make([]contrib, dstN)
	for i := range cs {
		center := (float64(i)+0.5)*scale - 0.5
		begin := int(math.Ceil(center - radius))
		end := int(math.Floor(center + radius))

		weights := make([]float64, 0, end-begin+1)
		var sum float64
		for u := begin; u <= end; u++ {
			w := k.Weight((float64(u) - center) / fscale)
			weights = append(weights, w)
			sum += w
		}
		if sum != 0 {
			for j := range weights {
				weights[j] /= sum
			}
		}
		cs[i] = contrib{start: begin, weights: weights}
	}
	return cs
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
