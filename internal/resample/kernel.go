package resample

import (
	"fmt"
	"math"
)

// Kernel identifies the interpolation filter used for resampling.
type Kernel int

// Supported kernels. Lanczos3 is the default.
const (
	Lanczos3 Kernel = iota
	Point
	Triangle
	Catrom
	Mitchell
	BSpline
	Gaussian
)

var kernelNames = map[string]Kernel{
	"lanczos3": Lanczos3,
	"point":    Point,
	"triangle": Triangle,
	"catrom":   Catrom,
	"mitchell": Mitchell,
	"bspline":  BSpline,
	"gaussian": Gaussian,
}

// Parse maps a kernel name from the host enumeration to a Kernel.
// The empty string selects Lanczos3.
func Parse(name string) (Kernel, error) {
	if name == "" {
		return Lanczos3, nil
	}
	k, ok := kernelNames[name]
	if !ok {
		return Lanczos3, fmt.Errorf("unknown interpolation kernel %q", name)
	}
	return k, nil
}

// String returns the kernel's host-facing name.
func (k Kernel) String() string {
	switch k {
	case Point:
		return "point"
	case Triangle:
		return "triangle"
	case Catrom:
		return "catrom"
	case Mitchell:
		return "mitchell"
	case BSpline:
		return "bspline"
	case Gaussian:
		return "gaussian"
	default:
		return "lanczos3"
	}
}

// Support returns the filter's support radius in source-pixel units.
// Point is a zero-support kernel: each output sample selects the nearest
// source pixel instead of a weighted sum.
func (k Kernel) Support() float64 {
	switch k {
	case Point:
		return 0
	case Triangle:
		return 1
	case Catrom, Mitchell, BSpline, Gaussian:
		return 2
	default:
		return 3 // Lanczos3
	}
}

// Weight evaluates the filter at distance x from the sample center.
// Lanczos3 and the cubic filters have negative lobes, so resampled values
// can land outside the source range.
func (k Kernel) Weight(x float64) float64 {
	switch k {
	case Point:
		if x >= -0.5 && x < 0.5 {
			return 1
		}
		return 0
	case Triangle:
		x = math.Abs(x)
		if x < 1 {
			return 1 - x
		}
		return 0
	case Catrom:
		return bcspline(x, 0, 0.5)
	case Mitchell:
		return bcspline(x, 1.0/3.0, 1.0/3.0)
	case BSpline:
		return bcspline(x, 1, 0)
	case Gaussian:
		x = math.Abs(x)
		if x < 2 {
			return math.Exp(-2*x*x) * math.Sqrt(2/math.Pi)
		}
		return 0
	default: // Lanczos3
		if x > -3 && x < 3 {
			return sinc(x) * sinc(x/3)
		}
		return 0
	}
}

// bcspline evaluates the Mitchell-Netravali family of cubic filters with
// parameters b and c.
func bcspline(x, b, c float64) float64 {
	x = math.Abs(x)
	if x < 1 {
		return ((12-9*b-6*c)*x*x*x + (-18+12*b+6*c)*x*x + (6 - 2*b)) / 6
	}
	if x < 2 {
		return ((-b-6*c)*x*x*x + (6*b+30*c)*x*x + (-12*b-48*c)*x + (8*b + 24*c)) / 6
	}
	return 0
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}
