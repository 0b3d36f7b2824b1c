package tensor

import "fmt"

// Tensor is a dense, row-major, contiguous float32 array with a fixed-rank
// shape. Values are conventionally normalized to [0,1], though nothing here
// enforces that: resampling kernels with negative lobes may overshoot.
//
// Tensors are never mutated in place by this library. Every transformation
// allocates a fresh buffer, so input and output lifetimes are independent.
type Tensor struct {
	data  []float32
	shape Shape
}

// New wraps data in a tensor of the given shape.
// The slice is adopted, not copied; the caller hands over ownership.
func New(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d",
			ErrShape, shape, shape.NumElements(), len(data))
	}
	return &Tensor{data: data, shape: shape.Clone()}, nil
}

// FromSlice copies data into a new tensor of the given shape.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	buf := make([]float32, len(data))
	copy(buf, data)
	return New(buf, shape)
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the tensor's backing slice (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// Dims3 unpacks a rank-3 (batch, height, width) shape.
func (t *Tensor) Dims3() (batch, height, width int, err error) {
	if len(t.shape) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: want rank 3, got shape %v", ErrDimension, t.shape)
	}
	return t.shape[0], t.shape[1], t.shape[2], nil
}

// Dims4 unpacks a rank-4 (batch, height, width, channels) shape.
func (t *Tensor) Dims4() (batch, height, width, channels int, err error) {
	if len(t.shape) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("%w: want rank 4, got shape %v", ErrDimension, t.shape)
	}
	return t.shape[0], t.shape[1], t.shape[2], t.shape[3], nil
}

// Element returns the flat data slice for batch element b.
// The first shape dimension is taken as the batch axis.
func (t *Tensor) Element(b int) ([]float32, error) {
	if len(t.shape) == 0 {
		return nil, fmt.Errorf("%w: scalar tensor has no batch axis", ErrDimension)
	}
	batch := t.shape[0]
	if b < 0 || b >= batch {
		return nil, fmt.Errorf("batch index %d out of range [0, %d)", b, batch)
	}
	per := t.NumElements() / batch
	return t.data[b*per : (b+1)*per], nil
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]float32, len(t.data))
	copy(data, t.data)
	return &Tensor{data: data, shape: t.shape.Clone()}
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[float32]%v", t.shape)
}
