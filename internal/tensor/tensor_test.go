package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChecksLength(t *testing.T) {
	_, err := New(make([]float32, 5), Shape{2, 3})
	require.ErrorIs(t, err, ErrShape)

	tensor, err := New(make([]float32, 6), Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6, tensor.NumElements())
	assert.Equal(t, 2, tensor.Rank())
}

func TestNewRejectsInvalidShape(t *testing.T) {
	_, err := New(nil, Shape{0, 3})
	require.Error(t, err)
}

func TestFromSliceCopies(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	tensor, err := FromSlice(data, Shape{2, 2})
	require.NoError(t, err)

	data[0] = 99
	assert.Equal(t, float32(1), tensor.Data()[0])
}

func TestDims(t *testing.T) {
	img, err := New(make([]float32, 2*3*4*3), Shape{2, 3, 4, 3})
	require.NoError(t, err)

	b, h, w, c, err := img.Dims4()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 3}, []int{b, h, w, c})

	_, _, _, err = img.Dims3()
	require.ErrorIs(t, err, ErrDimension)

	mask, err := New(make([]float32, 2*3*4), Shape{2, 3, 4})
	require.NoError(t, err)

	mb, mh, mw, err := mask.Dims3()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, []int{mb, mh, mw})

	_, _, _, _, err = mask.Dims4()
	require.ErrorIs(t, err, ErrDimension)
}

func TestElement(t *testing.T) {
	data := []float32{0, 1, 2, 3, 10, 11, 12, 13}
	tensor, err := New(data, Shape{2, 2, 2})
	require.NoError(t, err)

	first, err := tensor.Element(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2, 3}, first)

	second, err := tensor.Element(1)
	require.NoError(t, err)
	assert.Equal(t, []float32{10, 11, 12, 13}, second)

	_, err = tensor.Element(2)
	require.Error(t, err)
	_, err = tensor.Element(-1)
	require.Error(t, err)
}

func TestCloneIsDeep(t *testing.T) {
	tensor, err := New([]float32{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	clone := tensor.Clone()
	clone.Data()[0] = 99
	assert.Equal(t, float32(1), tensor.Data()[0])
}

func TestString(t *testing.T) {
	tensor, err := New(make([]float32, 4), Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, "Tensor[float32][2 2]", tensor.String())
}
