package tensor

import "errors"

// Validation errors shared across the resize pipeline.
var (
	// ErrDimension reports a tensor whose rank does not match what an
	// operation expects (images are rank 4, masks rank 3).
	ErrDimension = errors.New("unexpected tensor rank")

	// ErrUnsupportedChannels reports a channel count outside the allowed
	// set for the entity kind (3 or 4 for images, 1 for masks).
	ErrUnsupportedChannels = errors.New("unsupported channel count")

	// ErrShape reports a buffer whose length does not match its shape.
	ErrShape = errors.New("buffer length does not match shape")
)
