package tensor

// Kind selects the tensor layout used for a pipeline entity.
//
// Images are rank-4 (batch, height, width, channels); masks are rank-3
// (batch, height, width) with an implicit single channel. Kind supplies the
// matching shape so one resampling code path serves both layouts without
// branching on entity type.
type Kind int

// Supported entity kinds.
const (
	Image Kind = iota
	Mask
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Image:
		return "image"
	case Mask:
		return "mask"
	default:
		return "unknown"
	}
}

// Rank returns the tensor rank used by this kind.
func (k Kind) Rank() int {
	if k == Mask {
		return 3
	}
	return 4
}

// Channels returns the stored channel count for this kind.
// Masks always carry a single implicit channel.
func (k Kind) Channels(channels int) int {
	if k == Mask {
		return 1
	}
	return channels
}

// ShapeFor builds the shape descriptor for a batch of this kind.
// The channel dimension is dropped for masks.
func (k Kind) ShapeFor(batch, width, height, channels int) Shape {
	if k == Mask {
		return Shape{batch, height, width}
	}
	return Shape{batch, height, width, channels}
}
