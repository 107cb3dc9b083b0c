package anvil

import (
	"errors"

	"github.com/anvilgfx/anvil/codec"
)

// Common errors for buffer and diff operations.
var (
	// ErrOutOfBounds is returned by the strict pixel accessors when the
	// coordinate lies outside the buffer.
	ErrOutOfBounds = errors.New("anvil: coordinates out of bounds")

	// ErrBufferSizeMismatch is returned when a raw byte slice does not
	// hold exactly width*height*4 bytes.
	ErrBufferSizeMismatch = errors.New("anvil: buffer size mismatch")

	// ErrPartialBufferSizeMismatch is returned when a partial diff's swap
	// buffer does not match its bounding box area.
	ErrPartialBufferSizeMismatch = errors.New("anvil: partial buffer size mismatch")

	// ErrDecodeFailure is returned by codecs when encoded bytes cannot be
	// decoded; it is the same value as codec.ErrDecode. Import paths
	// convert it to a false result and leave the buffer unchanged.
	ErrDecodeFailure = codec.ErrDecode
)
