package sfxfile

import (
	"fmt"
)

// ParseError is a decoding failure reported by Parse, ParseFromBytes and ParseCart.
type ParseError struct {
	// Message starts with the decoding stage, like "sfx[3].note[7]".
	Message string

	// Offset is the byte position inside the decoded data where
	// the problem was found: an offset into the binary image for Parse
	// and into the cart text for ParseCart.
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (offset=%d)", e.Message, e.Offset)
}
