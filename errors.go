package cutf8

import (
	"errors"
	"fmt"
)

// ErrNotNulTerminated is returned when a constructor that requires a nul
// terminator finds none in its input.
var ErrNotNulTerminated = errors.New("cutf8: missing nul terminator")

// InteriorNulError reports an embedded nul byte found before the intended
// terminator position.
type InteriorNulError struct {
	// Offset is the byte position of the embedded nul.
	Offset int
}

func (e *InteriorNulError) Error() string {
	return fmt.Sprintf("cutf8: interior nul byte at offset %d", e.Offset)
}

// InvalidUTF8Error reports input that is not valid UTF-8.
type InvalidUTF8Error struct {
	// Offset is the position of the first byte that does not begin a valid
	// UTF-8 encoding.
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("cutf8: invalid UTF-8 encoding at offset %d", e.Offset)
}

// RejectedBufferError is returned by FromBytesWithNul when the candidate
// buffer fails validation. Bytes is the caller's original buffer, unchanged,
// so rejection never loses data. Use errors.As to recover it, or Unwrap to
// reach the underlying cause.
type RejectedBufferError struct {
	Bytes []byte
	Err   error
}

func (e *RejectedBufferError) Error() string {
	return fmt.Sprintf("cutf8: buffer rejected: %v", e.Err)
}

func (e *RejectedBufferError) Unwrap() error { return e.Err }
