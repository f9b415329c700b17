package lzw

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the encoder and decoder. Callers should
// compare with errors.Is rather than direct equality, since
// CallbackFailure errors wrap the caller's own io.Writer/io.Reader error.
var (
	// ErrDictionaryFull is returned by the decoder when it cannot add a
	// dictionary entry — unreachable in correct code, since the decoder
	// resets as soon as its dictionary fills, but surfaced defensively
	// rather than panicking. The encoder never returns it: a failed add
	// on its side triggers a reset.
	ErrDictionaryFull = errors.New("lzw: dictionary full")

	// ErrInvalidCode is returned by the decoder when it reads a code
	// greater than max+1, which cannot be explained by any valid
	// encoder state.
	ErrInvalidCode = errors.New("lzw: invalid code in input stream")

	// ErrInputUnderrun is returned by the decoder when the stream ends
	// with leftover bits that don't form a complete trailing code.
	ErrInputUnderrun = errors.New("lzw: truncated code at end of stream")

	// ErrInvalidParameter is returned when an Options value is out of
	// range.
	ErrInvalidParameter = errors.New("lzw: invalid parameter")
)

// CodecError decorates a sentinel error with the position (in codes
// emitted or consumed) at which it occurred. The original C sources
// print this to stderr for diagnostics; here it's a structured field a
// caller can inspect programmatically.
type CodecError struct {
	Err   error
	Index int64 // number of codes successfully processed before Err
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%v (at code %d)", e.Err, e.Index)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func wrapCallbackErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("lzw: %s: %w", op, err)
}
