// Package lzw implements a streaming LZW encoder and decoder for a raw,
// header-less code stream with dynamic code width and whole-dictionary
// reset on overflow. There is no magic, version, length or checksum on
// the wire: the format is a bare sequence of variable-width codes packed
// MSB-first into bytes.
//
// The format is not compatible with the LZW variants used by GIF,
// compress(1) or TIFF: those use explicit CLEAR/EOI sentinels and, in
// some cases, LSB-first packing. This package implements neither.
package lzw

// Code identifies a string in the dictionary.
type Code uint32

const (
	// MaxWidth is the compile-time ceiling on code width in bits. It sets
	// DictSize = 1 << MaxWidth. Valid range is 12-24; both the encoder
	// and the decoder of a given stream must agree on this value.
	MaxWidth = 20

	// DictSize is the number of dictionary slots, including the 256
	// single-byte entries. Every value in [0, DictSize) is a usable
	// code; unlike the reference C sources, this package does not
	// overload the top of that range as an absent-code sentinel (see
	// noCode) so the full DictSize codes are all available.
	DictSize = 1 << MaxWidth

	// noCode is the option-like "no such code" marker used for the
	// encoder's empty prefix and the decoder's empty "previous code" at
	// stream start and immediately after a reset. It intentionally sits
	// far outside any representable DictSize (even at MaxWidth's ceiling
	// of 24 bits) so it can never collide with a real code.
	noCode Code = 1<<32 - 1

	// firstCode is the first code available for multi-byte strings.
	firstCode Code = 256

	// startWidth is the code width in bits at stream start and
	// immediately after a reset.
	startWidth = 9

	// minMaxWidth and maxMaxWidth bound the values WithMaxWidth accepts.
	minMaxWidth = 12
	maxMaxWidth = 24
)

// Options configures an Encoder or Decoder. The zero value is not valid;
// NewEncoder/NewDecoder start from MaxWidth and apply any WithMaxWidth
// functional option.
type Options struct {
	// MaxWidth overrides the package-level MaxWidth constant for a
	// single stream. Must be in [12, 24].
	MaxWidth int
}

// Validate reports whether o is usable, following the same
// options-struct-with-Validate shape used throughout this codebase's
// domain-parameter types.
func (o Options) Validate() error {
	if o.MaxWidth < minMaxWidth || o.MaxWidth > maxMaxWidth {
		return ErrInvalidParameter
	}
	return nil
}

func defaultOptions() Options {
	return Options{MaxWidth: MaxWidth}
}

// Option mutates Options; passed to NewEncoder/NewDecoder.
type Option func(*Options)

// WithMaxWidth overrides the maximum code width (bits) for a single
// stream, in place of the package-level MaxWidth constant. Both ends of
// a stream must be constructed with the same value.
func WithMaxWidth(bits int) Option {
	return func(o *Options) {
		o.MaxWidth = bits
	}
}

func dictSizeFor(maxWidth int) int {
	return 1 << uint(maxWidth)
}
