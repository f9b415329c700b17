package lzw

import (
	"errors"
	"io"
)

// Decoder is a streaming LZW decoder. It implements io.Reader: Read
// pulls packed codes from the underlying reader given to NewDecoder,
// reconstructs strings from the dictionary, and fills the caller's
// buffer with plaintext bytes. Read returns io.EOF once the code
// stream cleanly ends — there is no separate Finish call on this side,
// matching spec.md §4.8's "implicit finish when EOF is reached inside
// decode."
//
// A Decoder owns its dictionary arena and bit buffer for the lifetime
// of one stream and is not safe for concurrent use.
type Decoder struct {
	dict     *decoderDict
	br       *bitReader
	width    uint
	maxWidth int

	prev      Code // noCode at stream start and immediately after a reset
	firstByte byte
	codes     int64

	pending    []byte
	pendingPos int

	err error
	eof bool
}

// NewDecoder creates a Decoder that reads its packed code stream from r.
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Decoder{
		dict:     newDecoderDict(o.MaxWidth),
		br:       newBitReader(newStreamReader(r)),
		width:    startWidth,
		maxWidth: o.MaxWidth,
		prev:     noCode,
	}, nil
}

// Read implements io.Reader.
func (d *Decoder) Read(p []byte) (n int, err error) {
	if d.err != nil {
		return 0, d.err
	}

	for n < len(p) {
		if d.pendingPos < len(d.pending) {
			c := copy(p[n:], d.pending[d.pendingPos:])
			n += c
			d.pendingPos += c
			continue
		}
		if d.eof {
			return n, io.EOF
		}

		if serr := d.step(); serr != nil {
			if errors.Is(serr, io.EOF) {
				d.eof = true
				if n > 0 {
					return n, nil
				}
				return n, io.EOF
			}
			d.err = serr
			return n, serr
		}
	}
	return n, nil
}

// step performs one iteration of the decoder state machine of
// spec.md §4.6: read a code, reconstruct and buffer its string into
// d.pending, grow the dictionary, widen the code width, and reset the
// dictionary if it just filled. Returns io.EOF on a clean end of
// stream.
func (d *Decoder) step() error {
	nc, ok, err := d.br.readBits(d.width)
	if err != nil {
		if errors.Is(err, ErrInputUnderrun) {
			return &CodecError{Err: ErrInputUnderrun, Index: d.codes}
		}
		return err
	}
	if !ok {
		return io.EOF
	}

	var s []byte
	var firstByte byte

	switch {
	case nc <= d.dict.max:
		s, firstByte = d.dict.stringOf(nc)
		if d.prev != noCode {
			if d.dict.add(d.prev, firstByte) == noCode {
				return &CodecError{Err: ErrDictionaryFull, Index: d.codes}
			}
		}

	case nc == d.dict.max+1:
		if d.prev == noCode {
			return &CodecError{Err: ErrInvalidCode, Index: d.codes}
		}
		if d.dict.add(d.prev, d.firstByte) == noCode {
			return &CodecError{Err: ErrDictionaryFull, Index: d.codes}
		}
		s, firstByte = d.dict.stringOf(nc)

	default:
		return &CodecError{Err: ErrInvalidCode, Index: d.codes}
	}

	d.firstByte = firstByte
	d.pending = append(d.pending[:0], s...)
	d.pendingPos = 0
	d.codes++

	// Width-widening rule, symmetric with Encoder.maybeWiden. The
	// decoder's dictionary is always one entry behind the encoder's
	// (it cannot add the entry for a code until it has read the next
	// one), so the encoder's "max+1 == 1<<width" after its add is
	// "max+2 == 1<<width" here; both sides widen after the same code.
	if int(d.dict.max)+2 == 1<<d.width && d.width < uint(d.maxWidth) {
		d.width++
	}

	if d.dict.full() {
		d.dict.reset()
		d.width = startWidth
		d.prev = noCode
	} else {
		d.prev = nc
	}

	return nil
}
