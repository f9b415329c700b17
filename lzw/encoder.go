package lzw

import "io"

// Encoder is a streaming LZW encoder. It owns its dictionary arena, its
// bit buffer, and its output scratch buffer for the lifetime of a
// single stream; it is not safe for concurrent use, and one Encoder
// must not be shared across streams.
type Encoder struct {
	dict     *encoderDict
	bw       *bitWriter
	width    uint
	maxWidth int
	omega    Code // current prefix; noCode before the first byte is seen
	started  bool
	codes    int64 // codes successfully emitted; backs CodecError.Index on a callback failure
	closed   bool
}

// NewEncoder creates an Encoder that writes its packed code stream to w.
func NewEncoder(w io.Writer, opts ...Option) (*Encoder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Encoder{
		dict:     newEncoderDict(o.MaxWidth),
		bw:       newBitWriter(newStreamWriter(w)),
		width:    startWidth,
		maxWidth: o.MaxWidth,
		omega:    noCode,
	}, nil
}

// Write implements io.Writer, feeding p through the LZW prefix-search
// state machine of spec.md §4.5. It never returns a short write: either
// all of p is consumed or an error is returned.
func (e *Encoder) Write(p []byte) (n int, err error) {
	for _, c := range p {
		if !e.started {
			e.omega = Code(c)
			e.started = true
			n++
			continue
		}

		if next := e.dict.findChild(e.omega, c); next != noCode {
			e.omega = next
			n++
			continue
		}

		if err := e.emit(e.omega); err != nil {
			return n, err
		}
		if e.dict.addChild(e.omega, c) == noCode {
			e.dict.reset()
			e.width = startWidth
		} else {
			e.maybeWiden()
		}
		e.omega = Code(c)
		n++
	}
	return n, nil
}

// emit writes code at the encoder's current width and advances the
// code counter used for structured error reporting. A failure here can
// only be a CallbackFailure — the caller's io.Writer returned an error
// — so it's reported as a CodecError carrying the index of the code
// being emitted when the write failed, the same diagnostic the decoder
// attaches to ErrInvalidCode/ErrInputUnderrun.
func (e *Encoder) emit(code Code) error {
	if err := e.bw.writeBits(code, e.width); err != nil {
		return &CodecError{Err: err, Index: e.codes}
	}
	e.codes++
	return nil
}

// maybeWiden implements the width-widening rule of spec.md §4.5.c:
// after emitting a code and growing the dictionary, if the new max
// would overflow the current width, widen by one bit, capped at
// maxWidth. The decoder performs the symmetric check on the read side
// (the inline check in Decoder.step) so the two sides stay in lockstep.
func (e *Encoder) maybeWiden() {
	if int(e.dict.max)+1 == 1<<e.width && e.width < uint(e.maxWidth) {
		e.width++
	}
}

// Finish emits the final pending prefix, pads to a byte boundary, and
// flushes the underlying writer. The Encoder must not be used again
// afterward. Finish must be called exactly once at the end of a stream:
// an Encoder that is abandoned without calling Finish leaves the final
// omega and any partial bit-buffer byte unemitted.
func (e *Encoder) Finish() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.started {
		if err := e.emit(e.omega); err != nil {
			return err
		}
	}
	if err := e.bw.flush(); err != nil {
		return &CodecError{Err: err, Index: e.codes}
	}
	return nil
}
