package lzw

// bitWriter packs variable-width codes MSB-first into bytes and hands
// completed bytes to an io.Writer-backed stream adapter. Mirrors the
// accumulator shape of original_source/src/lzw.c's bitbuffer_t: a
// shift-left-and-OR accumulator with a valid-bit count, byte-oriented
// output.
type bitWriter struct {
	buf uint32 // accumulator; low `n` bits are valid
	n   uint   // number of valid low-order bits in buf
	out *streamWriter
}

func newBitWriter(out *streamWriter) *bitWriter {
	return &bitWriter{out: out}
}

// writeBits appends the low nbits bits of code to the buffer, flushing
// complete bytes MSB-first as they accumulate. nbits must not exceed 24.
func (w *bitWriter) writeBits(code Code, nbits uint) error {
	w.buf = (w.buf << nbits) | (uint32(code) & ((1 << nbits) - 1))
	w.n += nbits

	for w.n >= 8 {
		w.n -= 8
		b := byte(w.buf >> w.n)
		if err := w.out.writeByte(b); err != nil {
			return err
		}
	}
	return nil
}

// flush pads the accumulator with zero bits to the next byte boundary,
// emits the final partial byte (if any), and flushes the underlying
// stream adapter's scratch buffer. Must be called exactly once, at the
// end of encoding.
func (w *bitWriter) flush() error {
	if w.n&7 != 0 {
		pad := 8 - (w.n & 7)
		if err := w.writeBits(0, pad); err != nil {
			return err
		}
	}
	return w.out.flush()
}

// bitReader pulls bytes from a stream adapter and serves them back as
// arbitrary-width, MSB-first codes.
type bitReader struct {
	buf uint32
	n   uint
	in  *streamReader
}

func newBitReader(in *streamReader) *bitReader {
	return &bitReader{in: in}
}

// readBits returns the next nbits bits of input, MSB-first. ok is false
// on clean end of stream. A code boundary is "clean" when nothing but
// leftover zero-pad bits (always fewer than 8, written once by the
// encoder's flush) remain and not a single further byte is available:
// that is indistinguishable from — and is — a well-formed stream end.
// If at least one further byte WAS available and consumed for this
// code before the stream ran dry, the code was genuinely underway and
// the stream is truncated: ErrInputUnderrun.
func (r *bitReader) readBits(nbits uint) (code Code, ok bool, err error) {
	fetched := 0
	for r.n < nbits {
		b, eof, rerr := r.in.readByte()
		if rerr != nil {
			return 0, false, rerr
		}
		if eof {
			if fetched == 0 && r.n < 8 && r.buf&((1<<r.n)-1) == 0 {
				return 0, false, nil
			}
			return 0, false, ErrInputUnderrun
		}
		fetched++
		r.buf = (r.buf << 8) | uint32(b)
		r.n += 8
	}

	r.n -= nbits
	code = Code((r.buf >> r.n) & ((1 << nbits) - 1))
	return code, true, nil
}
