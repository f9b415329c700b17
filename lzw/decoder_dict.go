package lzw

// decoderNode records only what the decoder needs to walk the parent
// chain back to a string's bytes: the prefix code and the trailing
// byte, matching original_source/src/lzw-dec.c's node_dec_t.
type decoderNode struct {
	prev Code
	b    byte
}

// decoderDict is the decoder's fixed-capacity dictionary arena plus the
// scratch buffer stringOf reconstructs strings into. Sized once at
// construction and never reallocated during steady-state decoding.
type decoderDict struct {
	nodes    []decoderNode
	scratch  []byte
	max      Code
	dictSize int
}

func newDecoderDict(maxWidth int) *decoderDict {
	size := dictSizeFor(maxWidth)
	d := &decoderDict{
		nodes:    make([]decoderNode, size),
		scratch:  make([]byte, size),
		dictSize: size,
	}
	d.resetNodes()
	return d
}

func (d *decoderDict) resetNodes() {
	for i := 0; i < int(firstCode); i++ {
		d.nodes[i] = decoderNode{prev: noCode, b: byte(i)}
	}
	d.max = firstCode - 1
}

func (d *decoderDict) reset() {
	d.resetNodes()
}

func (d *decoderDict) full() bool {
	return int(d.max) == d.dictSize-1
}

// add records a new string prev+b, returning its code, or noCode if the
// dictionary has no room left.
func (d *decoderDict) add(prev Code, b byte) Code {
	if int(d.max) == d.dictSize-1 {
		return noCode
	}
	i := d.max + 1
	d.nodes[i] = decoderNode{prev: prev, b: b}
	d.max = i
	return i
}

// stringOf walks the parent chain for code, filling the scratch buffer
// from the tail toward the head, and returns the resulting slice (a
// view into the dict's own scratch buffer, valid until the next call)
// along with the string's first byte. The returned slice is non-empty
// as long as code != noCode.
func (d *decoderDict) stringOf(code Code) (s []byte, firstByte byte) {
	i := len(d.scratch)
	for code != noCode && i > 0 {
		i--
		d.scratch[i] = d.nodes[code].b
		code = d.nodes[code].prev
	}
	s = d.scratch[i:]
	if len(s) > 0 {
		firstByte = s[0]
	}
	return s, firstByte
}
