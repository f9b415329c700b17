package lzw

// encoderNode is a trie node keyed by (prefix code, last byte), with a
// singly linked, head-inserted child list — the same shape as
// original_source/src/lzw-enc.c's node_t (prev/first/next/ch).
type encoderNode struct {
	prev        Code
	firstChild  Code
	nextSibling Code
	b           byte
}

// encoderDict is the encoder's fixed-capacity dictionary arena.
type encoderDict struct {
	nodes    []encoderNode
	max      Code
	dictSize int
}

func newEncoderDict(maxWidth int) *encoderDict {
	size := dictSizeFor(maxWidth)
	d := &encoderDict{
		nodes:    make([]encoderNode, size),
		dictSize: size,
	}
	d.resetNodes()
	return d
}

func (d *encoderDict) resetNodes() {
	for i := 0; i < int(firstCode); i++ {
		d.nodes[i] = encoderNode{
			prev:        noCode,
			firstChild:  noCode,
			nextSibling: noCode,
			b:           byte(i),
		}
	}
	d.max = firstCode - 1
}

// findChild returns the child of parent whose byte is b, or noCode if
// none exists. O(children of parent). parent must be a valid code
// (callers never invoke this with the encoder's empty-prefix state).
func (d *encoderDict) findChild(parent Code, b byte) Code {
	for nc := d.nodes[parent].firstChild; nc != noCode; nc = d.nodes[nc].nextSibling {
		if d.nodes[nc].b == b {
			return nc
		}
	}
	return noCode
}

// addChild inserts a new child of parent for byte b at the head of
// parent's child list, returning its code, or noCode if the dictionary
// is full (max already at DictSize-1, its last valid code).
func (d *encoderDict) addChild(parent Code, b byte) Code {
	if int(d.max) == d.dictSize-1 {
		return noCode
	}
	i := d.max + 1
	d.nodes[i] = encoderNode{
		prev:        parent,
		firstChild:  noCode,
		nextSibling: d.nodes[parent].firstChild,
		b:           b,
	}
	d.nodes[parent].firstChild = i
	d.max = i
	return i
}

// reset clears the child lists of the 256 single-byte codes and drops
// max back to 255; codes above 255 become unreachable garbage since no
// parent points to them any longer.
func (d *encoderDict) reset() {
	d.resetNodes()
}

func (d *encoderDict) full() bool {
	return int(d.max) == d.dictSize-1
}
