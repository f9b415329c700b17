// Package lzwcodec adapts the streaming lzw package to the codec.Codec
// interface so it can be looked up through codec.Registry alongside any
// other byte-stream codec.
package lzwcodec

import (
	"bytes"
	"fmt"

	"github.com/cocosip/go-lzw/codec"
	"github.com/cocosip/go-lzw/lzw"
)

// UID identifies this codec in codec.Registry.
const UID = "1.0.0.0.lzw"

// Name is the human-readable name registered alongside UID.
const Name = "lzw"

// Codec wraps lzw.Encoder/lzw.Decoder behind the codec.Codec interface.
type Codec struct {
	maxWidth int
}

// New creates a Codec that encodes/decodes with the given maximum code
// width. A maxWidth of 0 uses lzw.MaxWidth.
func New(maxWidth int) *Codec {
	return &Codec{maxWidth: maxWidth}
}

func (c *Codec) options() []lzw.Option {
	if c.maxWidth == 0 {
		return nil
	}
	return []lzw.Option{lzw.WithMaxWidth(c.maxWidth)}
}

// Encode implements codec.Codec.
func (c *Codec) Encode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := lzw.NewEncoder(&buf, c.options()...)
	if err != nil {
		return nil, fmt.Errorf("lzwcodec: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		return nil, fmt.Errorf("lzwcodec: %w", err)
	}
	if err := enc.Finish(); err != nil {
		return nil, fmt.Errorf("lzwcodec: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode implements codec.Codec.
func (c *Codec) Decode(data []byte) ([]byte, error) {
	dec, err := lzw.NewDecoder(bytes.NewReader(data), c.options()...)
	if err != nil {
		return nil, fmt.Errorf("lzwcodec: %w", err)
	}
	var out bytes.Buffer
	if _, err := out.ReadFrom(dec); err != nil {
		return nil, fmt.Errorf("lzwcodec: %w", err)
	}
	return out.Bytes(), nil
}

// UID implements codec.Codec.
func (c *Codec) UID() string { return UID }

// Name implements codec.Codec.
func (c *Codec) Name() string { return Name }

// WithMaxWidth implements codec.Configurable, returning a Codec
// configured with a different maximum code width without touching the
// registry.
func (c *Codec) WithMaxWidth(maxWidth int) codec.Codec {
	return New(maxWidth)
}

// Register installs a Codec built with maxWidth into codec's default
// registry.
func Register(maxWidth int) {
	codec.Register(New(maxWidth))
}
