package codec_test

import (
	"bytes"
	"testing"

	"github.com/cocosip/go-lzw/codec"
	"github.com/cocosip/go-lzw/lzwcodec"
)

func TestMain(m *testing.M) {
	lzwcodec.Register(0)
	m.Run()
}

func TestCodecRegistry(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
		wantUID   string
		wantName  string
	}{
		{
			name:      "Get lzw by UID",
			key:       lzwcodec.UID,
			wantFound: true,
			wantUID:   lzwcodec.UID,
			wantName:  lzwcodec.Name,
		},
		{
			name:      "Get lzw by name",
			key:       lzwcodec.Name,
			wantFound: true,
			wantUID:   lzwcodec.UID,
			wantName:  lzwcodec.Name,
		},
		{
			name:      "Get non-existent codec",
			key:       "non-existent",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.Get(tt.key)

			if tt.wantFound {
				if err != nil {
					t.Errorf("Get(%q) unexpected error: %v", tt.key, err)
					return
				}
				if c == nil {
					t.Errorf("Get(%q) returned nil codec", tt.key)
					return
				}
				if c.UID() != tt.wantUID {
					t.Errorf("Get(%q).UID() = %q, want %q", tt.key, c.UID(), tt.wantUID)
				}
				if c.Name() != tt.wantName {
					t.Errorf("Get(%q).Name() = %q, want %q", tt.key, c.Name(), tt.wantName)
				}
			} else {
				if err == nil {
					t.Errorf("Get(%q) expected error, got nil", tt.key)
				}
				if err != codec.ErrCodecNotFound {
					t.Errorf("Get(%q) error = %v, want %v", tt.key, err, codec.ErrCodecNotFound)
				}
			}
		})
	}
}

func TestListCodecs(t *testing.T) {
	codecs := codec.List()

	found := false
	for _, c := range codecs {
		if c.UID() == lzwcodec.UID {
			found = true
			if c.Name() != lzwcodec.Name {
				t.Errorf("lzw codec name = %q, want %q", c.Name(), lzwcodec.Name)
			}
		}
	}
	if !found {
		t.Error("List() did not include the lzw codec")
	}
}

func TestGetWithMaxWidth(t *testing.T) {
	c, err := codec.GetWithMaxWidth(lzwcodec.UID, 12)
	if err != nil {
		t.Fatalf("GetWithMaxWidth failed: %v", err)
	}

	data := bytes.Repeat([]byte{0x00, 0x01}, 8192)
	compressed, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := c.Decode(compressed)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatal("decoded data does not match original")
	}

	// A maxWidth of 0 must return the registered instance unchanged.
	same, err := codec.GetWithMaxWidth(lzwcodec.UID, 0)
	if err != nil {
		t.Fatalf("GetWithMaxWidth(0) failed: %v", err)
	}
	if same.Name() != lzwcodec.Name {
		t.Errorf("GetWithMaxWidth(0).Name() = %q, want %q", same.Name(), lzwcodec.Name)
	}
}

func TestLZWCodecEncodeDecode(t *testing.T) {
	c, err := codec.Get(lzwcodec.UID)
	if err != nil {
		t.Fatalf("Failed to get lzw codec: %v", err)
	}

	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 50)

	compressed, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	t.Logf("Compressed size: %d bytes (from %d)", len(compressed), len(data))

	decoded, err := c.Decode(compressed)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatal("decoded data does not match original")
	}
}
