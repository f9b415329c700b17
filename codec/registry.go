package codec

import "sync"

// Configurable is implemented by codecs that can be re-tuned per
// lookup instead of only at registration time — lzwcodec.Codec's
// maximum code width is the motivating case: a caller decoding a
// stream written with a narrower dictionary shouldn't need a second
// registration just to get a differently-configured instance.
type Configurable interface {
	WithMaxWidth(maxWidth int) Codec
}

// Registry looks up byte-stream codecs by name or UID.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec // key can be either name or UID
}

var defaultRegistry = &Registry{
	codecs: make(map[string]Codec),
}

// Register registers a codec using both its name and UID.
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec by name or UID.
func Get(nameOrUID string) (Codec, error) {
	return defaultRegistry.Get(nameOrUID)
}

// GetWithMaxWidth retrieves a codec by name or UID, reconfigured to
// maxWidth if it implements Configurable; a maxWidth of 0 or a codec
// that isn't Configurable returns the registered instance unchanged.
func GetWithMaxWidth(nameOrUID string, maxWidth int) (Codec, error) {
	return defaultRegistry.GetWithMaxWidth(nameOrUID, maxWidth)
}

// List returns all registered codecs.
func List() []Codec {
	return defaultRegistry.List()
}

// Register registers a codec using both its name and UID.
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Register by both name and UID
	r.codecs[codec.Name()] = codec
	r.codecs[codec.UID()] = codec
}

// Get retrieves a codec by name or UID.
func (r *Registry) Get(nameOrUID string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[nameOrUID]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return codec, nil
}

// GetWithMaxWidth is the Registry method backing the package-level
// GetWithMaxWidth.
func (r *Registry) GetWithMaxWidth(nameOrUID string, maxWidth int) (Codec, error) {
	c, err := r.Get(nameOrUID)
	if err != nil {
		return nil, err
	}
	if maxWidth == 0 {
		return c, nil
	}
	if cc, ok := c.(Configurable); ok {
		return cc.WithMaxWidth(maxWidth), nil
	}
	return c, nil
}

// List returns all registered codecs (deduplicated, since each is
// registered under both a name key and a UID key).
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[Codec]bool)
	codecs := make([]Codec, 0)

	for _, codec := range r.codecs {
		if !seen[codec] {
			seen[codec] = true
			codecs = append(codecs, codec)
		}
	}

	return codecs
}
