package document

import (
	"reflect"
	"sync"
)

// RenderMode selects the output representation a codec renders for.
type RenderMode int

const (
	// RenderNative keeps values in their in-memory form, e.g. for handing to
	// a database driver.
	RenderNative RenderMode = iota

	// RenderJSON renders values for structured/JSON output.
	RenderJSON
)

// ValueCodec teaches the schema machinery how to handle a field type it does
// not know natively: how to build a value of the type from arbitrary input
// and how to render one for a given output mode.
type ValueCodec interface {
	// Construct builds a value of the codec's type from arbitrary input.
	// Conversion failures from the underlying type propagate unchanged.
	Construct(value interface{}) (interface{}, error)

	// Render converts a value of the codec's type for the given output mode.
	Render(value interface{}, mode RenderMode) (interface{}, error)
}

// CodecTable is a registration table of value codecs keyed by field type.
// Schemas consult it during construction and serialization.
type CodecTable struct {
	mu     sync.RWMutex
	codecs map[reflect.Type]ValueCodec
}

func NewCodecTable() *CodecTable {
	return &CodecTable{
		codecs: make(map[reflect.Type]ValueCodec),
	}
}

// Register binds a codec to a field type, replacing any previous binding.
func (t *CodecTable) Register(fieldType reflect.Type, codec ValueCodec) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.codecs[fieldType] = codec
}

// Lookup returns the codec registered for a field type, if any.
func (t *CodecTable) Lookup(fieldType reflect.Type) (ValueCodec, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	codec, ok := t.codecs[fieldType]
	return codec, ok
}

var defaultCodecs = NewCodecTable()

// RegisterCodec registers a codec in the default table used by every
// registry. Value type packages call this from init, the same way database
// drivers register themselves.
func RegisterCodec(fieldType reflect.Type, codec ValueCodec) {
	defaultCodecs.Register(fieldType, codec)
}

// DefaultCodecs returns the process-wide codec table.
func DefaultCodecs() *CodecTable {
	return defaultCodecs
}
