package types

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"kaiwadb/src/document"
)

// ObjectID is the document store's native 12-byte identifier. The driver's
// type is used directly, so byte layout, hex form and generation stay wire
// compatible; this package only teaches the schema machinery how to accept
// and render it.
type ObjectID = primitive.ObjectID

// NilObjectID is the zero identifier.
var NilObjectID ObjectID

// NewObjectID returns a freshly generated identifier.
func NewObjectID() ObjectID {
	return primitive.NewObjectID()
}

// ObjectIDFromHex builds an identifier from its canonical hex string. The
// driver's own error is returned untranslated on bad input.
func ObjectIDFromHex(s string) (ObjectID, error) {
	return primitive.ObjectIDFromHex(s)
}

// Codec returns the value codec that lets schemas validate and serialize
// ObjectID fields. It is registered in the default table at load time; the
// accessor exists for registries with their own tables.
func Codec() document.ValueCodec {
	return objectIDCodec{}
}

type objectIDCodec struct{}

// Construct accepts an ObjectID unchanged, builds one from a canonical hex
// string or a 12-byte slice, and rejects everything else.
func (objectIDCodec) Construct(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case ObjectID:
		return v, nil
	case string:
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, err
		}
		return id, nil
	case []byte:
		if len(v) != 12 {
			return nil, fmt.Errorf("ObjectID must be 12 bytes, got %d", len(v))
		}
		var id ObjectID
		copy(id[:], v)
		return id, nil
	default:
		return nil, fmt.Errorf("cannot build ObjectID from %T", value)
	}
}

// Render keeps the native value for native output and yields the canonical
// hex string for JSON output.
func (objectIDCodec) Render(value interface{}, mode document.RenderMode) (interface{}, error) {
	id, ok := value.(ObjectID)
	if !ok {
		return nil, fmt.Errorf("expected ObjectID, got %T", value)
	}
	if mode == document.RenderJSON {
		return id.Hex(), nil
	}
	return id, nil
}

func init() {
	document.RegisterCodec(reflect.TypeOf(NilObjectID), Codec())
}
