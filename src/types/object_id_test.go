package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"kaiwadb/src/document"
)

func TestCodec_ConstructFromNativeIsIdentity(t *testing.T) {
	id := NewObjectID()

	got, err := Codec().Construct(id)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestCodec_ConstructFromHexRoundTrips(t *testing.T) {
	hex := "507f191e810c19729de860ea"

	got, err := Codec().Construct(hex)
	require.NoError(t, err)

	id, ok := got.(ObjectID)
	require.True(t, ok)
	assert.Equal(t, hex, id.Hex())
}

func TestCodec_ConstructFromInvalidHexFails(t *testing.T) {
	cases := []string{
		"",
		"not-hex",
		"507f191e810c19729de860",     // too short
		"507f191e810c19729de860eaff", // too long
		"507f191e810c19729de860ez",   // bad character
	}

	for _, hex := range cases {
		_, err := Codec().Construct(hex)
		assert.Error(t, err, "hex %q", hex)
	}
}

func TestCodec_ConstructFromBytes(t *testing.T) {
	id := NewObjectID()

	got, err := Codec().Construct(id[:])
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = Codec().Construct([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestCodec_ConstructRejectsOtherTypes(t *testing.T) {
	_, err := Codec().Construct(42)
	require.Error(t, err)

	_, err = Codec().Construct(nil)
	require.Error(t, err)
}

func TestCodec_RenderJSONIsAlwaysString(t *testing.T) {
	id := NewObjectID()

	got, err := Codec().Render(id, document.RenderJSON)
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), got)
}

func TestCodec_RenderNativeKeepsNativeForm(t *testing.T) {
	id := NewObjectID()

	got, err := Codec().Render(id, document.RenderNative)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

type account struct {
	AccountID ObjectID
	Email     string
}

func accountSchema(t *testing.T) *document.Schema[account] {
	t.Helper()
	registry := document.NewRegistry(zap.NewNop().Sugar())
	schema, err := document.Register[account](registry, document.Metadata{
		Collection: "accounts",
	}, map[string]document.FieldDescriptor{
		"AccountID": document.MustField(document.Required, document.DBName("_id")),
		"Email":     document.MustField(document.Required, document.DBName("email")),
	})
	require.NoError(t, err)
	return schema
}

func TestSchema_ObjectIDFieldFromHexString(t *testing.T) {
	schema := accountSchema(t)
	hex := "507f191e810c19729de860ea"

	got, err := schema.FromMap(map[string]interface{}{
		"_id":   hex,
		"email": "a@b.com",
	})
	require.NoError(t, err)
	assert.Equal(t, hex, got.AccountID.Hex())
}

func TestSchema_ObjectIDFieldFromNativeValue(t *testing.T) {
	schema := accountSchema(t)
	id := NewObjectID()

	got, err := schema.FromMap(map[string]interface{}{
		"_id":   id,
		"email": "a@b.com",
	})
	require.NoError(t, err)
	assert.Equal(t, id, got.AccountID)
}

func TestSchema_ObjectIDFieldInvalidHexFailsValidation(t *testing.T) {
	schema := accountSchema(t)

	_, err := schema.FromMap(map[string]interface{}{
		"_id":   "not-an-object-id",
		"email": "a@b.com",
	})
	require.Error(t, err)

	var vErr *document.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestSchema_ObjectIDSerializesToStringInJSON(t *testing.T) {
	schema := accountSchema(t)
	id := NewObjectID()

	data, err := schema.ToJSON(account{AccountID: id, Email: "a@b.com"})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, id.Hex(), decoded["_id"])
}

func TestSchema_ObjectIDStaysNativeInMapAndBSON(t *testing.T) {
	schema := accountSchema(t)
	id := NewObjectID()
	value := account{AccountID: id, Email: "a@b.com"}

	out, err := schema.ToMap(value)
	require.NoError(t, err)
	assert.Equal(t, id, out["_id"])

	data, err := schema.ToBSON(value)
	require.NoError(t, err)

	var decoded bson.M
	require.NoError(t, bson.Unmarshal(data, &decoded))
	assert.Equal(t, primitive.ObjectID(id), decoded["_id"])
}
