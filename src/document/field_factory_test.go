package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_RequiredMarker(t *testing.T) {
	field, err := Field(Required, WithDescription("customer email"))
	require.NoError(t, err)

	assert.True(t, field.Required)
	assert.Nil(t, field.DefaultValue)
	assert.Equal(t, "customer email", field.Description)
}

func TestField_DefaultValue(t *testing.T) {
	field, err := Field("pending")
	require.NoError(t, err)

	assert.False(t, field.Required)
	assert.Equal(t, "pending", field.DefaultValue)
}

func TestField_ExternalNameDefaultsToDeclaredName(t *testing.T) {
	field, err := Field(Required)
	require.NoError(t, err)

	field.Name = "Email"
	assert.Equal(t, "Email", field.ExternalName())
}

func TestField_DBNameAlias(t *testing.T) {
	field, err := Field(Required, DBName("id"))
	require.NoError(t, err)

	field.Name = "CustomerID"
	assert.Equal(t, "id", field.ExternalName())
}

func TestField_ExamplesNotImplemented(t *testing.T) {
	cases := []struct {
		name string
		opts []FieldOption
	}{
		{"examples only", []FieldOption{WithExamples("x")}},
		{"empty examples", []FieldOption{WithExamples()}},
		{"examples with other options", []FieldOption{DBName("id"), WithDescription("d"), WithExamples("x", "y")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Field(Required, tc.opts...)
			require.ErrorIs(t, err, ErrFieldExamplesNotImplemented)
		})
	}
}

func TestField_RelationNotImplemented(t *testing.T) {
	_, err := Field(Required, WithRelation(Relation{Field: "CustomerID"}))
	require.ErrorIs(t, err, ErrFieldRelationsNotImplemented)

	_, err = Field("fallback", DBName("owner_id"), WithRelation(Relation{Field: "ID"}))
	require.ErrorIs(t, err, ErrFieldRelationsNotImplemented)
}

func TestMustField_PanicsOnReservedOption(t *testing.T) {
	assert.Panics(t, func() {
		MustField(Required, WithExamples("x"))
	})

	assert.NotPanics(t, func() {
		MustField(Required, DBName("id"))
	})
}
