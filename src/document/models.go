package document

import (
	"reflect"
)

// Metadata holds the schema-level naming slots a definition carries.
// A document store fills Collection, a relational store fills Table;
// nothing here forces a choice between the two.
type Metadata struct {
	// Collection is the document collection name for this schema.
	Collection string

	// Table is the SQL table name for this schema, the relational
	// alternative to Collection.
	Table string

	// Description is a human-readable summary of what the schema represents.
	Description string
}

// FieldDescriptor describes a single declared field of a schema: how it maps
// to the underlying database name and how construction treats it.
type FieldDescriptor struct {
	// Name is the declared (Go struct) field name. Set at registration time.
	Name string

	// DBName is the actual field or column name in the database. Empty means
	// the declared name is used as-is.
	DBName string

	// Description is free-text metadata for introspection. It has no effect
	// on validation or serialization.
	Description string

	// Required marks a field that must be supplied at construction time.
	Required bool

	// DefaultValue is used when an optional field is omitted from the input.
	DefaultValue interface{}
}

// ExternalName returns the name used in external structured data for this
// field: DBName when set, otherwise the declared name.
func (fd FieldDescriptor) ExternalName() string {
	if fd.DBName != "" {
		return fd.DBName
	}
	return fd.Name
}

// Relation describes a relationship to another schema. Recognized by the
// field factory but not implemented yet; supplying one fails the declaration.
type Relation struct {
	// Target is the schema type on the other end of the relationship.
	Target reflect.Type

	// Field is the field on the target the relationship joins on.
	Field string
}

// Definition is the registration record for one concrete schema type: the
// Go struct it binds to, its naming metadata and its field descriptors.
type Definition struct {
	// DefinitionID is the unique identifier for the definition.
	DefinitionID string

	// Type is the Go struct type this definition was registered for.
	Type reflect.Type

	// Metadata holds the collection/table/description slots.
	Metadata Metadata

	// Fields maps declared field names to their descriptors. Every exported
	// struct field has an entry.
	Fields map[string]FieldDescriptor
}
