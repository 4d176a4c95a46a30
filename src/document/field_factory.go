package document

// Required is the marker passed in place of a default value for fields that
// have no default and must be supplied when an instance is constructed.
var Required requiredMarker

type requiredMarker struct{}

// FieldOption configures a field built by Field.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	dbName      string
	description string

	// Reserved parameters. Presence is tracked separately from the value so
	// that even an empty examples list counts as supplied.
	examples    []interface{}
	examplesSet bool
	relation    *Relation
}

// DBName sets the actual field or column name in the database. This is the
// option that enables field name aliasing: the declared name stays the name
// used in code, name becomes the one used in external structured data.
func DBName(name string) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.dbName = name
	}
}

// WithDescription attaches a human-readable description to the field.
func WithDescription(text string) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.description = text
	}
}

// WithExamples attaches example values to the field. Not implemented yet;
// any use fails the declaration with ErrFieldExamplesNotImplemented.
func WithExamples(examples ...interface{}) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.examples = examples
		cfg.examplesSet = true
	}
}

// WithRelation declares a relationship to another schema. Not implemented
// yet; any use fails the declaration with ErrFieldRelationsNotImplemented.
func WithRelation(rel Relation) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.relation = &rel
	}
}

// Field builds the descriptor for one declared field. Pass Required as the
// default value for fields that must always be supplied, or any other value
// to use it when the field is omitted.
//
// The reserved options fail immediately and no descriptor is produced; the
// error must reach the registration site so the whole declaration aborts.
func Field(defaultValue interface{}, opts ...FieldOption) (FieldDescriptor, error) {
	cfg := fieldConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.examplesSet {
		return FieldDescriptor{}, ErrFieldExamplesNotImplemented
	}
	if cfg.relation != nil {
		return FieldDescriptor{}, ErrFieldRelationsNotImplemented
	}

	field := FieldDescriptor{
		DBName:      cfg.dbName,
		Description: cfg.description,
	}

	if _, isMarker := defaultValue.(requiredMarker); isMarker {
		field.Required = true
	} else {
		field.DefaultValue = defaultValue
	}

	return field, nil
}

// MustField is Field for package-level declarations: it panics on error, so
// a bad declaration aborts instead of producing a half-built schema.
func MustField(defaultValue interface{}, opts ...FieldOption) FieldDescriptor {
	field, err := Field(defaultValue, opts...)
	if err != nil {
		panic(err)
	}
	return field
}
