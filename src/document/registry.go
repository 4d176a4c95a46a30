package document

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"kaiwadb/src/helpers"
)

// Registry holds the schema definitions for one database target, keyed by
// the Go struct type they were registered for.
type Registry struct {
	mu          sync.RWMutex
	definitions map[reflect.Type]*Definition
	codecs      *CodecTable
	logger      *zap.SugaredLogger
}

func NewRegistry(logger *zap.SugaredLogger) *Registry {
	return &Registry{
		definitions: make(map[reflect.Type]*Definition),
		codecs:      defaultCodecs,
		logger:      logger,
	}
}

// Register binds the struct type T to its naming metadata and field
// descriptors and returns the typed schema handle.
//
// Every exported field of T becomes a schema field. Fields without an entry
// in fields are required and keep their declared name externally; the map
// keys must name exported fields of T.
func Register[T any](r *Registry, meta Metadata, fields map[string]FieldDescriptor) (*Schema[T], error) {
	var zero T
	structType := reflect.TypeOf(zero)
	if structType == nil || structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema type must be a struct, got %T", zero)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[structType]; exists {
		return nil, fmt.Errorf("%w: %s", ErrSchemaAlreadyRegistered, structType.Name())
	}

	def := &Definition{
		DefinitionID: helpers.GenerateUUID(),
		Type:         structType,
		Metadata:     meta,
		Fields:       make(map[string]FieldDescriptor),
	}

	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		if !structField.IsExported() {
			continue
		}
		def.Fields[structField.Name] = FieldDescriptor{
			Name:     structField.Name,
			Required: true,
		}
	}

	for name, field := range fields {
		structField, ok := structType.FieldByName(name)
		if !ok || structField.PkgPath != "" {
			return nil, fmt.Errorf("schema %s has no exported field %q", structType.Name(), name)
		}
		field.Name = name
		if field.DefaultValue != nil {
			if _, err := convertValue(r.codecs, field.DefaultValue, structField.Type); err != nil {
				return nil, fmt.Errorf("schema %s field %q: bad default: %w", structType.Name(), name, err)
			}
		}
		def.Fields[name] = field
	}

	// Two fields mapping to the same database name would make construction
	// from external data ambiguous.
	seen := make(map[string]string)
	for name, field := range def.Fields {
		external := field.ExternalName()
		if other, dup := seen[external]; dup {
			return nil, fmt.Errorf("schema %s: fields %q and %q both map to %q",
				structType.Name(), other, name, external)
		}
		seen[external] = name
	}

	r.definitions[structType] = def
	r.logger.Debugw("registered schema",
		"schema", structType.Name(),
		"collection", meta.Collection,
		"table", meta.Table,
		"fields", len(def.Fields))

	return &Schema[T]{def: def, codecs: r.codecs}, nil
}

// MustRegister is Register for package-level declarations: it panics on
// error so a bad schema aborts at load time.
func MustRegister[T any](r *Registry, meta Metadata, fields map[string]FieldDescriptor) *Schema[T] {
	schema, err := Register[T](r, meta, fields)
	if err != nil {
		panic(err)
	}
	return schema
}

// Definition returns the definition registered for a struct type, if any.
func (r *Registry) Definition(structType reflect.Type) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[structType]
	return def, ok
}

// Definitions returns all registered definitions.
func (r *Registry) Definitions() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]*Definition, 0, len(r.definitions))
	for _, def := range r.definitions {
		defs = append(defs, def)
	}
	return defs
}
