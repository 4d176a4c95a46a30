package document

// Add custom error definitions here
import (
	"errors"
	"fmt"
)

// ErrFieldExamplesNotImplemented is returned when a field declaration
// supplies example values. The parameter is reserved and has no behavior yet.
var ErrFieldExamplesNotImplemented = errors.New("field examples are not yet implemented")

// ErrFieldRelationsNotImplemented is returned when a field declaration
// supplies a relation. The parameter is reserved and has no behavior yet.
var ErrFieldRelationsNotImplemented = errors.New("field relations are not yet implemented")

// ErrSchemaAlreadyRegistered is returned when a type is registered twice in
// the same registry.
var ErrSchemaAlreadyRegistered = errors.New("schema type already registered")

// ValidationError is returned when constructing a schema instance from
// external data fails. Err aggregates the per-field failures.
type ValidationError struct {
	Schema string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for schema %s: %v", e.Schema, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
