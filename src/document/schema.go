package document

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/multierr"
)

// Schema is the typed handle over a registered definition. It validates
// external data into T and serializes T back out under the external names.
type Schema[T any] struct {
	def    *Definition
	codecs *CodecTable
}

// Definition returns the underlying registration record.
func (s *Schema[T]) Definition() *Definition {
	return s.def
}

// ExternalName returns the database name for a declared field name. Unknown
// fields map to themselves.
func (s *Schema[T]) ExternalName(field string) string {
	if fd, ok := s.def.Fields[field]; ok {
		return fd.ExternalName()
	}
	return field
}

// FromMap constructs and validates an instance of T from a mapping whose
// keys are the EXTERNAL (database) field names. Omitted optional fields take
// their defaults; omitted required fields, values of the wrong type and
// values a codec rejects are all collected into the returned ValidationError.
// Keys that match no field are ignored.
func (s *Schema[T]) FromMap(data map[string]interface{}) (T, error) {
	var out T
	target := reflect.ValueOf(&out).Elem()

	var errs error
	for name, fd := range s.def.Fields {
		fieldValue := target.FieldByName(name)

		raw, present := data[fd.ExternalName()]
		if !present {
			if fd.Required {
				errs = multierr.Append(errs, fmt.Errorf("missing required field %q", fd.ExternalName()))
				continue
			}
			if fd.DefaultValue == nil {
				continue
			}
			raw = fd.DefaultValue
		}

		converted, err := convertValue(s.codecs, raw, fieldValue.Type())
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("field %q: %w", fd.ExternalName(), err))
			continue
		}
		fieldValue.Set(reflect.ValueOf(converted))
	}

	if errs != nil {
		var zero T
		return zero, &ValidationError{Schema: s.def.Type.Name(), Err: errs}
	}
	return out, nil
}

// ToMap serializes an instance to a mapping keyed by external names, keeping
// every value in its native in-memory form.
func (s *Schema[T]) ToMap(value T) (map[string]interface{}, error) {
	return s.render(value, RenderNative)
}

// ToJSON serializes an instance to JSON keyed by external names. Fields with
// a registered codec render in their JSON form, e.g. identifiers as strings.
func (s *Schema[T]) ToJSON(value T) ([]byte, error) {
	rendered, err := s.render(value, RenderJSON)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rendered)
}

// ToBSON serializes an instance to the document store's wire form, keyed by
// external names with native values.
func (s *Schema[T]) ToBSON(value T) ([]byte, error) {
	rendered, err := s.render(value, RenderNative)
	if err != nil {
		return nil, err
	}
	return bson.Marshal(rendered)
}

func (s *Schema[T]) render(value T, mode RenderMode) (map[string]interface{}, error) {
	source := reflect.ValueOf(value)
	out := make(map[string]interface{}, len(s.def.Fields))

	for name, fd := range s.def.Fields {
		fieldValue := source.FieldByName(name)
		rendered := fieldValue.Interface()

		if codec, ok := s.codecs.Lookup(fieldValue.Type()); ok {
			converted, err := codec.Render(rendered, mode)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", fd.ExternalName(), err)
			}
			rendered = converted
		}

		out[fd.ExternalName()] = rendered
	}

	return out, nil
}

// convertValue coerces raw external input into the target field type,
// consulting the codec table first. Plain values must be assignable, except
// that numeric kinds convert between each other when the conversion is
// lossless (JSON input arrives as float64 regardless of the declared type).
func convertValue(codecs *CodecTable, raw interface{}, target reflect.Type) (interface{}, error) {
	if codec, ok := codecs.Lookup(target); ok {
		built, err := codec.Construct(raw)
		if err != nil {
			return nil, err
		}
		if !reflect.TypeOf(built).AssignableTo(target) {
			return nil, fmt.Errorf("codec for %s produced %T", target, built)
		}
		return built, nil
	}

	if raw == nil {
		switch target.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
			return reflect.Zero(target).Interface(), nil
		default:
			return nil, fmt.Errorf("cannot use nil as %s", target)
		}
	}

	rawValue := reflect.ValueOf(raw)
	if rawValue.Type().AssignableTo(target) {
		return raw, nil
	}

	if isNumericKind(rawValue.Kind()) && isNumericKind(target.Kind()) {
		if rawValue.Kind() == reflect.Float64 || rawValue.Kind() == reflect.Float32 {
			f := rawValue.Float()
			if isIntegerKind(target.Kind()) && (math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f) {
				return nil, fmt.Errorf("cannot use %v as %s without losing precision", raw, target)
			}
		}
		converted := rawValue.Convert(target)
		// Out-of-range and sign-changing conversions wrap instead of
		// failing, so require that the value survives the round trip with
		// its sign intact.
		if isNegative(rawValue) != isNegative(converted) ||
			!converted.Convert(rawValue.Type()).Equal(rawValue) {
			return nil, fmt.Errorf("cannot use %v as %s without losing precision", raw, target)
		}
		return converted.Interface(), nil
	}

	return nil, fmt.Errorf("cannot use %T as %s", raw, target)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isIntegerKind(k reflect.Kind) bool {
	return isNumericKind(k) && k != reflect.Float32 && k != reflect.Float64
}

func isNegative(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	case reflect.Float32, reflect.Float64:
		return v.Float() < 0
	}
	return false
}
