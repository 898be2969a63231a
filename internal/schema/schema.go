// Package schema turns untyped request payloads into typed, defaulted and
// validated values.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
)

var defaultValidator = NewValidator()

// Decode populates the struct pointed to by dst from raw, keyed by each
// field's json name. Values of the wrong type, missing required fields and
// constraint violations are all reported together in a
// *models.ValidationError. Unknown keys are ignored.
func Decode(raw map[string]any, dst any) error {
	ptr := reflect.ValueOf(dst)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode: %T is not a struct pointer", dst)
	}

	verr := &models.ValidationError{}
	decodeFields(raw, ptr.Elem(), verr)

	if err := ApplyDefaults(dst); err != nil {
		return err
	}

	if err := Validate(dst); err != nil {
		var fields *models.ValidationError
		if !errors.As(err, &fields) {
			return err
		}
		for _, f := range fields.Fields {
			// a field with a type error is already reported
			if !verr.Has(f.Field) {
				verr.Add(f.Field, f.Reason)
			}
		}
	}

	return verr.OrNil()
}

// Validate checks an already typed value.
func Validate(v any) error {
	return defaultValidator.Validate(v)
}

func decodeFields(raw map[string]any, indirect reflect.Value, verr *models.ValidationError) {
	structType := indirect.Type()
	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		field := indirect.Field(i)
		if !field.CanSet() {
			continue
		}
		if structField.Anonymous && field.Kind() == reflect.Struct {
			decodeFields(raw, field, verr)
			continue
		}

		name := jsonName(structField)
		if name == "" {
			continue
		}
		value, ok := raw[name]
		if !ok || value == nil {
			continue
		}

		if err := assign(field, value); err != nil {
			verr.Add(name, "invalid type: expected "+describe(field.Type()))
		}
	}
}

// assign round-trips value through json so the usual json coercions apply
// (numbers to ints, objects to maps) and nothing looser.
func assign(field reflect.Value, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	target := reflect.New(field.Type())
	if err := json.Unmarshal(data, target.Interface()); err != nil {
		return err
	}
	field.Set(target.Elem())
	return nil
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func describe(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "list of " + describe(t.Elem())
	case reflect.Map:
		return "object of " + describe(t.Elem())
	default:
		return t.String()
	}
}
