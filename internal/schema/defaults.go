package schema

import (
	"fmt"
	"reflect"

	"github.com/cstockton/go-conv"
)

const defaultTag = "default"

// ApplyDefaults fills zero-valued fields of the struct pointed to by dst
// from their `default:"..."` tags. Slices and maps tagged `default:"[]"` or
// `default:"{}"` become empty instead of nil. Embedded structs are walked.
func ApplyDefaults(dst any) error {
	ptr := reflect.ValueOf(dst)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		return fmt.Errorf("apply defaults: non-pointer %T", dst)
	}
	indirect := ptr.Elem()
	if indirect.Kind() != reflect.Struct {
		return fmt.Errorf("apply defaults: %T is not a struct pointer", dst)
	}
	return applyDefaults(indirect)
}

func applyDefaults(indirect reflect.Value) error {
	structType := indirect.Type()
	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		field := indirect.Field(i)

		if structField.Anonymous && field.Kind() == reflect.Struct {
			if err := applyDefaults(field); err != nil {
				return err
			}
			continue
		}

		tagValue, ok := structField.Tag.Lookup(defaultTag)
		if !ok || !field.CanSet() || !field.IsZero() {
			continue
		}

		switch field.Kind() {
		case reflect.Slice:
			field.Set(reflect.MakeSlice(field.Type(), 0, 0))
		case reflect.Map:
			field.Set(reflect.MakeMap(field.Type()))
		default:
			if err := conv.Infer(field, tagValue); err != nil {
				return fmt.Errorf("cannot parse default of %s.%s as %s from: %q / %s",
					structType.Name(), structField.Name, field.Type(), tagValue, err)
			}
		}
	}
	return nil
}
