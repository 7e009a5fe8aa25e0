package models

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"gorm.io/gorm/schema"
)

func init() {
	schema.RegisterSerializer("jsonfallback", jsonFallbackSerializer{})
}

// jsonFallbackSerializer stores a field as a JSON TEXT column like gorm's
// built-in json serializer, except that an unparseable payload scans as the
// field's zero value instead of failing the whole query. A row with corrupt
// serialized data stays loadable; the next save overwrites the garbage.
type jsonFallbackSerializer struct{}

func (jsonFallbackSerializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue any) error {
	fieldValue := reflect.New(field.FieldType)

	if dbValue != nil {
		var raw []byte
		switch value := dbValue.(type) {
		case []byte:
			raw = value
		case string:
			raw = []byte(value)
		default:
			return fmt.Errorf("unsupported column value %#v for %s", dbValue, field.Name)
		}

		if len(raw) > 0 {
			if err := json.Unmarshal(raw, fieldValue.Interface()); err != nil {
				fieldValue = reflect.New(field.FieldType)
			}
		}
	}

	field.ReflectValueOf(ctx, dst).Set(fieldValue.Elem())
	return nil
}

func (jsonFallbackSerializer) Value(ctx context.Context, field *schema.Field, dst reflect.Value, fieldValue any) (any, error) {
	encoded, err := json.Marshal(fieldValue)
	if err != nil {
		return nil, fmt.Errorf("serialize %s: %w", field.Name, err)
	}
	return string(encoded), nil
}
