package env

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Entry is a single KEY=value pair taken from a tagged struct field.
type Entry struct {
	Key   string
	Value string
}

// Entries reflects over the struct and returns its tagged fields in declaration order.
// Zero values are kept so callers can render the full record.
func Entries(c any, tag string) ([]Entry, error) {
	return collect(c, tag, false)
}

// MarshalEnv creates .env content from the struct tags, skipping empty fields.
func MarshalEnv(c any, tag string) (string, error) {
	entries, err := collect(c, tag, true)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}

	vars := make(map[string]string, len(entries))
	for _, e := range entries {
		vars[e.Key] = e.Value
	}

	result, err := godotenv.Marshal(vars)
	if err != nil {
		return "", fmt.Errorf("env: marshal: %w", err)
	}
	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result, nil
}

func collect(c any, tag string, skipZero bool) ([]Entry, error) {
	v := reflect.ValueOf(c)
	if !v.IsValid() {
		return nil, errors.New("env: nil value")
	}
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("env: nil %s", v.Type())
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("env: expected struct, got %s", v.Kind())
	}

	t := v.Type()
	entries := make([]Entry, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// Tag forms: "KEY", "KEY,required" or "-"
		key, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if key == "" || key == "-" {
			continue
		}

		val := v.Field(i)
		if skipZero && isZeroValue(val) {
			continue
		}
		entries = append(entries, Entry{Key: key, Value: formatValue(val)})
	}
	return entries, nil
}

// isZeroValue treats a nil pointer and an empty string alike as unset.
func isZeroValue(v reflect.Value) bool {
	return !v.IsValid() || v.IsZero()
}

// formatValue renders scalars the way a .env parser reads them back; floats
// avoid exponent notation.
func formatValue(v reflect.Value) string {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits())
	case reflect.String:
		return v.String()
	default:
		return fmt.Sprint(v.Interface())
	}
}
