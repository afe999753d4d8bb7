package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"
)

// applyEnv sets every field of the struct pointed to by v that carries an
// env tag and whose variable is set. It walks nested structs. Tag options
// after the name: "lower" folds strings to lower case, "octal" parses
// unsigned integers in base 8. Values that do not parse are ignored.
func applyEnv(v reflect.Value) {
	v = reflect.Indirect(v)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() == reflect.Struct {
			applyEnv(field.Addr())
			continue
		}

		tag, ok := t.Field(i).Tag.Lookup("env")
		if !ok {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		setField(field, raw, opts)
	}
}

func setField(field reflect.Value, raw, opts string) {
	switch field.Kind() {
	case reflect.String:
		if opts == "lower" {
			raw = strings.ToLower(raw)
		}
		field.SetString(raw)
	case reflect.Int:
		if n, err := strconv.Atoi(raw); err == nil {
			field.SetInt(int64(n))
		}
	case reflect.Uint32:
		base := 10
		if opts == "octal" {
			base = 8
		}
		if n, err := strconv.ParseUint(raw, base, 32); err == nil {
			field.SetUint(n)
		}
	case reflect.Bool:
		if b, err := strconv.ParseBool(raw); err == nil {
			field.SetBool(b)
		}
	}
}
