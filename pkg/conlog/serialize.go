package conlog

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// UnserializableData replaces data that cannot be encoded, such as values
// with reference cycles, channels or functions.
const UnserializableData = "[Unserializable data]"

func serialize(value any) (out string) {
	defer func() {
		if recover() != nil {
			out = UnserializableData
		}
	}()

	switch v := value.(type) {
	case string:
		return v
	case error:
		return v.Error()
	}

	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return UnserializableData
	}

	return string(b)
}

func stringify(value any) string {
	if value == nil {
		return "null"
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer, error:
		return fmt.Sprint(v)
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "null"
	}

	return fmt.Sprint(value)
}
