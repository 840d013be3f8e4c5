package domain

import "reflect"

// falsy mirrors the loose "is absent" check used for request payloads:
// missing keys, nil, "", false and numeric zero all count as absent.
func falsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || f != f // NaN is falsy too
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func anyFalsy(p Payload, keys ...string) (string, bool) {
	for _, k := range keys {
		if falsy(p[k]) {
			return k, true
		}
	}
	return "", false
}

func stringFields(p Payload, keys ...string) ([]string, string, bool) {
	out := make([]string, len(keys))
	for i, k := range keys {
		s, ok := p[k].(string)
		if !ok {
			return nil, k, false
		}
		out[i] = s
	}
	return out, "", true
}
