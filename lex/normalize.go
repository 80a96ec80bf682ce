package lex

import (
	"reflect"
	"strings"

	"github.com/samber/lo"
)

// TrimSpace returns a copy of v with leading and trailing ASCII spaces removed
// from every string it contains, at any nesting depth. Only the space character
// is trimmed. Map keys and unexported struct fields are left untouched.
func TrimSpace[T any](v T) T {
	return rebuild[T](trimValue(reflect.ValueOf(&v).Elem()))
}

// FilterEmpty returns a copy of v with empty strings removed from every slice
// and map it contains. Filtering is bottom-up: a container left empty after
// filtering its children is removed from its parent too.
func FilterEmpty[T any](v T) T {
	return rebuild[T](filterValue(reflect.ValueOf(&v).Elem()))
}

// TrimAll trims spaces off every element of ss.
func TrimAll(ss []string) []string {
	return lo.Map(ss, func(s string, _ int) string { return strings.Trim(s, " ") })
}

// Compact drops the empty elements of ss.
func Compact(ss []string) []string { return lo.Compact(ss) }

func rebuild[T any](rv reflect.Value) T {
	var out T
	if rv.IsValid() {
		reflect.ValueOf(&out).Elem().Set(rv)
	}
	return out
}

func trimValue(rv reflect.Value) reflect.Value {
	return walk(rv, func(s reflect.Value) reflect.Value {
		out := reflect.New(s.Type()).Elem()
		out.SetString(strings.Trim(s.String(), " "))
		return out
	}, false)
}

func filterValue(rv reflect.Value) reflect.Value {
	return walk(rv, func(s reflect.Value) reflect.Value { return s }, true)
}

// walk copies rv, applying leaf to strings and, when drop is set, skipping
// empty elements of slices and maps.
func walk(rv reflect.Value, leaf func(reflect.Value) reflect.Value, drop bool) reflect.Value {
	switch rv.Kind() {
	case reflect.String:
		return leaf(rv)
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), 0, rv.Len())
		for i := range rv.Len() {
			el := walk(rv.Index(i), leaf, drop)
			if drop && isEmpty(el) {
				continue
			}
			out = reflect.Append(out, el)
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := range rv.Len() {
			out.Index(i).Set(walk(rv.Index(i), leaf, drop))
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			el := walk(iter.Value(), leaf, drop)
			if drop && isEmpty(el) {
				continue
			}
			out.SetMapIndex(iter.Key(), el)
		}
		return out
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(walk(rv.Elem(), leaf, drop))
		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(walk(rv.Elem(), leaf, drop))
		return out
	case reflect.Struct:
		out := reflect.New(rv.Type()).Elem()
		out.Set(rv)
		for i := range rv.NumField() {
			if f := out.Field(i); f.CanSet() {
				f.Set(walk(rv.Field(i), leaf, drop))
			}
		}
		return out
	default:
		return rv
	}
}

func isEmpty(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Interface:
		return !rv.IsNil() && isEmpty(rv.Elem())
	default:
		return false
	}
}
