// Package container provides the raw get/put primitives that optics are
// built from. Each supported container kind (mapping, sequence, tuple,
// struct record) implements replacement-only writes: Put never inserts a
// key that the original container did not already hold, and always
// returns a fresh copy rather than mutating its input.
package container

import (
	"fmt"
	"math"
	"reflect"
)

// Tuple is a fixed-size positional container. It is distinct from []any
// so that tagged variant values such as Tuple{"ok", 5} keep their
// identity through reads and writes.
type Tuple []any

// ErrorCode categorizes adapter failures.
type ErrorCode string

const (
	// ErrCodeBadPath means the key, index, or variant tag does not
	// exist in the given container.
	ErrCodeBadPath ErrorCode = "BAD_PATH"

	// ErrCodeUnsupportedShape means the container kind itself does not
	// support keyed access (a scalar, a channel, a func, ...).
	ErrCodeUnsupportedShape ErrorCode = "UNSUPPORTED_SHAPE"
)

// ShapeError is the adapter's failure type. It matches the exported
// sentinels through errors.Is by comparing codes.
type ShapeError struct {
	Code    ErrorCode
	Key     any
	Message string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("[%s] %s (key: %v)", e.Code, e.Message, e.Key)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is matches any ShapeError carrying the same code.
func (e *ShapeError) Is(target error) bool {
	t, ok := target.(*ShapeError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel values for errors.Is checks.
var (
	ErrBadPath          = &ShapeError{Code: ErrCodeBadPath, Message: "bad path"}
	ErrUnsupportedShape = &ShapeError{Code: ErrCodeUnsupportedShape, Message: "unsupported shape"}
)

// BadPath creates a BAD_PATH error for the given key.
func BadPath(key any, message string) *ShapeError {
	return &ShapeError{Code: ErrCodeBadPath, Key: key, Message: message}
}

// UnsupportedShape creates an UNSUPPORTED_SHAPE error for the given value.
func UnsupportedShape(s any) *ShapeError {
	return &ShapeError{
		Code:    ErrCodeUnsupportedShape,
		Message: fmt.Sprintf("%T does not support keyed access", s),
	}
}

// Get reads the value at key from s. A missing key, index, or field is
// a BAD_PATH error; a container kind without keyed access is an
// UNSUPPORTED_SHAPE error. Note the nil-versus-absent rule: a mapping
// key stored with a nil value is present, and Get returns (nil, nil).
func Get(s any, key any) (any, error) {
	switch c := s.(type) {
	case map[string]any:
		k, ok := key.(string)
		if !ok {
			return nil, BadPath(key, "mapping key is not a string")
		}
		v, ok := c[k]
		if !ok {
			return nil, BadPath(key, "key not present in mapping")
		}
		return v, nil
	case Tuple:
		return indexInto(c, key)
	case []any:
		return indexInto(c, key)
	}
	return reflectGet(s, key)
}

// Put returns a copy of s with the value at key replaced. Writes are
// replacement-only: a key absent from s is a BAD_PATH error, never a
// silent insert. s itself is left untouched.
func Put(s any, key any, value any) (any, error) {
	switch c := s.(type) {
	case map[string]any:
		k, ok := key.(string)
		if !ok {
			return nil, BadPath(key, "mapping key is not a string")
		}
		if _, ok := c[k]; !ok {
			return nil, BadPath(key, "key not present in mapping")
		}
		out := make(map[string]any, len(c))
		for ck, cv := range c {
			out[ck] = cv
		}
		out[k] = value
		return out, nil
	case Tuple:
		out, err := replaceAt(c, key, value)
		if err != nil {
			return nil, err
		}
		return Tuple(out), nil
	case []any:
		return replaceAt(c, key, value)
	}
	return reflectPut(s, key, value)
}

// Keys lists a mapping's keys or a struct's exported field names, in a
// deterministic order for structs (declaration order) and map iteration
// order for mappings.
func Keys(s any) ([]any, error) {
	if m, ok := s.(map[string]any); ok {
		keys := make([]any, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return keys, nil
	}

	rv := reflect.ValueOf(s)
	switch rv.Kind() {
	case reflect.Map:
		keys := make([]any, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.Interface())
		}
		return keys, nil
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil, UnsupportedShape(s)
		}
		return structKeys(rv.Elem().Type()), nil
	case reflect.Struct:
		return structKeys(rv.Type()), nil
	}
	return nil, UnsupportedShape(s)
}

func structKeys(t reflect.Type) []any {
	keys := make([]any, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() {
			keys = append(keys, f.Name)
		}
	}
	return keys
}

func indexInto(seq []any, key any) (any, error) {
	i, ok := asIndex(key)
	if !ok {
		return nil, BadPath(key, "index is not an integer")
	}
	if i < 0 || i >= len(seq) {
		return nil, BadPath(key, "index out of range")
	}
	return seq[i], nil
}

func replaceAt(seq []any, key any, value any) ([]any, error) {
	i, ok := asIndex(key)
	if !ok {
		return nil, BadPath(key, "index is not an integer")
	}
	if i < 0 || i >= len(seq) {
		return nil, BadPath(key, "index out of range")
	}
	out := make([]any, len(seq))
	copy(out, seq)
	out[i] = value
	return out, nil
}

// asIndex accepts any built-in integer kind as a sequence index. An
// unsigned value too large for int is rejected like any other
// non-index key.
func asIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case uint:
		if uint64(k) > math.MaxInt {
			return 0, false
		}
		return int(k), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		if uint64(k) > math.MaxInt {
			return 0, false
		}
		return int(k), true
	case uint64:
		if k > math.MaxInt {
			return 0, false
		}
		return int(k), true
	}
	return 0, false
}

// reflectGet handles map kinds beyond map[string]any, slice kinds beyond
// []any, structs, and pointers to structs.
func reflectGet(s any, key any) (any, error) {
	rv := reflect.ValueOf(s)
	switch rv.Kind() {
	case reflect.Map:
		kv := reflect.ValueOf(key)
		if !kv.IsValid() || !kv.Type().AssignableTo(rv.Type().Key()) {
			return nil, BadPath(key, "key type does not match mapping")
		}
		v := rv.MapIndex(kv)
		if !v.IsValid() {
			return nil, BadPath(key, "key not present in mapping")
		}
		return v.Interface(), nil
	case reflect.Slice, reflect.Array:
		i, ok := asIndex(key)
		if !ok {
			return nil, BadPath(key, "index is not an integer")
		}
		if i < 0 || i >= rv.Len() {
			return nil, BadPath(key, "index out of range")
		}
		return rv.Index(i).Interface(), nil
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil, UnsupportedShape(s)
		}
		return structGet(rv.Elem(), key)
	case reflect.Struct:
		return structGet(rv, key)
	}
	return nil, UnsupportedShape(s)
}

func structGet(rv reflect.Value, key any) (any, error) {
	name, ok := key.(string)
	if !ok {
		return nil, BadPath(key, "struct field name is not a string")
	}
	f, ok := rv.Type().FieldByName(name)
	if !ok || !f.IsExported() {
		return nil, BadPath(key, "no such field")
	}
	return rv.FieldByIndex(f.Index).Interface(), nil
}

func reflectPut(s any, key any, value any) (any, error) {
	rv := reflect.ValueOf(s)
	switch rv.Kind() {
	case reflect.Map:
		kv := reflect.ValueOf(key)
		if !kv.IsValid() || !kv.Type().AssignableTo(rv.Type().Key()) {
			return nil, BadPath(key, "key type does not match mapping")
		}
		if !rv.MapIndex(kv).IsValid() {
			return nil, BadPath(key, "key not present in mapping")
		}
		vv, err := coerce(value, rv.Type().Elem(), key)
		if err != nil {
			return nil, err
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		out.SetMapIndex(kv, vv)
		return out.Interface(), nil
	case reflect.Slice:
		i, ok := asIndex(key)
		if !ok {
			return nil, BadPath(key, "index is not an integer")
		}
		if i < 0 || i >= rv.Len() {
			return nil, BadPath(key, "index out of range")
		}
		vv, err := coerce(value, rv.Type().Elem(), key)
		if err != nil {
			return nil, err
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		out.Index(i).Set(vv)
		return out.Interface(), nil
	case reflect.Array:
		i, ok := asIndex(key)
		if !ok {
			return nil, BadPath(key, "index is not an integer")
		}
		if i < 0 || i >= rv.Len() {
			return nil, BadPath(key, "index out of range")
		}
		vv, err := coerce(value, rv.Type().Elem(), key)
		if err != nil {
			return nil, err
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(rv)
		out.Index(i).Set(vv)
		return out.Interface(), nil
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil, UnsupportedShape(s)
		}
		updated, err := structPut(rv.Elem(), key, value)
		if err != nil {
			return nil, err
		}
		out := reflect.New(rv.Elem().Type())
		out.Elem().Set(reflect.ValueOf(updated))
		return out.Interface(), nil
	case reflect.Struct:
		return structPut(rv, key, value)
	}
	return nil, UnsupportedShape(s)
}

func structPut(rv reflect.Value, key any, value any) (any, error) {
	name, ok := key.(string)
	if !ok {
		return nil, BadPath(key, "struct field name is not a string")
	}
	f, ok := rv.Type().FieldByName(name)
	if !ok || !f.IsExported() {
		return nil, BadPath(key, "no such field")
	}
	vv, err := coerce(value, f.Type, key)
	if err != nil {
		return nil, err
	}
	out := reflect.New(rv.Type()).Elem()
	out.Set(rv)
	out.FieldByIndex(f.Index).Set(vv)
	return out.Interface(), nil
}

// coerce prepares value for assignment into a slot of type t. A nil
// value is allowed wherever t can hold nil; an incompatible type is a
// BAD_PATH error because the path cannot accept that write, even though
// the container shape itself is supported.
func coerce(value any, t reflect.Type, key any) (reflect.Value, error) {
	if value == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, BadPath(key, "nil not assignable to "+t.String())
	}
	vv := reflect.ValueOf(value)
	if !vv.Type().AssignableTo(t) {
		return reflect.Value{}, BadPath(key, fmt.Sprintf("%T not assignable to %s", value, t))
	}
	return vv, nil
}
