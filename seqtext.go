package seqtext

import (
	"errors"
	"reflect"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// Category identifies which rendering rule applies to a value.
type Category int

const (
	Null         Category = iota // absent value, renders as the literal null
	CharSequence                 // rune slice, renders as one quoted string
	Text                         // string value
	BinaryBlob                   // byte slice, renders as a length descriptor
	MapLike                      // associative value
	SequenceLike                 // any other slice or array
	Record                       // structured value with readable fields
	Scalar                       // fallback: default text conversion
)

var categoryNames = []string{
	"null", "charseq", "text", "blob", "map", "sequence", "record", "scalar",
}

// String returns the category name.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Classify determines the rendering category for v. The probes run in a
// fixed priority order and the first match wins; a value may satisfy more
// than one structural check (a byte slice is also a sequence), so the order
// is part of the contract:
//
//	Null → CharSequence → Text → BinaryBlob → MapLike → SequenceLike →
//	Record → Scalar
//
// Pointers and interfaces are unwrapped first; a nil pointer classifies as
// Null. Values implementing [Mapper] classify as MapLike and values
// implementing [Fielder] classify as Record, ahead of any reflection probe
// on the same value.
func Classify(v any) Category {
	v = indirect(v)
	if v == nil {
		return Null
	}
	switch v.(type) {
	case []rune:
		return CharSequence
	case string:
		return Text
	case []byte:
		return BinaryBlob
	}
	if _, ok := v.(Mapper); ok {
		return MapLike
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return MapLike
	case reflect.Slice, reflect.Array:
		// Named rune and byte slice types don't hit the type switch above.
		switch rv.Type().Elem().Kind() {
		case reflect.Int32:
			return CharSequence
		case reflect.Uint8:
			return BinaryBlob
		}
		return SequenceLike
	case reflect.String:
		return Text
	}
	if f, ok := v.(Fielder); ok {
		if len(f.Fields()) > 0 {
			return Record
		}
		return Scalar
	}
	if rv.Kind() == reflect.Struct && hasExportedField(rv.Type()) {
		return Record
	}
	return Scalar
}

// indirect unwraps pointers and interfaces down to the underlying value.
// Values implementing Mapper or Fielder are returned untouched so pointer
// receivers keep working; nil pointers collapse to nil.
func indirect(v any) any {
	if v == nil {
		return nil
	}
	if _, ok := v.(Mapper); ok {
		return v
	}
	if _, ok := v.(Fielder); ok {
		return v
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

func hasExportedField(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}

// --- Core Interfaces ---

// Mapper provides ordered key-value pairs. A value implementing Mapper
// renders as MapLike with entries in the order Pairs returns them, which is
// the only way to get insertion-ordered map output: plain Go maps render
// with their keys sorted, since their iteration order is randomized.
type Mapper interface {
	Pairs() []KeyValue
}

// KeyValue is a single key-value pair. Keys are always rendered as quoted
// text; values recurse through [Classify].
type KeyValue struct {
	Key   string
	Value any
}

// Fielder provides named field values. A value implementing Fielder renders
// as a Record using exactly these fields, bypassing reflection. A Fielder
// returning zero fields falls back to default scalar conversion.
type Fielder interface {
	Fields() []Field
}

// Field is one named value read from a record.
type Field struct {
	Name  string
	Value any
}

// FieldReader enumerates the readable fields of a record value, in
// declaration order. It is the single introspection seam of the package;
// supply a custom reader via [Options.Fields] to render types whose fields
// come from somewhere other than exported struct members.
type FieldReader func(v any) []Field

// ReflectFields is the default [FieldReader]: the exported fields of a
// struct (or pointer to struct), in declaration order. Non-struct values
// yield no fields.
func ReflectFields(v any) []Field {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	t := rv.Type()
	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, Field{Name: f.Name, Value: rv.Field(i).Interface()})
	}
	return fields
}

// --- Value Types ---

// BracketStyle controls the bracket pair used for sequences and maps.
type BracketStyle int

const (
	BracketSquare BracketStyle = iota // [ ]
	BracketCurly                      // { }, legacy mode
)

type bracketChars struct {
	open, close, empty string
}

var bracketSets = map[BracketStyle]bracketChars{
	BracketSquare: {open: "[ ", close: " ]", empty: "[ ]"},
	BracketCurly:  {open: "{ ", close: " }", empty: "{ }"},
}

// Options configures a single render call. The zero value is ready to use:
// square brackets, no custom formatter, reflection-based field enumeration,
// and no width limit.
type Options struct {
	// Brackets selects the bracket pair for sequences and maps.
	// Records always use braces regardless of this setting.
	Brackets BracketStyle

	// Format overrides default scalar formatting. It applies only to the
	// top-level value itself, or to direct elements of a top-level
	// collection, when they classify as Text or Scalar. Nested collections
	// never inherit it and always render with default formatting.
	Format func(v any) string

	// Fields enumerates record fields. Defaults to [ReflectFields].
	// Values implementing [Fielder] bypass it entirely.
	Fields FieldReader

	// MaxWidth truncates each rendered scalar token to at most this many
	// display columns, appending "..." when something was cut. Zero means
	// no limit. Width is measured in terminal columns, so wide characters
	// count double.
	MaxWidth int
}
