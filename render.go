package seqtext

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"reflect"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render writes the default text representation of v to w, followed by a
// newline. Dispatch goes through [Classify]; collections and records
// recurse into their children.
func Render(w io.Writer, v any) error {
	return RenderWith(w, v, Options{})
}

// RenderWith is [Render] with explicit options.
func RenderWith(w io.Writer, v any, opts Options) error {
	if opts.Fields == nil {
		opts.Fields = ReflectFields
	}
	_, err := io.WriteString(w, renderTop(v, opts)+"\n")
	return err
}

// Marshal renders v and returns the bytes.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderSeq collects items from an iterator and renders them as one
// sequence. The iterator is fully drained before any output is written.
func RenderSeq[T any](w io.Writer, seq iter.Seq[T], opts Options) error {
	if seq == nil {
		return fmt.Errorf("%w: nil sequence", ErrInvalidArgument)
	}
	items := []any{}
	for item := range seq {
		items = append(items, item)
	}
	return RenderWith(w, items, opts)
}

// renderTop renders the outermost value. It is the only place the custom
// formatter is consulted: for the top value itself when it is a plain
// scalar, and for direct children of a top-level sequence or map. Children
// that are themselves collections drop down to renderValue, which never
// sees the formatter again.
func renderTop(v any, opts Options) string {
	v = indirect(v)
	switch Classify(v) {
	case Text, Scalar:
		if opts.Format != nil {
			return clip(opts.Format(v), opts.MaxWidth)
		}
		return renderValue(v, opts)
	case MapLike:
		return renderMap(v, opts, opts.Format)
	case SequenceLike:
		return renderSequence(v, opts, opts.Format)
	default:
		return renderValue(v, opts)
	}
}

// renderValue renders v at any nesting depth with default formatting.
func renderValue(v any, opts Options) string {
	v = indirect(v)
	switch Classify(v) {
	case Null:
		return "null"
	case CharSequence:
		return clip(quote(string(runesOf(v))), opts.MaxWidth)
	case Text:
		return clip(quote(stringOf(v)), opts.MaxWidth)
	case BinaryBlob:
		return fmt.Sprintf("byte[%d]", reflect.ValueOf(v).Len())
	case MapLike:
		return renderMap(v, opts, nil)
	case SequenceLike:
		return renderSequence(v, opts, nil)
	case Record:
		return renderRecord(v, opts)
	default:
		return clip(fmt.Sprintf("%v", v), opts.MaxWidth)
	}
}

// renderElem renders one direct child of a top-level collection. The
// formatter, when present, overrides default rendering for plain Text and
// Scalar children only.
func renderElem(v any, opts Options, format func(any) string) string {
	if format != nil {
		switch Classify(v) {
		case Text, Scalar:
			return clip(format(indirect(v)), opts.MaxWidth)
		}
	}
	return renderValue(v, opts)
}

func renderSequence(v any, opts Options, format func(any) string) string {
	rv := reflect.ValueOf(v)
	n := rv.Len()
	b := bracketSets[opts.Brackets]
	if n == 0 {
		return b.empty
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = renderElem(rv.Index(i).Interface(), opts, format)
	}
	return b.open + strings.Join(parts, ", ") + b.close
}

func renderMap(v any, opts Options, format func(any) string) string {
	b := bracketSets[opts.Brackets]
	pairs := pairsOf(v)
	if len(pairs) == 0 {
		return b.empty
	}
	parts := make([]string, len(pairs))
	for i, kv := range pairs {
		parts[i] = quote(kv.Key) + ": " + renderElem(kv.Value, opts, format)
	}
	return b.open + strings.Join(parts, ", ") + b.close
}

// pairsOf extracts map entries. Mapper values keep their own order; plain
// Go maps are sorted by rendered key text so two renders of the same map
// agree despite randomized iteration order.
func pairsOf(v any) []KeyValue {
	if m, ok := v.(Mapper); ok {
		return m.Pairs()
	}
	rv := reflect.ValueOf(v)
	pairs := make([]KeyValue, 0, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		pairs = append(pairs, KeyValue{
			Key:   fmt.Sprintf("%v", it.Key().Interface()),
			Value: it.Value().Interface(),
		})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

// renderRecord renders a structured value as braces around name: value
// entries. Records use braces at every depth, independent of the bracket
// style chosen for sequences and maps.
func renderRecord(v any, opts Options) string {
	var fields []Field
	if f, ok := v.(Fielder); ok {
		fields = f.Fields()
	} else {
		fields = opts.Fields(v)
	}
	if len(fields) == 0 {
		// A record exposing nothing readable is indistinguishable from an
		// opaque scalar.
		return clip(fmt.Sprintf("%v", v), opts.MaxWidth)
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name + ": " + renderValue(f.Value, opts)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// quote wraps s in double quotes. Embedded quotes and control characters
// are not escaped; output is for human consumption, not a parseable
// serialization format.
func quote(s string) string {
	return `"` + s + `"`
}

// clip truncates s to width display columns, appending "..." when the
// width allows it. Width zero disables clipping.
func clip(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func runesOf(v any) []rune {
	if r, ok := v.([]rune); ok {
		return r
	}
	rv := reflect.ValueOf(v)
	out := make([]rune, rv.Len())
	for i := range out {
		out[i] = rune(rv.Index(i).Int())
	}
	return out
}

func stringOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return reflect.ValueOf(v).String()
}
