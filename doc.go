// Package seqtext renders arbitrary nested values as deterministic
// single-line text, plus a few lazy sequence utilities.
//
// The central entry points are [Render], [RenderWith], and [Marshal], which
// accept a value of any type. Dispatch goes through [Classify], which probes
// the value against a fixed priority order of structural checks and picks
// exactly one rendering rule:
//
//   - nil (including nil pointers) → the literal null
//   - rune slices → one quoted string ("ab", not [ a, b ])
//   - strings → quoted, without escaping (see Limitations)
//   - byte slices → a length descriptor like byte[4], never the contents
//   - maps and [Mapper] values → [ "key": value, ... ] with quoted keys
//   - other slices and arrays → [ e0, e1, ... ]
//   - structs with exported fields and [Fielder] values → { Name: value, ... }
//   - everything else → default text conversion
//
// Collections and records recurse: classification runs again on every
// element, map value, and field value, to arbitrary depth.
//
// # Determinism
//
// Output for a given input is stable across calls. Go map iteration order is
// randomized, so plain maps render with their keys sorted by rendered key
// text. Implement [Mapper] to control entry order explicitly:
//
//	type env struct{ pairs []seqtext.KeyValue }
//	func (e env) Pairs() []seqtext.KeyValue { return e.pairs }
//
// # Records
//
// Struct values render their exported fields in declaration order via
// [ReflectFields]. Swap in a custom [FieldReader] through [Options.Fields]
// when fields live somewhere other than exported struct members, or
// implement [Fielder] on the value itself. A record with no readable fields
// falls back to default text conversion rather than rendering empty braces.
// Records always use braces, independent of [Options.Brackets].
//
// # Options
//
// [RenderWith] takes an [Options] value; the zero value is the default.
// [BracketSquare] is the default bracket pair for sequences and maps, with
// [BracketCurly] kept as a legacy mode. Options.Format supplies a custom
// scalar formatter that applies to the top-level value or direct elements of
// a top-level collection only; nested collections always render with
// default formatting. Options.MaxWidth clips scalar tokens to a display
// width, wide-character aware.
//
// # Sequence utilities
//
// [Slice], [Chunk], and [IsAlphabetical] are independent helpers sharing the
// package's conventions. Slice has Python-style semantics: negative bounds
// count back from the length, [Open] leaves a bound unspecified, and the
// step must be positive. Slice and Chunk return restartable [iter.Seq]
// sequences; [RenderSeq] renders one by collecting it first.
//
// # Errors
//
// [ErrInvalidArgument] wraps every argument failure (nil source, step or
// size below one, nil key selector) and surfaces before any enumeration or
// output begins. A nil value in render position is not an error; it renders
// as null. Writer errors propagate as-is, and rendering is not
// transactional: a failing writer may be left with partial text.
//
// # Limitations
//
// Quoted text does not escape embedded quotes or control characters; output
// is for human and log consumption, not a parseable serialization format.
// There is no cycle detection: rendering a self-referential structure does
// not terminate. Callers own cyclic-structure avoidance.
package seqtext
