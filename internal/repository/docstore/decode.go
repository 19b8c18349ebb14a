package docstore

import (
	"math"
	"slices"
)

// The store enforces no schema, so every field read narrows an untyped value.
// Readers report absence or a type mismatch through the ok result instead of
// an error: a missing or mistyped field is an expected outcome, not a failure
// of the read itself. Validating decoders turn a false ok into "drop the whole
// record"; trusting builders fall back to the zero value.

// isRecord reports whether a stored value is a structured key-value record,
// as opposed to an array, a primitive or nil. All decoding of embedded values
// starts here; a non-record short-circuits the decode without further
// inspection.
func isRecord(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

// readString returns the field only if it is present and a string.
func readString(rec map[string]any, field string) (string, bool) {
	s, ok := rec[field].(string)
	return s, ok
}

// readNumber returns the field as float64 if it holds any numeric type the
// store bindings produce (Firestore decodes to int64 or float64, JSONB to
// float64, and the memory store keeps whatever was written).
func readNumber(rec map[string]any, field string) (float64, bool) {
	switch n := rec[field].(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// readInt returns the field only if it is a number with an integral value.
// 6.5 fails; so does the string "3".
func readInt(rec map[string]any, field string) (int, bool) {
	n, ok := readNumber(rec, field)
	if !ok || n != math.Trunc(n) {
		return 0, false
	}
	return int(n), true
}

// readBool returns the field only if it is present and a bool.
func readBool(rec map[string]any, field string) (bool, bool) {
	b, ok := rec[field].(bool)
	return b, ok
}

// OptionalString distinguishes three states a nullable string field can be in:
//   - Present=false: field absent or not a string/null (malformed)
//   - Present=true, Value=nil: field explicitly null
//   - Present=true, Value=&s: field holds a string
type OptionalString struct {
	Present bool
	Value   *string
}

// readNullableString reads a field whose schema allows explicit null.
// Callers that treat the field as required should reject Present=false while
// accepting an explicit null.
func readNullableString(rec map[string]any, field string) OptionalString {
	v, exists := rec[field]
	if !exists {
		return OptionalString{}
	}
	if v == nil {
		return OptionalString{Present: true}
	}
	if s, ok := v.(string); ok {
		return OptionalString{Present: true, Value: &s}
	}
	return OptionalString{}
}

// readEnum returns the field only if it is a string belonging to the supplied
// closed set.
func readEnum(rec map[string]any, field string, allowed []string) (string, bool) {
	s, ok := readString(rec, field)
	if !ok || !slices.Contains(allowed, s) {
		return "", false
	}
	return s, true
}

// Trusting variants used by the default field-copy decode: absence and type
// mismatches collapse to the zero value instead of failing.

func stringOr(rec map[string]any, field string) string {
	s, _ := readString(rec, field)
	return s
}

func intOr(rec map[string]any, field string) int {
	n, _ := readInt(rec, field)
	return n
}

func boolOr(rec map[string]any, field string) bool {
	b, _ := readBool(rec, field)
	return b
}
