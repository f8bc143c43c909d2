package datemath

import (
	"strings"
	"time"
)

// Value is a loosely typed date/time field as it arrives from a client or
// another service: nothing, a native date/datetime, a native clock time, or
// a raw string in one of several known shapes.
type Value struct {
	kind ValueKind
	t    time.Time
	raw  string
}

// EmptyValue is the null sentinel.
func EmptyValue() Value { return Value{kind: KindEmpty} }

// DateValue wraps a native date or datetime.
func DateValue(t time.Time) Value { return Value{kind: KindNativeDate, t: t} }

// TimeValue wraps a native time of day. Only the clock part of t is used.
func TimeValue(t time.Time) Value { return Value{kind: KindNativeTime, t: t} }

// RawValue wraps an unparsed string. Blank strings and "null" are treated as empty.
func RawValue(s string) Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		return EmptyValue()
	}
	return Value{kind: KindRaw, raw: trimmed}
}

// ValueOf converts a JSON-decoded or driver-scanned value into a Value.
// Unsupported shapes become empty.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return EmptyValue()
	case Value:
		return x
	case string:
		return RawValue(x)
	case *string:
		if x == nil {
			return EmptyValue()
		}
		return RawValue(*x)
	case []byte:
		return RawValue(string(x))
	case time.Time:
		if x.IsZero() {
			return EmptyValue()
		}
		return DateValue(x)
	case *time.Time:
		if x == nil || x.IsZero() {
			return EmptyValue()
		}
		return DateValue(*x)
	default:
		return EmptyValue()
	}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsEmpty reports whether v carries nothing.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// String returns the raw text for KindRaw values and "" otherwise.
func (v Value) String() string { return v.raw }
