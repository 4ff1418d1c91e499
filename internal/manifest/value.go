package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type valueKind int

const (
	kindString valueKind = iota
	kindNumber
	kindBool
	kindTime
	kindOpaque
)

// Value is a manifest-safe scalar. Serialization is total over a closed
// set of variants: string, number, bool, timestamp, and an opaque
// stringified fallback for anything else. Building a Value can never
// fail, so writing the manifest never aborts on an unexpected shape.
type Value struct {
	kind valueKind
	str  string
	num  json.Number
	b    bool
	t    time.Time
}

// StringValue wraps a string.
func StringValue(s string) Value {
	return Value{kind: kindString, str: s}
}

// NumberValue wraps a number given in its exact textual form.
func NumberValue(n json.Number) Value {
	return Value{kind: kindNumber, num: n}
}

// BoolValue wraps a bool.
func BoolValue(b bool) Value {
	return Value{kind: kindBool, b: b}
}

// TimeValue wraps a timestamp; it serializes as RFC 3339 with offset.
func TimeValue(t time.Time) Value {
	return Value{kind: kindTime, t: t}
}

// OpaqueValue wraps any value as its string representation.
func OpaqueValue(v any) Value {
	return Value{kind: kindOpaque, str: fmt.Sprint(v)}
}

// ValueOf converts an arbitrary scalar into a Value. Known primitive,
// numeric-wrapper, and timestamp shapes map to their variant; everything
// else degrades to the opaque string form.
func ValueOf(v any) Value {
	switch v := v.(type) {
	case Value:
		return v
	case nil:
		return StringValue("")
	case string:
		return StringValue(v)
	case bool:
		return BoolValue(v)
	case int:
		return NumberValue(json.Number(fmt.Sprintf("%d", v)))
	case int64:
		return NumberValue(json.Number(fmt.Sprintf("%d", v)))
	case float64:
		return numberFromFloat(v)
	case float32:
		return numberFromFloat(float64(v))
	case json.Number:
		return NumberValue(v)
	case decimal.Decimal:
		return NumberValue(json.Number(v.String()))
	case decimal.NullDecimal:
		if !v.Valid {
			return StringValue("")
		}
		return NumberValue(json.Number(v.Decimal.String()))
	case time.Time:
		return TimeValue(v)
	default:
		return OpaqueValue(v)
	}
}

func numberFromFloat(f float64) Value {
	// NaN and infinities have no JSON encoding; degrade to the opaque form.
	data, err := json.Marshal(f)
	if err != nil {
		return OpaqueValue(f)
	}
	return NumberValue(json.Number(data))
}

// UnmarshalJSON implements json.Unmarshaler so written manifests can be
// read back. RFC 3339 strings revive as the timestamp variant; numbers
// keep their exact textual form.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch raw := raw.(type) {
	case string:
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			*v = TimeValue(ts)
			return nil
		}
		*v = StringValue(raw)
	case json.Number:
		*v = NumberValue(raw)
	case bool:
		*v = BoolValue(raw)
	case nil:
		*v = StringValue("")
	default:
		*v = OpaqueValue(raw)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindNumber:
		if v.num == "" {
			return []byte("0"), nil
		}
		return []byte(v.num), nil
	case kindBool:
		return json.Marshal(v.b)
	case kindTime:
		return json.Marshal(v.t)
	default:
		return json.Marshal(v.str)
	}
}

// Snapshot converts a partial field mapping, such as a provider quote
// snapshot, into manifest values. A nil input yields an empty mapping so
// the manifest section is {} rather than null.
func Snapshot(fields map[string]any) map[string]Value {
	out := make(map[string]Value, len(fields))
	for k, v := range fields {
		out[k] = ValueOf(v)
	}
	return out
}
