package payload

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Value holds one loosely typed JSON value exactly as encoding/json decodes it
// (nil, float64, string, bool, map[string]any or []any). Interpretation is left
// to the extract package.
type Value struct {
	raw any
}

// V wraps an already decoded value.
func V(raw any) Value {
	return Value{raw: raw}
}

// Raw returns the decoded JSON value.
func (v Value) Raw() any {
	return v.raw
}

// IsNull reports whether the value is absent or JSON null.
func (v Value) IsNull() bool {
	return v.raw == nil
}

// UnmarshalJSON never fails on well-formed JSON.
func (v *Value) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v.raw = raw
	return nil
}

// MarshalJSON re-encodes the wrapped value.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw)
}

// object is a JSON object whose members are decoded lazily so that each field
// can be looked up under several historical names.
type object map[string]json.RawMessage

// decodeObject returns nil when b is not a JSON object.
func decodeObject(b []byte) object {
	var o object
	if err := json.Unmarshal(b, &o); err != nil {
		return nil
	}
	return o
}

// has reports whether any of keys is present.
func (o object) has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := o[k]; ok {
			return true
		}
	}
	return false
}

// raw returns the first present, non-null member among keys.
func (o object) raw(keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		raw, ok := o[k]
		if !ok || isNull(raw) {
			continue
		}
		return raw, true
	}
	return nil, false
}

// value returns the first present, non-null member among keys.
func (o object) value(keys ...string) Value {
	raw, ok := o.raw(keys...)
	if !ok {
		return Value{}
	}
	var v Value
	if err := json.Unmarshal(raw, &v); err != nil {
		return Value{}
	}
	return v
}

// text returns the first non-empty member among keys rendered as a string.
// Numbers are formatted without exponent so numeric account numbers survive.
func (o object) text(keys ...string) string {
	for _, k := range keys {
		raw, ok := o[k]
		if !ok || isNull(raw) {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		var s string
		switch x := v.(type) {
		case string:
			s = strings.TrimSpace(x)
		case float64:
			s = strconv.FormatFloat(x, 'f', -1, 64)
		}
		if s != "" {
			return s
		}
	}
	return ""
}

// flag returns the first boolean member among keys, or nil.
func (o object) flag(keys ...string) *bool {
	for _, k := range keys {
		raw, ok := o[k]
		if !ok {
			continue
		}
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return &b
		}
	}
	return nil
}

// list decodes the first array member among keys, skipping null elements and
// elements that do not decode into T.
func list[T any](o object, keys ...string) []T {
	raw, ok := o.raw(keys...)
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if isNull(item) {
			continue
		}
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
