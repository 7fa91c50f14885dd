// Package hal normalizes collection payloads returned by the records
// backend. Depending on the endpoint the backend answers either with a bare
// JSON array or with a HAL-style object wrapping the array under an
// _embedded key, and the embedded key name is not consistent across
// deployments. Everything in this package is pure: no I/O, no errors —
// a payload that matches no known shape normalizes to an empty collection.
package hal

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Unwrap extracts the flat list of collection elements from a raw response
// body. Array payloads are returned element for element in their original
// order. For an object payload the hinted key is looked up inside _embedded
// first; when the hint is absent or does not name an array, the first
// array-valued member of _embedded (smallest key, since Go maps are
// unordered) is used instead. Anything else yields an empty slice.
func Unwrap(payload json.RawMessage, embeddedKeyHint string) []json.RawMessage {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return []json.RawMessage{}
	}

	if trimmed[0] == '[' {
		items := decodeArray(trimmed)
		if items == nil {
			return []json.RawMessage{}
		}
		return items
	}

	if trimmed[0] != '{' {
		return []json.RawMessage{}
	}

	var wrapper struct {
		Embedded map[string]json.RawMessage `json:"_embedded"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil || len(wrapper.Embedded) == 0 {
		return []json.RawMessage{}
	}

	if embeddedKeyHint != "" {
		if raw, ok := wrapper.Embedded[embeddedKeyHint]; ok {
			if items := decodeArray(raw); items != nil {
				return items
			}
		}
	}

	keys := make([]string, 0, len(wrapper.Embedded))
	for k := range wrapper.Embedded {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if items := decodeArray(wrapper.Embedded[k]); items != nil {
			return items
		}
	}

	return []json.RawMessage{}
}

// decodeArray decodes raw into array elements, or nil when raw is not an array
func decodeArray(raw json.RawMessage) []json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items
}

// Decode unmarshals each element into T, silently skipping elements that do
// not decode. Struct targets drop _links/_embedded members on their own, so
// no separate strip pass is needed on typed collections.
func Decode[T any](items []json.RawMessage) []T {
	out := make([]T, 0, len(items))
	for _, raw := range items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Collection unwraps a raw payload and decodes its elements in one step
func Collection[T any](payload json.RawMessage, embeddedKeyHint string) []T {
	return Decode[T](Unwrap(payload, embeddedKeyHint))
}

// StripMeta recursively removes HAL link metadata (_links and _embedded
// keys) from a decoded generic value. Used for raw pass-through views where
// elements keep their free-form shape.
func StripMeta(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			if k == "_links" || k == "_embedded" {
				continue
			}
			out[k] = StripMeta(inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, 0, len(val))
		for _, inner := range val {
			out = append(out, StripMeta(inner))
		}
		return out
	default:
		return v
	}
}
