package models

import "fmt"

// Configuration maps option ids to values of the option's declared shape:
// string, []string or bool.
//
// Readers must go through the typed accessors, which tolerate missing keys
// and values decoded from YAML or JSON as []any.
type Configuration map[string]any

// Has reports whether id is present as a key.
func (c Configuration) Has(id string) bool {
	_, ok := c[id]
	return ok
}

// String returns the scalar value for id, or "" when absent.
// Non-string scalars are formatted with %v.
func (c Configuration) String(id string) string {
	switch v := c[id].(type) {
	case nil:
		return ""
	case string:
		return v
	case []string, []any:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// List returns a copy of the list value for id, or an empty list when absent.
func (c Configuration) List(id string) []string {
	return toStrings(c[id])
}

// Bool returns the toggle value for id, or false when absent.
func (c Configuration) Bool(id string) bool {
	b, _ := c[id].(bool)
	return b
}

// Contains reports whether the list value for id holds choice.
func (c Configuration) Contains(id, choice string) bool {
	for _, v := range c.List(id) {
		if v == choice {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. List values are copied and normalized to []string,
// so the clone shares no mutable structure with c.
func (c Configuration) Clone() Configuration {
	if c == nil {
		return Configuration{}
	}
	out := make(Configuration, len(c))
	for k, v := range c {
		switch v.(type) {
		case []string, []any:
			out[k] = toStrings(v)
		default:
			out[k] = v
		}
	}
	return out
}

// Merge returns a copy of c with every key of partial applied on top.
func (c Configuration) Merge(partial Configuration) Configuration {
	out := c.Clone()
	for k, v := range partial.Clone() {
		out[k] = v
	}
	return out
}

// Equal reports whether both configurations hold the same keys and values.
func (c Configuration) Equal(other Configuration) bool {
	if len(c) != len(other) {
		return false
	}
	for k, v := range c {
		ov, ok := other[k]
		if !ok {
			return false
		}
		switch v.(type) {
		case []string, []any:
			a, b := toStrings(v), toStrings(ov)
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
		default:
			if _, isList := ov.([]string); isList {
				return false
			}
			if _, isList := ov.([]any); isList {
				return false
			}
			if v != ov {
				return false
			}
		}
	}
	return true
}

// ToggleChoice flips membership of choice in values. A missing choice is
// appended at the end; a present one is removed. Order is preserved and
// values itself is never modified.
func ToggleChoice(values []string, choice string) []string {
	out := make([]string, 0, len(values)+1)
	found := false
	for _, v := range values {
		if v == choice {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, choice)
	}
	return out
}

// toStrings converts a list-shaped value into a fresh []string.
// Anything else yields an empty, non-nil slice.
func toStrings(v any) []string {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
