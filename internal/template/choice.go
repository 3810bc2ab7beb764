package template

// choice pairs a display label with the stable tag generator rules match on.
// Labels may be reworded freely; tags may not.
type choice struct {
	label string
	tag   string
}

// choices is an ordered choice table for one select or multiSelect option.
type choices []choice

// labels returns the display labels in declaration order.
func (cs choices) labels() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.label
	}
	return out
}

// tagOf returns the tag of the choice labelled value, or "" when value is
// not a declared choice or the choice is untagged.
func (cs choices) tagOf(value string) string {
	for _, c := range cs {
		if c.label == value {
			return c.tag
		}
	}
	return ""
}

// anyTagged reports whether any of values carries tag.
func (cs choices) anyTagged(values []string, tag string) bool {
	for _, v := range values {
		if cs.tagOf(v) == tag {
			return true
		}
	}
	return false
}
