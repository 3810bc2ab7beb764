package models

// OptionType is the input kind of a form field.
type OptionType string

const (
	OptionSelect      OptionType = "select"
	OptionMultiSelect OptionType = "multiSelect"
	OptionText        OptionType = "text"
	OptionTextarea    OptionType = "textarea"
	OptionToggle      OptionType = "toggle"
)

// IsValid checks if the option type is a known input kind.
func (t OptionType) IsValid() bool {
	switch t {
	case OptionSelect, OptionMultiSelect, OptionText, OptionTextarea, OptionToggle:
		return true
	}
	return false
}

// HasChoices reports whether the option type draws its values from Options.
func (t OptionType) HasChoices() bool {
	return t == OptionSelect || t == OptionMultiSelect
}

// ConfigOption describes one form field of a UI type.
type ConfigOption struct {
	ID           string     `yaml:"id" json:"id"`
	Label        string     `yaml:"label" json:"label"`
	Type         OptionType `yaml:"type" json:"type"`
	Options      []string   `yaml:"options,omitempty" json:"options,omitempty"`
	DefaultValue any        `yaml:"defaultValue" json:"defaultValue"`
	Description  string     `yaml:"description,omitempty" json:"description,omitempty"`
	Placeholder  string     `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// HasChoice reports whether choice is one of the option's allowed values.
func (o ConfigOption) HasChoice(choice string) bool {
	for _, c := range o.Options {
		if c == choice {
			return true
		}
	}
	return false
}

// Default returns a fresh copy of the option's default value.
// List defaults are copied so callers may mutate the result.
func (o ConfigOption) Default() any {
	switch o.Type {
	case OptionMultiSelect:
		return toStrings(o.DefaultValue)
	case OptionToggle:
		b, _ := o.DefaultValue.(bool)
		return b
	default:
		s, _ := o.DefaultValue.(string)
		return s
	}
}

// UITypeSchema is the declarative description of a UI type's form.
type UITypeSchema struct {
	Type        UIType         `yaml:"type" json:"type"`
	Label       string         `yaml:"label" json:"label"`
	Icon        string         `yaml:"icon" json:"icon"`
	Description string         `yaml:"description" json:"description"`
	Options     []ConfigOption `yaml:"configOptions" json:"configOptions"`
}

// Option returns the option with the given id.
func (s UITypeSchema) Option(id string) (ConfigOption, bool) {
	for _, o := range s.Options {
		if o.ID == id {
			return o, true
		}
	}
	return ConfigOption{}, false
}

// OptionIDs returns the option ids in declaration order.
func (s UITypeSchema) OptionIDs() []string {
	ids := make([]string, len(s.Options))
	for i, o := range s.Options {
		ids[i] = o.ID
	}
	return ids
}
