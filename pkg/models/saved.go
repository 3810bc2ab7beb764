package models

// SavedConfiguration is a named, timestamped snapshot of one UI type's
// configuration. Timestamp is in epoch milliseconds.
type SavedConfiguration struct {
	ID        string        `yaml:"id" json:"id"`
	Name      string        `yaml:"name" json:"name"`
	UIType    UIType        `yaml:"uiType" json:"uiType"`
	TechStack TechStack     `yaml:"techStack,omitempty" json:"techStack,omitempty"`
	Config    Configuration `yaml:"config" json:"config"`
	Timestamp int64         `yaml:"timestamp" json:"timestamp"`
}
