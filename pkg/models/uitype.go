package models

// UIType is the discriminator for a supported UI archetype.
type UIType string

const (
	UITypeWebsite          UIType = "website"
	UITypeDashboard        UIType = "dashboard"
	UITypeMobileApp        UIType = "mobileApp"
	UITypeDesktopApp       UIType = "desktopApp"
	UITypeComponentLibrary UIType = "componentLibrary"
)

// UITypes returns every built-in UI type in registration order.
func UITypes() []UIType {
	return []UIType{
		UITypeWebsite,
		UITypeDashboard,
		UITypeMobileApp,
		UITypeDesktopApp,
		UITypeComponentLibrary,
	}
}

// IsValid checks if the UI type is one of the built-in archetypes.
func (t UIType) IsValid() bool {
	switch t {
	case UITypeWebsite, UITypeDashboard, UITypeMobileApp, UITypeDesktopApp, UITypeComponentLibrary:
		return true
	}
	return false
}

// TechStack is the target implementation technology named in generated prompts.
type TechStack string

const (
	// TechStackReactTailwind targets React components styled with Tailwind CSS v4 (default).
	TechStackReactTailwind TechStack = "React + Tailwind v4"

	// TechStackHTMLCSS targets plain HTML and CSS.
	TechStackHTMLCSS TechStack = "HTML + CSS"
)

// DefaultTechStack is the stack selected for new sessions and substituted
// when a persisted snapshot has no stack recorded.
const DefaultTechStack = TechStackReactTailwind

// TechStacks returns all supported tech stacks in display order.
func TechStacks() []TechStack {
	return []TechStack{TechStackReactTailwind, TechStackHTMLCSS}
}

// IsValid checks if the tech stack is a supported value.
func (s TechStack) IsValid() bool {
	switch s {
	case TechStackReactTailwind, TechStackHTMLCSS:
		return true
	}
	return false
}

// ParseTechStack resolves a user-supplied stack name. Besides the exact
// labels it accepts the short aliases "react" and "html".
func ParseTechStack(s string) (TechStack, bool) {
	switch s {
	case string(TechStackReactTailwind), "react", "react-tailwind":
		return TechStackReactTailwind, true
	case string(TechStackHTMLCSS), "html", "html-css":
		return TechStackHTMLCSS, true
	}
	return "", false
}
