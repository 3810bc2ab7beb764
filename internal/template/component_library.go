package template

import "github.com/modu-ai/uiprompt/pkg/models"

var componentVariants = choices{
	{"Basic (1-2 variants)", "basic"},
	{"Standard (3-4 variants)", "standard"},
	{"Comprehensive (5+ variants)", ""},
}

var componentFeatures = choices{
	{"Dark Mode Support", "darkMode"},
	{"Accessibility (WCAG 2.1)", "accessibility"},
	{"Responsive Design", ""},
	{"Animation Guidelines", ""},
	{"Icon Set", ""},
	{"Design Tokens", ""},
	{"Documentation", ""},
}

func componentLibrarySchema() models.UITypeSchema {
	return models.UITypeSchema{
		Type:        models.UITypeComponentLibrary,
		Label:       "Component Library",
		Icon:        "Box",
		Description: "Design systems, UI kits and reusable component sets",
		Options: []models.ConfigOption{
			selectOption("libraryType", "Library Type",
				[]string{"Design System", "UI Kit", "Component Library", "Pattern Library"},
				"Design System", ""),
			multiSelectOption("components", "Components",
				[]string{"Buttons", "Inputs", "Forms", "Cards", "Modals", "Dropdowns", "Tables", "Navigation",
					"Tabs", "Alerts", "Badges", "Avatars", "Tooltips", "Toggles", "Checkboxes", "Radio Buttons"},
				[]string{"Buttons", "Inputs", "Cards", "Modals", "Navigation"},
				"Components to design"),
			selectOption("style", "Design Style",
				[]string{"Modern", "Minimal", "Glassmorphism", "Neumorphism", "Material", "Playful"},
				"Modern", ""),
			selectOption("variants", "Variant Complexity", componentVariants.labels(), "Standard (3-4 variants)",
				"How many variants each component ships with"),
			multiSelectOption("features", "Features", componentFeatures.labels(),
				[]string{"Dark Mode Support", "Accessibility (WCAG 2.1)", "Responsive Design"},
				""),
		},
	}
}

type componentLibraryData struct {
	LibraryType     string
	Style           string
	Variants        string
	Components      []string
	Features        []string
	VariantGuidance string
	DarkMode        bool
	Accessibility   bool
}

type componentLibraryGenerator struct {
	r Renderer
}

func newComponentLibraryGenerator(r Renderer) Generator {
	return &componentLibraryGenerator{r: r}
}

func (g *componentLibraryGenerator) Generate(cfg models.Configuration, _ models.TechStack) (string, error) {
	variants := cfg.String("variants")
	features := cfg.List("features")

	return g.r.Render("componentLibrary", componentLibraryData{
		LibraryType:     cfg.String("libraryType"),
		Style:           cfg.String("style"),
		Variants:        variants,
		Components:      cfg.List("components"),
		Features:        features,
		VariantGuidance: variantGuidance(variants),
		DarkMode:        componentFeatures.anyTagged(features, "darkMode"),
		Accessibility:   componentFeatures.anyTagged(features, "accessibility"),
	})
}

func variantGuidance(variants string) string {
	switch componentVariants.tagOf(variants) {
	case "basic":
		return "Single primary variant"
	case "standard":
		return "Primary, secondary, and outline/ghost variants"
	}
	return "Primary, secondary, outline, ghost, link, and specialized variants (danger, success, etc.)"
}
