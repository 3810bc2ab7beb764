package template

import "github.com/modu-ai/uiprompt/pkg/models"

var mobilePlatforms = choices{
	{"iOS", "ios"},
	{"Android", "android"},
	{"Cross-platform", "crossPlatform"},
}

func mobileAppSchema() models.UITypeSchema {
	return models.UITypeSchema{
		Type:        models.UITypeMobileApp,
		Label:       "Mobile App",
		Icon:        "Smartphone",
		Description: "Native and cross-platform apps for phones",
		Options: []models.ConfigOption{
			selectOption("appType", "App Type",
				[]string{"Social Media", "E-commerce", "Fitness & Health", "Finance & Banking",
					"Productivity", "Food Delivery", "Travel", "Education"},
				"Social Media", ""),
			selectOption("platform", "Platform", mobilePlatforms.labels(), "iOS",
				"Target platform; selects the matching design guidelines"),
			selectOption("navigationPattern", "Navigation Pattern",
				[]string{"Bottom Tab Bar", "Hamburger Menu", "Tab Bar + Stack", "Gesture-based", "Drawer Navigation"},
				"Bottom Tab Bar", ""),
			multiSelectOption("screens", "Screens",
				[]string{"Onboarding", "Login / Sign Up", "Home Feed", "Profile", "Settings",
					"Search", "Detail View", "Checkout", "Notifications", "Chat / Messaging"},
				[]string{"Onboarding", "Login / Sign Up", "Home Feed", "Profile", "Settings"},
				"Screens to design"),
			selectOption("designStyle", "Design Style",
				[]string{"Modern Minimal", "Material You", "iOS Native", "Glassmorphism", "Neumorphism", "Bold & Colorful"},
				"Modern Minimal", ""),
			multiSelectOption("interactions", "Interactions",
				[]string{"Swipe Gestures", "Pull to Refresh", "Haptic Feedback", "Long Press Menus",
					"Animated Transitions", "Skeleton Loading", "Infinite Scroll"},
				[]string{"Swipe Gestures", "Pull to Refresh", "Animated Transitions"},
				""),
		},
	}
}

type mobileAppData struct {
	AppType           string
	Platform          string
	DesignStyle       string
	NavigationPattern string
	Screens           []string
	Interactions      []string
	// Guidelines names the platform guideline block to include.
	Guidelines string
}

type mobileAppGenerator struct {
	r Renderer
}

func newMobileAppGenerator(r Renderer) Generator {
	return &mobileAppGenerator{r: r}
}

func (g *mobileAppGenerator) Generate(cfg models.Configuration, _ models.TechStack) (string, error) {
	platform := cfg.String("platform")

	guidelines, err := g.r.Render(platformGuidelines(platform), nil)
	if err != nil {
		return "", err
	}

	return g.r.Render("mobileApp", mobileAppData{
		AppType:           cfg.String("appType"),
		Platform:          platform,
		DesignStyle:       cfg.String("designStyle"),
		NavigationPattern: cfg.String("navigationPattern"),
		Screens:           cfg.List("screens"),
		Interactions:      cfg.List("interactions"),
		Guidelines:        guidelines,
	})
}

// platformGuidelines maps a platform label to its guideline block. Anything
// that is neither iOS nor Android gets the cross-platform block.
func platformGuidelines(platform string) string {
	switch mobilePlatforms.tagOf(platform) {
	case "ios":
		return "mobileApp.guidelines.ios"
	case "android":
		return "mobileApp.guidelines.android"
	}
	return "mobileApp.guidelines.crossPlatform"
}
