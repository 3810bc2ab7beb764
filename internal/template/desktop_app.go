package template

import "github.com/modu-ai/uiprompt/pkg/models"

var desktopPlatforms = choices{
	{"macOS", "macos"},
	{"Windows", "windows"},
	{"Linux", "linux"},
	{"Cross-platform (Electron)", ""},
}

func desktopAppSchema() models.UITypeSchema {
	return models.UITypeSchema{
		Type:        models.UITypeDesktopApp,
		Label:       "Desktop App",
		Icon:        "Monitor",
		Description: "Productivity tools, editors and other windowed applications",
		Options: []models.ConfigOption{
			selectOption("appType", "App Type",
				[]string{"Productivity Tool", "Code Editor", "Media Player", "Design Tool",
					"File Manager", "Communication App", "Developer Tool"},
				"Productivity Tool", ""),
			selectOption("platform", "Target Platform", desktopPlatforms.labels(), "macOS", ""),
			selectOption("layoutStyle", "Layout Style",
				[]string{"Sidebar + Main Content", "Three-Pane", "Tabbed Interface", "Single Window", "Dockable Panels"},
				"Sidebar + Main Content", ""),
			selectOption("theme", "Theme", []string{"Light", "Dark", "System Default"}, "Dark", ""),
			multiSelectOption("features", "Interface Components",
				[]string{"Menu Bar", "Toolbar", "Sidebar Navigation", "Status Bar", "Command Palette",
					"Tabs", "Split Panes", "Inspector Panel", "Search", "Notifications"},
				[]string{"Menu Bar", "Toolbar", "Sidebar Navigation", "Status Bar"},
				""),
			selectOption("complexity", "Complexity Level",
				[]string{"Simple", "Moderate", "Advanced", "Professional"},
				"Moderate", "How dense and feature-rich the interface is"),
		},
	}
}

type desktopAppData struct {
	AppType     string
	Platform    string
	LayoutStyle string
	Theme       string
	Complexity  string
	Features    []string
	Platforms   string
}

type desktopAppGenerator struct {
	r Renderer
}

func newDesktopAppGenerator(r Renderer) Generator {
	return &desktopAppGenerator{r: r}
}

func (g *desktopAppGenerator) Generate(cfg models.Configuration, _ models.TechStack) (string, error) {
	platform := cfg.String("platform")

	specifics, err := g.r.Render(platformSpecifics(platform), nil)
	if err != nil {
		return "", err
	}

	return g.r.Render("desktopApp", desktopAppData{
		AppType:     cfg.String("appType"),
		Platform:    platform,
		LayoutStyle: cfg.String("layoutStyle"),
		Theme:       cfg.String("theme"),
		Complexity:  cfg.String("complexity"),
		Features:    cfg.List("features"),
		Platforms:   specifics,
	})
}

func platformSpecifics(platform string) string {
	switch desktopPlatforms.tagOf(platform) {
	case "macos":
		return "desktopApp.platform.macos"
	case "windows":
		return "desktopApp.platform.windows"
	case "linux":
		return "desktopApp.platform.linux"
	}
	return "desktopApp.platform.electron"
}
