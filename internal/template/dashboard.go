package template

import "github.com/modu-ai/uiprompt/pkg/models"

var dashboardTypes = choices{
	{"Analytics Dashboard", "analytics"},
	{"Admin Panel", "admin"},
	{"CRM Dashboard", "crm"},
	{"Project Management", "projectManagement"},
	{"E-commerce Dashboard", "ecommerce"},
	{"Financial Dashboard", ""},
}

var dashboardThemes = choices{
	{"Dark Mode", "dark"},
	{"Light Mode", "light"},
	{"Auto (System)", ""},
}

var dashboardDensities = choices{
	{"Compact", "compact"},
	{"Comfortable", ""},
	{"Spacious", "spacious"},
}

var dashboardAccents = choices{
	{"Blue", "blue"},
	{"Purple", "purple"},
	{"Green", "green"},
	{"Orange", "orange"},
	{"Monochrome", "monochrome"},
	{"Multi-color", ""},
}

func dashboardSchema() models.UITypeSchema {
	return models.UITypeSchema{
		Type:        models.UITypeDashboard,
		Label:       "Dashboard",
		Icon:        "LayoutDashboard",
		Description: "Data-driven admin panels, analytics and management consoles",
		Options: []models.ConfigOption{
			selectOption("dashboardType", "Dashboard Type", dashboardTypes.labels(), "Analytics Dashboard",
				"The kind of data the dashboard presents"),
			selectOption("layout", "Layout Style",
				[]string{"Bento Grid", "Sidebar + Content", "Top Navigation", "Card Grid", "Split View"},
				"Bento Grid", ""),
			multiSelectOption("dataVisualization", "Data Visualization",
				[]string{"KPI Cards", "Line Charts", "Bar Charts", "Pie/Donut Charts", "Data Tables",
					"Area Charts", "Heatmaps", "Progress Indicators", "Sparklines", "Maps"},
				[]string{"KPI Cards", "Line Charts", "Bar Charts", "Data Tables"},
				"Visualization components to include"),
			selectOption("sidebarStyle", "Navigation Style",
				[]string{"Collapsible Sidebar", "Fixed Sidebar", "Top Navigation Bar", "Icon-only Sidebar", "Floating Sidebar"},
				"Collapsible Sidebar", ""),
			selectOption("theme", "Theme", dashboardThemes.labels(), "Dark Mode", ""),
			selectOption("density", "Information Density", dashboardDensities.labels(), "Comfortable",
				"How tightly data is packed on screen"),
			multiSelectOption("features", "Key Features",
				[]string{"Search", "Filters", "Date Range Picker", "Export Data", "Notifications",
					"User Profile Menu", "Real-time Updates", "Dark Mode Toggle"},
				[]string{"Search", "Filters", "Date Range Picker", "Notifications"},
				""),
			selectOption("colorScheme", "Color Accent", dashboardAccents.labels(), "Blue", ""),
		},
	}
}

// dashboardData feeds prompts/dashboard.md.tmpl.
type dashboardData struct {
	DashboardType     string
	Theme             string
	ColorScheme       string
	Density           string
	SidebarStyle      string
	Layout            string
	DataVisualization []string
	Features          []string
	Requirements      []string
	Spacing           string
	ColorGuidance     string
}

type dashboardGenerator struct {
	r Renderer
}

func newDashboardGenerator(r Renderer) Generator {
	return &dashboardGenerator{r: r}
}

// Generate implements Generator. The dashboard prompt does not depend on
// the tech stack.
func (g *dashboardGenerator) Generate(cfg models.Configuration, _ models.TechStack) (string, error) {
	dashboardType := cfg.String("dashboardType")
	theme := cfg.String("theme")
	density := cfg.String("density")
	accent := cfg.String("colorScheme")

	layout := cfg.String("layout")
	if layout == "" {
		layout = "Bento Grid"
	}

	return g.r.Render("dashboard", dashboardData{
		DashboardType:     dashboardType,
		Theme:             theme,
		ColorScheme:       accent,
		Density:           density,
		SidebarStyle:      cfg.String("sidebarStyle"),
		Layout:            layout,
		DataVisualization: cfg.List("dataVisualization"),
		Features:          cfg.List("features"),
		Requirements:      dashboardRequirements(dashboardType, theme, density),
		Spacing:           densitySpacing(density),
		ColorGuidance:     colorGuidance(theme, accent),
	})
}

func dashboardRequirements(dashboardType, theme, density string) []string {
	var reqs []string

	switch dashboardTypes.tagOf(dashboardType) {
	case "analytics":
		reqs = append(reqs,
			"Prominent KPI cards showing key metrics with trend indicators (up/down arrows)",
			"Time period selector for filtering data (Last 7 days, 30 days, etc.)",
			"Comparison views (vs. previous period)",
		)
	case "admin":
		reqs = append(reqs,
			"Quick action buttons for common admin tasks",
			"Recent activity feed or audit log",
			"User management table with inline actions",
		)
	case "crm":
		reqs = append(reqs,
			"Contact/lead pipeline visualization",
			"Activity timeline for customer interactions",
			"Task management with status indicators",
		)
	case "projectManagement":
		reqs = append(reqs,
			"Project status overview with progress indicators",
			"Task board or kanban view",
			"Team member assignment and workload visualization",
		)
	case "ecommerce":
		reqs = append(reqs,
			"Sales metrics with revenue, orders, and conversion rates",
			"Product performance tables",
			"Order management with status workflows",
		)
	}

	switch dashboardThemes.tagOf(theme) {
	case "dark":
		reqs = append(reqs,
			"Use dark background (#0f172a or similar) with elevated cards",
			"Ensure sufficient contrast for text (WCAG AAA for body text)",
			"Use subtle borders and dividers to separate sections",
		)
	case "light":
		reqs = append(reqs,
			"Use light background (#f8fafc or similar) with white cards",
			"Use shadows to create depth and hierarchy",
		)
	}

	switch dashboardDensities.tagOf(density) {
	case "compact":
		reqs = append(reqs,
			"Maximize data density with minimal padding (8-12px)",
			"Use smaller typography (12-14px for body text)",
			"Compact table rows and tight line height",
		)
	case "spacious":
		reqs = append(reqs,
			"Generous whitespace and padding (20-32px)",
			"Larger typography (14-16px for body text)",
			"Comfortable spacing in tables and lists",
		)
	default:
		reqs = append(reqs,
			"Balanced spacing with adequate breathing room (16-24px)",
			"Standard typography (14px for body text)",
		)
	}

	return reqs
}

func densitySpacing(density string) string {
	switch dashboardDensities.tagOf(density) {
	case "compact":
		return "Tight spacing (8-12px padding, 4-8px gaps)"
	case "spacious":
		return "Generous spacing (20-32px padding, 16-24px gaps)"
	}
	return "Comfortable spacing (16-24px padding, 12-16px gaps)"
}

func colorGuidance(theme, accent string) string {
	dark := dashboardThemes.tagOf(theme) == "dark"

	base := "Light background with dark text"
	if dark {
		base = "Dark background with light text"
	}

	pick := func(darkValue, lightValue string) string {
		if dark {
			return darkValue
		}
		return lightValue
	}

	var guidance string
	switch dashboardAccents.tagOf(accent) {
	case "blue":
		guidance = pick("#3b82f6 for primary actions", "#2563eb for primary actions")
	case "purple":
		guidance = pick("#a78bfa for primary actions", "#7c3aed for primary actions")
	case "green":
		guidance = pick("#34d399 for success/positive metrics", "#10b981 for success/positive metrics")
	case "orange":
		guidance = pick("#fb923c for highlights and warnings", "#f97316 for highlights and warnings")
	case "monochrome":
		guidance = "Grayscale palette with subtle accent colors only for critical actions"
	default:
		guidance = "Category-specific colors for different data types"
	}

	return base + ". " + guidance
}
