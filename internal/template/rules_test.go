package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/uiprompt/pkg/models"
)

// Every row of a choice table must have an expectation here, so a newly
// added or re-tagged choice fails until its rule outcome is pinned down.

var (
	comfortableDensity = []string{
		"Balanced spacing with adequate breathing room (16-24px)",
		"Standard typography (14px for body text)",
	}
	clean = []string{
		"Ample whitespace with clean, uncluttered layouts",
		"Professional color palette (blues, grays with accent colors)",
	}
	minimalist = []string{
		"Extreme simplicity with focus on essential elements only",
		"Limited color palette (2-3 colors maximum)",
	}
)

func TestDashboardTypeRules(t *testing.T) {
	t.Parallel()

	want := map[string][]string{
		"Analytics Dashboard": {
			"Prominent KPI cards showing key metrics with trend indicators (up/down arrows)",
			"Time period selector for filtering data (Last 7 days, 30 days, etc.)",
			"Comparison views (vs. previous period)",
		},
		"Admin Panel": {
			"Quick action buttons for common admin tasks",
			"Recent activity feed or audit log",
			"User management table with inline actions",
		},
		"CRM Dashboard": {
			"Contact/lead pipeline visualization",
			"Activity timeline for customer interactions",
			"Task management with status indicators",
		},
		"Project Management": {
			"Project status overview with progress indicators",
			"Task board or kanban view",
			"Team member assignment and workload visualization",
		},
		"E-commerce Dashboard": {
			"Sales metrics with revenue, orders, and conversion rates",
			"Product performance tables",
			"Order management with status workflows",
		},
		"Financial Dashboard": nil,
	}

	for _, label := range dashboardTypes.labels() {
		t.Run(label, func(t *testing.T) {
			typeReqs, ok := want[label]
			require.True(t, ok, "no expectation for %q", label)

			got := dashboardRequirements(label, "Auto (System)", "Comfortable")
			assert.Equal(t, append(append([]string{}, typeReqs...), comfortableDensity...), got)
		})
	}
}

func TestDashboardThemeRules(t *testing.T) {
	t.Parallel()

	want := map[string][]string{
		"Dark Mode": {
			"Use dark background (#0f172a or similar) with elevated cards",
			"Ensure sufficient contrast for text (WCAG AAA for body text)",
			"Use subtle borders and dividers to separate sections",
		},
		"Light Mode": {
			"Use light background (#f8fafc or similar) with white cards",
			"Use shadows to create depth and hierarchy",
		},
		"Auto (System)": nil,
	}

	for _, label := range dashboardThemes.labels() {
		t.Run(label, func(t *testing.T) {
			themeReqs, ok := want[label]
			require.True(t, ok, "no expectation for %q", label)

			got := dashboardRequirements("Financial Dashboard", label, "Comfortable")
			assert.Equal(t, append(append([]string{}, themeReqs...), comfortableDensity...), got)
		})
	}
}

func TestDashboardDensityRules(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		reqs    []string
		spacing string
	}{
		"Compact": {
			reqs: []string{
				"Maximize data density with minimal padding (8-12px)",
				"Use smaller typography (12-14px for body text)",
				"Compact table rows and tight line height",
			},
			spacing: "Tight spacing (8-12px padding, 4-8px gaps)",
		},
		"Comfortable": {
			reqs:    comfortableDensity,
			spacing: "Comfortable spacing (16-24px padding, 12-16px gaps)",
		},
		"Spacious": {
			reqs: []string{
				"Generous whitespace and padding (20-32px)",
				"Larger typography (14-16px for body text)",
				"Comfortable spacing in tables and lists",
			},
			spacing: "Generous spacing (20-32px padding, 16-24px gaps)",
		},
	}

	for _, label := range dashboardDensities.labels() {
		t.Run(label, func(t *testing.T) {
			tt, ok := tests[label]
			require.True(t, ok, "no expectation for %q", label)

			assert.Equal(t, tt.reqs, dashboardRequirements("Financial Dashboard", "Auto (System)", label))
			assert.Equal(t, tt.spacing, densitySpacing(label))
		})
	}
}

func TestDashboardColorGuidance(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		dark  string
		light string
	}{
		"Blue":        {"#3b82f6 for primary actions", "#2563eb for primary actions"},
		"Purple":      {"#a78bfa for primary actions", "#7c3aed for primary actions"},
		"Green":       {"#34d399 for success/positive metrics", "#10b981 for success/positive metrics"},
		"Orange":      {"#fb923c for highlights and warnings", "#f97316 for highlights and warnings"},
		"Monochrome":  {"Grayscale palette with subtle accent colors only for critical actions", "Grayscale palette with subtle accent colors only for critical actions"},
		"Multi-color": {"Category-specific colors for different data types", "Category-specific colors for different data types"},
	}

	for _, label := range dashboardAccents.labels() {
		t.Run(label, func(t *testing.T) {
			tt, ok := tests[label]
			require.True(t, ok, "no expectation for %q", label)

			assert.Equal(t, "Dark background with light text. "+tt.dark, colorGuidance("Dark Mode", label))
			assert.Equal(t, "Light background with dark text. "+tt.light, colorGuidance("Light Mode", label))
			assert.Equal(t, "Light background with dark text. "+tt.light, colorGuidance("Auto (System)", label))
		})
	}
}

func TestWebsiteTypeRules(t *testing.T) {
	t.Parallel()

	want := map[string][]string{
		"Landing Page": {
			"Single, focused conversion goal with clear CTAs",
			"Persuasive copy emphasizing benefits and outcomes",
			"Social proof (testimonials, stats, logos) for credibility",
		},
		"SaaS Marketing Site": {
			"Benefits-driven messaging highlighting key features",
			"Clear pricing tiers with feature comparison",
			"Strong emphasis on CTA buttons (Sign Up, Start Free Trial)",
		},
		"E-commerce Store": {
			"Product showcase must be visually compelling with clear pricing",
			"Shopping cart and checkout flow should be intuitive",
			"Trust signals (security badges, reviews) prominently displayed",
		},
		"Portfolio": {
			"Visual showcase of work/projects as primary focus",
			"About section highlighting skills and expertise",
			"Easy contact method prominently displayed",
		},
		"Blog":              nil,
		"Corporate Website": nil,
	}

	for _, label := range websiteTypes.labels() {
		t.Run(label, func(t *testing.T) {
			reqs, ok := want[label]
			require.True(t, ok, "no expectation for %q", label)
			assert.Equal(t, reqs, websiteRequirements(label, "", nil))
		})
	}
}

func TestWebsiteAestheticRules(t *testing.T) {
	t.Parallel()

	want := map[string][]string{
		"Modern Clean":                 clean,
		"Portfolio Minimalist (Glass)": minimalist,
		"SaaS Professional":            clean,
		"Minimalist":                   minimalist,
		"Glassmorphism": {
			"Frosted glass effect with backdrop blur on cards/panels",
			"Layered UI elements with transparency and depth",
		},
		"Brutalist": {
			"Bold, unconventional layout breaking traditional grids",
			"High contrast colors and raw, unpolished aesthetic",
		},
		"Playful & Colorful": nil,
	}

	for _, label := range websiteAesthetics.labels() {
		t.Run(label, func(t *testing.T) {
			reqs, ok := want[label]
			require.True(t, ok, "no expectation for %q", label)
			assert.Equal(t, reqs, websiteRequirements("Blog", label, nil))
		})
	}
}

func TestWebsiteComponentTagRules(t *testing.T) {
	t.Parallel()

	want := map[string]string{
		"Pricing Table": "Pricing table with clear feature comparison and highlighted recommended plan",
		"Testimonials":  "Testimonials with photos, names, and roles for authenticity",
		"FAQ":           "FAQ section with collapsible accordion for easy scanning",
	}

	for _, label := range websiteComponents.labels() {
		t.Run(label, func(t *testing.T) {
			got := websiteRequirements("Blog", "Playful & Colorful", []string{label})
			if line, ok := want[label]; ok {
				assert.Equal(t, []string{line}, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}

	t.Run("all_in_rule_order", func(t *testing.T) {
		got := websiteRequirements("Blog", "Playful & Colorful", []string{"FAQ", "Testimonials", "Pricing Table"})
		assert.Equal(t, []string{want["Pricing Table"], want["Testimonials"], want["FAQ"]}, got)
	})
}

func TestDesktopPlatformBlocks(t *testing.T) {
	t.Parallel()

	want := map[string][]string{
		"macOS": {
			"- Follow macOS Human Interface Guidelines",
			"- Use SF Pro font family",
			"- Traffic light window controls (red, yellow, green) on left",
			"- Unified title bar and toolbar",
			"- macOS-style preferences window",
			"- Native menu bar integration",
		},
		"Windows": {
			"- Follow Microsoft Fluent Design System",
			"- Use Segoe UI font family",
			"- Window controls (minimize, maximize, close) on right",
			"- Ribbon or command bar interface options",
			"- Windows-style settings panel",
			"- System tray integration",
		},
		"Linux": {
			"- Follow GNOME or KDE Human Interface Guidelines",
			"- Use system font (Ubuntu, Roboto, etc.)",
			"- Flexible window controls positioning",
			"- GTK+ or Qt component styling",
			"- Native desktop environment integration",
		},
		"Cross-platform (Electron)": {
			"- Create platform-agnostic design using Electron",
			"- Custom title bar with cross-platform window controls",
			"- Consistent experience across macOS, Windows, and Linux",
			"- Use web-safe fonts or bundled fonts",
			"- Electron-specific optimizations (frameless window, etc.)",
		},
	}

	e := New()
	for _, label := range desktopPlatforms.labels() {
		t.Run(label, func(t *testing.T) {
			lines, ok := want[label]
			require.True(t, ok, "no expectation for %q", label)

			cfg, err := e.DefaultConfig(models.UITypeDesktopApp)
			require.NoError(t, err)
			cfg["platform"] = label

			out, err := e.Generate(models.UITypeDesktopApp, cfg, models.DefaultTechStack)
			require.NoError(t, err)
			assert.Contains(t, out, "## PLATFORM GUIDELINES\n"+strings.Join(lines, "\n")+"\n\n## USER EXPERIENCE")
			assert.Contains(t, out, "for "+label+" with moderate interface complexity")
			assert.Contains(t, out, "- Typography and color scheme for dark theme")
		})
	}
}

func TestMobilePlatformTags(t *testing.T) {
	t.Parallel()

	want := map[string]string{
		"iOS":            "mobileApp.guidelines.ios",
		"Android":        "mobileApp.guidelines.android",
		"Cross-platform": "mobileApp.guidelines.crossPlatform",
	}
	for _, label := range mobilePlatforms.labels() {
		name, ok := want[label]
		require.True(t, ok, "no expectation for %q", label)
		assert.Equal(t, name, platformGuidelines(label), label)
	}
	assert.Equal(t, "mobileApp.guidelines.crossPlatform", platformGuidelines("Windows Phone"))
}

func TestComponentLibraryTags(t *testing.T) {
	t.Parallel()

	variants := map[string]string{
		"Basic (1-2 variants)":        "Single primary variant",
		"Standard (3-4 variants)":     "Primary, secondary, and outline/ghost variants",
		"Comprehensive (5+ variants)": "Primary, secondary, outline, ghost, link, and specialized variants (danger, success, etc.)",
	}
	for _, label := range componentVariants.labels() {
		guidance, ok := variants[label]
		require.True(t, ok, "no expectation for %q", label)
		assert.Equal(t, guidance, variantGuidance(label), label)
	}

	for _, label := range componentFeatures.labels() {
		t.Run(label, func(t *testing.T) {
			features := []string{label}
			assert.Equal(t, label == "Dark Mode Support", componentFeatures.anyTagged(features, "darkMode"))
			assert.Equal(t, label == "Accessibility (WCAG 2.1)", componentFeatures.anyTagged(features, "accessibility"))
		})
	}
}
