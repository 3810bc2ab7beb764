package template

import (
	"github.com/modu-ai/uiprompt/internal/designsystem"
	"github.com/modu-ai/uiprompt/pkg/models"
)

var websiteTypes = choices{
	{"Landing Page", "landing"},
	{"SaaS Marketing Site", "saas"},
	{"E-commerce Store", "ecommerce"},
	{"Portfolio", "portfolio"},
	{"Blog", ""},
	{"Corporate Website", ""},
}

var websiteAesthetics = choices{
	{"Modern Clean", "clean"},
	{"Portfolio Minimalist (Glass)", "minimalist"},
	{"SaaS Professional", "clean"},
	{"Minimalist", "minimalist"},
	{"Glassmorphism", "glass"},
	{"Brutalist", "brutalist"},
	{"Playful & Colorful", ""},
}

var websiteComponents = choices{
	{"Navigation Bar", ""},
	{"Hero Section", ""},
	{"Features Grid", ""},
	{"Pricing Table", "pricing"},
	{"Testimonials", "testimonials"},
	{"FAQ", "faq"},
	{"Contact Form", ""},
	{"Newsletter Signup", ""},
	{"Team Section", ""},
	{"Blog Preview", ""},
	{"Call to Action", ""},
	{"Footer", ""},
}

func websiteSchema() models.UITypeSchema {
	return models.UITypeSchema{
		Type:        models.UITypeWebsite,
		Label:       "Website",
		Icon:        "Globe",
		Description: "Landing pages, marketing sites, portfolios and online stores",
		Options: []models.ConfigOption{
			selectOption("websiteType", "Website Type", websiteTypes.labels(), "Landing Page",
				"The primary purpose of the website"),
			selectOption("layout", "Layout",
				[]string{"Single Page", "Multi-Page", "Bento Grid", "Split Screen", "Asymmetric"},
				"Single Page", ""),
			selectOption("aestheticStyle", "Aesthetic Style", websiteAesthetics.labels(), "Modern Clean",
				"Visual direction; some styles ship a full design system"),
			multiSelectOption("components", "Components", websiteComponents.labels(),
				[]string{"Navigation Bar", "Hero Section", "Features Grid", "Call to Action", "Footer"},
				"Sections to include on the page"),
			selectOption("copywritingTone", "Copywriting Tone",
				[]string{"Professional", "Friendly", "Persuasive", "Playful", "Minimal", "Technical"},
				"Professional", ""),
			selectOption("interactivity", "Interactivity",
				[]string{"Static", "Subtle Animations", "Interactive Elements", "Rich Animations"},
				"Subtle Animations", ""),
			selectOption("colorScheme", "Color Theme",
				[]string{"Light", "Dark", "Auto (System)", "Brand Colors"},
				"Light", ""),
		},
	}
}

// websiteData feeds prompts/website.md.tmpl.
type websiteData struct {
	TechStack       models.TechStack
	React           bool
	WebsiteType     string
	AestheticStyle  string
	Layout          string
	ColorScheme     string
	Components      []string
	Interactivity   string
	CopywritingTone string
	Requirements    []string
	DesignSystem    string
}

// designSystemData feeds the design system blocks of the website prompt.
type designSystemData struct {
	Bundle designsystem.Bundle
	React  bool
}

type websiteGenerator struct {
	r Renderer
}

func newWebsiteGenerator(r Renderer) Generator {
	return &websiteGenerator{r: r}
}

// Generate implements Generator.
func (g *websiteGenerator) Generate(cfg models.Configuration, stack models.TechStack) (string, error) {
	components := cfg.List("components")
	aesthetic := cfg.String("aestheticStyle")

	guidelines, err := g.designSystemGuidelines(aesthetic, stack)
	if err != nil {
		return "", err
	}

	return g.r.Render("website", websiteData{
		TechStack:       stack,
		React:           stack == models.TechStackReactTailwind,
		WebsiteType:     cfg.String("websiteType"),
		AestheticStyle:  aesthetic,
		Layout:          cfg.String("layout"),
		ColorScheme:     cfg.String("colorScheme"),
		Components:      components,
		Interactivity:   cfg.String("interactivity"),
		CopywritingTone: cfg.String("copywritingTone"),
		Requirements:    websiteRequirements(cfg.String("websiteType"), aesthetic, components),
		DesignSystem:    guidelines,
	})
}

// designSystemGuidelines renders the design system section keyed off the
// aesthetic style. Styles without a design system yield "".
func (g *websiteGenerator) designSystemGuidelines(aesthetic string, stack models.TechStack) (string, error) {
	id, ok := designsystem.MapAesthetic(aesthetic)
	if !ok {
		return "", nil
	}
	bundle, ok := designsystem.Get(id)
	if !ok {
		return "", nil
	}

	data := designSystemData{Bundle: bundle, React: stack == models.TechStackReactTailwind}
	if id == designsystem.PortfolioMinimalistGlass {
		return g.r.Render("website.designSystem.glass", data)
	}
	return g.r.Render("website.designSystem.basic", data)
}

func websiteRequirements(websiteType, aesthetic string, components []string) []string {
	var reqs []string

	switch websiteTypes.tagOf(websiteType) {
	case "ecommerce":
		reqs = append(reqs,
			"Product showcase must be visually compelling with clear pricing",
			"Shopping cart and checkout flow should be intuitive",
			"Trust signals (security badges, reviews) prominently displayed",
		)
	case "saas":
		reqs = append(reqs,
			"Benefits-driven messaging highlighting key features",
			"Clear pricing tiers with feature comparison",
			"Strong emphasis on CTA buttons (Sign Up, Start Free Trial)",
		)
	case "portfolio":
		reqs = append(reqs,
			"Visual showcase of work/projects as primary focus",
			"About section highlighting skills and expertise",
			"Easy contact method prominently displayed",
		)
	case "landing":
		reqs = append(reqs,
			"Single, focused conversion goal with clear CTAs",
			"Persuasive copy emphasizing benefits and outcomes",
			"Social proof (testimonials, stats, logos) for credibility",
		)
	}

	switch websiteAesthetics.tagOf(aesthetic) {
	case "clean":
		reqs = append(reqs,
			"Ample whitespace with clean, uncluttered layouts",
			"Professional color palette (blues, grays with accent colors)",
		)
	case "minimalist":
		reqs = append(reqs,
			"Extreme simplicity with focus on essential elements only",
			"Limited color palette (2-3 colors maximum)",
		)
	case "glass":
		reqs = append(reqs,
			"Frosted glass effect with backdrop blur on cards/panels",
			"Layered UI elements with transparency and depth",
		)
	case "brutalist":
		reqs = append(reqs,
			"Bold, unconventional layout breaking traditional grids",
			"High contrast colors and raw, unpolished aesthetic",
		)
	}

	if websiteComponents.anyTagged(components, "pricing") {
		reqs = append(reqs, "Pricing table with clear feature comparison and highlighted recommended plan")
	}
	if websiteComponents.anyTagged(components, "testimonials") {
		reqs = append(reqs, "Testimonials with photos, names, and roles for authenticity")
	}
	if websiteComponents.anyTagged(components, "faq") {
		reqs = append(reqs, "FAQ section with collapsible accordion for easy scanning")
	}

	return reqs
}
