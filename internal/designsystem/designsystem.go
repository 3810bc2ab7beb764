// Package designsystem holds the named visual-style presets consulted by
// the website generator. The table is static and read-only.
package designsystem

// Colors holds the color tokens of a design system.
type Colors struct {
	Background string `yaml:"background" json:"background"`
	Foreground string `yaml:"foreground" json:"foreground"`
	Card       string `yaml:"card" json:"card"`
	Border     string `yaml:"border" json:"border"`
	Ring       string `yaml:"ring" json:"ring"`
	Accent     string `yaml:"accent,omitempty" json:"accent,omitempty"`
	Muted      string `yaml:"muted,omitempty" json:"muted,omitempty"`
}

// Typography holds the font stack and type scales.
type Typography struct {
	FontFamily  string   `yaml:"fontFamily" json:"fontFamily"`
	FontSizes   []string `yaml:"fontSizes" json:"fontSizes"`
	FontWeights []string `yaml:"fontWeights" json:"fontWeights"`
	LineHeights []string `yaml:"lineHeights" json:"lineHeights"`
}

// Spacing is a unit plus a numeric scale expressed in that unit.
type Spacing struct {
	Unit  string    `yaml:"unit" json:"unit"`
	Scale []float64 `yaml:"scale" json:"scale"`
}

// BorderRadius is the radius scale.
type BorderRadius struct {
	SM string `yaml:"sm" json:"sm"`
	MD string `yaml:"md" json:"md"`
	LG string `yaml:"lg" json:"lg"`
	XL string `yaml:"xl" json:"xl"`
}

// Effects holds shadow, blur and opacity scales.
type Effects struct {
	Shadows []string  `yaml:"shadows" json:"shadows"`
	Blur    []string  `yaml:"blur" json:"blur"`
	Opacity []float64 `yaml:"opacity" json:"opacity"`
}

// Durations names the three transition speeds.
type Durations struct {
	Fast   string `yaml:"fast" json:"fast"`
	Normal string `yaml:"normal" json:"normal"`
	Slow   string `yaml:"slow" json:"slow"`
}

// Transitions holds durations and easing curves.
type Transitions struct {
	Duration Durations `yaml:"duration" json:"duration"`
	Easing   []string  `yaml:"easing" json:"easing"`
}

// Patterns describes how the main component families should look.
type Patterns struct {
	Navigation string `yaml:"navigation" json:"navigation"`
	Buttons    string `yaml:"buttons" json:"buttons"`
	Cards      string `yaml:"cards" json:"cards"`
	Forms      string `yaml:"forms" json:"forms"`
}

// Bundle is a complete design system preset.
type Bundle struct {
	ID           string       `yaml:"id" json:"id"`
	Name         string       `yaml:"name" json:"name"`
	Description  string       `yaml:"description" json:"description"`
	Colors       Colors       `yaml:"colors" json:"colors"`
	Typography   Typography   `yaml:"typography" json:"typography"`
	Spacing      Spacing      `yaml:"spacing" json:"spacing"`
	BorderRadius BorderRadius `yaml:"borderRadius" json:"borderRadius"`
	Effects      Effects      `yaml:"effects" json:"effects"`
	Transitions  Transitions  `yaml:"transitions" json:"transitions"`
	Patterns     Patterns     `yaml:"patterns" json:"patterns"`
	Features     []string     `yaml:"features" json:"features"`
}

// Design system identifiers.
const (
	PortfolioMinimalistGlass = "portfolio-minimalist-glass"
	ModernClean              = "modern-clean"
)

// order fixes the iteration order of Names.
var order = []string{PortfolioMinimalistGlass, ModernClean}

var registry = map[string]Bundle{
	PortfolioMinimalistGlass: portfolioMinimalistGlass,
	ModernClean:              modernClean,
}

// aestheticIndex maps the human-readable aesthetic style label to a design
// system id.
var aestheticIndex = map[string]string{
	"Portfolio Minimalist (Glass)": PortfolioMinimalistGlass,
	"Modern Clean":                 ModernClean,
}

// Get returns the design system with the given id. The returned bundle is a
// copy; the second value is false when no such design system exists.
func Get(id string) (Bundle, bool) {
	b, ok := registry[id]
	if !ok {
		return Bundle{}, false
	}
	return b.clone(), true
}

// MapAesthetic resolves an aesthetic style label to a design system id.
func MapAesthetic(label string) (string, bool) {
	id, ok := aestheticIndex[label]
	return id, ok
}

// Names returns the display names of all design systems.
func Names() []string {
	names := make([]string, 0, len(order))
	for _, id := range order {
		names = append(names, registry[id].Name)
	}
	return names
}

func (b Bundle) clone() Bundle {
	out := b
	out.Typography.FontSizes = append([]string(nil), b.Typography.FontSizes...)
	out.Typography.FontWeights = append([]string(nil), b.Typography.FontWeights...)
	out.Typography.LineHeights = append([]string(nil), b.Typography.LineHeights...)
	out.Spacing.Scale = append([]float64(nil), b.Spacing.Scale...)
	out.Effects.Shadows = append([]string(nil), b.Effects.Shadows...)
	out.Effects.Blur = append([]string(nil), b.Effects.Blur...)
	out.Effects.Opacity = append([]float64(nil), b.Effects.Opacity...)
	out.Transitions.Easing = append([]string(nil), b.Transitions.Easing...)
	out.Features = append([]string(nil), b.Features...)
	return out
}
