package designsystem

// portfolioMinimalistGlass is a minimalist portfolio design with glass morphism.
var portfolioMinimalistGlass = Bundle{
	ID:          PortfolioMinimalistGlass,
	Name:        "Portfolio Minimalist (Glass)",
	Description: "Minimalist portfolio design with glass morphism, sophisticated transparency, and smooth micro-interactions",
	Colors: Colors{
		Background: "hsl(0 0% 100%)",
		Foreground: "hsl(0 0% 3.9%)",
		Card:       "hsl(0 0% 100%)",
		Border:     "hsl(0 0% 89.8%)",
		Ring:       "hsl(0 0% 3.9%)",
		Muted:      "hsl(0 0% 96.1%)",
		Accent:     "hsl(0 0% 96.1%)",
	},
	Typography: Typography{
		FontFamily:  "system-ui, -apple-system, sans-serif",
		FontSizes:   []string{"0.75rem", "0.875rem", "1rem", "1.125rem", "1.25rem", "1.5rem", "2rem"},
		FontWeights: []string{"400", "500", "600", "700"},
		LineHeights: []string{"1", "1.25", "1.5", "1.75", "2"},
	},
	Spacing: Spacing{
		Unit:  "rem",
		Scale: []float64{0, 0.125, 0.25, 0.375, 0.5, 0.75, 1, 1.5, 2, 3, 4, 6, 8},
	},
	BorderRadius: BorderRadius{
		SM: "0.375rem",
		MD: "0.5rem",
		LG: "0.75rem",
		XL: "1rem",
	},
	Effects: Effects{
		Shadows: []string{
			"0 1px 2px 0 rgb(0 0 0 / 0.05)",
			"0 4px 6px -1px rgb(0 0 0 / 0.1)",
			"0 10px 15px -3px rgb(0 0 0 / 0.1)",
		},
		Blur:    []string{"4px", "8px", "12px", "16px", "24px"},
		Opacity: []float64{0, 0.5, 0.7, 0.75, 0.8, 0.9, 1},
	},
	Transitions: Transitions{
		Duration: Durations{Fast: "100ms", Normal: "200ms", Slow: "350ms"},
		Easing: []string{
			"cubic-bezier(0.25, 0.46, 0.45, 0.94)", // ease-out-quad
			"cubic-bezier(0.4, 0, 0.2, 1)",         // ease-in-out
		},
	},
	Patterns: Patterns{
		Navigation: "Fixed translucent navbar with backdrop blur (16px), 75% opacity, rounded corners, centered layout",
		Buttons:    "Ghost buttons with smooth transitions (100ms), hover state changes opacity 70% to 100%, rounded-md",
		Cards:      "Rounded corners (lg), subtle borders with 80% opacity, optional glass morphism with backdrop blur",
		Forms:      "Clean inputs with focus rings, subtle borders, smooth transitions",
	},
	Features: []string{
		"Glass morphism effect with backdrop blur",
		"Translucent backgrounds (75% opacity)",
		"OKLAB color-mix for smooth transparency",
		"Micro-interactions with 100-350ms transitions",
		"Dark mode support via CSS custom properties",
		"Accessibility-first with proper focus states",
		"Mobile-first responsive design",
		"Professional typography hierarchy",
	},
}

// modernClean is a contemporary design with solid colors.
var modernClean = Bundle{
	ID:          ModernClean,
	Name:        "Modern Clean",
	Description: "Contemporary design with clean lines, solid colors, and clear hierarchy",
	Colors: Colors{
		Background: "hsl(0 0% 100%)",
		Foreground: "hsl(222.2 84% 4.9%)",
		Card:       "hsl(0 0% 100%)",
		Border:     "hsl(214.3 31.8% 91.4%)",
		Ring:       "hsl(222.2 84% 4.9%)",
		Accent:     "hsl(210 40% 96.1%)",
		Muted:      "hsl(210 40% 96.1%)",
	},
	Typography: Typography{
		FontFamily:  "Inter, system-ui, sans-serif",
		FontSizes:   []string{"0.875rem", "1rem", "1.125rem", "1.25rem", "1.5rem", "2rem", "3rem"},
		FontWeights: []string{"400", "500", "600", "700", "800"},
		LineHeights: []string{"1.25", "1.5", "1.75", "2"},
	},
	Spacing: Spacing{
		Unit:  "rem",
		Scale: []float64{0, 0.25, 0.5, 0.75, 1, 1.25, 1.5, 2, 2.5, 3, 4, 5, 6, 8},
	},
	BorderRadius: BorderRadius{
		SM: "0.25rem",
		MD: "0.375rem",
		LG: "0.5rem",
		XL: "0.75rem",
	},
	Effects: Effects{
		Shadows: []string{
			"0 1px 3px 0 rgb(0 0 0 / 0.1)",
			"0 4px 6px -1px rgb(0 0 0 / 0.1)",
			"0 20px 25px -5px rgb(0 0 0 / 0.1)",
		},
		Blur:    []string{"2px", "4px", "8px", "16px"},
		Opacity: []float64{0, 0.5, 0.75, 1},
	},
	Transitions: Transitions{
		Duration: Durations{Fast: "150ms", Normal: "300ms", Slow: "500ms"},
		Easing:   []string{"ease-in-out", "cubic-bezier(0.4, 0, 0.2, 1)"},
	},
	Patterns: Patterns{
		Navigation: "Solid background navbar with subtle shadow, clean layout",
		Buttons:    "Solid buttons with hover effects, clear CTAs",
		Cards:      "Clean cards with subtle shadows and borders",
		Forms:      "Standard form inputs with clear labels",
	},
	Features: []string{
		"Clean and contemporary aesthetic",
		"Solid colors with clear contrast",
		"Subtle shadows for depth",
		"Clear visual hierarchy",
		"Responsive grid layouts",
		"Standard transitions",
	},
}
