package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// templateFuncMap provides custom functions available in all prompt templates.
var templateFuncMap = template.FuncMap{
	// bullets renders one "- item" line per element, joined by newlines.
	"bullets": bullets,
	// join concatenates list items with ", ".
	"join": func(items []string) string {
		return strings.Join(items, ", ")
	},
	// lower lowercases display labels embedded in prose.
	"lower": func(s string) string {
		return lowerCaser.String(s)
	},
	// scale renders a numeric scale with its unit appended to every step.
	"scale": func(steps []float64, unit string) string {
		parts := make([]string, len(steps))
		for i, s := range steps {
			parts[i] = strconv.FormatFloat(s, 'f', -1, 64) + unit
		}
		return strings.Join(parts, ", ")
	},
}

// foreignTokenPattern detects template-literal interpolations such as
// ${techStack} left behind in prompt template sources.
var foreignTokenPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_.]*\}`)

// Renderer renders named prompt templates.
type Renderer interface {
	// Render executes the named template with the given data. Returns
	// ErrTemplateNotFound for an unknown name and ErrMissingTemplateKey if
	// the data lacks a referenced key.
	Render(name string, data any) (string, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	tmpl *template.Template
}

// NewRenderer parses every file in fsys matching pattern with strict mode
// (missingkey=error). Each file declares its prompts as {{define}} blocks.
// Sources carrying ${...} tokens are rejected with ErrUnexpandedToken.
func NewRenderer(fsys fs.FS, pattern string) (Renderer, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no files match %q", ErrTemplateNotFound, pattern)
	}

	root := template.New("prompts").Funcs(templateFuncMap).Option("missingkey=error")
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		if loc := foreignTokenPattern.Find(content); loc != nil {
			return nil, fmt.Errorf("%w: %s: found %q", ErrUnexpandedToken, name, string(loc))
		}
		if _, err := root.New(name).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("template parse %q: %w", name, err)
		}
	}

	return &renderer{tmpl: root}, nil
}

// Render executes a defined template by name.
func (r *renderer) Render(name string, data any) (string, error) {
	t := r.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}
	return buf.String(), nil
}

// bullets renders each item as a markdown bullet line.
func bullets(items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}
