package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// DefaultWrapWidth is the word-wrap width used when the terminal size is unknown.
const DefaultWrapWidth = 100

// RenderMarkdown renders a Markdown prompt for the terminal with glamour.
// A width of zero or less uses DefaultWrapWidth.
func RenderMarkdown(theme *Theme, markdown string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Preview shows a rendered prompt. On an interactive terminal it opens a
// scrollable pager; otherwise the raw Markdown is written to w unchanged so
// it can be piped.
func Preview(theme *Theme, hm *HeadlessManager, w io.Writer, title, markdown string) error {
	if !hm.IsInteractiveOutput(w) {
		_, err := io.WriteString(w, markdown)
		if err == nil && !strings.HasSuffix(markdown, "\n") {
			_, err = io.WriteString(w, "\n")
		}
		return err
	}

	rendered, err := RenderMarkdown(theme, markdown, DefaultWrapWidth)
	if err != nil {
		return err
	}
	p := tea.NewProgram(newPagerModel(theme, title, rendered), tea.WithOutput(w), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}
	return nil
}

// pagerChrome is the number of lines taken by the header and footer.
const pagerChrome = 4

// pagerModel is the bubbletea Model behind Preview.
type pagerModel struct {
	theme    *Theme
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(theme *Theme, title, content string) pagerModel {
	return pagerModel{theme: theme, title: title, content: content}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-pagerChrome, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	header := m.theme.Primary().Bold(true).Render(m.title)
	footer := m.theme.Muted().Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll  q quit", m.viewport.ScrollPercent()*100))
	return header + "\n\n" + m.viewport.View() + "\n" + footer
}
