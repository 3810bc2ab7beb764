package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/uiprompt/pkg/models"
)

var exportTime = time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

func TestTextAndMarkdown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Act as an expert.", string(Text("Act as an expert.")))
	assert.Equal(t, "# UI Design Prompt\n\nAct as an expert.", string(Markdown("Act as an expert.")))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	cfg := models.Configuration{"layout": "Bento Grid", "features": []string{"Search"}}
	data, err := JSON(models.UITypeDashboard, cfg, "prompt body", exportTime)
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n  \"uiType\": \"dashboard\"")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "dashboard", doc["uiType"])
	assert.Equal(t, "prompt body", doc["prompt"])
	assert.Equal(t, "2026-03-14T09:26:53.589Z", doc["exportedAt"])
	assert.Equal(t, map[string]any{"layout": "Bento Grid", "features": []any{"Search"}}, doc["config"])
}

func TestJSONNilConfig(t *testing.T) {
	t.Parallel()

	data, err := JSON(models.UITypeWebsite, nil, "", exportTime)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"config": {}`)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		want     Format
		filename string
	}{
		{"text", FormatText, "prompt.txt"},
		{"TXT", FormatText, "prompt.txt"},
		{"md", FormatMarkdown, "prompt.md"},
		{"markdown", FormatMarkdown, "prompt.md"},
		{" json ", FormatJSON, "config.json"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.filename, got.DefaultFilename())
		})
	}

	_, err := ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRender(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		data, err := Render(f, models.UITypeWebsite, models.Configuration{}, "p", exportTime)
		require.NoError(t, err, "format %s", f)
		assert.NotEmpty(t, data)
	}

	_, err := Render("pdf", models.UITypeWebsite, nil, "p", exportTime)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "prompt.md")
	require.NoError(t, WriteFile(path, Markdown("hello")))
	require.NoError(t, WriteFile(path, Markdown("hello again")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# UI Design Prompt\n\nhello again", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
