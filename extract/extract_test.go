package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Test Article</title>
<style>body { color: red; }</style>
<script>console.log("tracking");</script>
</head>
<body>
<article>
<h1>Test Article Title</h1>
<p>This is the main content of the article. It contains important information that should be extracted for the summarizer.</p>
<p>Second paragraph with more details about the topic under discussion.</p>
</article>
</body>
</html>`

func TestExtract(t *testing.T) {
	e := New()

	text, err := e.Extract(articleHTML, "https://example.com/post")
	require.NoError(t, err)

	assert.Contains(t, text, "main content of the article")
	assert.Contains(t, text, "Second paragraph")
	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "color red")
	assert.NotContains(t, text, "<p>")
}

func TestExtractNormalizesWhitespace(t *testing.T) {
	html := `<html><body><article><p>spaced     out

	text</p><p>` + strings.Repeat("word ", 50) + `</p></article></body></html>`

	e := New()
	text, err := e.Extract(html, "https://example.com")
	require.NoError(t, err)

	assert.Contains(t, text, "spaced out text")
	assert.NotContains(t, text, "  ")
}

func TestExtractMaxLength(t *testing.T) {
	html := `<html><body><article><p>` + strings.Repeat("content here ", 200) + `</p></article></body></html>`

	e := New(WithMaxLength(100))
	text, err := e.Extract(html, "https://example.com")
	require.NoError(t, err)

	assert.LessOrEqual(t, len([]rune(text)), 100)
	assert.NotEmpty(t, text)
}

func TestExtractEmptyPage(t *testing.T) {
	e := New()

	text, err := e.Extract("<html><body></body></html>", "https://example.com")
	require.NoError(t, err)
	assert.Empty(t, text)
}
