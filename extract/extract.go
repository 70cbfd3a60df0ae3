// Package extract turns raw HTML into clean plain text suitable for
// summarization prompts.
package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"

	"webresearch/textutil"
)

const defaultMaxLength = 5000

// Readability extracts the readable portion of a page, strips markup, and
// normalizes whitespace.
type Readability struct {
	maxLength int
}

// Option configures a Readability extractor.
type Option func(*Readability)

// WithMaxLength caps the length of extracted text in runes.
func WithMaxLength(n int) Option {
	return func(e *Readability) {
		if n > 0 {
			e.maxLength = n
		}
	}
}

// New creates an extractor.
func New(opts ...Option) *Readability {
	e := &Readability{maxLength: defaultMaxLength}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML and returns sanitized plain text, truncated to the
// configured maximum length. sourceURL is used to resolve relative links
// during parsing and may be empty.
func (e *Readability) Extract(rawHTML, sourceURL string) (string, error) {
	pageURL, err := url.Parse(sourceURL)
	if err != nil {
		pageURL = &url.URL{}
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return "", fmt.Errorf("parse content: %w", err)
	}

	text := textutil.Sanitize(article.TextContent)
	return textutil.Truncate(text, e.maxLength), nil
}
