// Package textutil contains text helpers shared by the research pipeline:
// content hashing, URL checks, chunking, and source formatting.
package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Hash returns the hex-encoded sha256 digest of content. Used as the
// cache key for per-URL results.
func Hash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// IsValidURL reports whether s starts with an http:// or https:// prefix.
// No deeper well-formedness checking is done.
func IsValidURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Domain returns the host part of rawURL, or "" if it cannot be parsed.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

var (
	specialChars = regexp.MustCompile(`[^\w\s.,!?-]`)
)

// Sanitize collapses whitespace runs into single spaces and strips
// characters outside word characters and basic punctuation.
func Sanitize(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	text = specialChars.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Chunk splits text into overlapping rune windows of at most size runes,
// advancing size-overlap runes per step. Windows that are pure whitespace
// are dropped. The overlap keeps context across chunk boundaries for the
// summarizer. Overlap must be smaller than size; out-of-range values fall
// back to no overlap.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 {
		return nil
	}
	step := size - overlap
	if step <= 0 {
		step = size
	}

	runes := []rune(text)
	var chunks []string
	for i := 0; i < len(runes); i += step {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunk := string(runes[i:end])
		if strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// FormatSources renders the source list as a markdown section, one
// numbered "[domain](url)" line per source. Empty input yields "".
func FormatSources(sources []string) string {
	if len(sources) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("## Sources\n\n")
	for i, source := range sources {
		fmt.Fprintf(&sb, "%d. [%s](%s)\n", i+1, Domain(source), source)
	}
	return sb.String()
}
