package researcher

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Search asks the model to propose numResults candidate URLs for the query.
// The model is not performing a real search; it generates plausible URLs
// from its training distribution, which is a known fidelity limitation.
// A malformed reply is a normal, expected error path.
func (r *Researcher) Search(ctx context.Context, query string, numResults int) ([]Candidate, error) {
	prompt := fmt.Sprintf(`Generate %d relevant URLs for the following search query:

Query: %s

Return a JSON list of URLs. Each URL should be realistic and relevant to the query.
Format: [{"url": "https://...", "title": "..."}, ...]

Only return the JSON list, no other text.`, numResults, query)

	reply, err := r.client.Complete(ctx, prompt, searchMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("search completion: %w", err)
	}

	var candidates []Candidate
	if err := json.Unmarshal([]byte(stripMarkdownCodeBlock(reply)), &candidates); err != nil {
		return nil, fmt.Errorf("parse search results: %w", err)
	}
	return candidates, nil
}

func summaryPrompt(chunk string) string {
	return fmt.Sprintf(`Please provide a concise summary of the following content:

%s

Summary should be 2-3 sentences max.`, chunk)
}

func analysisPrompt(topic string, summaries []string) string {
	return fmt.Sprintf(`Based on the following research findings about %q, provide a comprehensive analysis:

%s

Please provide:
1. Key insights and trends
2. Main takeaways
3. Important considerations`, topic, strings.Join(summaries, "\n\n"))
}

func joinSummaries(summaries []string) string {
	return strings.Join(summaries, " ")
}

var codeBlockRegex = regexp.MustCompile("(?s)^\\s*```(?:json)?\\s*(.+?)\\s*```\\s*$")

// stripMarkdownCodeBlock unwraps replies the model fenced in ``` blocks.
func stripMarkdownCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if matches := codeBlockRegex.FindStringSubmatch(s); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return s
}
