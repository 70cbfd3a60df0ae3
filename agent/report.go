package agent

import (
	"fmt"
	"strings"

	"webresearch/researcher"
	"webresearch/textutil"
)

// Report renders the last research run as a markdown report with analysis,
// per-source findings, and a formatted source list.
func (a *Agent) Report() string {
	a.mu.Lock()
	last := a.lastResearch
	a.mu.Unlock()

	if last == nil {
		return "No research conducted yet."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Research Report: %s\n\n", last.Topic)

	sb.WriteString("## Analysis\n\n")
	if last.Analysis != "" {
		sb.WriteString(last.Analysis)
	} else {
		sb.WriteString("No analysis available")
	}
	sb.WriteString("\n\n")

	sb.WriteString("## Findings\n\n")
	for i, finding := range last.Findings {
		if finding.Status != researcher.StatusSuccess {
			continue
		}
		fmt.Fprintf(&sb, "### Source %d\n", i+1)
		fmt.Fprintf(&sb, "**URL:** %s\n\n", finding.URL)
		fmt.Fprintf(&sb, "**Summary:** %s\n\n", finding.Summary)
	}

	sb.WriteString(textutil.FormatSources(a.Sources()))

	return sb.String()
}
