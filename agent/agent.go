// Package agent provides a high-level facade over the research pipeline:
// topic research, batch URL summarization, and report formatting.
package agent

import (
	"context"
	"sync"
	"time"

	"webresearch/config"
	"webresearch/extract"
	"webresearch/fetch"
	"webresearch/llm"
	"webresearch/researcher"
)

const defaultNumSources = 5

// BatchResult is returned by Summarize and carries one Finding per
// requested URL.
type BatchResult struct {
	Status      string                        `json:"status"`
	Summaries   map[string]researcher.Finding `json:"summaries"`
	SourceCount int                           `json:"sources_count"`
}

// Agent wraps a Researcher with a simpler call surface.
type Agent struct {
	cfg        *config.Config
	researcher *researcher.Researcher

	mu           sync.Mutex
	lastResearch *researcher.Record
}

// Option overrides a collaborator, mainly for testing.
type Option func(*deps)

type deps struct {
	client    researcher.CompletionClient
	fetcher   researcher.Fetcher
	extractor researcher.Extractor
}

// WithClient replaces the language-model client.
func WithClient(c researcher.CompletionClient) Option {
	return func(d *deps) { d.client = c }
}

// WithFetcher replaces the HTTP fetcher.
func WithFetcher(f researcher.Fetcher) Option {
	return func(d *deps) { d.fetcher = f }
}

// WithExtractor replaces the HTML-to-text extractor.
func WithExtractor(e researcher.Extractor) Option {
	return func(d *deps) { d.extractor = e }
}

// New builds an Agent from cfg. By default it talks to the Anthropic API
// and the real network; options substitute collaborators.
func New(cfg *config.Config, opts ...Option) *Agent {
	d := &deps{}
	for _, opt := range opts {
		opt(d)
	}
	if d.client == nil {
		d.client = llm.NewAnthropic(cfg.APIKey, llm.WithModel(cfg.Model))
	}
	if d.fetcher == nil {
		d.fetcher = fetch.New(fetch.WithTimeout(time.Duration(cfg.TimeoutSecs) * time.Second))
	}
	if d.extractor == nil {
		d.extractor = extract.New()
	}

	researcherOpts := []researcher.Option{
		researcher.WithCacheTTL(time.Duration(cfg.CacheTTLSecs) * time.Second),
	}
	if !cfg.CacheEnabled {
		researcherOpts = []researcher.Option{researcher.WithoutCache()}
	}

	return &Agent{
		cfg:        cfg,
		researcher: researcher.New(d.client, d.fetcher, d.extractor, researcherOpts...),
	}
}

// Research conducts topic research over numSources candidate URLs.
// numSources defaults to five and is clamped to the configured maximum.
func (a *Agent) Research(ctx context.Context, topic string, numSources int) researcher.Record {
	if numSources <= 0 {
		numSources = defaultNumSources
	}
	if numSources > a.cfg.MaxSearchResults {
		numSources = a.cfg.MaxSearchResults
	}

	record := a.researcher.ResearchTopic(ctx, topic, numSources)

	a.mu.Lock()
	a.lastResearch = &record
	a.mu.Unlock()

	return record
}

// Summarize runs the fetch-summarize pipeline once per URL, independently
// and sequentially. One URL's failure does not affect the others.
func (a *Agent) Summarize(ctx context.Context, urls []string) BatchResult {
	summaries := make(map[string]researcher.Finding, len(urls))
	for _, url := range urls {
		summaries[url] = a.researcher.FetchAndSummarize(ctx, url)
	}
	return BatchResult{
		Status:      researcher.StatusSuccess,
		Summaries:   summaries,
		SourceCount: len(urls),
	}
}

// Sources returns the URLs successfully processed so far.
func (a *Agent) Sources() []string {
	return a.researcher.Sources()
}

// History returns all recorded research runs.
func (a *Agent) History() []researcher.Record {
	return a.researcher.History()
}

// ClearHistory resets history, sources, the cache, and the last research.
func (a *Agent) ClearHistory() {
	a.researcher.ClearHistory()

	a.mu.Lock()
	a.lastResearch = nil
	a.mu.Unlock()
}
