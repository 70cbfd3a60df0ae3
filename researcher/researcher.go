// Package researcher implements the fetch-summarize-cache pipeline and
// topic-level research orchestration.
package researcher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"webresearch/cache"
	"webresearch/textutil"
)

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const (
	defaultCacheTTL     = time.Hour
	defaultChunkSize    = 3000
	defaultChunkOverlap = 100
	defaultMaxChunks    = 3

	previewLength = 500

	searchMaxTokens   = 1000
	summaryMaxTokens  = 200
	analysisMaxTokens = 1500
)

const noAnalysisMessage = "Unable to generate analysis from available findings."

// Finding is the per-URL result of the fetch-summarize pipeline. Error
// conditions are carried in the record rather than returned as Go errors,
// so one failed source never aborts a research run.
type Finding struct {
	URL            string `json:"url"`
	Status         string `json:"status"`
	Summary        string `json:"summary,omitempty"`
	ContentPreview string `json:"content_preview,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Candidate is one search result proposed by the model.
type Candidate struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Record is the outcome of one topic research run.
type Record struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Status    string    `json:"status"`
	Findings  []Finding `json:"findings,omitempty"`
	Analysis  string    `json:"analysis,omitempty"`
	Sources   []string  `json:"sources,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}

// CompletionClient issues one model completion call.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Fetcher retrieves raw page content for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor turns raw HTML into clean plain text.
type Extractor interface {
	Extract(rawHTML, sourceURL string) (string, error)
}

// Researcher runs the per-URL pipeline and aggregates topic research.
// It owns the content cache, the de-duplicated source list, and the
// in-memory research history.
//
// Safe for concurrent use.
type Researcher struct {
	client    CompletionClient
	fetcher   Fetcher
	extractor Extractor

	cache *cache.Cache[Finding] // nil when caching is disabled

	chunkSize    int
	chunkOverlap int
	maxChunks    int

	mu      sync.Mutex
	sources []string
	history []Record
}

// Option configures a Researcher.
type Option func(*Researcher)

// WithCacheTTL enables result caching with the given time-to-live.
func WithCacheTTL(ttl time.Duration) Option {
	return func(r *Researcher) {
		r.cache = cache.New[Finding](ttl)
	}
}

// WithoutCache disables result caching.
func WithoutCache() Option {
	return func(r *Researcher) {
		r.cache = nil
	}
}

// WithChunking sets the summarization chunk size and overlap in runes.
func WithChunking(size, overlap int) Option {
	return func(r *Researcher) {
		if size > 0 && overlap >= 0 && overlap < size {
			r.chunkSize = size
			r.chunkOverlap = overlap
		}
	}
}

// WithMaxChunks caps how many chunks are summarized per page.
func WithMaxChunks(n int) Option {
	return func(r *Researcher) {
		if n > 0 {
			r.maxChunks = n
		}
	}
}

// New creates a Researcher. Caching is enabled by default with a one-hour
// TTL; use WithoutCache or WithCacheTTL to change that.
func New(client CompletionClient, fetcher Fetcher, extractor Extractor, opts ...Option) *Researcher {
	r := &Researcher{
		client:       client,
		fetcher:      fetcher,
		extractor:    extractor,
		cache:        cache.New[Finding](defaultCacheTTL),
		chunkSize:    defaultChunkSize,
		chunkOverlap: defaultChunkOverlap,
		maxChunks:    defaultMaxChunks,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FetchAndSummarize runs the pipeline for one URL: validate, cache lookup,
// fetch, extract, summarize, cache store, source tracking. Failures are
// degraded into an error-status Finding; nothing is cached on error paths.
func (r *Researcher) FetchAndSummarize(ctx context.Context, url string) Finding {
	if !textutil.IsValidURL(url) {
		return Finding{
			URL:    url,
			Status: StatusError,
			Error:  "invalid URL: " + url,
		}
	}

	key := textutil.Hash(url)
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			return cached
		}
	}

	rawHTML, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return Finding{
			URL:    url,
			Status: StatusError,
			Error:  "fetch failed: " + err.Error(),
		}
	}

	content, err := r.extractor.Extract(rawHTML, url)
	if err != nil || content == "" {
		return Finding{
			URL:    url,
			Status: StatusError,
			Error:  "no content extracted",
		}
	}

	summary, err := r.summarizeContent(ctx, content)
	if err != nil {
		return Finding{
			URL:    url,
			Status: StatusError,
			Error:  "summarize failed: " + err.Error(),
		}
	}

	finding := Finding{
		URL:            url,
		Status:         StatusSuccess,
		Summary:        summary,
		ContentPreview: textutil.Truncate(content, previewLength),
	}

	if r.cache != nil {
		r.cache.Set(key, finding)
	}
	r.appendSource(url)

	return finding
}

// ResearchTopic asks the model for candidate URLs, runs the pipeline over
// each, and builds an aggregate analysis. An empty or unparseable search
// reply is a terminal failure for the call; records for failed calls are
// not appended to history.
func (r *Researcher) ResearchTopic(ctx context.Context, topic string, numSources int) Record {
	if numSources <= 0 {
		numSources = 5
	}
	slog.Info("starting research", "topic", topic, "sources", numSources)

	candidates, err := r.Search(ctx, topic, numSources)
	if err != nil || len(candidates) == 0 {
		return Record{
			ID:        uuid.NewString(),
			Topic:     topic,
			Status:    StatusError,
			Error:     "no search results found",
			Timestamp: time.Now(),
		}
	}

	var findings []Finding
	for _, c := range candidates {
		if c.URL == "" {
			continue
		}
		finding := r.FetchAndSummarize(ctx, c.URL)
		findings = append(findings, finding)
		slog.Info("processed source", "url", c.URL, "status", finding.Status)
	}

	analysis := r.generateAnalysis(ctx, topic, findings)

	record := Record{
		ID:        uuid.NewString(),
		Topic:     topic,
		Status:    StatusSuccess,
		Findings:  findings,
		Analysis:  analysis,
		Sources:   r.Sources(),
		Timestamp: time.Now(),
	}

	r.mu.Lock()
	r.history = append(r.history, record)
	r.mu.Unlock()

	return record
}

// summarizeContent splits content into overlapping chunks and issues one
// completion call per chunk, joining the replies with single spaces.
func (r *Researcher) summarizeContent(ctx context.Context, content string) (string, error) {
	chunks := textutil.Chunk(content, r.chunkSize, r.chunkOverlap)
	if len(chunks) > r.maxChunks {
		chunks = chunks[:r.maxChunks]
	}

	summaries := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		reply, err := r.client.Complete(ctx, summaryPrompt(chunk), summaryMaxTokens)
		if err != nil {
			return "", err
		}
		if reply != "" {
			summaries = append(summaries, reply)
		}
	}
	return joinSummaries(summaries), nil
}

// generateAnalysis combines successful summaries into one analysis call.
// With no successful findings the model is not called at all. A failed
// analysis call degrades to the fixed fallback message.
func (r *Researcher) generateAnalysis(ctx context.Context, topic string, findings []Finding) string {
	var summaries []string
	for _, f := range findings {
		if f.Status == StatusSuccess {
			summaries = append(summaries, f.Summary)
		}
	}
	if len(summaries) == 0 {
		return noAnalysisMessage
	}

	analysis, err := r.client.Complete(ctx, analysisPrompt(topic, summaries), analysisMaxTokens)
	if err != nil {
		slog.Warn("analysis generation failed", "topic", topic, "error", err)
		return noAnalysisMessage
	}
	return analysis
}

func (r *Researcher) appendSource(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sources {
		if s == url {
			return
		}
	}
	r.sources = append(r.sources, url)
}

// Sources returns a copy of the de-duplicated, insertion-ordered list of
// successfully processed URLs.
func (r *Researcher) Sources() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.sources))
	copy(out, r.sources)
	return out
}

// History returns a copy of the research records accumulated so far.
func (r *Researcher) History() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Record, len(r.history))
	copy(out, r.history)
	return out
}

// ClearHistory drops the research history, the source list, and any
// cached results.
func (r *Researcher) ClearHistory() {
	r.mu.Lock()
	r.history = nil
	r.sources = nil
	r.mu.Unlock()

	if r.cache != nil {
		r.cache.Clear()
	}
}
