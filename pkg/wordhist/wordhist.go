package wordhist

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/wordhist/pkg/wordhist/analytics"
	"github.com/cognicore/wordhist/pkg/wordhist/chart"
	"github.com/cognicore/wordhist/pkg/wordhist/ingest"
	"github.com/cognicore/wordhist/pkg/wordhist/internalerr"
)

// Analyzer turns texts into word-frequency results and renders them
type Analyzer struct {
	pipeline *ingest.Pipeline
	renderer chart.Renderer
	topN     int
	title    string
	entropy  *ulid.MonotonicEntropy
	now      func() time.Time
}

// Options configures an Analyzer. Zero values fall back to the default
// stoplist, a text renderer and analytics.DefaultTopN.
type Options struct {
	Pipeline   *ingest.Pipeline
	Renderer   chart.Renderer
	TopN       int
	ChartTitle string
}

// New creates an Analyzer with the given dependencies
func New(opts Options) *Analyzer {
	a := &Analyzer{
		pipeline: opts.Pipeline,
		renderer: opts.Renderer,
		topN:     opts.TopN,
		title:    opts.ChartTitle,
		entropy:  ulid.Monotonic(rand.Reader, 0),
		now:      time.Now,
	}
	if a.pipeline == nil {
		a.pipeline = ingest.NewPipeline(nil)
	}
	if a.renderer == nil {
		a.renderer = &chart.TextRenderer{}
	}
	if a.topN <= 0 {
		a.topN = analytics.DefaultTopN
	}
	return a
}

// TopN returns the number of records used for TopWords and RenderHistogram.
func (a *Analyzer) TopN() int {
	return a.topN
}

// Stopwords lists the words excluded from results, sorted.
func (a *Analyzer) Stopwords() []string {
	return a.pipeline.Stoplist().All()
}

// Ingest runs text through the pipeline and returns an immutable Text.
// It always succeeds; text without qualifying words yields an empty result.
func (a *Analyzer) Ingest(text string) *Text {
	processed := a.pipeline.Process(text)
	now := a.now()
	return &Text{
		ID:        ulid.MustNew(ulid.Timestamp(now), a.entropy).String(),
		CreatedAt: now,
		source:    text,
		tokens:    processed.Tokens,
		records:   processed.Records,
	}
}

// TopWords returns the configured number of most frequent records.
func (a *Analyzer) TopWords(t *Text) ([]analytics.WordRecord, error) {
	if t == nil {
		return nil, internalerr.ErrNoText
	}
	return t.Top(a.topN), nil
}

// RenderHistogram draws the top words of t as a bar chart.
// It fails with ErrNoText for a nil text and ErrEmptyInput when the text
// produced no records.
func (a *Analyzer) RenderHistogram(w io.Writer, t *Text) error {
	top, err := a.TopWords(t)
	if err != nil {
		return err
	}
	c, err := chart.New(top)
	if err != nil {
		return fmt.Errorf("render histogram: %w", err)
	}
	c.Title = a.title
	if err := a.renderer.Render(w, c); err != nil {
		return fmt.Errorf("render histogram: %w", err)
	}
	return nil
}

// Text is one processed input. Nothing in it changes after Ingest;
// accessors hand out copies.
type Text struct {
	ID        string
	CreatedAt time.Time

	source  string
	tokens  []string
	records []analytics.WordRecord
}

// Source returns the original input.
func (t *Text) Source() string {
	return t.source
}

// Tokens returns the filtered token sequence, duplicates included.
func (t *Text) Tokens() []string {
	out := make([]string, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// Records returns one record per unique term in first-appearance order.
func (t *Text) Records() []analytics.WordRecord {
	out := make([]analytics.WordRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Terms lists the unique terms in first-appearance order.
func (t *Text) Terms() []string {
	return analytics.Terms(t.records)
}

// Top returns the n most frequent records without reordering the text.
func (t *Text) Top(n int) []analytics.WordRecord {
	return analytics.Top(t.records, n)
}

// Summary reports token and term counts.
func (t *Text) Summary() analytics.Summary {
	return analytics.Summarize(t.tokens, t.records)
}

// Empty reports whether the text produced no records.
func (t *Text) Empty() bool {
	return len(t.records) == 0
}
