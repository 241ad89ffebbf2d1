package ingest

import (
	"github.com/cognicore/wordhist/pkg/wordhist/analytics"
	"github.com/cognicore/wordhist/pkg/wordhist/stoplist"
)

// Pipeline orchestrates the full flow:
// text → tokenization → unique-term extraction → frequency counting
type Pipeline struct {
	stops *stoplist.Manager
}

// NewPipeline creates a pipeline that excludes the given stopwords from the
// result keys. A nil manager falls back to the default list.
func NewPipeline(stops *stoplist.Manager) *Pipeline {
	if stops == nil {
		stops = stoplist.Default()
	}
	return &Pipeline{stops: stops}
}

// Stoplist returns the stopword manager used by the pipeline.
func (p *Pipeline) Stoplist() *stoplist.Manager {
	return p.stops
}

// ProcessedText is the result of running one text through the pipeline.
type ProcessedText struct {
	Tokens  []string               // filtered sequence, duplicates kept
	Records []analytics.WordRecord // unique terms, first-appearance order
}

// Process runs a text through the full pipeline. It never fails; degenerate
// input yields empty slices.
func (p *Pipeline) Process(text string) ProcessedText {
	tokens := Tokenize(text)
	return ProcessedText{
		Tokens:  tokens,
		Records: analytics.Aggregate(tokens, p.stops),
	}
}
