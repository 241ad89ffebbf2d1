package analytics

import "sort"

// DefaultTopN is the number of records returned by the primary top-words query.
const DefaultTopN = 10

// WordRecord pairs a term with the number of times it occurs in the filtered
// token sequence. Records are values and are never updated after creation.
type WordRecord struct {
	Term      string
	Frequency int
}

// StopChecker decides which terms are excluded from becoming keys.
type StopChecker interface {
	IsStop(token string) bool
}

// Aggregate builds one record per unique term in first-appearance order.
//
// Occurrences are counted over the full token sequence first; stopwords are
// only removed from the key list afterwards. A nil checker excludes nothing.
func Aggregate(tokens []string, stops StopChecker) []WordRecord {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if _, ok := counts[tok]; !ok {
			order = append(order, tok)
		}
		counts[tok]++
	}

	records := make([]WordRecord, 0, len(order))
	for _, term := range order {
		if stops != nil && stops.IsStop(term) {
			continue
		}
		records = append(records, WordRecord{Term: term, Frequency: counts[term]})
	}
	return records
}

// Top returns the n most frequent records as a new slice, highest first.
// Ties keep their relative input order. The input slice is not modified.
func Top(records []WordRecord, n int) []WordRecord {
	if n <= 0 || len(records) == 0 {
		return []WordRecord{}
	}

	sorted := make([]WordRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Frequency > sorted[j].Frequency
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Terms extracts the terms of records, preserving order.
func Terms(records []WordRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Term
	}
	return out
}

// Summary describes one processed text at a glance.
type Summary struct {
	Tokens       int // qualifying tokens, duplicates included
	UniqueTerms  int // records after stopword exclusion
	MaxFrequency int
}

// Summarize computes a Summary from a token sequence and its records.
func Summarize(tokens []string, records []WordRecord) Summary {
	s := Summary{
		Tokens:      len(tokens),
		UniqueTerms: len(records),
	}
	for _, r := range records {
		if r.Frequency > s.MaxFrequency {
			s.MaxFrequency = r.Frequency
		}
	}
	return s
}
