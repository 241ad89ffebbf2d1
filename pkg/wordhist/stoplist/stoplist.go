package stoplist

import "sort"

// defaultTerms are the Portuguese function words excluded from results.
var defaultTerms = []string{
	"ao", "um", "mas", "nem", "já", "ou", "ora", "que", "quer", "pois",
	"por", "de", "da", "do", "se", "para", "as", "os", "até", "em",
	"no", "na", "nos", "nas", "às",
}

// DefaultTerms returns a copy of the built-in stopword list.
func DefaultTerms() []string {
	out := make([]string, len(defaultTerms))
	copy(out, defaultTerms)
	return out
}

// Manager holds the set of words that never become result keys.
// Matching is exact; callers are expected to pass lowercased tokens.
type Manager struct {
	stops map[string]struct{}
}

// NewManager creates a new stoplist manager
func NewManager(initialStops []string) *Manager {
	stops := make(map[string]struct{}, len(initialStops))
	for _, s := range initialStops {
		if s == "" {
			continue
		}
		stops[s] = struct{}{}
	}
	return &Manager{stops: stops}
}

// Default returns a manager loaded with DefaultTerms.
func Default() *Manager {
	return NewManager(defaultTerms)
}

// IsStop checks if a token is a stopword
func (m *Manager) IsStop(token string) bool {
	if m == nil {
		return false
	}
	_, ok := m.stops[token]
	return ok
}

// Add adds a token to the stoplist
func (m *Manager) Add(token string) {
	if token == "" {
		return
	}
	m.stops[token] = struct{}{}
}

// All returns all stopwords, sorted
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}
