package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// History remembers queries submitted during this session and ranks them as
// suggestions for the query input. Nothing is written to disk.
type History struct {
	mu      sync.RWMutex
	entries []string // Most recent last
	max     int
}

// NewHistory creates a history bounded to max entries
func NewHistory(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{max: max}
}

// Add records a query, moving an existing entry to the most recent slot
func (h *History) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for i, e := range h.entries {
		if strings.EqualFold(e, query) {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	h.entries = append(h.entries, query)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

// Entries returns recorded queries, most recent first
func (h *History) Entries() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[len(h.entries)-1-i] = e
	}
	return out
}

// Suggest returns past queries matching prefix, best match first.
// Ties are broken by recency.
func (h *History) Suggest(prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	entries := h.Entries()
	if prefix == "" {
		return entries
	}

	ranks := fuzzy.RankFindFold(prefix, entries)
	// RankFindFold does not preserve input order; recency is the input index
	recency := make(map[string]int, len(entries))
	for i, e := range entries {
		recency[e] = i
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return recency[ranks[i].Target] < recency[ranks[j].Target]
	})

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		if strings.EqualFold(r.Target, prefix) {
			continue
		}
		out = append(out, r.Target)
	}
	return out
}
