package engine

// Result is a finished session as shown in the history table.
type Result struct {
	Session int
	Score   int
}

// History keeps the most recent results, newest first.
type History struct {
	limit   int
	results []Result
}

// NewHistory creates a history holding at most limit results.
func NewHistory(limit int) *History {
	return &History{limit: limit, results: make([]Result, 0, limit)}
}

// Push records a result and drops the oldest one once the limit is exceeded.
func (h *History) Push(r Result) {
	h.results = append([]Result{r}, h.results...)
	if len(h.results) > h.limit {
		h.results = h.results[:h.limit]
	}
}

// Results returns a copy, newest first.
func (h *History) Results() []Result {
	out := make([]Result, len(h.results))
	copy(out, h.results)
	return out
}

// Len returns the number of stored results.
func (h *History) Len() int {
	return len(h.results)
}
