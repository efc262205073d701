package diagnostics

import (
	"sync"

	"csob_gateway/internal/domain/entities"
)

// Entry is one recorded request/response pair for a single outbound
// gateway call. The id is assigned by the caller; uniqueness is the
// caller's responsibility.
type Entry struct {
	ID       int
	Request  Payload
	Response Payload
}

// Failed reports whether the recorded response was falsy, i.e. the call
// failed or produced nothing the client could parse.
func (e Entry) Failed() bool {
	return len(e.Response) == 0
}

// Recorder accumulates the diagnostic entries of one unit of work plus at
// most one active merchant configuration for display. It is an explicit
// instance threaded through the call chain, never package state, so two
// units of work cannot leak entries into each other.
//
// Recording runs on the hot path of the gateway client and must never
// perturb it: no operation here returns an error.
type Recorder struct {
	mu      sync.Mutex
	order   []int
	entries map[int]Entry
	config  *entities.MerchantConfig
}

func NewRecorder() *Recorder {
	return &Recorder{entries: make(map[int]Entry)}
}

// SetActiveConfig replaces the stored configuration reference. Last
// caller wins; no validation is performed here.
func (r *Recorder) SetActiveConfig(cfg entities.MerchantConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = &cfg
}

// ActiveConfig returns the registered configuration, if any.
func (r *Recorder) ActiveConfig() (entities.MerchantConfig, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.config == nil {
		return entities.MerchantConfig{}, false
	}
	return *r.config, true
}

// RecordCall inserts or overwrites the entry at id with the given
// snapshots. Re-using an id replaces the prior entry in place; iteration
// order stays the first-seen order of ids.
func (r *Recorder) RecordCall(id int, request, response Payload) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, seen := r.entries[id]; !seen {
		r.order = append(r.order, id)
	}
	r.entries[id] = Entry{ID: id, Request: request, Response: response}
}

// SummaryCounts returns the number of recorded entries and how many of
// them carry a falsy response.
func (r *Recorder) SummaryCounts() (total, errors int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total = len(r.entries)
	for _, e := range r.entries {
		if e.Failed() {
			errors++
		}
	}
	return total, errors
}

// Entries returns a snapshot of all entries in first-seen id order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}
