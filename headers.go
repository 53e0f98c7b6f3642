package chess

import "slices"

// sevenTagRoster is the canonical PGN export order; headers using these
// keys always sort to the front in that order, with any remaining keys
// following in insertion order.
var sevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

var rosterIndex = func() map[string]int {
	m := make(map[string]int, len(sevenTagRoster))
	for i, k := range sevenTagRoster {
		m[k] = i
	}
	return m
}()

// Headers is an ordered PGN tag-pair store. Lookups are by key; Keys()
// returns the seven-tag roster first (for whichever of those keys are
// present), followed by any remaining keys in the order they were set.
type Headers struct {
	values map[string]string
	order  []string
}

// NewHeaders returns an empty Headers with the default seven-tag roster
// values ("?" for most, "*" for Result), matching the PGN convention for
// a game with unknown tag values.
func NewHeaders() *Headers {
	h := &Headers{values: make(map[string]string)}
	h.Set("Event", "?")
	h.Set("Site", "?")
	h.Set("Date", "????.??.??")
	h.Set("Round", "?")
	h.Set("White", "?")
	h.Set("Black", "?")
	h.Set("Result", "*")
	return h
}

// Get returns the value for key and whether it was present.
func (h *Headers) Get(key string) (string, bool) {
	if h.values == nil {
		return "", false
	}
	v, ok := h.values[key]
	return v, ok
}

// Set stores value under key, appending key to the order if new.
func (h *Headers) Set(key, value string) {
	if h.values == nil {
		h.values = make(map[string]string)
	}
	if _, exists := h.values[key]; !exists {
		h.order = append(h.order, key)
	}
	h.values[key] = value
}

// Delete removes key from the store.
func (h *Headers) Delete(key string) {
	if h.values == nil {
		return
	}
	if _, exists := h.values[key]; !exists {
		return
	}
	delete(h.values, key)
	for i, k := range h.order {
		if k == key {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Keys returns the roster keys present (in roster order) followed by any
// remaining keys in insertion order.
func (h *Headers) Keys() []string {
	var roster, rest []string
	for _, k := range h.order {
		if _, isRoster := rosterIndex[k]; isRoster {
			roster = append(roster, k)
		} else {
			rest = append(rest, k)
		}
	}
	slices.SortFunc(roster, func(a, b string) int { return rosterIndex[a] - rosterIndex[b] })
	return append(roster, rest...)
}

// Len returns the number of stored tag pairs.
func (h *Headers) Len() int {
	return len(h.order)
}
