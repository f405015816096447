// Package history keeps the list of recently accepted colors.
//
// A History is plain caller-owned state; it is not safe for concurrent use.
package history

// DefaultCapacity is the number of colors kept when New is given no capacity.
const DefaultCapacity = 12

// History is a most-recent-first list of distinct color strings.
type History struct {
	capacity int
	items    []string
}

// New returns an empty history holding at most capacity entries.
// A capacity of zero or less selects DefaultCapacity.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Add moves color to the front, removing any earlier occurrence and
// dropping the oldest entry once the capacity is exceeded.
func (h *History) Add(color string) {
	for i, c := range h.items {
		if c == color {
			h.items = append(h.items[:i], h.items[i+1:]...)
			break
		}
	}
	h.items = append([]string{color}, h.items...)
	if len(h.items) > h.capacity {
		h.items = h.items[:h.capacity]
	}
}

// Recent returns the stored colors, most recent first.
func (h *History) Recent() []string {
	return append([]string(nil), h.items...)
}

// Len returns the number of stored colors.
func (h *History) Len() int {
	return len(h.items)
}

// Capacity returns the maximum number of stored colors.
func (h *History) Capacity() int {
	return h.capacity
}
