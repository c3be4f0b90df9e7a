package tween

// hooks is an ordered list of subscribed callbacks.
type hooks[F any] struct {
	next    int
	entries []hook[F]
}

type hook[F any] struct {
	id int
	fn F
}

// add appends the callback and returns a function that removes it again.
func (h *hooks[F]) add(fn F) func() {
	id := h.next
	h.next++
	h.entries = append(h.entries, hook[F]{id: id, fn: fn})

	return func() {
		h.remove(id)
	}
}

// remove never modifies the backing array in place, so a list that is being
// iterated while a callback unsubscribes stays intact.
func (h *hooks[F]) remove(id int) {
	for i, e := range h.entries {
		if e.id == id {
			h.entries = append(h.entries[:i:i], h.entries[i+1:]...)
			return
		}
	}
}

// list returns the current callbacks in subscription order.
func (h *hooks[F]) list() []hook[F] {
	return h.entries
}
