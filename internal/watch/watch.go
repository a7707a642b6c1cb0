package watch

// Kind identifies which record family changed.
type Kind string

const (
	KindCheckin Kind = "checkin"
	KindTasks   Kind = "tasks"
	KindCommute Kind = "commute"
)

// Change describes a completed write to the store.
type Change struct {
	Kind Kind   `json:"kind"`
	Date string `json:"date,omitempty"`
}

// Hub is a minimal synchronous observer registry. The score engine
// subscribes here instead of the logs knowing about it. Fan-out runs on
// the publisher's goroutine; all writes happen on one goroutine.
type Hub struct {
	subscribers []func(Change)
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a callback for all future changes.
func (h *Hub) Subscribe(fn func(Change)) {
	h.subscribers = append(h.subscribers, fn)
}

// Notify delivers a change to every subscriber in registration order.
// A nil hub is a no-op so components can run without one in tests.
func (h *Hub) Notify(c Change) {
	if h == nil {
		return
	}
	for _, fn := range h.subscribers {
		fn(c)
	}
}
