package notify

import "sync"

// Hub broadcasts change pulses to its subscribers over a shared Queue. Each
// Broadcast enqueues exactly one delivery; two back-to-back changes produce
// two deliveries, serialized by the queue. Unsubscribing takes effect
// immediately: a subscriber removed before a pending delivery runs is not
// called by it.
type Hub struct {
	queue  *Queue
	mu     sync.Mutex
	subs   map[int]func()
	nextID int
}

// NewHub creates a hub delivering on queue.
func NewHub(queue *Queue) *Hub {
	if queue == nil {
		panic("notify: nil queue")
	}
	return &Hub{queue: queue, subs: make(map[int]func())}
}

// Subscription is a handle for cancelling a subscription.
type Subscription struct {
	cancel func()
	once   sync.Once
}

// Unsubscribe removes the subscriber. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

// Subscribe registers fn to run on the delivery queue for every subsequent
// broadcast.
func (h *Hub) Subscribe(fn func()) *Subscription {
	if fn == nil {
		return &Subscription{}
	}
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs[id] = fn
	h.mu.Unlock()

	return &Subscription{cancel: func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}}
}

// Broadcast schedules one asynchronous delivery to every subscriber live at
// delivery time. The caller is never blocked on subscriber work.
func (h *Hub) Broadcast() {
	h.queue.Dispatch(func() {
		h.mu.Lock()
		ids := make([]int, 0, len(h.subs))
		for id := range h.subs {
			ids = append(ids, id)
		}
		h.mu.Unlock()

		for _, id := range ids {
			h.mu.Lock()
			fn := h.subs[id]
			h.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	})
}

// Queue exposes the shared delivery queue for synchronization in tests and
// shutdown.
func (h *Hub) Queue() *Queue { return h.queue }

// Len reports the current subscriber count.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
